package handlers

import (
	"html/template"
	"net/http"
	"time"

	"watchlist/internal/logger"
	"watchlist/internal/service"
	"watchlist/internal/views"

	"github.com/gin-gonic/gin"
)

// Options are the cookie settings taken from configuration.
type Options struct {
	SessionTTL   time.Duration
	CookieSecure bool
}

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services *service.Service
	log      *logger.Logger
	opts     Options
}

// NewHandler constructs a new HTTP handler with dependencies. A nil logger
// discards output.
func NewHandler(services *service.Service, log *logger.Logger, opts Options) *Handler {
	if log == nil {
		log = logger.Nop()
	}
	return &Handler{services: services, log: log, opts: opts}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() (*gin.Engine, error) {
	tmpl, err := views.Parse(template.FuncMap{"urlFor": urlFor})
	if err != nil {
		return nil, err
	}

	router := gin.New()
	router.HandleMethodNotAllowed = true
	router.SetHTMLTemplate(tmpl)
	router.Use(h.requestLogger, gin.Recovery(), h.loadSession)

	router.NoRoute(h.notFound)
	router.NoMethod(h.methodNotAllowed)

	h.registerPublicRoutes(router)
	h.registerProtectedRoutes(router)

	return router, nil
}

func (h *Handler) registerPublicRoutes(r *gin.Engine) {
	for _, path := range []string{"/", "/index", "/home"} {
		r.GET(path, h.index)
		r.POST(path, h.createMovie)
	}
	r.GET("/user/:name", h.userPage)
	r.GET("/login", h.loginPage)
	r.POST("/login", h.login)
	r.GET("/test", h.testURLFor)
}

func (h *Handler) registerProtectedRoutes(r *gin.Engine) {
	protected := r.Group("/", h.loginRequired)
	{
		protected.GET("/settings", h.settingsPage)
		protected.POST("/settings", h.updateSettings)
		protected.GET("/movie/edit/:id", h.editPage)
		protected.POST("/movie/edit/:id", h.updateMovie)
		protected.POST("/movie/delete/:id", h.deleteMovie)
		protected.GET("/logout", h.logout)
	}
}

func (h *Handler) methodNotAllowed(c *gin.Context) {
	c.String(http.StatusMethodNotAllowed, http.StatusText(http.StatusMethodNotAllowed))
}
