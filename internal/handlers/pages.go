package handlers

import (
	"html/template"
	"net/http"

	"watchlist/internal/views"

	"github.com/gin-gonic/gin"
)

const htmlContentType = "text/html; charset=utf-8"

// urlProbes are the resolutions logged by the /test diagnostic page.
var urlProbes = []struct {
	endpoint string
	params   []any
}{
	{endpoint: "index"},
	{endpoint: "user_page", params: []any{"name", "James"}},
	{endpoint: "user_page", params: []any{"name", "Alice"}},
	{endpoint: "test_url_for"},
	{endpoint: "test_url_for", params: []any{"num", 2}},
}

func (h *Handler) userPage(c *gin.Context) {
	body := "User: " + template.HTMLEscapeString(c.Param("name"))
	c.Data(http.StatusOK, htmlContentType, []byte(body))
}

func (h *Handler) testURLFor(c *gin.Context) {
	for _, p := range urlProbes {
		u, err := urlFor(p.endpoint, p.params...)
		if err != nil {
			h.log.Errorw("url_for_failed", "endpoint", p.endpoint, "err", err)
			continue
		}
		h.log.Infow("url_for", "endpoint", p.endpoint, "url", u)
	}
	c.Data(http.StatusOK, htmlContentType, []byte("Test page"))
}

func (h *Handler) notFound(c *gin.Context) {
	h.render(c, http.StatusNotFound, views.NotFound, nil)
}

// serverError logs err under logKey and renders the 500 page.
func (h *Handler) serverError(c *gin.Context, logKey string, err error, kv ...interface{}) {
	fields := append([]interface{}{"err", err, "request_id", c.GetString(ctxRequestIDKey)}, kv...)
	h.log.Errorw(logKey, fields...)
	h.render(c, http.StatusInternalServerError, views.Error, nil)
}
