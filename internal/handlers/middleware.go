package handlers

import (
	"time"

	"watchlist/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	requestIDHeader  = "X-Request-ID"
	loginRequiredMsg = "Please log in to access this page."
)

// requestLogger tags each request with an id and logs it once it completes.
func (h *Handler) requestLogger(c *gin.Context) {
	start := time.Now()
	reqID := c.GetHeader(requestIDHeader)
	if reqID == "" {
		reqID = uuid.NewString()
	}
	c.Set(ctxRequestIDKey, reqID)
	c.Header(requestIDHeader, reqID)

	c.Next()

	h.log.Infow("http_request",
		"request_id", reqID,
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
		"status", c.Writer.Status(),
		"latency", time.Since(start),
	)
}

// loadSession decodes the session cookie and resolves the current user.
// An unreadable cookie or a deleted user leaves the request anonymous.
func (h *Handler) loadSession(c *gin.Context) {
	st := &sessionState{}
	if raw, err := c.Cookie(sessionCookieName); err == nil && raw != "" {
		st.hadCookie = true
		sess, err := h.services.DecodeSession(raw)
		if err != nil {
			h.log.Debugw("session_rejected", "err", err)
			st.dirty = true
		} else {
			st.sess = sess
		}
	}
	c.Set(ctxSessionKey, st)

	current := models.CurrentUser{}
	if st.sess.UserID != 0 {
		u, err := h.services.LoadUser(c.Request.Context(), st.sess.UserID)
		if err != nil {
			h.serverError(c, "load_user_failed", err, "user_id", st.sess.UserID)
			c.Abort()
			return
		}
		if u == nil {
			st.sess.UserID = 0
			st.dirty = true
		}
		current.User = u
	}
	c.Set(ctxCurrentUserKey, current)
	c.Next()
}

// loginRequired sends anonymous visitors to the login page.
func (h *Handler) loginRequired(c *gin.Context) {
	if currentUser(c).IsAuthenticated() {
		c.Next()
		return
	}
	h.flash(c, loginRequiredMsg)
	h.redirect(c, "login")
	c.Abort()
}
