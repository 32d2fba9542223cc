package handlers

import (
	"net/http"

	"watchlist/internal/models"

	"github.com/gin-gonic/gin"
)

const (
	sessionCookieName = "session"

	ctxSessionKey     = "session"
	ctxCurrentUserKey = "currentUser"
	ctxRequestIDKey   = "requestID"
)

// sessionState tracks whether the cookie must be rewritten for this response.
type sessionState struct {
	sess      models.Session
	dirty     bool
	hadCookie bool
}

func sessionFrom(c *gin.Context) *sessionState {
	if v, ok := c.Get(ctxSessionKey); ok {
		if st, ok := v.(*sessionState); ok {
			return st
		}
	}
	st := &sessionState{}
	c.Set(ctxSessionKey, st)
	return st
}

func currentUser(c *gin.Context) models.CurrentUser {
	if v, ok := c.Get(ctxCurrentUserKey); ok {
		if cu, ok := v.(models.CurrentUser); ok {
			return cu
		}
	}
	return models.CurrentUser{}
}

func (h *Handler) flash(c *gin.Context, msg string) {
	st := sessionFrom(c)
	st.sess.AddFlash(msg)
	st.dirty = true
}

func (h *Handler) loginUser(c *gin.Context, u *models.User) {
	st := sessionFrom(c)
	st.sess.UserID = u.ID
	st.dirty = true
	c.Set(ctxCurrentUserKey, models.CurrentUser{User: u})
}

func (h *Handler) logoutUser(c *gin.Context) {
	st := sessionFrom(c)
	st.sess.UserID = 0
	st.dirty = true
	c.Set(ctxCurrentUserKey, models.CurrentUser{})
}

// saveSession writes the cookie if the session changed. It must run before
// the response body is written.
func (h *Handler) saveSession(c *gin.Context) {
	st := sessionFrom(c)
	if !st.dirty {
		return
	}
	st.dirty = false

	c.SetSameSite(http.SameSiteLaxMode)
	if st.sess.UserID == 0 && len(st.sess.Flashes) == 0 {
		if st.hadCookie {
			c.SetCookie(sessionCookieName, "", -1, "/", "", h.opts.CookieSecure, true)
		}
		return
	}

	raw, err := h.services.EncodeSession(st.sess)
	if err != nil {
		h.log.Errorw("session_encode_failed", "err", err)
		return
	}
	c.SetCookie(sessionCookieName, raw, int(h.opts.SessionTTL.Seconds()), "/", "", h.opts.CookieSecure, true)
}

// redirect saves the session and answers 302 to a named endpoint.
func (h *Handler) redirect(c *gin.Context, endpoint string, params ...any) {
	h.saveSession(c)
	c.Redirect(http.StatusFound, mustURLFor(endpoint, params...))
}

// render fills the shared page data, consumes pending flashes and writes the page.
func (h *Handler) render(c *gin.Context, code int, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	st := sessionFrom(c)
	if flashes := st.sess.PopFlashes(); len(flashes) > 0 {
		data["Flashes"] = flashes
		st.dirty = true
	}
	data["CurrentUser"] = currentUser(c)

	owner, err := h.services.Owner(c.Request.Context())
	if err != nil {
		h.log.Errorw("owner_lookup_failed", "err", err)
	}
	data["Owner"] = owner

	h.saveSession(c)
	c.HTML(code, name, data)
}
