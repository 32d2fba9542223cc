package handlers

import (
	"errors"
	"net/http"

	"watchlist/internal/service"
	"watchlist/internal/views"

	"github.com/gin-gonic/gin"
)

const (
	msgLoginSuccess       = "Login success."
	msgInvalidCredentials = "Invalid username or password."
	msgGoodbye            = "Goodbye."
)

func (h *Handler) loginPage(c *gin.Context) {
	h.render(c, http.StatusOK, views.Login, nil)
}

func (h *Handler) login(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")

	if username == "" || password == "" {
		h.flash(c, msgInvalidInput)
		h.redirect(c, "login")
		return
	}

	user, err := h.services.Login(c.Request.Context(), username, password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			h.log.Infow("auth_sign_in_failed", "username", username)
			h.flash(c, msgInvalidCredentials)
			h.redirect(c, "login")
			return
		}
		h.serverError(c, "auth_sign_in_error", err, "username", username)
		return
	}

	h.loginUser(c, user)
	h.flash(c, msgLoginSuccess)
	h.redirect(c, "index")
}

func (h *Handler) logout(c *gin.Context) {
	h.logoutUser(c)
	h.flash(c, msgGoodbye)
	h.redirect(c, "index")
}
