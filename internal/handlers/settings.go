package handlers

import (
	"errors"
	"net/http"

	"watchlist/internal/service"
	"watchlist/internal/views"

	"github.com/gin-gonic/gin"
)

func (h *Handler) settingsPage(c *gin.Context) {
	h.render(c, http.StatusOK, views.Settings, nil)
}

func (h *Handler) updateSettings(c *gin.Context) {
	user := currentUser(c)
	name := c.PostForm("name")

	if err := h.services.UpdateName(c.Request.Context(), user.ID(), name); err != nil {
		if errors.Is(err, service.ErrInvalidInput) {
			h.flash(c, msgInvalidInput)
			h.redirect(c, "settings")
			return
		}
		h.serverError(c, "settings_update_failed", err, "user_id", user.ID())
		return
	}
	h.flash(c, msgSettingsUpdated)
	h.redirect(c, "index")
}
