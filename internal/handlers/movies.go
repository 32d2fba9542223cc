package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"watchlist/internal/service"
	"watchlist/internal/views"

	"github.com/gin-gonic/gin"
)

// Flash messages shown after movie and settings changes.
const (
	msgInvalidInput    = "Invalid input."
	msgItemCreated     = "Item created."
	msgItemUpdated     = "Item updated."
	msgItemDeleted     = "Item deleted."
	msgSettingsUpdated = "Settings updated."
)

func movieInput(c *gin.Context) service.MovieInput {
	return service.MovieInput{
		Title: c.PostForm("title"),
		Year:  c.PostForm("year"),
	}
}

// movieID parses the :id path parameter; ok is false when it is not a number.
func movieID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	return id, err == nil
}

func (h *Handler) index(c *gin.Context) {
	movies, err := h.services.ListMovies(c.Request.Context())
	if err != nil {
		h.serverError(c, "movie_list_failed", err)
		return
	}
	h.render(c, http.StatusOK, views.Index, gin.H{"Movies": movies})
}

// createMovie ignores anonymous submissions without a message.
func (h *Handler) createMovie(c *gin.Context) {
	if !currentUser(c).IsAuthenticated() {
		h.redirect(c, "index")
		return
	}

	in := movieInput(c)
	if _, err := h.services.CreateMovie(c.Request.Context(), in); err != nil {
		if errors.Is(err, service.ErrInvalidInput) {
			h.flash(c, msgInvalidInput)
			h.redirect(c, "index")
			return
		}
		h.serverError(c, "movie_create_failed", err, "title", in.Title)
		return
	}
	h.flash(c, msgItemCreated)
	h.redirect(c, "index")
}

func (h *Handler) editPage(c *gin.Context) {
	id, ok := movieID(c)
	if !ok {
		h.notFound(c)
		return
	}
	movie, err := h.services.GetMovie(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			h.notFound(c)
			return
		}
		h.serverError(c, "movie_get_failed", err, "movie_id", id)
		return
	}
	h.render(c, http.StatusOK, views.Edit, gin.H{"Movie": movie})
}

func (h *Handler) updateMovie(c *gin.Context) {
	id, ok := movieID(c)
	if !ok {
		h.notFound(c)
		return
	}
	_, err := h.services.UpdateMovie(c.Request.Context(), id, movieInput(c))
	switch {
	case err == nil:
		h.flash(c, msgItemUpdated)
		h.redirect(c, "index")
	case errors.Is(err, service.ErrNotFound):
		h.notFound(c)
	case errors.Is(err, service.ErrInvalidInput):
		h.flash(c, msgInvalidInput)
		h.redirect(c, "edit", "id", id)
	default:
		h.serverError(c, "movie_update_failed", err, "movie_id", id)
	}
}

func (h *Handler) deleteMovie(c *gin.Context) {
	id, ok := movieID(c)
	if !ok {
		h.notFound(c)
		return
	}
	if err := h.services.DeleteMovie(c.Request.Context(), id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			h.notFound(c)
			return
		}
		h.serverError(c, "movie_delete_failed", err, "movie_id", id)
		return
	}
	h.flash(c, msgItemDeleted)
	h.redirect(c, "index")
}
