package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sahanw/portfolio-backend/internal/projects/domain"
	"github.com/sahanw/portfolio-backend/internal/projects/service"
	"github.com/sahanw/portfolio-backend/internal/uploads"
)

func (h *Handler) list(c *gin.Context) {
	category := c.Query("category")

	var featured *bool
	switch c.Query("featured") {
	case "true":
		v := true
		featured = &v
	case "false":
		v := false
		featured = &v
	}

	items, err := h.svc.List(c.Request.Context(), category, featured)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "projects": items})
}

func (h *Handler) get(c *gin.Context) {
	p, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "project not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "project": p})
}

// formInput reads the multipart form fields shared by create and update and
// stores the optional image, returning its public URL in the input.
func (h *Handler) formInput(c *gin.Context) (service.ProjectInput, error) {
	in := service.ProjectInput{
		Title:        c.PostForm("title"),
		Description:  c.PostForm("description"),
		Technologies: c.PostForm("technologies"),
		Category:     c.PostForm("category"),
		DemoURL:      c.PostForm("demo_url"),
		GithubURL:    c.PostForm("github_url"),
		Featured:     c.PostForm("featured") == "true",
	}

	fh, err := c.FormFile("image")
	if err != nil || h.images == nil {
		// image is optional
		return in, nil
	}

	url, err := h.images.Save(c, fh)
	if err != nil {
		return in, err
	}
	in.ImageURL = url
	return in, nil
}

func (h *Handler) create(c *gin.Context) {
	in, err := h.formInput(c)
	if err != nil {
		h.writeError(c, err)
		return
	}

	p, err := h.svc.Create(c.Request.Context(), in)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"ok": true, "project": p})
}

func (h *Handler) update(c *gin.Context) {
	in, err := h.formInput(c)
	if err != nil {
		h.writeError(c, err)
		return
	}

	p, err := h.svc.Update(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "project": p})
}

func (h *Handler) delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "project not found"})
	case errors.Is(err, domain.ErrValidation), errors.Is(err, uploads.ErrInvalidFile):
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
	}
}
