package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sahanw/portfolio-backend/internal/showcase"
)

// Handler serves the server-rendered showcase page backed by the local store.
type Handler struct {
	store *showcase.Store
}

func New(store *showcase.Store) *Handler {
	return &Handler{store: store}
}

func (h *Handler) Register(r *gin.Engine) {
	r.GET("/", h.page)
	r.POST("/showcase/projects", h.add)
	r.POST("/showcase/projects/:id/delete", h.delete)
}

func (h *Handler) page(c *gin.Context) {
	list, err := h.store.Load(c.Request.Context())
	if err != nil {
		c.String(http.StatusInternalServerError, "failed to load projects: %v", err)
		return
	}

	category := c.DefaultQuery("category", "all")
	visible := showcase.Filter(list, category)

	c.Header("Content-Type", "text/html; charset=utf-8")
	c.Status(http.StatusOK)
	if err := showcase.RenderPage(c.Writer, showcase.PageData{
		Cards:    showcase.BuildCards(visible),
		Category: category,
	}); err != nil {
		c.String(http.StatusInternalServerError, "render failed: %v", err)
	}
}

func (h *Handler) add(c *gin.Context) {
	_, err := h.store.Add(c.Request.Context(), showcase.RecordInput{
		Title:        c.PostForm("title"),
		Description:  c.PostForm("description"),
		Technologies: c.PostForm("technologies"),
		Category:     c.PostForm("category"),
		DemoURL:      c.PostForm("demo_url"),
		GithubURL:    c.PostForm("github_url"),
		ImageURL:     c.PostForm("image_url"),
	})
	if err != nil {
		c.String(http.StatusBadRequest, "add failed: %v", err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/")
}

func (h *Handler) delete(c *gin.Context) {
	if err := h.store.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, showcase.ErrNotFound) {
			c.String(http.StatusNotFound, "project not found")
			return
		}
		c.String(http.StatusInternalServerError, "delete failed: %v", err)
		return
	}
	c.Redirect(http.StatusSeeOther, "/")
}
