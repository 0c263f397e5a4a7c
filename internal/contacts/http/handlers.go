package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sahanw/portfolio-backend/internal/contacts/domain"
	"github.com/sahanw/portfolio-backend/internal/contacts/service"
)

// Handler bundles the dependencies for contact HTTP endpoints.
type Handler struct {
	svc *service.ContactService
}

func New(svc *service.ContactService) *Handler {
	return &Handler{svc: svc}
}

// Register attaches contact routes. The create route carries the rate-limit
// middleware passed by the caller.
func (h *Handler) Register(rg *gin.RouterGroup, createMiddleware ...gin.HandlerFunc) {
	create := append(createMiddleware, h.create)
	rg.POST("/contact", create...)
	rg.GET("/contacts", h.list)
	rg.PUT("/contacts/:id/read", h.markRead)
	rg.DELETE("/contacts/:id", h.delete)
}

type createReq struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

func (h *Handler) create(c *gin.Context) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid body"})
		return
	}

	contact, notified, err := h.svc.Create(c.Request.Context(), service.ContactInput{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
	})
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"ok": true, "contact": contact, "notified": notified})
}

func (h *Handler) list(c *gin.Context) {
	items, err := h.svc.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "contacts": items})
}

func (h *Handler) markRead(c *gin.Context) {
	contact, err := h.svc.MarkRead(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "contact not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true, "contact": contact})
}

func (h *Handler) delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "contact not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"ok": false, "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
