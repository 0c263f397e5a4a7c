package http

import (
	"github.com/sahanw/portfolio-backend/internal/projects/service"
	"github.com/sahanw/portfolio-backend/internal/uploads"
)

// Handler bundles the dependencies for project HTTP endpoints.
type Handler struct {
	svc    *service.ProjectService
	images *uploads.Store
}

func New(svc *service.ProjectService, images *uploads.Store) *Handler {
	return &Handler{svc: svc, images: images}
}
