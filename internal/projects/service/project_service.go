package service

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/sahanw/portfolio-backend/internal/projects/domain"
)

// Repository is the persistence surface the service depends on.
type Repository interface {
	Create(ctx context.Context, p *domain.Project) (*domain.Project, error)
	List(ctx context.Context, category string, featured *bool) ([]domain.Project, error)
	Get(ctx context.Context, publicID string) (*domain.Project, error)
	Update(ctx context.Context, p *domain.Project) (*domain.Project, error)
	Delete(ctx context.Context, publicID string) (bool, error)
}

// ImageRemover removes a previously stored upload. Removal is best-effort:
// the service logs failures and never propagates them.
type ImageRemover interface {
	Remove(imageURL string) error
}

// ProjectService handles project-related business logic.
type ProjectService struct {
	repo   Repository
	images ImageRemover
}

func NewProjectService(repo Repository, images ImageRemover) *ProjectService {
	return &ProjectService{
		repo:   repo,
		images: images,
	}
}

// ProjectInput carries the writable fields of a project. Technologies is the
// raw comma-separated form value; ImageURL is already resolved by the caller.
type ProjectInput struct {
	Title        string
	Description  string
	Technologies string
	Category     string
	DemoURL      string
	GithubURL    string
	ImageURL     string
	Featured     bool
}

// ParseTechnologies splits a comma-separated string into trimmed tokens,
// dropping empty ones. Input without commas yields a single-element slice.
func ParseTechnologies(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}

func validate(in ProjectInput) ([]string, error) {
	if strings.TrimSpace(in.Title) == "" {
		return nil, fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	if strings.TrimSpace(in.Description) == "" {
		return nil, fmt.Errorf("%w: description is required", domain.ErrValidation)
	}
	techs := ParseTechnologies(in.Technologies)
	if len(techs) == 0 {
		return nil, fmt.Errorf("%w: technologies is required", domain.ErrValidation)
	}
	if !domain.ValidCategory(in.Category) {
		return nil, fmt.Errorf("%w: category must be one of %s",
			domain.ErrValidation, strings.Join(domain.Categories, ", "))
	}
	return techs, nil
}

// Create validates the input and persists a new project.
func (s *ProjectService) Create(ctx context.Context, in ProjectInput) (*domain.Project, error) {
	techs, err := validate(in)
	if err != nil {
		return nil, err
	}

	p := &domain.Project{
		Title:        strings.TrimSpace(in.Title),
		Description:  strings.TrimSpace(in.Description),
		Technologies: techs,
		Category:     in.Category,
		DemoURL:      strings.TrimSpace(in.DemoURL),
		GithubURL:    strings.TrimSpace(in.GithubURL),
		ImageURL:     in.ImageURL,
		Featured:     in.Featured,
	}
	return s.repo.Create(ctx, p)
}

// List returns projects filtered by category ("", "all" → no filter) and
// optional featured flag, newest-first.
func (s *ProjectService) List(ctx context.Context, category string, featured *bool) ([]domain.Project, error) {
	return s.repo.List(ctx, category, featured)
}

// Get returns a single project by id.
func (s *ProjectService) Get(ctx context.Context, publicID string) (*domain.Project, error) {
	return s.repo.Get(ctx, publicID)
}

// Update replaces every field of an existing project. When the input carries a
// new image, the previous upload is removed best-effort after the row commits.
func (s *ProjectService) Update(ctx context.Context, publicID string, in ProjectInput) (*domain.Project, error) {
	techs, err := validate(in)
	if err != nil {
		return nil, err
	}

	prev, err := s.repo.Get(ctx, publicID)
	if err != nil {
		return nil, err
	}

	imageURL := prev.ImageURL
	if in.ImageURL != "" {
		imageURL = in.ImageURL
	}

	p := &domain.Project{
		PublicID:     publicID,
		Title:        strings.TrimSpace(in.Title),
		Description:  strings.TrimSpace(in.Description),
		Technologies: techs,
		Category:     in.Category,
		DemoURL:      strings.TrimSpace(in.DemoURL),
		GithubURL:    strings.TrimSpace(in.GithubURL),
		ImageURL:     imageURL,
		Featured:     in.Featured,
	}

	out, err := s.repo.Update(ctx, p)
	if err != nil {
		return nil, err
	}

	if in.ImageURL != "" && prev.ImageURL != "" && prev.ImageURL != in.ImageURL {
		s.removeImage(prev.ImageURL)
	}
	return out, nil
}

// Delete removes the project record, then cleans up its uploaded image.
// Record removal is the operation; file cleanup failing never fails it.
func (s *ProjectService) Delete(ctx context.Context, publicID string) error {
	p, err := s.repo.Get(ctx, publicID)
	if err != nil {
		return err
	}

	ok, err := s.repo.Delete(ctx, publicID)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotFound
	}

	if p.ImageURL != "" {
		s.removeImage(p.ImageURL)
	}
	return nil
}

func (s *ProjectService) removeImage(imageURL string) {
	if s.images == nil {
		return
	}
	if err := s.images.Remove(imageURL); err != nil {
		log.Printf("project image cleanup failed for %s: %v", imageURL, err)
	}
}
