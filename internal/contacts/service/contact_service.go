package service

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/sahanw/portfolio-backend/internal/contacts/domain"
)

// Repository is the persistence surface the service depends on.
type Repository interface {
	Create(ctx context.Context, c *domain.Contact) error
	List(ctx context.Context) ([]domain.Contact, error)
	MarkRead(ctx context.Context, id string) (*domain.Contact, error)
	Delete(ctx context.Context, id string) error
}

// Notifier delivers the outbound notification for a new message.
type Notifier interface {
	Notify(c *domain.Contact) error
}

// ContactService handles contact-message business logic.
type ContactService struct {
	repo     Repository
	notifier Notifier
}

func NewContactService(repo Repository, notifier Notifier) *ContactService {
	return &ContactService{repo: repo, notifier: notifier}
}

// ContactInput carries the contact form fields.
type ContactInput struct {
	Name    string
	Email   string
	Message string
}

// Create persists the message, then notifies the site owner. The persisted
// record survives a notification failure; the returned flag tells the caller
// whether the notification went out.
func (s *ContactService) Create(ctx context.Context, in ContactInput) (*domain.Contact, bool, error) {
	name := strings.TrimSpace(in.Name)
	email := strings.TrimSpace(in.Email)
	message := strings.TrimSpace(in.Message)

	switch {
	case name == "":
		return nil, false, fmt.Errorf("%w: name is required", domain.ErrValidation)
	case email == "":
		return nil, false, fmt.Errorf("%w: email is required", domain.ErrValidation)
	case !strings.Contains(email, "@"):
		return nil, false, fmt.Errorf("%w: email is invalid", domain.ErrValidation)
	case message == "":
		return nil, false, fmt.Errorf("%w: message is required", domain.ErrValidation)
	}

	c := &domain.Contact{
		Name:    name,
		Email:   email,
		Message: message,
	}
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, false, err
	}

	if s.notifier != nil {
		if err := s.notifier.Notify(c); err != nil {
			log.Printf("contact %s saved but notification failed: %v", c.ID, err)
			return c, false, nil
		}
	}
	return c, true, nil
}

// List returns all messages, newest first.
func (s *ContactService) List(ctx context.Context) ([]domain.Contact, error) {
	return s.repo.List(ctx)
}

// MarkRead flips a message's read flag.
func (s *ContactService) MarkRead(ctx context.Context, id string) (*domain.Contact, error) {
	return s.repo.MarkRead(ctx, id)
}

// Delete removes a message by id.
func (s *ContactService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
