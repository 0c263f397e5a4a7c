package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/sahanw/portfolio-backend/internal/contacts/domain"
)

// ContactRepository handles PostgreSQL operations for contact messages.
type ContactRepository struct {
	db *sql.DB
}

func NewContactRepository(db *sql.DB) *ContactRepository {
	return &ContactRepository{db: db}
}

// Create inserts a new contact message and fills in its id and timestamp.
func (r *ContactRepository) Create(ctx context.Context, c *domain.Contact) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}

	const q = `
		INSERT INTO contacts (id, name, email, message)
		VALUES ($1, $2, $3, $4)
		RETURNING read, created_at
	`
	err := r.db.QueryRowContext(ctx, q, c.ID, c.Name, c.Email, c.Message).
		Scan(&c.Read, &c.CreatedAt)
	if err != nil {
		return fmt.Errorf("%w: create contact: %v", domain.ErrStorageUnavailable, err)
	}
	return nil
}

// List returns all contact messages, newest first.
func (r *ContactRepository) List(ctx context.Context) ([]domain.Contact, error) {
	const q = `
		SELECT id, name, email, message, read, created_at
		FROM contacts
		ORDER BY created_at DESC
	`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("%w: list contacts: %v", domain.ErrStorageUnavailable, err)
	}
	defer rows.Close()

	out := make([]domain.Contact, 0, 16)
	for rows.Next() {
		var c domain.Contact
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Message, &c.Read, &c.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// MarkRead flips the read flag on a contact message.
func (r *ContactRepository) MarkRead(ctx context.Context, id string) (*domain.Contact, error) {
	const q = `
		UPDATE contacts
		SET read = true
		WHERE id = $1
		RETURNING id, name, email, message, read, created_at
	`
	var c domain.Contact
	err := r.db.QueryRowContext(ctx, q, id).
		Scan(&c.ID, &c.Name, &c.Email, &c.Message, &c.Read, &c.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("%w: mark contact read: %v", domain.ErrStorageUnavailable, err)
	}
	return &c, nil
}

// Delete removes a contact message. Returns ErrNotFound when no row matched.
func (r *ContactRepository) Delete(ctx context.Context, id string) error {
	const q = `DELETE FROM contacts WHERE id = $1`

	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return fmt.Errorf("%w: delete contact: %v", domain.ErrStorageUnavailable, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Count returns the total number of contact messages.
func (r *ContactRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM contacts`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("%w: count contacts: %v", domain.ErrStorageUnavailable, err)
	}
	return n, nil
}

// UnreadCount returns the number of messages not yet marked read.
func (r *ContactRepository) UnreadCount(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM contacts WHERE read = false`).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("%w: count unread contacts: %v", domain.ErrStorageUnavailable, err)
	}
	return n, nil
}

// Recent returns the n most recent contact summaries (no message body).
func (r *ContactRepository) Recent(ctx context.Context, n int) ([]domain.ContactSummary, error) {
	const q = `
		SELECT name, email, read, created_at
		FROM contacts
		ORDER BY created_at DESC
		LIMIT $1
	`
	rows, err := r.db.QueryContext(ctx, q, n)
	if err != nil {
		return nil, fmt.Errorf("%w: list recent contacts: %v", domain.ErrStorageUnavailable, err)
	}
	defer rows.Close()

	out := make([]domain.ContactSummary, 0, n)
	for rows.Next() {
		var s domain.ContactSummary
		if err := rows.Scan(&s.Name, &s.Email, &s.Read, &s.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}
