package domain

import "time"

// Contact represents a message submitted via the contact form.
type Contact struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Message   string    `json:"message"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}

// ContactSummary is the trimmed view used by the analytics snapshot.
// It carries no message body.
type ContactSummary struct {
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"created_at"`
}
