package domain

import "time"

// Project represents a single portfolio project record.
// It is intentionally storage-agnostic and used across repository and HTTP layers.
type Project struct {
	PublicID     string    `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description"`
	Technologies []string  `json:"technologies"`
	Category     string    `json:"category"`
	DemoURL      string    `json:"demo_url,omitempty"`
	GithubURL    string    `json:"github_url,omitempty"`
	ImageURL     string    `json:"image_url,omitempty"`
	Featured     bool      `json:"featured"`
	CreatedAt    time.Time `json:"created_at"`
}

// Categories is the canonical enumeration accepted on create and update.
var Categories = []string{"web", "mobile", "ai"}

func ValidCategory(c string) bool {
	for _, v := range Categories {
		if c == v {
			return true
		}
	}
	return false
}
