package showcase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	// storeKey is the single key holding the serialized project list,
	// mirroring a browser localStorage entry.
	storeKey = "portfolio:showcase:projects"

	placeholderImage = "https://via.placeholder.com/400x250?text=Project"
)

// ErrNotFound is returned when no record matches the given id.
var ErrNotFound = errors.New("showcase project not found")

// Record is a showcase project. Unlike the service-side Project it has no
// featured flag or timestamp; ordering is the list's insertion order, and
// category is a free-form tag matched literally by Filter.
type Record struct {
	ID           string   `json:"id"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Technologies []string `json:"technologies"`
	Category     string   `json:"category"`
	DemoURL      string   `json:"demo_url,omitempty"`
	GithubURL    string   `json:"github_url,omitempty"`
	ImageURL     string   `json:"image_url"`
}

// Seed is the fixed default list used when nothing has been persisted yet.
func Seed() []Record {
	return []Record{
		{
			ID:           "seed-memory-match",
			Title:        "Memory Match",
			Description:  "A small browser memory game with a best-score board.",
			Technologies: []string{"JavaScript", "CSS Grid"},
			Category:     "Game",
			GithubURL:    "https://github.com/sahanw/memory-match",
			ImageURL:     placeholderImage,
		},
	}
}

// Store keeps the whole showcase list as one JSON blob under a single key.
type Store struct {
	client *redis.Client
}

func NewStore(client *redis.Client) *Store {
	return &Store{client: client}
}

// Load deserializes the persisted list. A missing key or an unparsable blob
// falls back to the seed list rather than propagating the failure.
func (s *Store) Load(ctx context.Context) ([]Record, error) {
	data, err := s.client.Get(ctx, storeKey).Result()
	if err == redis.Nil {
		return Seed(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load showcase list: %w", err)
	}

	var list []Record
	if err := json.Unmarshal([]byte(data), &list); err != nil {
		log.Printf("showcase list is corrupt, falling back to seed: %v", err)
		return Seed(), nil
	}
	return list, nil
}

// Save serializes the current list back under the store key.
func (s *Store) Save(ctx context.Context, list []Record) error {
	data, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("failed to marshal showcase list: %w", err)
	}
	if err := s.client.Set(ctx, storeKey, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to save showcase list: %w", err)
	}
	return nil
}

// RecordInput carries the showcase form fields. Technologies is the raw
// comma-separated value.
type RecordInput struct {
	Title        string
	Description  string
	Technologies string
	Category     string
	DemoURL      string
	GithubURL    string
	ImageURL     string
}

// Add builds a record with a time-derived unique id, appends it to the list
// and persists the result.
func (s *Store) Add(ctx context.Context, in RecordInput) (*Record, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, fmt.Errorf("title is required")
	}

	techs := splitTechnologies(in.Technologies)
	if len(techs) == 0 {
		return nil, fmt.Errorf("technologies is required")
	}

	list, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}

	imageURL := strings.TrimSpace(in.ImageURL)
	if imageURL == "" {
		imageURL = placeholderImage
	}

	rec := Record{
		ID:           newLocalID(),
		Title:        title,
		Description:  strings.TrimSpace(in.Description),
		Technologies: techs,
		Category:     strings.TrimSpace(in.Category),
		DemoURL:      strings.TrimSpace(in.DemoURL),
		GithubURL:    strings.TrimSpace(in.GithubURL),
		ImageURL:     imageURL,
	}

	list = append(list, rec)
	if err := s.Save(ctx, list); err != nil {
		return nil, err
	}
	return &rec, nil
}

// Delete removes the record with the given id and persists the shrunk list.
// An unknown id leaves the stored list untouched.
func (s *Store) Delete(ctx context.Context, id string) error {
	list, err := s.Load(ctx)
	if err != nil {
		return err
	}

	kept := make([]Record, 0, len(list))
	for _, r := range list {
		if r.ID != id {
			kept = append(kept, r)
		}
	}
	if len(kept) == len(list) {
		return ErrNotFound
	}
	return s.Save(ctx, kept)
}

// Filter returns the visible subset for a category tag without mutating the
// list: "all" (or empty) shows everything, otherwise the match is a literal,
// case-sensitive tag comparison.
func Filter(list []Record, category string) []Record {
	if category == "" || category == "all" {
		return list
	}
	out := make([]Record, 0, len(list))
	for _, r := range list {
		if r.Category == category {
			out = append(out, r)
		}
	}
	return out
}

func splitTechnologies(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// newLocalID derives an id from the current time, with a short random suffix
// so two adds within the same millisecond stay unique.
func newLocalID() string {
	return fmt.Sprintf("local-%d-%s", time.Now().UnixMilli(), uuid.New().String()[:8])
}
