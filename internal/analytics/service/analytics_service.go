package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	contactdomain "github.com/sahanw/portfolio-backend/internal/contacts/domain"
)

const (
	snapshotKey = "portfolio:analytics:snapshot"
	snapshotTTL = 60 * time.Second
	recentLimit = 5
)

// ProjectCounter is the slice of the projects repository the snapshot needs.
type ProjectCounter interface {
	Count(ctx context.Context) (int64, error)
	FeaturedCount(ctx context.Context) (int64, error)
	CountByCategory(ctx context.Context) (map[string]int64, error)
}

// ContactCounter is the slice of the contacts repository the snapshot needs.
type ContactCounter interface {
	Count(ctx context.Context) (int64, error)
	UnreadCount(ctx context.Context) (int64, error)
	Recent(ctx context.Context, n int) ([]contactdomain.ContactSummary, error)
}

// Snapshot is the aggregate counts view served by /api/analytics.
type Snapshot struct {
	TotalProjects      int64                          `json:"total_projects"`
	TotalContacts      int64                          `json:"total_contacts"`
	UnreadContacts     int64                          `json:"unread_contacts"`
	FeaturedProjects   int64                          `json:"featured_projects"`
	ProjectsByCategory map[string]int64               `json:"projects_by_category"`
	RecentContacts     []contactdomain.ContactSummary `json:"recent_contacts"`
	GeneratedAt        time.Time                      `json:"generated_at"`
}

// AnalyticsService computes the snapshot and keeps a short-lived cached copy
// in Redis so the endpoint does not hit PostgreSQL on every request.
type AnalyticsService struct {
	projects ProjectCounter
	contacts ContactCounter
	cache    *redis.Client
}

func NewAnalyticsService(projects ProjectCounter, contacts ContactCounter, cache *redis.Client) *AnalyticsService {
	return &AnalyticsService{
		projects: projects,
		contacts: contacts,
		cache:    cache,
	}
}

// Snapshot returns the cached snapshot when warm, recomputing otherwise.
func (s *AnalyticsService) Snapshot(ctx context.Context) (*Snapshot, error) {
	if s.cache != nil {
		data, err := s.cache.Get(ctx, snapshotKey).Result()
		if err == nil {
			var snap Snapshot
			if err := json.Unmarshal([]byte(data), &snap); err == nil {
				return &snap, nil
			}
			// stale or corrupt cache entry, fall through to recompute
		} else if err != redis.Nil {
			log.Printf("analytics cache read failed: %v", err)
		}
	}

	return s.Refresh(ctx)
}

// Refresh recomputes the snapshot and stores it in the cache.
func (s *AnalyticsService) Refresh(ctx context.Context) (*Snapshot, error) {
	snap, err := s.compute(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		data, err := json.Marshal(snap)
		if err == nil {
			if err := s.cache.Set(ctx, snapshotKey, data, snapshotTTL).Err(); err != nil {
				log.Printf("analytics cache write failed: %v", err)
			}
		}
	}
	return snap, nil
}

func (s *AnalyticsService) compute(ctx context.Context) (*Snapshot, error) {
	totalProjects, err := s.projects.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count projects: %w", err)
	}
	featured, err := s.projects.FeaturedCount(ctx)
	if err != nil {
		return nil, fmt.Errorf("count featured projects: %w", err)
	}
	byCategory, err := s.projects.CountByCategory(ctx)
	if err != nil {
		return nil, fmt.Errorf("count projects by category: %w", err)
	}
	totalContacts, err := s.contacts.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("count contacts: %w", err)
	}
	unread, err := s.contacts.UnreadCount(ctx)
	if err != nil {
		return nil, fmt.Errorf("count unread contacts: %w", err)
	}
	recent, err := s.contacts.Recent(ctx, recentLimit)
	if err != nil {
		return nil, fmt.Errorf("recent contacts: %w", err)
	}

	return &Snapshot{
		TotalProjects:      totalProjects,
		TotalContacts:      totalContacts,
		UnreadContacts:     unread,
		FeaturedProjects:   featured,
		ProjectsByCategory: byCategory,
		RecentContacts:     recent,
		GeneratedAt:        time.Now().UTC(),
	}, nil
}
