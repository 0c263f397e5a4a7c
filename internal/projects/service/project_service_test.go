package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sahanw/portfolio-backend/internal/projects/domain"
)

// fakeRepo is an in-memory Repository for service tests.
type fakeRepo struct {
	projects map[string]domain.Project
	order    []string
	nextID   int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{projects: make(map[string]domain.Project)}
}

func (f *fakeRepo) Create(_ context.Context, p *domain.Project) (*domain.Project, error) {
	f.nextID++
	out := *p
	out.PublicID = fmt.Sprintf("proj-%05d-0001", f.nextID)
	out.CreatedAt = time.Now()
	f.projects[out.PublicID] = out
	f.order = append(f.order, out.PublicID)
	return &out, nil
}

func (f *fakeRepo) List(_ context.Context, category string, featured *bool) ([]domain.Project, error) {
	out := make([]domain.Project, 0, len(f.order))
	// newest-first
	for i := len(f.order) - 1; i >= 0; i-- {
		p := f.projects[f.order[i]]
		if category != "" && category != "all" && p.Category != category {
			continue
		}
		if featured != nil && p.Featured != *featured {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

func (f *fakeRepo) Get(_ context.Context, publicID string) (*domain.Project, error) {
	p, ok := f.projects[publicID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &p, nil
}

func (f *fakeRepo) Update(_ context.Context, p *domain.Project) (*domain.Project, error) {
	prev, ok := f.projects[p.PublicID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	out := *p
	out.CreatedAt = prev.CreatedAt
	f.projects[out.PublicID] = out
	return &out, nil
}

func (f *fakeRepo) Delete(_ context.Context, publicID string) (bool, error) {
	if _, ok := f.projects[publicID]; !ok {
		return false, nil
	}
	delete(f.projects, publicID)
	for i, id := range f.order {
		if id == publicID {
			f.order = append(f.order[:i], f.order[i+1:]...)
			break
		}
	}
	return true, nil
}

type fakeRemover struct {
	removed []string
	err     error
}

func (f *fakeRemover) Remove(imageURL string) error {
	f.removed = append(f.removed, imageURL)
	return f.err
}

func validInput() ProjectInput {
	return ProjectInput{
		Title:        "X",
		Description:  "A thing",
		Technologies: "Go, Rust",
		Category:     "web",
	}
}

func TestParseTechnologies(t *testing.T) {
	t.Run("splits and trims comma separated tokens", func(t *testing.T) {
		assert.Equal(t, []string{"Go", "Rust"}, ParseTechnologies("Go, Rust"))
	})

	t.Run("keeps token order", func(t *testing.T) {
		assert.Equal(t, []string{"c", "a", "b"}, ParseTechnologies("c,a,b"))
	})

	t.Run("drops empty tokens", func(t *testing.T) {
		assert.Equal(t, []string{"Go"}, ParseTechnologies(" ,Go,, "))
	})

	t.Run("input without commas yields single element", func(t *testing.T) {
		assert.Equal(t, []string{"plain vanilla js"}, ParseTechnologies("plain vanilla js"))
	})

	t.Run("blank input yields nothing", func(t *testing.T) {
		assert.Empty(t, ParseTechnologies("   "))
	})
}

func TestProjectService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("persists valid input", func(t *testing.T) {
		svc := NewProjectService(newFakeRepo(), nil)

		p, err := svc.Create(ctx, validInput())
		require.NoError(t, err)
		assert.NotEmpty(t, p.PublicID)
		assert.Equal(t, "X", p.Title)
		assert.Equal(t, []string{"Go", "Rust"}, p.Technologies)
		assert.False(t, p.Featured)
	})

	t.Run("rejects missing required fields", func(t *testing.T) {
		svc := NewProjectService(newFakeRepo(), nil)

		for name, mutate := range map[string]func(*ProjectInput){
			"title":        func(in *ProjectInput) { in.Title = "  " },
			"description":  func(in *ProjectInput) { in.Description = "" },
			"technologies": func(in *ProjectInput) { in.Technologies = " , ," },
		} {
			in := validInput()
			mutate(&in)
			_, err := svc.Create(ctx, in)
			assert.ErrorIs(t, err, domain.ErrValidation, "field %s", name)
		}
	})

	t.Run("rejects category outside the enumeration", func(t *testing.T) {
		svc := NewProjectService(newFakeRepo(), nil)

		in := validInput()
		in.Category = "Game"
		_, err := svc.Create(ctx, in)
		assert.ErrorIs(t, err, domain.ErrValidation)
	})
}

func TestProjectService_List(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepo()
	svc := NewProjectService(repo, nil)

	mk := func(title, category string, featured bool) {
		in := validInput()
		in.Title = title
		in.Category = category
		in.Featured = featured
		_, err := svc.Create(ctx, in)
		require.NoError(t, err)
	}
	mk("first", "web", false)
	mk("second", "mobile", true)
	mk("third", "web", true)

	t.Run("all returns full collection newest first", func(t *testing.T) {
		items, err := svc.List(ctx, "all", nil)
		require.NoError(t, err)
		require.Len(t, items, 3)
		assert.Equal(t, "third", items[0].Title)
		assert.Equal(t, "first", items[2].Title)
	})

	t.Run("category filter returns exact subset", func(t *testing.T) {
		items, err := svc.List(ctx, "web", nil)
		require.NoError(t, err)
		require.Len(t, items, 2)
		for _, p := range items {
			assert.Equal(t, "web", p.Category)
		}
	})

	t.Run("featured filter composes with category", func(t *testing.T) {
		featured := true
		items, err := svc.List(ctx, "web", &featured)
		require.NoError(t, err)
		require.Len(t, items, 1)
		assert.Equal(t, "third", items[0].Title)
	})
}

func TestProjectService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("replaces every field", func(t *testing.T) {
		repo := newFakeRepo()
		svc := NewProjectService(repo, nil)

		p, err := svc.Create(ctx, validInput())
		require.NoError(t, err)

		in := validInput()
		in.Title = "renamed"
		in.Technologies = "Zig"
		in.Category = "ai"
		out, err := svc.Update(ctx, p.PublicID, in)
		require.NoError(t, err)
		assert.Equal(t, "renamed", out.Title)
		assert.Equal(t, []string{"Zig"}, out.Technologies)
		assert.Equal(t, "ai", out.Category)
	})

	t.Run("keeps previous image when none uploaded", func(t *testing.T) {
		repo := newFakeRepo()
		remover := &fakeRemover{}
		svc := NewProjectService(repo, remover)

		in := validInput()
		in.ImageURL = "/uploads/old.png"
		p, err := svc.Create(ctx, in)
		require.NoError(t, err)

		out, err := svc.Update(ctx, p.PublicID, validInput())
		require.NoError(t, err)
		assert.Equal(t, "/uploads/old.png", out.ImageURL)
		assert.Empty(t, remover.removed)
	})

	t.Run("replacing the image removes the old file", func(t *testing.T) {
		repo := newFakeRepo()
		remover := &fakeRemover{}
		svc := NewProjectService(repo, remover)

		in := validInput()
		in.ImageURL = "/uploads/old.png"
		p, err := svc.Create(ctx, in)
		require.NoError(t, err)

		in.ImageURL = "/uploads/new.png"
		out, err := svc.Update(ctx, p.PublicID, in)
		require.NoError(t, err)
		assert.Equal(t, "/uploads/new.png", out.ImageURL)
		assert.Equal(t, []string{"/uploads/old.png"}, remover.removed)
	})

	t.Run("unknown id yields not found", func(t *testing.T) {
		svc := NewProjectService(newFakeRepo(), nil)
		_, err := svc.Update(ctx, "proj-00000-0000", validInput())
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})
}

func TestProjectService_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("removes record and cleans up image", func(t *testing.T) {
		repo := newFakeRepo()
		remover := &fakeRemover{}
		svc := NewProjectService(repo, remover)

		in := validInput()
		in.ImageURL = "/uploads/pic.png"
		p, err := svc.Create(ctx, in)
		require.NoError(t, err)

		require.NoError(t, svc.Delete(ctx, p.PublicID))
		assert.Equal(t, []string{"/uploads/pic.png"}, remover.removed)

		_, err = svc.Get(ctx, p.PublicID)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("file removal failure does not fail the delete", func(t *testing.T) {
		repo := newFakeRepo()
		remover := &fakeRemover{err: errors.New("disk says no")}
		svc := NewProjectService(repo, remover)

		in := validInput()
		in.ImageURL = "/uploads/pic.png"
		p, err := svc.Create(ctx, in)
		require.NoError(t, err)

		assert.NoError(t, svc.Delete(ctx, p.PublicID))
	})

	t.Run("deleting a nonexistent id leaves the collection unchanged", func(t *testing.T) {
		repo := newFakeRepo()
		svc := NewProjectService(repo, nil)

		_, err := svc.Create(ctx, validInput())
		require.NoError(t, err)

		err = svc.Delete(ctx, "proj-99999-9999")
		assert.ErrorIs(t, err, domain.ErrNotFound)

		items, err := svc.List(ctx, "all", nil)
		require.NoError(t, err)
		assert.Len(t, items, 1)
	})
}
