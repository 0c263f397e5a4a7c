package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sahanw/portfolio-backend/internal/contacts/domain"
	"github.com/sahanw/portfolio-backend/internal/contacts/service"
)

type stubRepo struct {
	contacts []domain.Contact
}

func (s *stubRepo) Create(_ context.Context, c *domain.Contact) error {
	c.ID = fmt.Sprintf("contact-%d", len(s.contacts)+1)
	c.CreatedAt = time.Now()
	s.contacts = append(s.contacts, *c)
	return nil
}

func (s *stubRepo) List(context.Context) ([]domain.Contact, error) {
	return s.contacts, nil
}

func (s *stubRepo) MarkRead(_ context.Context, id string) (*domain.Contact, error) {
	for i := range s.contacts {
		if s.contacts[i].ID == id {
			s.contacts[i].Read = true
			c := s.contacts[i]
			return &c, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s *stubRepo) Delete(_ context.Context, id string) error {
	for i := range s.contacts {
		if s.contacts[i].ID == id {
			s.contacts = append(s.contacts[:i], s.contacts[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

type stubNotifier struct{ err error }

func (s *stubNotifier) Notify(*domain.Contact) error { return s.err }

func setupRouter(repo *stubRepo, notifier service.Notifier) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := New(service.NewContactService(repo, notifier))
	h.Register(r.Group("/api"))
	return r
}

func postJSON(r *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	data, _ := json.Marshal(body)
	req := httptest.NewRequest("POST", path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func TestContactCreateEndpoint(t *testing.T) {
	t.Run("valid body is persisted and notified", func(t *testing.T) {
		repo := &stubRepo{}
		r := setupRouter(repo, &stubNotifier{})

		rr := postJSON(r, "/api/contact", map[string]string{
			"name": "Ada", "email": "ada@example.com", "message": "hi",
		})
		require.Equal(t, http.StatusCreated, rr.Code)

		var resp struct {
			OK       bool `json:"ok"`
			Notified bool `json:"notified"`
		}
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.True(t, resp.OK)
		assert.True(t, resp.Notified)
		assert.Len(t, repo.contacts, 1)
	})

	t.Run("mail failure still returns 201 with notified false", func(t *testing.T) {
		repo := &stubRepo{}
		r := setupRouter(repo, &stubNotifier{err: domain.ErrNotification})

		rr := postJSON(r, "/api/contact", map[string]string{
			"name": "Ada", "email": "ada@example.com", "message": "hi",
		})
		require.Equal(t, http.StatusCreated, rr.Code)

		var resp struct {
			Notified bool `json:"notified"`
		}
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
		assert.False(t, resp.Notified)
		assert.Len(t, repo.contacts, 1, "record must be saved despite mail failure")
	})

	t.Run("missing fields yield 400", func(t *testing.T) {
		r := setupRouter(&stubRepo{}, nil)

		rr := postJSON(r, "/api/contact", map[string]string{"name": "Ada"})
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestContactAdminEndpoints(t *testing.T) {
	repo := &stubRepo{}
	r := setupRouter(repo, nil)

	rr := postJSON(r, "/api/contact", map[string]string{
		"name": "Ada", "email": "ada@example.com", "message": "hi",
	})
	require.Equal(t, http.StatusCreated, rr.Code)
	id := repo.contacts[0].ID

	t.Run("list returns stored messages", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/api/contacts", nil)
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), "ada@example.com")
	})

	t.Run("mark read", func(t *testing.T) {
		req := httptest.NewRequest("PUT", "/api/contacts/"+id+"/read", nil)
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.True(t, repo.contacts[0].Read)
	})

	t.Run("mark read unknown id", func(t *testing.T) {
		req := httptest.NewRequest("PUT", "/api/contacts/ghost/read", nil)
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})

	t.Run("delete then delete again", func(t *testing.T) {
		req := httptest.NewRequest("DELETE", "/api/contacts/"+id, nil)
		rr := httptest.NewRecorder()
		r.ServeHTTP(rr, req)
		assert.Equal(t, http.StatusOK, rr.Code)

		rr = httptest.NewRecorder()
		r.ServeHTTP(rr, httptest.NewRequest("DELETE", "/api/contacts/"+id, nil))
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
}
