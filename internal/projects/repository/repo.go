package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sahanw/portfolio-backend/internal/projects/domain"
	"github.com/sahanw/portfolio-backend/internal/projects/utils"
)

// ProjectRepository provides persistence operations for projects.
type ProjectRepository struct {
	db *pgxpool.Pool
}

func NewProjectRepository(db *pgxpool.Pool) *ProjectRepository {
	return &ProjectRepository{db: db}
}

const projectColumns = `public_id, title, description, technologies, category,
coalesce(demo_url,''), coalesce(github_url,''), coalesce(image_url,''), featured, created_at`

// Create inserts a new project and fills in its generated id and timestamp.
func (r *ProjectRepository) Create(ctx context.Context, p *domain.Project) (*domain.Project, error) {
	for i := 0; i < 5; i++ {
		publicID, err := utils.NewTextID("proj")
		if err != nil {
			return nil, err
		}

		const q = `
insert into projects (public_id, title, description, technologies, category, demo_url, github_url, image_url, featured)
values ($1, $2, $3, $4, $5, nullif($6,''), nullif($7,''), nullif($8,''), $9)
returning ` + projectColumns + `;
`
		var out domain.Project
		err = r.db.QueryRow(ctx, q,
			publicID, p.Title, p.Description, p.Technologies, p.Category,
			p.DemoURL, p.GithubURL, p.ImageURL, p.Featured,
		).Scan(
			&out.PublicID, &out.Title, &out.Description, &out.Technologies, &out.Category,
			&out.DemoURL, &out.GithubURL, &out.ImageURL, &out.Featured, &out.CreatedAt,
		)

		if err == nil {
			return &out, nil
		}

		// unique violation on public_id, retry with a fresh id
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			continue
		}
		return nil, fmt.Errorf("%w: create project: %v", domain.ErrStorageUnavailable, err)
	}

	return nil, fmt.Errorf("failed to generate unique project id")
}

// List returns projects newest-first, optionally filtered by category and/or
// featured flag. An empty or "all" category means no category filter.
func (r *ProjectRepository) List(ctx context.Context, category string, featured *bool) ([]domain.Project, error) {
	q := `select ` + projectColumns + ` from projects`
	args := []any{}

	where := ""
	if category != "" && category != "all" {
		args = append(args, category)
		where = fmt.Sprintf(" where category = $%d", len(args))
	}
	if featured != nil {
		args = append(args, *featured)
		if where == "" {
			where = fmt.Sprintf(" where featured = $%d", len(args))
		} else {
			where += fmt.Sprintf(" and featured = $%d", len(args))
		}
	}

	q += where + " order by created_at desc;"

	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: list projects: %v", domain.ErrStorageUnavailable, err)
	}
	defer rows.Close()

	out := make([]domain.Project, 0, 16)
	for rows.Next() {
		var p domain.Project
		if err := rows.Scan(
			&p.PublicID, &p.Title, &p.Description, &p.Technologies, &p.Category,
			&p.DemoURL, &p.GithubURL, &p.ImageURL, &p.Featured, &p.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// Get returns a single project by its public id.
func (r *ProjectRepository) Get(ctx context.Context, publicID string) (*domain.Project, error) {
	const q = `select ` + projectColumns + ` from projects where public_id = $1;`

	var p domain.Project
	err := r.db.QueryRow(ctx, q, publicID).Scan(
		&p.PublicID, &p.Title, &p.Description, &p.Technologies, &p.Category,
		&p.DemoURL, &p.GithubURL, &p.ImageURL, &p.Featured, &p.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("%w: get project: %v", domain.ErrStorageUnavailable, err)
	}
	return &p, nil
}

// Update replaces every mutable field of the project.
func (r *ProjectRepository) Update(ctx context.Context, p *domain.Project) (*domain.Project, error) {
	const q = `
update projects
set title = $2, description = $3, technologies = $4, category = $5,
    demo_url = nullif($6,''), github_url = nullif($7,''), image_url = nullif($8,''), featured = $9
where public_id = $1
returning ` + projectColumns + `;
`
	var out domain.Project
	err := r.db.QueryRow(ctx, q,
		p.PublicID, p.Title, p.Description, p.Technologies, p.Category,
		p.DemoURL, p.GithubURL, p.ImageURL, p.Featured,
	).Scan(
		&out.PublicID, &out.Title, &out.Description, &out.Technologies, &out.Category,
		&out.DemoURL, &out.GithubURL, &out.ImageURL, &out.Featured, &out.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("%w: update project: %v", domain.ErrStorageUnavailable, err)
	}
	return &out, nil
}

// Delete removes the project row. Returns false when no row matched.
func (r *ProjectRepository) Delete(ctx context.Context, publicID string) (bool, error) {
	const q = `delete from projects where public_id = $1;`

	ct, err := r.db.Exec(ctx, q, publicID)
	if err != nil {
		return false, fmt.Errorf("%w: delete project: %v", domain.ErrStorageUnavailable, err)
	}
	return ct.RowsAffected() > 0, nil
}

// Count returns the total number of projects.
func (r *ProjectRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.QueryRow(ctx, `select count(*) from projects;`).Scan(&n); err != nil {
		return 0, fmt.Errorf("%w: count projects: %v", domain.ErrStorageUnavailable, err)
	}
	return n, nil
}

// FeaturedCount returns the number of projects with the featured flag set.
func (r *ProjectRepository) FeaturedCount(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.QueryRow(ctx, `select count(*) from projects where featured;`).Scan(&n); err != nil {
		return 0, fmt.Errorf("%w: count featured projects: %v", domain.ErrStorageUnavailable, err)
	}
	return n, nil
}

// CountByCategory returns per-category project counts.
func (r *ProjectRepository) CountByCategory(ctx context.Context) (map[string]int64, error) {
	rows, err := r.db.Query(ctx, `select category, count(*) from projects group by category;`)
	if err != nil {
		return nil, fmt.Errorf("%w: count projects by category: %v", domain.ErrStorageUnavailable, err)
	}
	defer rows.Close()

	out := make(map[string]int64)
	for rows.Next() {
		var cat string
		var n int64
		if err := rows.Scan(&cat, &n); err != nil {
			return nil, err
		}
		out[cat] = n
	}
	return out, rows.Err()
}
