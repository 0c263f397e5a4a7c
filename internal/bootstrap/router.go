package bootstrap

import (
	"database/sql"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"

	httpapi "github.com/sahanw/portfolio-backend/internal/api/http"
	"github.com/sahanw/portfolio-backend/internal/api/http/middleware"

	analyticshttp "github.com/sahanw/portfolio-backend/internal/analytics/http"
	analyticssvc "github.com/sahanw/portfolio-backend/internal/analytics/service"
	contacthttp "github.com/sahanw/portfolio-backend/internal/contacts/http"
	contactrepo "github.com/sahanw/portfolio-backend/internal/contacts/repository"
	contactsvc "github.com/sahanw/portfolio-backend/internal/contacts/service"
	projecthttp "github.com/sahanw/portfolio-backend/internal/projects/http"
	projectrepo "github.com/sahanw/portfolio-backend/internal/projects/repository"
	projectsvc "github.com/sahanw/portfolio-backend/internal/projects/service"
	"github.com/sahanw/portfolio-backend/internal/showcase"
	showcasehttp "github.com/sahanw/portfolio-backend/internal/showcase/http"
	"github.com/sahanw/portfolio-backend/internal/uploads"
)

type RouterDeps struct {
	ServiceName string
	Version     string
	DB          *pgxpool.Pool
	SQLDB       *sql.DB
	Redis       *redis.Client
	Uploads     *uploads.Store
	Notifier    contactsvc.Notifier
}

// Analytics is returned alongside the router so the caller can hand it to the
// cron scheduler.
type App struct {
	Router    *gin.Engine
	Analytics *analyticssvc.AnalyticsService
}

func BuildRouter(dep RouterDeps) *App {
	r := gin.Default()
	r.Use(middleware.RequestIDMiddleware())
	r.Use(cors.Default())

	healthHandler := httpapi.NewHealthHandler(dep.ServiceName, dep.Version, dep.DB, dep.Redis)
	healthHandler.RegisterRoutes(r)

	if dep.Uploads != nil {
		dep.Uploads.Register(r)
	}

	projectRepo := projectrepo.NewProjectRepository(dep.DB)
	contactRepo := contactrepo.NewContactRepository(dep.SQLDB)

	var remover projectsvc.ImageRemover
	if dep.Uploads != nil {
		remover = dep.Uploads
	}
	projectService := projectsvc.NewProjectService(projectRepo, remover)
	contactService := contactsvc.NewContactService(contactRepo, dep.Notifier)
	analyticsService := analyticssvc.NewAnalyticsService(projectRepo, contactRepo, dep.Redis)

	api := r.Group("/api")
	projecthttp.New(projectService, dep.Uploads).Register(api)
	contacthttp.New(contactService).Register(api, middleware.ContactRateLimit(rate.Limit(1), 5))
	analyticshttp.New(analyticsService).Register(api)

	showcaseStore := showcase.NewStore(dep.Redis)
	showcasehttp.New(showcaseStore).Register(r)

	return &App{
		Router:    r,
		Analytics: analyticsService,
	}
}
