package http

import (
	"log/slog"
	"os"

	"github.com/buildsite/worksite-backend-go/internal/handler/http/middleware"
	"github.com/buildsite/worksite-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

func NewRouter(
	JWTService jwt.Service,
	companyHandler CompanyHandler,
	masterHandler MasterHandler,
	sessionHandler WorkSessionHandler,
	payrollHandler PayrollHandler,
	frontendURL string,
	env string,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "worksite-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{frontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {
		// Requires authentication: every route is company-scoped via claims
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService.JWTAuth()))

			r.Route("/companies/my", func(r chi.Router) {
				r.Get("/", companyHandler.GetMyCompany)
			})

			r.Route("/workers", func(r chi.Router) {
				r.Get("/", masterHandler.ListWorkers)
				r.Post("/", masterHandler.CreateWorker)
				r.Delete("/{id}", masterHandler.DeactivateWorker)
			})

			r.Route("/projects", func(r chi.Router) {
				r.Get("/", masterHandler.ListProjects)
				r.Post("/", masterHandler.CreateProject)
				r.Delete("/{id}", masterHandler.DeactivateProject)
			})

			r.Route("/work-sessions", func(r chi.Router) {
				r.Get("/", sessionHandler.List)
				r.Post("/", sessionHandler.Create)
				r.Get("/{id}", sessionHandler.Get)
				r.Delete("/{id}", sessionHandler.Delete)
			})

			r.Route("/payroll", func(r chi.Router) {
				r.Route("/settings", func(r chi.Router) {
					r.Get("/", payrollHandler.GetSettings)
					r.Put("/", payrollHandler.UpdateSettings)
				})
				r.Get("/period", payrollHandler.GetPeriod)
				r.Get("/periods", payrollHandler.ListPeriods)
				r.Get("/summaries", payrollHandler.GetSummaries)
			})
		})
	})
	return r
}
