package http

import (
	"log/slog"
	"os"

	"github.com/asistenciapp/attendance-backend-go/internal/config"
	"github.com/asistenciapp/attendance-backend-go/internal/handler/http/middleware"
	"github.com/asistenciapp/attendance-backend-go/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

func NewRouter(
	cfg *config.Config,
	jwtService jwt.Service,
	authHandler AuthHandler,
	attendanceHandler AttendanceHandler,
	employeeHandler EmployeeHandler,
	branchHandler BranchHandler,
) *chi.Mux {
	r := chi.NewRouter()

	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "attendance-backend"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowCredentials: false,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Terminal-Token"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/health"))

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", authHandler.Login)
			r.Post("/create-admin", authHandler.CreateAdmin)
		})

		// Terminal-facing write path
		r.Group(func(r chi.Router) {
			r.Use(middleware.TerminalRequired(cfg.Terminal))
			r.Post("/attendances", attendanceHandler.Record)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Get("/attendances", attendanceHandler.List)
			r.Get("/attendances/branch/{branchId}", attendanceHandler.ListByBranch)

			r.Get("/employees", employeeHandler.List)
			r.Get("/branches", branchHandler.List)
			r.Get("/branches/{id}", branchHandler.GetByID)

			// Admin only
			r.Group(func(r chi.Router) {
				r.Use(middleware.AdminOnly)

				r.Get("/attendances/dashboard", attendanceHandler.Dashboard)

				r.Post("/employees", employeeHandler.Create)
				r.Patch("/employees/{carnet}", employeeHandler.Update)
				r.Delete("/employees/{carnet}", employeeHandler.Delete)

				r.Post("/branches", branchHandler.Create)
			})
		})
	})

	return r
}
