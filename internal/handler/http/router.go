package http

import (
	"log/slog"
	"os"

	"github.com/cmlabs-hris/face-attendance-dashboard/internal/config"
	"github.com/cmlabs-hris/face-attendance-dashboard/internal/handler/http/middleware"
	"github.com/cmlabs-hris/face-attendance-dashboard/internal/pkg/jwt"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
)

type Handlers struct {
	Auth       AuthHandler
	Employee   EmployeeHandler
	Device     DeviceHandler
	Attendance AttendanceHandler
	Report     ReportHandler
	Dashboard  DashboardHandler
	Network    NetworkHandler
}

func NewRouter(cfg *config.Config, JWTService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
		Level:       cfg.SlogLevel(),
	})).With(
		slog.String("app", "face-attendance-dashboard"),
		slog.String("version", cfg.App.Version),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.App.AllowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		MaxAge:           300,
	}))

	// Forwarded headers are only trusted behind a known reverse proxy.
	if cfg.App.TrustProxy {
		r.Use(chiMiddleware.RealIP)
	}

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  cfg.SlogLevel(),
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.With(middleware.RateLimit(cfg.RateLimit.LoginPerMinute, cfg.RateLimit.LoginBurst)).
				Post("/login", h.Auth.Login)

			r.Group(func(r chi.Router) {
				r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
				r.Use(middleware.AuthRequired(JWTService))
				r.Post("/logout", h.Auth.Logout)
			})
		})

		// EventSource authenticates with a short-lived query token
		r.Get("/dashboard/stream", h.Dashboard.Stream)

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService))

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", h.Employee.List)
				r.Post("/", h.Employee.Create)
				r.Get("/departments", h.Employee.ListDepartments)
				r.Post("/with-photo", h.Employee.CreateWithPhoto)

				r.Route("/{id}", func(r chi.Router) {
					r.Put("/", h.Employee.Update)
					r.Delete("/", h.Employee.Delete)
					r.Get("/face-embeddings", h.Employee.ListFaceEmbeddings)
					r.Delete("/face-embeddings/{embeddingID}", h.Employee.DeleteFaceEmbedding)
					r.Post("/upload-face", h.Employee.UploadFace)
					r.Post("/photos/upload", h.Employee.UploadPhoto)
				})
			})

			r.Route("/devices", func(r chi.Router) {
				r.Get("/", h.Device.List)
				r.Post("/", h.Device.Create)
				r.Put("/{id}", h.Device.Update)
				r.Delete("/{id}", h.Device.Delete)
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Get("/", h.Attendance.List)
				r.Get("/history/{deviceID}", h.Attendance.DeviceHistory)
				r.Get("/employee/{employeeID}", h.Attendance.EmployeeEvents)
				r.Get("/daily", h.Attendance.Daily)
				r.Get("/daily/export", h.Attendance.ExportDaily)
			})

			r.Route("/reports", func(r chi.Router) {
				r.Get("/summary", h.Report.Summary)
			})

			r.Route("/dashboard", func(r chi.Router) {
				r.Get("/", h.Dashboard.GetDashboard)
				r.Get("/stream-token", h.Dashboard.GetStreamToken)
			})

			r.Route("/network", func(r chi.Router) {
				r.Get("/", h.Network.Logs)
				r.Get("/status", h.Network.Status)
				r.Get("/device/{deviceID}", h.Network.DeviceLogs)
			})
		})
	})
	return r
}
