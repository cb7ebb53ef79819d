package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/staffdesk/staffdesk-backend-go/internal/handler/http/middleware"
	"github.com/staffdesk/staffdesk-backend-go/internal/pkg/jwt"
)

func NewRouter(
	jwtService jwt.Service,
	authHandler AuthHandler,
	userHandler UserHandler,
	attendanceHandler AttendanceHandler,
	leaveHandler LeaveHandler,
	scheduleHandler ScheduleHandler,
	reportHandler ReportHandler,
	dashboardHandler DashboardHandler,
	uploadsPath string,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "staffdesk"),
		slog.String("version", "v1.0.0"),
		slog.String("env", "development"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	// Uploaded leave documents are served as static files.
	fileServer := http.FileServer(http.Dir(uploadsPath))
	r.Handle("/uploads/*", http.StripPrefix("/uploads/", fileServer))

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", authHandler.Login)

			r.Group(func(r chi.Router) {
				r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
				r.Use(middleware.AuthRequired(jwtService))
				r.Post("/logout", authHandler.Logout)
			})
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService))

			r.Route("/attendance", func(r chi.Router) {
				r.Post("/time-in", attendanceHandler.TimeIn)
				r.Post("/time-out", attendanceHandler.TimeOut)
				r.Get("/status", attendanceHandler.Status)
				r.Put("/note", attendanceHandler.SaveNote)
				r.Get("/my", attendanceHandler.MyTimesheet)
			})

			r.Route("/leave", func(r chi.Router) {
				r.Post("/", leaveHandler.Submit)
				r.Get("/my", leaveHandler.MyRequests)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/pending", leaveHandler.Pending)
					r.Put("/{id}/decision", leaveHandler.Decide)
				})
			})

			r.Route("/working-hours", func(r chi.Router) {
				r.Get("/", scheduleHandler.List)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Put("/", scheduleHandler.Update)
				})
			})

			r.Route("/dashboard", func(r chi.Router) {
				r.Get("/me", dashboardHandler.Staff)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/admin", dashboardHandler.Admin)
				})
			})

			// Admin only
			r.Group(func(r chi.Router) {
				r.Use(middleware.AdminOnly)

				r.Route("/reports", func(r chi.Router) {
					r.Get("/time-owed", reportHandler.TimeOwed)
					r.Get("/time-owed/pdf", reportHandler.TimeOwedPDF)
				})

				r.Route("/users", func(r chi.Router) {
					r.Post("/", userHandler.Create)
					r.Get("/", userHandler.List)
					r.Delete("/{id}", userHandler.Delete)
				})
			})
		})
	})
	return r
}
