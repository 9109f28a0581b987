package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/study-factory/attend-backend-go/internal/handler/http/middleware"
	"github.com/study-factory/attend-backend-go/internal/pkg/jwt"
)

func NewRouter(
	jwtService jwt.Service,
	authHandler AuthHandler,
	timelineHandler TimelineHandler,
	vacationHandler VacationHandler,
	attendanceHandler AttendanceHandler,
	userHandler UserHandler,
	frontendURL string,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "attend-backend"),
		slog.String("version", "v1.0.0"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{frontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
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

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", authHandler.Login)
			r.Post("/refresh", authHandler.RefreshToken)
			r.Post("/logout", authHandler.Logout)
			r.Get("/login/oauth/google", authHandler.LoginWithGoogle)
			r.Route("/oauth/callback", func(r chi.Router) {
				r.Get("/google", authHandler.OAuthCallbackGoogle)
			})
		})

		// The stream itself authenticates with a short-lived token in the
		// query string, so it sits outside the Authorization middleware.
		r.Get("/timeline/events", timelineHandler.Events)

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Get("/branches", userHandler.ListBranches)

			r.Route("/users", func(r chi.Router) {
				r.Get("/me", userHandler.Me)

				// Staff only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireStaff)
					r.Get("/", userHandler.List)
				})
			})

			r.Route("/timeline", func(r chi.Router) {
				r.Get("/history", timelineHandler.MonthHistory)
				r.Post("/events/token", timelineHandler.StreamToken)

				// Staff only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireStaff)
					r.Get("/day", timelineHandler.DayOverview)
				})
			})

			r.Route("/vacations", func(r chi.Router) {
				r.Post("/", vacationHandler.Create)
				r.Delete("/{id}", vacationHandler.Delete)
				r.Get("/my", vacationHandler.ListMyMonth)

				// Staff only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireStaff)
					r.Get("/", vacationHandler.List)
					r.Get("/weekly-usage", timelineHandler.WeeklyUsage)
				})
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Get("/my", attendanceHandler.ListMyMonth)

				// Staff only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireStaff)
					r.Put("/", attendanceHandler.Upsert)
					r.Get("/", attendanceHandler.ListByDate)
				})
			})
		})
	})
	return r
}
