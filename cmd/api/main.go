package main

import (
	"fmt"
	"net/http"

	"github.com/study-factory/attend-backend-go/internal/config"
	appHTTP "github.com/study-factory/attend-backend-go/internal/handler/http"
	"github.com/study-factory/attend-backend-go/internal/pkg/changefeed"
	"github.com/study-factory/attend-backend-go/internal/pkg/database"
	"github.com/study-factory/attend-backend-go/internal/pkg/jwt"
	"github.com/study-factory/attend-backend-go/internal/pkg/oauth"
	"github.com/study-factory/attend-backend-go/internal/repository/postgresql"
	attendanceService "github.com/study-factory/attend-backend-go/internal/service/attendance"
	authService "github.com/study-factory/attend-backend-go/internal/service/auth"
	timelineService "github.com/study-factory/attend-backend-go/internal/service/timeline"
	vacationService "github.com/study-factory/attend-backend-go/internal/service/vacation"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	userRepo := postgresql.NewUserRepository(db)
	vacationRepo := postgresql.NewVacationRequestRepository(db)
	attendanceRepo := postgresql.NewAttendanceLogRepository(db)
	refreshTokenRepo := postgresql.NewRefreshTokenRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	googleService := oauth.NewGoogleService(cfg.OAuth2Google.ClientID, cfg.OAuth2Google.ClientSecret, cfg.OAuth2Google.RedirectURL, cfg.OAuth2Google.Scopes)
	feed := changefeed.NewHub()

	policy := timelineService.Policy{
		RedundantStatuses: cfg.Policy.RedundantStatuses,
		WeeklyCapStaff:    cfg.Policy.WeeklyCapStaff,
		WeeklyCapMember:   cfg.Policy.WeeklyCapMember,
	}

	timelineSvc := timelineService.NewTimelineService(vacationRepo, attendanceRepo, userRepo, policy)
	vacationSvc := vacationService.NewRequestService(vacationRepo, userRepo, feed, policy)
	attendanceSvc := attendanceService.NewLogService(attendanceRepo, feed)
	authSvc := authService.NewAuthService(userRepo, refreshTokenRepo, jwtService, googleService)

	authHandler := appHTTP.NewAuthHandler(jwtService, authSvc, googleService, cfg.App.FrontendURL)
	timelineHandler := appHTTP.NewTimelineHandler(timelineSvc, jwtService, feed)
	vacationHandler := appHTTP.NewVacationHandler(vacationSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	userHandler := appHTTP.NewUserHandler(userRepo)

	router := appHTTP.NewRouter(
		jwtService,
		authHandler,
		timelineHandler,
		vacationHandler,
		attendanceHandler,
		userHandler,
		cfg.App.FrontendURL,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
