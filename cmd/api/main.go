package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/staffdesk/staffdesk-backend-go/internal/config"
	appHTTP "github.com/staffdesk/staffdesk-backend-go/internal/handler/http"
	"github.com/staffdesk/staffdesk-backend-go/internal/pkg/database"
	"github.com/staffdesk/staffdesk-backend-go/internal/pkg/jwt"
	"github.com/staffdesk/staffdesk-backend-go/internal/pkg/storage"
	"github.com/staffdesk/staffdesk-backend-go/internal/repository/postgresql"
	attendanceService "github.com/staffdesk/staffdesk-backend-go/internal/service/attendance"
	authService "github.com/staffdesk/staffdesk-backend-go/internal/service/auth"
	dashboardService "github.com/staffdesk/staffdesk-backend-go/internal/service/dashboard"
	"github.com/staffdesk/staffdesk-backend-go/internal/service/file"
	leaveService "github.com/staffdesk/staffdesk-backend-go/internal/service/leave"
	reportService "github.com/staffdesk/staffdesk-backend-go/internal/service/report"
	scheduleService "github.com/staffdesk/staffdesk-backend-go/internal/service/schedule"
	userService "github.com/staffdesk/staffdesk-backend-go/internal/service/user"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}

	userRepo := postgresql.NewUserRepository(db)
	timesheetRepo := postgresql.NewTimesheetRepository(db)
	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)
	workingHoursRepo := postgresql.NewWorkingHoursRepository(db)
	dashboardRepo := postgresql.NewDashboardRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)

	var fileStorage storage.FileStorage
	switch cfg.Storage.Type {
	case "local":
		fileStorage, err = storage.NewLocalStorage(
			cfg.Storage.BasePath,
			cfg.Storage.BaseURL,
		)
		if err != nil {
			log.Fatal("Failed to initialize local storage:", err)
		}
	default:
		log.Fatal("Unsupported storage type: ", cfg.Storage.Type)
	}

	fileSvc := file.NewFileService(fileStorage)
	authSvc := authService.NewAuthService(userRepo, jwtService)
	userSvc := userService.NewUserService(db, userRepo, timesheetRepo, leaveRequestRepo)
	attendanceSvc := attendanceService.NewAttendanceService(timesheetRepo)
	scheduleSvc := scheduleService.NewScheduleService(workingHoursRepo)
	leaveSvc := leaveService.NewLeaveService(db, leaveRequestRepo, timesheetRepo, workingHoursRepo, fileSvc)
	reportSvc := reportService.NewReportService(userRepo, timesheetRepo, leaveRequestRepo, workingHoursRepo)
	dashboardSvc := dashboardService.NewDashboardService(dashboardRepo, timesheetRepo, leaveRequestRepo, workingHoursRepo, reportSvc)

	authHandler := appHTTP.NewAuthHandler(jwtService, authSvc)
	userHandler := appHTTP.NewUserHandler(authSvc, userSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	leaveHandler := appHTTP.NewLeaveHandler(leaveSvc)
	scheduleHandler := appHTTP.NewScheduleHandler(scheduleSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc)
	dashboardHandler := appHTTP.NewDashboardHandler(dashboardSvc)

	router := appHTTP.NewRouter(
		jwtService,
		authHandler,
		userHandler,
		attendanceHandler,
		leaveHandler,
		scheduleHandler,
		reportHandler,
		dashboardHandler,
		cfg.Storage.BasePath,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
