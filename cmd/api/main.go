package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cmlabs-hris/face-attendance-dashboard/internal/config"
	"github.com/cmlabs-hris/face-attendance-dashboard/internal/domain/attendance"
	"github.com/cmlabs-hris/face-attendance-dashboard/internal/domain/employee"
	appHTTP "github.com/cmlabs-hris/face-attendance-dashboard/internal/handler/http"
	"github.com/cmlabs-hris/face-attendance-dashboard/internal/pkg/cron"
	"github.com/cmlabs-hris/face-attendance-dashboard/internal/pkg/database"
	"github.com/cmlabs-hris/face-attendance-dashboard/internal/pkg/jwt"
	"github.com/cmlabs-hris/face-attendance-dashboard/internal/pkg/sse"
	"github.com/cmlabs-hris/face-attendance-dashboard/internal/repository/postgresql"
	"github.com/cmlabs-hris/face-attendance-dashboard/internal/repository/restapi"
	attendanceService "github.com/cmlabs-hris/face-attendance-dashboard/internal/service/attendance"
	serviceAuth "github.com/cmlabs-hris/face-attendance-dashboard/internal/service/auth"
	dashboardService "github.com/cmlabs-hris/face-attendance-dashboard/internal/service/dashboard"
	deviceService "github.com/cmlabs-hris/face-attendance-dashboard/internal/service/device"
	employeeService "github.com/cmlabs-hris/face-attendance-dashboard/internal/service/employee"
	networkService "github.com/cmlabs-hris/face-attendance-dashboard/internal/service/network"
	"github.com/cmlabs-hris/face-attendance-dashboard/internal/service/photo"
	reportService "github.com/cmlabs-hris/face-attendance-dashboard/internal/service/report"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.SlogLevel()})).With(
		slog.String("app", "face-attendance-dashboard"),
		slog.String("env", cfg.App.Env),
	))

	dailyPolicy, err := attendanceService.NewPolicy(cfg.Attendance.Timezone, cfg.Attendance.WorkStart, cfg.Attendance.WorkEnd)
	if err != nil {
		log.Fatal("Invalid attendance policy: ", err)
	}
	reportStart, err := attendanceService.ParseTimeOfDay(cfg.Attendance.ReportWorkStart)
	if err != nil {
		log.Fatal("Invalid report work start: ", err)
	}
	dailyPipeline := attendanceService.NewPipeline(dailyPolicy)
	summaryPipeline := attendanceService.NewPipeline(dailyPolicy.WithWorkStart(reportStart))

	client := restapi.NewClient(cfg.Backend)
	employeeRepo := restapi.NewEmployeeRepository(client)
	deviceRepo := restapi.NewDeviceRepository(client)
	networkRepo := restapi.NewNetworkRepository(client)

	var (
		events attendance.EventSource = restapi.NewAttendanceRepository(client)
		roster employee.Roster        = employeeRepo
	)
	if cfg.Attendance.Source == config.SourceDatabase {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL())
		cancel()
		if err != nil {
			log.Fatal("Error connecting to database: ", err)
		}
		defer db.Close()

		events = postgresql.NewAttendanceRepository(db)
		roster = postgresql.NewEmployeeRepository(db)
	}
	slog.Info("Attendance source selected", "source", cfg.Attendance.Source)

	accessExpiration, _ := time.ParseDuration(cfg.JWT.AccessExpiration)
	JWTService := jwt.NewJWTService(cfg.JWT.Secret, accessExpiration)
	hub := sse.NewHub()

	authSvc := serviceAuth.NewAuthService(cfg.Admin, JWTService)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo, photo.NewNormalizer())
	deviceSvc := deviceService.NewDeviceService(deviceRepo)
	networkSvc := networkService.NewNetworkService(networkRepo)
	attendanceSvc := attendanceService.NewAttendanceService(events, dailyPipeline)
	reportSvc := reportService.NewReportService(roster, events, dailyPipeline, summaryPipeline)
	dashboardSvc := dashboardService.NewDashboardService(reportSvc, deviceSvc, attendanceSvc)

	scheduler := cron.NewScheduler()
	pushJob := cron.NewDashboardPushJob(dashboardSvc, hub)
	scheduler.AddJob(cron.PushDashboardJobName, cfg.Push.Interval, pushJob.Run)
	scheduler.Start()

	router := appHTTP.NewRouter(cfg, JWTService, appHTTP.Handlers{
		Auth:       appHTTP.NewAuthHandler(authSvc),
		Employee:   appHTTP.NewEmployeeHandler(employeeSvc),
		Device:     appHTTP.NewDeviceHandler(deviceSvc),
		Attendance: appHTTP.NewAttendanceHandler(attendanceSvc, reportSvc),
		Report:     appHTTP.NewReportHandler(reportSvc),
		Dashboard:  appHTTP.NewDashboardHandler(dashboardSvc, JWTService, hub),
		Network:    appHTTP.NewNetworkHandler(networkSvc),
	})

	// Open dashboard streams end when the server shuts down.
	baseCtx, cancelStreams := context.WithCancel(context.Background())
	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return baseCtx },
	}
	server.RegisterOnShutdown(cancelStreams)

	go func() {
		slog.Info("Server running", "addr", server.Addr, "backend", cfg.Backend.BaseURL)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Server error: ", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server...")
	scheduler.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("Server shutdown error", "error", err)
	}
	slog.Info("Server stopped")
}
