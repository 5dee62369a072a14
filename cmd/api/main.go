package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/atlashr/workforce-backend-go/internal/config"
	appHTTP "github.com/atlashr/workforce-backend-go/internal/handler/http"
	"github.com/atlashr/workforce-backend-go/internal/pkg/calendar"
	"github.com/atlashr/workforce-backend-go/internal/pkg/cron"
	"github.com/atlashr/workforce-backend-go/internal/pkg/database"
	"github.com/atlashr/workforce-backend-go/internal/repository/postgresql"
	attendanceService "github.com/atlashr/workforce-backend-go/internal/service/attendance"
	employeeService "github.com/atlashr/workforce-backend-go/internal/service/employee"
	geofenceService "github.com/atlashr/workforce-backend-go/internal/service/geofence"
	holidayService "github.com/atlashr/workforce-backend-go/internal/service/holiday"
	payrollmatchService "github.com/atlashr/workforce-backend-go/internal/service/payrollmatch"
	punchService "github.com/atlashr/workforce-backend-go/internal/service/punch"
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

	cal, err := calendar.Load(cfg.Attendance.Timezone)
	if err != nil {
		log.Fatal("Failed to load attendance timezone: ", err)
	}

	attendanceRepo := postgresql.NewAttendanceRepository(db)
	punchRepo := postgresql.NewPunchRepository(db)
	holidayRepo := postgresql.NewHolidayRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	salaryComponentRepo := postgresql.NewSalaryComponentRepository(db)
	areaRepo := postgresql.NewGeofenceAreaRepository(db)

	attendanceSvc := attendanceService.NewAttendanceService(
		attendanceRepo,
		punchRepo,
		holidayRepo,
		employeeRepo,
		areaRepo,
		cal,
		calendar.DefaultWeekOff,
		cfg.Attendance,
	)
	punchSvc := punchService.NewPunchService(punchRepo, employeeRepo, areaRepo)
	holidaySvc := holidayService.NewHolidayService(db, holidayRepo)
	areaSvc := geofenceService.NewAreaService(areaRepo)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	payrollMatchSvc := payrollmatchService.NewPayrollMatchService(
		employeeRepo,
		salaryComponentRepo,
		attendanceRepo,
		payrollmatchService.NewUnconfiguredProvider(),
		cal,
		cfg.Payroll,
	)

	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	punchHandler := appHTTP.NewPunchHandler(punchSvc)
	holidayHandler := appHTTP.NewHolidayHandler(holidaySvc)
	geofenceHandler := appHTTP.NewGeofenceHandler(areaSvc)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	payrollMatchHandler := appHTTP.NewPayrollMatchHandler(payrollMatchSvc)

	scheduler := cron.NewScheduler()
	attendanceJobs := cron.NewAttendanceJobs(attendanceSvc, employeeRepo, cal)
	attendanceJobs.RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(
		attendanceHandler,
		punchHandler,
		holidayHandler,
		geofenceHandler,
		employeeHandler,
		payrollMatchHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
