package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
)

func NewRouter(
	attendanceHandler AttendanceHandler,
	punchHandler PunchHandler,
	holidayHandler HolidayHandler,
	geofenceHandler GeofenceHandler,
	employeeHandler EmployeeHandler,
	payrollMatchHandler PayrollMatchHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "workforce-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", "development"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
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

		r.Route("/attendance", func(r chi.Router) {
			r.Get("/", attendanceHandler.List)
			r.Post("/generate", attendanceHandler.Generate)
			r.Get("/statistics", attendanceHandler.Statistics)
		})

		r.Route("/punches", func(r chi.Router) {
			r.Get("/", punchHandler.List)
			r.Post("/", punchHandler.Create)
			r.Delete("/{id}", punchHandler.Delete)
		})

		r.Route("/holidays", func(r chi.Router) {
			r.Get("/", holidayHandler.List)
			r.Post("/", holidayHandler.Create)
			r.Post("/bulk", holidayHandler.BulkCreate)
			r.Delete("/{id}", holidayHandler.Delete)
		})

		r.Route("/geofence-areas", func(r chi.Router) {
			r.Get("/", geofenceHandler.List)
			r.Post("/", geofenceHandler.Create)
		})

		r.Route("/employees", func(r chi.Router) {
			r.Get("/", employeeHandler.List)
			r.Get("/{id}", employeeHandler.Get)
		})

		r.Get("/payroll-match", payrollMatchHandler.Match)
	})

	return r
}
