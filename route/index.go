package route

import (
	"github.com/gofiber/fiber/v2"

	"thesis-progress-dashboard/app/service"
)

func SetupRoutes(app *fiber.App, dashboard *service.DashboardService, report *service.ReportService) {
	api := app.Group("/api/v1")

	// Views
	api.Get("/dashboard", dashboard.GetDashboard)
	api.Get("/students", dashboard.GetStudents)
	api.Get("/advisors", dashboard.GetAdvisors)
	api.Get("/advisors/detail", dashboard.GetAdvisorDetail)
	api.Get("/programs/statistics", dashboard.GetProgramStatistics)
	api.Get("/analytics", dashboard.GetAnalytics)

	// Reports
	api.Get("/reports/summary", report.GetSummary)
	api.Get("/reports/export", report.ExportWorkbook)

	// Load path
	api.Post("/refresh", dashboard.Refresh)
}
