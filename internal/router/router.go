package router

import (
	"github.com/gin-gonic/gin"

	"legajos/internal/handler"
	"legajos/internal/middleware"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	corsOrigins []string,
	recordH *handler.RecordHandler,
	employeeH *handler.EmployeeHandler,
	templateH *handler.TemplateHandler,
	trackingH *handler.TrackingHandler,
	consultH *handler.ConsultHandler,
	stateH *handler.StateHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(corsOrigins))

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	v1 := r.Group("/api/v1")

	// Disciplinary records
	records := v1.Group("/records")
	records.POST("/ingest", recordH.Ingest)
	records.GET("", recordH.List)
	records.GET("/folders", recordH.Folders)
	records.GET("/:id/text", recordH.DownloadText)
	records.GET("/export", recordH.Export)

	// Employee reconciliation
	employees := v1.Group("/employees")
	employees.GET("", employeeH.Search)
	employees.POST("/:name/working-copy", employeeH.Open)
	employees.GET("/:name/working-copy", employeeH.WorkingCopy)
	employees.DELETE("/:name/working-copy", employeeH.Close)
	employees.PATCH("/:name/working-copy/:recordId", employeeH.EditField)
	employees.POST("/:name/working-copy/records", employeeH.AppendRecord)
	employees.POST("/:name/commit", employeeH.Commit)
	employees.GET("/:name/summary", employeeH.Summary)

	// Template engine
	template := v1.Group("/template")
	template.GET("", templateH.Get)
	template.POST("/generate", templateH.Generate)
	template.POST("/upload", templateH.Upload)
	template.PUT("/text", templateH.SetText)
	template.POST("/analyze", templateH.Analyze)
	template.PUT("/answers", templateH.SetAnswer)
	template.GET("/render", templateH.Render)
	template.GET("/download", templateH.Download)

	// Shipment tracking
	shipments := v1.Group("/shipments")
	shipments.POST("/lookup", trackingH.Lookup)
	shipments.GET("", trackingH.History)
	shipments.GET("/export", trackingH.Export)

	// Consultation
	v1.POST("/consult", consultH.Consult)

	// Presentation state
	state := v1.Group("/state")
	state.GET("/calendar", stateH.CalendarEvents)
	state.PUT("/calendar", stateH.SaveCalendarEvents)
	state.GET("/theme", stateH.Theme)
	state.PUT("/theme", stateH.SaveTheme)

	return r
}
