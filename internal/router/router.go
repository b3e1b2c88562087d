package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/noah-isme/class-schedule-api/internal/handler"
)

// Route binds a method and path template to a handler.
type Route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

// Handlers groups the HTTP handlers served by the API.
type Handlers struct {
	Auth     *handler.AuthHandler
	Subjects *handler.SubjectHandler
	Schedule *handler.ScheduleHandler
	Catalog  *handler.CatalogHandler
	Export   *handler.ExportHandler
	Metrics  *handler.MetricsHandler
}

// APIRoutes lists the application endpoints relative to the API prefix.
func APIRoutes(h Handlers) []Route {
	return []Route{
		{http.MethodPost, "/auth/login", h.Auth.Login},
		{http.MethodPost, "/auth/register", h.Auth.Register},

		{http.MethodGet, "/subjects", h.Subjects.List},
		{http.MethodPost, "/subjects", h.Subjects.Create},
		{http.MethodDelete, "/subjects/:id", h.Subjects.Delete},

		{http.MethodGet, "/schedule", h.Schedule.List},
		{http.MethodPost, "/schedule", h.Schedule.Create},
		{http.MethodGet, "/schedule/export", h.Export.Export},
		{http.MethodPost, "/schedule/copy", h.Schedule.CopyWeek},
		{http.MethodPut, "/schedule/:date/:lessonNumber", h.Schedule.Update},
		{http.MethodDelete, "/schedule/:date/:lessonNumber", h.Schedule.Delete},
		{http.MethodPatch, "/schedule/:date/:lessonNumber/status", h.Schedule.SetStatus},
		{http.MethodPatch, "/schedule/:date/:lessonNumber/half/:half/status", h.Schedule.SetHalfStatus},
		{http.MethodDelete, "/schedule/:date/:lessonNumber/half/:half", h.Schedule.ClearHalf},

		{http.MethodPost, "/test-data", h.Schedule.SeedDemoData},
		{http.MethodGet, "/lessons", h.Schedule.Dump},
		{http.MethodGet, "/lesson-times", h.Catalog.LessonTimes},
		{http.MethodGet, "/rooms", h.Catalog.Rooms},
	}
}

// OpsRoutes lists the probes and the metrics endpoint, served at the root.
func OpsRoutes(h Handlers) []Route {
	return []Route{
		{http.MethodGet, "/health", h.Metrics.Health},
		{http.MethodGet, "/ready", h.Metrics.Ready},
		{http.MethodGet, "/metrics", h.Metrics.Prometheus},
	}
}

// Register adds every route to r. Matching is structural, so the order of
// routes does not change which handler serves a request.
func Register(r gin.IRoutes, routes []Route) {
	for _, route := range routes {
		r.Handle(route.Method, route.Path, route.Handler)
	}
}

// Mount registers the API under prefix and the operational routes at the root.
// Swagger UI is served at /docs when withDocs is set.
func Mount(engine *gin.Engine, prefix string, h Handlers, withDocs bool) {
	Register(engine.Group(prefix), APIRoutes(h))
	Register(engine, OpsRoutes(h))
	if withDocs {
		engine.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}
}
