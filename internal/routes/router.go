package routes

import (
	"net/http"
	"strings"

	"taskledger/internal/controller"
	"taskledger/internal/middleware"
	"taskledger/static"

	"github.com/gin-gonic/gin"
)

// Router assembles the HTTP surface: the task API, health and metrics
// endpoints, embedded static assets, and the single-page-app fallback.
func Router(ct *controller.Controller) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger())

	router.GET("/health", ct.Health)
	router.GET("/metrics", ct.Metrics)

	api := router.Group("/api")
	{
		api.GET("/tasks", ct.GetTasks)
		api.POST("/tasks", ct.CreateTask)
		api.DELETE("/tasks/:id", ct.DeleteTask)
	}

	router.StaticFS("/js", http.FS(staticfiles.Sub("js")))
	router.StaticFS("/css", http.FS(staticfiles.Sub("css")))

	// Unknown API routes get a JSON 404; every other path serves the
	// frontend entry document so browser-side routing keeps working.
	router.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api") {
			c.JSON(http.StatusNotFound, gin.H{"ok": false, "error": "API route not found"})
			return
		}
		c.Data(http.StatusOK, "text/html; charset=utf-8", staticfiles.Index())
	})

	return router
}
