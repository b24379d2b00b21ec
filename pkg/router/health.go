package router

import (
	"character-chat-demo/backend/pkg/config"

	"github.com/gin-gonic/gin"
)

// setupHealthRoutes registers the liveness and diagnostic endpoints. Both
// work without a store and report its absence as data, never as a failure.
func (r *Router) setupHealthRoutes() {
	r.Engine.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message":  "Backend running",
			"database": r.Container.StoreAvailable(),
		})
	})

	r.Engine.GET("/test", r.diagnosticHandler())
}

func (r *Router) diagnosticHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		databaseStatus := "❌ Not Available"
		if r.Container.StoreAvailable() {
			databaseStatus = "✅ Connected"
		}

		databaseURL := "❌ Not Set"
		if r.Config.Database.URL != "" {
			databaseURL = "✅ Set"
		}

		var databaseName any
		if r.Config.Database.Name != "" {
			databaseName = r.Config.Database.Name
		}

		collections := []string{}
		if r.Container.DB != nil {
			if err := config.TestConnection(r.Container.DB); err != nil {
				databaseStatus = "⚠️ Error: " + truncate(err.Error(), 80)
			} else if tables, err := r.Container.DB.Migrator().GetTables(); err != nil {
				databaseStatus = "⚠️ Error: " + truncate(err.Error(), 80)
			} else {
				if len(tables) > 10 {
					tables = tables[:10]
				}
				collections = tables
			}
		}

		c.JSON(200, gin.H{
			"backend":       "✅ Running",
			"database":      databaseStatus,
			"database_url":  databaseURL,
			"database_name": databaseName,
			"collections":   collections,
		})
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
