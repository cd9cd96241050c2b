package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"taskboard/internal/controllers"
	"taskboard/internal/repository"
)

// Options tunes the engine built by Register.
type Options struct {
	// AllowOrigins lists permitted CORS origins. Empty means any origin.
	AllowOrigins []string
}

func Register(db *gorm.DB, opts Options) *gin.Engine {
	categories := repository.NewCategoryRepository(db)
	tasks := repository.NewTaskRepository(db)

	cat := controllers.CategoryController{Categories: categories, Tasks: tasks}
	tsk := controllers.TaskController{Tasks: tasks, Categories: categories}

	r := gin.Default()
	r.Use(RequestID())
	r.Use(cors.New(corsConfig(opts)))

	r.GET("/healthz", func(c *gin.Context) {
		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.PingContext(c.Request.Context())
		}
		if err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"message": "database unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")

	api.GET("/tasks/", tsk.List)
	api.POST("/tasks/", tsk.Create)
	api.DELETE("/tasks/clean-all/", tsk.DeleteAll)
	api.GET("/tasks/:id/", tsk.Get)
	api.PUT("/tasks/:id/", tsk.Update)
	api.DELETE("/tasks/:id/", tsk.Delete)

	api.GET("/categories/", cat.List)
	api.POST("/categories/", cat.Create)
	api.GET("/categories/:id/", cat.Get)
	api.PUT("/categories/:id/", cat.Update)
	api.DELETE("/categories/:id/", cat.Delete)
	api.GET("/categories/:id/tasks/", cat.ListTasks)

	return r
}

func corsConfig(opts Options) cors.Config {
	cfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", requestIDHeader},
		ExposeHeaders:    []string{"Content-Length", requestIDHeader},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}
	if len(opts.AllowOrigins) == 0 {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = opts.AllowOrigins
	}
	return cfg
}
