package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/doanhtu/image-interpolation/internal/config"
	"github.com/doanhtu/image-interpolation/internal/http/handlers"
	"github.com/doanhtu/image-interpolation/internal/http/middleware"
	"github.com/doanhtu/image-interpolation/internal/web"
)

type Router struct {
	imageHandler *handlers.ImageHandler
	logger       *zap.Logger
	config       *config.Config
}

func NewRouter(
	imageHandler *handlers.ImageHandler,
	logger *zap.Logger,
	cfg *config.Config,
) *Router {
	return &Router{
		imageHandler: imageHandler,
		logger:       logger,
		config:       cfg,
	}
}

func (r *Router) SetupRoutes() *gin.Engine {
	router := gin.New()

	router.Use(middleware.Logger(r.logger))
	router.Use(middleware.ErrorHandler(r.logger))
	router.Use(middleware.CORS())
	router.Use(middleware.SecurityHeaders())

	// API version 1
	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", r.imageHandler.HealthCheck)
		v1.GET("/queue/stats", r.imageHandler.QueueStats)
		v1.GET("/downloads/:id", r.imageHandler.Download)

		images := v1.Group("/images")
		{
			images.POST("/resize", r.imageHandler.ResizeImage)
			images.POST("/batch/resize", r.imageHandler.BatchResize)
			images.POST("/folder", r.imageHandler.FolderResize)
		}

		jobs := v1.Group("/jobs")
		{
			jobs.POST("", r.imageHandler.CreateJob)
			jobs.GET("/:id", r.imageHandler.GetJob)
		}
	}

	router.GET("/", r.servePage)

	return router
}

func (r *Router) servePage(ctx *gin.Context) {
	data := web.PageData{
		MinScale:     r.config.Resize.MinScale,
		MaxScale:     r.config.Resize.MaxScale,
		Step:         r.config.Resize.Step,
		DefaultScale: 2.0,
	}
	if data.DefaultScale < data.MinScale || data.DefaultScale > data.MaxScale {
		data.DefaultScale = data.MinScale
	}

	ctx.Header("Content-Type", "text/html; charset=utf-8")
	ctx.Status(http.StatusOK)
	if err := web.RenderPage(ctx.Writer, data); err != nil {
		r.logger.Error("Failed to render page", zap.Error(err))
	}
}
