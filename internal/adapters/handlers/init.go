package handlers

import (
	"net/http"

	"github.com/iwtcode/clusterAdapter/internal/config"
	"github.com/iwtcode/clusterAdapter/internal/interfaces"
	"github.com/iwtcode/clusterAdapter/internal/middleware/logging"
	"github.com/iwtcode/clusterAdapter/internal/middleware/swagger"

	"github.com/gin-gonic/gin"
)

// Handler - структура для обработчиков HTTP-запросов
type Handler struct {
	usecase interfaces.Usecases
	logger  *logging.Logger
}

// NewHandler создает новый экземпляр Handler
func NewHandler(usecase interfaces.Usecases, logger *logging.Logger) *Handler {
	return &Handler{
		usecase: usecase,
		logger:  logger.WithPrefix("HANDLER"),
	}
}

// ProvideRouter настраивает и возвращает HTTP-роутер
func ProvideRouter(h *Handler, cfg *config.AppConfig, swagCfg *swagger.Config) http.Handler {
	gin.SetMode(cfg.GinMode)

	router := gin.Default()

	// Swagger
	swagger.Setup(router, swagCfg)

	// Logger Middleware
	router.Use(LoggingMiddleware(h.logger))

	// Группа API v1
	v1 := router.Group("/api/v1")
	{
		cluster := v1.Group("/cluster")
		{
			cluster.POST("/status", h.IngestStatus)
		}

		printers := v1.Group("/printers")
		{
			printers.GET("", h.GetPrinters)
			printers.GET("/:uuid", h.GetPrinter)
			printers.GET("/:uuid/configurations", h.GetConfigurations)
		}
	}

	return router
}
