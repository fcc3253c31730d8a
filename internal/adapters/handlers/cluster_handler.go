package handlers

import (
	"net/http"

	"github.com/iwtcode/clusterAdapter/internal/domain/models"

	"github.com/gin-gonic/gin"
)

// IngestStatus принимает снапшот состояния кластера принтеров.
// @Summary Принять снапшот кластера
// @Description Принимает полный payload состояния кластера, разбирает его в типизированные модели и замещает хранимый снапшот. Выходная модель каждого принтера публикуется в Kafka.
// @Tags Cluster
// @Accept json
// @Produce json
// @Param input body models.ClusterStatusRequest true "Состояние всех принтеров кластера"
// @Success 200 {object} models.IngestResponse "Снапшот принят"
// @Failure 400 {object} models.ErrorResponse "Неверный формат payload"
// @Router /cluster/status [post]
func (h *Handler) IngestStatus(c *gin.Context) {
	var req models.ClusterStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err, "Invalid cluster status payload")
		return
	}

	h.logger.Info("Ingesting cluster status snapshot", "printers", len(req.Printers))

	snapshot, err := h.usecase.IngestStatus(c.Request.Context(), req)
	if err != nil {
		h.InternalError(c, err)
		return
	}

	h.logger.Info("Snapshot accepted", "snapshotID", snapshot.SnapshotID)
	c.JSON(http.StatusOK, gin.H{
		"status":        "ok",
		"snapshot_id":   snapshot.SnapshotID,
		"printer_count": len(snapshot.Printers),
	})
}

// GetPrinters возвращает выходные модели всех принтеров.
// @Summary Получить список принтеров
// @Description Возвращает UI-модели всех принтеров последнего снапшота в стабильном порядке.
// @Tags Printers
// @Produce json
// @Success 200 {object} models.GetPrintersResponse "Список моделей принтеров"
// @Router /printers [get]
func (h *Handler) GetPrinters(c *gin.Context) {
	printers := h.usecase.GetPrinters()
	c.JSON(http.StatusOK, gin.H{
		"status":   "ok",
		"count":    len(printers),
		"printers": printers,
	})
}

// GetPrinter возвращает выходную модель одного принтера.
// @Summary Получить модель принтера
// @Description Возвращает UI-модель принтера по его UUID.
// @Tags Printers
// @Produce json
// @Param uuid path string true "UUID принтера"
// @Success 200 {object} models.GetPrinterResponse "Модель принтера"
// @Failure 404 {object} models.ErrorResponse "Принтер не найден"
// @Router /printers/{uuid} [get]
func (h *Handler) GetPrinter(c *gin.Context) {
	uuid := c.Param("uuid")

	printer, err := h.usecase.GetPrinter(uuid)
	if err != nil {
		h.NotFound(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"printer": printer,
	})
}

// GetConfigurations возвращает доступные комбинации конфигураций принтера.
// @Summary Получить доступные конфигурации
// @Description Возвращает все собираемые комбинации конфигураций принтера из слотов его станции материалов. Для принтера без станции список пуст.
// @Tags Printers
// @Produce json
// @Param uuid path string true "UUID принтера"
// @Success 200 {object} models.GetConfigurationsResponse "Список комбинаций"
// @Failure 404 {object} models.ErrorResponse "Принтер не найден"
// @Router /printers/{uuid}/configurations [get]
func (h *Handler) GetConfigurations(c *gin.Context) {
	uuid := c.Param("uuid")

	configurations, err := h.usecase.GetAvailableConfigurations(uuid)
	if err != nil {
		h.NotFound(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":         "ok",
		"count":          len(configurations),
		"configurations": configurations,
	})
}
