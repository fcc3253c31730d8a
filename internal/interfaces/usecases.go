package interfaces

import (
	"context"

	"github.com/iwtcode/clusterAdapter/internal/domain/entities"
	"github.com/iwtcode/clusterAdapter/internal/domain/models"
)

// Usecases - это агрегирующий интерфейс для всех use cases
type Usecases interface {
	IngestStatus(ctx context.Context, req models.ClusterStatusRequest) (*entities.ClusterStatusSnapshot, error)
	GetPrinters() []models.PrinterOutputModel
	GetPrinter(uuid string) (*models.PrinterOutputModel, error)
	GetAvailableConfigurations(uuid string) ([]models.PrinterConfigurationModel, error)
}
