package interfaces

import (
	"github.com/iwtcode/clusterAdapter/internal/domain/entities"
	"github.com/iwtcode/clusterAdapter/internal/domain/models"
)

// ClusterService - это агрегирующий интерфейс для всей бизнес-логики.
type ClusterService interface {
	SnapshotManager
	ConfigurationResolver
}

// SnapshotManager определяет контракт для хранилища последнего снапшота.
type SnapshotManager interface {
	IngestSnapshot(printers []entities.ClusterPrinterStatus) *entities.ClusterStatusSnapshot
	GetPrinter(uuid string) (*entities.ClusterPrinterStatus, bool)
	GetAllPrinters() []entities.ClusterPrinterStatus
	LastSnapshotID() string
}

// ConfigurationResolver определяет контракт вычисления активной и доступных
// конфигураций и проекции на выходную модель. Все операции чистые и
// тотальные: некорректные элементы отфильтровываются, ошибки не возникают.
type ConfigurationResolver interface {
	ResolveActive(printer *entities.ClusterPrinterStatus) []models.ExtruderOutputModel
	ResolveAvailable(printer *entities.ClusterPrinterStatus) []models.PrinterConfigurationModel
	BuildOutputModel(printer *entities.ClusterPrinterStatus) *models.PrinterOutputModel
}
