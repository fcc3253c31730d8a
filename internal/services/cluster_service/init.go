package cluster_service

import (
	"github.com/iwtcode/clusterAdapter/internal/config"
	"github.com/iwtcode/clusterAdapter/internal/domain/entities"
	"github.com/iwtcode/clusterAdapter/internal/domain/models"
	"github.com/iwtcode/clusterAdapter/internal/interfaces"
	"github.com/iwtcode/clusterAdapter/internal/middleware/logging"
)

type clusterService struct {
	store    *SnapshotStore
	resolver *configurationResolver
}

func NewClusterService(cfg *config.AppConfig, logger *logging.Logger) interfaces.ClusterService {
	return &clusterService{
		store:    NewSnapshotStore(logger),
		resolver: NewConfigurationResolver(cfg.CameraStreamPort),
	}
}

// --- Реализация методов интерфейса ClusterService ---

func (s *clusterService) IngestSnapshot(printers []entities.ClusterPrinterStatus) *entities.ClusterStatusSnapshot {
	return s.store.IngestSnapshot(printers)
}

func (s *clusterService) GetPrinter(uuid string) (*entities.ClusterPrinterStatus, bool) {
	return s.store.GetPrinter(uuid)
}

func (s *clusterService) GetAllPrinters() []entities.ClusterPrinterStatus {
	return s.store.GetAllPrinters()
}

func (s *clusterService) LastSnapshotID() string {
	return s.store.LastSnapshotID()
}

func (s *clusterService) ResolveActive(printer *entities.ClusterPrinterStatus) []models.ExtruderOutputModel {
	return s.resolver.ResolveActive(printer)
}

func (s *clusterService) ResolveAvailable(printer *entities.ClusterPrinterStatus) []models.PrinterConfigurationModel {
	return s.resolver.ResolveAvailable(printer)
}

func (s *clusterService) BuildOutputModel(printer *entities.ClusterPrinterStatus) *models.PrinterOutputModel {
	return s.resolver.BuildOutputModel(printer)
}
