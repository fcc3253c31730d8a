package cluster_service

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/iwtcode/clusterAdapter/internal/domain/entities"
	"github.com/iwtcode/clusterAdapter/internal/middleware/logging"
)

// SnapshotStore хранит последнее принятое состояние кластера в памяти.
// Новый снапшот полностью замещает предыдущий: принтеры, пропавшие из
// payload, пропадают и из пула.
type SnapshotStore struct {
	mu             sync.RWMutex
	printers       map[string]entities.ClusterPrinterStatus
	lastSnapshotID string
	lastReceivedAt time.Time
	logger         *logging.Logger
}

func NewSnapshotStore(logger *logging.Logger) *SnapshotStore {
	return &SnapshotStore{
		printers: make(map[string]entities.ClusterPrinterStatus),
		logger:   logger.WithPrefix("STORE"),
	}
}

// IngestSnapshot принимает новый снапшот кластера, присваивает ему
// идентификатор и замещает хранимое состояние.
func (s *SnapshotStore) IngestSnapshot(printers []entities.ClusterPrinterStatus) *entities.ClusterStatusSnapshot {
	snapshot := &entities.ClusterStatusSnapshot{
		SnapshotID: uuid.New().String(),
		ReceivedAt: time.Now(),
		Printers:   printers,
	}

	replaced := make(map[string]entities.ClusterPrinterStatus, len(printers))
	for _, printer := range printers {
		replaced[printer.UUID] = printer
	}

	s.mu.Lock()
	s.printers = replaced
	s.lastSnapshotID = snapshot.SnapshotID
	s.lastReceivedAt = snapshot.ReceivedAt
	s.mu.Unlock()

	s.logger.Info("Snapshot ingested", "snapshotID", snapshot.SnapshotID, "printers", len(printers))
	return snapshot
}

// GetPrinter возвращает состояние принтера по UUID из последнего снапшота.
func (s *SnapshotStore) GetPrinter(uuid string) (*entities.ClusterPrinterStatus, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	printer, ok := s.printers[uuid]
	if !ok {
		return nil, false
	}
	return &printer, true
}

// GetAllPrinters возвращает все принтеры последнего снапшота в стабильном
// порядке (по UUID), чтобы ответы были воспроизводимы.
func (s *SnapshotStore) GetAllPrinters() []entities.ClusterPrinterStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()

	printers := make([]entities.ClusterPrinterStatus, 0, len(s.printers))
	for _, printer := range s.printers {
		printers = append(printers, printer)
	}
	sort.Slice(printers, func(i, j int) bool {
		return printers[i].UUID < printers[j].UUID
	})
	return printers
}

// LastSnapshotID возвращает идентификатор последнего принятого снапшота.
func (s *SnapshotStore) LastSnapshotID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastSnapshotID
}
