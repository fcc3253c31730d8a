package cluster_service

import (
	"testing"

	"github.com/iwtcode/clusterAdapter/internal/domain/entities"
	"github.com/iwtcode/clusterAdapter/internal/middleware/logging"
	"github.com/stretchr/testify/require"
)

func newTestStore() *SnapshotStore {
	logger := logging.NewLogger(&logging.Config{Enabled: false}, "test")
	return NewSnapshotStore(logger)
}

func printerWithUUID(uuid string) entities.ClusterPrinterStatus {
	printer := makePrinter()
	printer.UUID = uuid
	return *printer
}

func TestStoreIngestAndGet(t *testing.T) {
	store := newTestStore()

	snapshot := store.IngestSnapshot([]entities.ClusterPrinterStatus{
		printerWithUUID("uuid-b"),
		printerWithUUID("uuid-a"),
	})
	require.NotEmpty(t, snapshot.SnapshotID)
	require.Equal(t, snapshot.SnapshotID, store.LastSnapshotID())

	printer, found := store.GetPrinter("uuid-a")
	require.True(t, found)
	require.Equal(t, "uuid-a", printer.UUID)

	_, found = store.GetPrinter("uuid-missing")
	require.False(t, found)
}

func TestStoreGetAllPrintersStableOrder(t *testing.T) {
	store := newTestStore()
	store.IngestSnapshot([]entities.ClusterPrinterStatus{
		printerWithUUID("uuid-c"),
		printerWithUUID("uuid-a"),
		printerWithUUID("uuid-b"),
	})

	printers := store.GetAllPrinters()
	require.Len(t, printers, 3)
	require.Equal(t, "uuid-a", printers[0].UUID)
	require.Equal(t, "uuid-b", printers[1].UUID)
	require.Equal(t, "uuid-c", printers[2].UUID)
}

// Новый снапшот полностью замещает предыдущий: пропавшие принтеры
// пропадают из пула.
func TestStoreIngestSupersedesPreviousSnapshot(t *testing.T) {
	store := newTestStore()

	first := store.IngestSnapshot([]entities.ClusterPrinterStatus{
		printerWithUUID("uuid-a"),
		printerWithUUID("uuid-b"),
	})

	updated := printerWithUUID("uuid-a")
	updated.Status = entities.PrinterStatusPrinting
	second := store.IngestSnapshot([]entities.ClusterPrinterStatus{updated})

	require.NotEqual(t, first.SnapshotID, second.SnapshotID)
	require.Equal(t, second.SnapshotID, store.LastSnapshotID())

	printers := store.GetAllPrinters()
	require.Len(t, printers, 1)
	require.Equal(t, entities.PrinterStatusPrinting, printers[0].Status)

	_, found := store.GetPrinter("uuid-b")
	require.False(t, found, "Принтер, пропавший из снапшота, должен пропасть из пула")
}
