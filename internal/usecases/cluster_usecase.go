package usecases

import (
	"context"
	"encoding/json"

	"github.com/iwtcode/clusterAdapter/internal/domain/entities"
	"github.com/iwtcode/clusterAdapter/internal/domain/models"
	"github.com/iwtcode/clusterAdapter/internal/interfaces"
	"github.com/iwtcode/clusterAdapter/internal/middleware/logging"
	"github.com/iwtcode/clusterAdapter/pkg/errors"
)

type Usecase struct {
	clusterSvc interfaces.ClusterService
	producer   interfaces.KafkaService
	logger     *logging.Logger
}

func NewUsecase(clusterSvc interfaces.ClusterService, producer interfaces.KafkaService, logger *logging.Logger) interfaces.Usecases {
	return &Usecase{
		clusterSvc: clusterSvc,
		producer:   producer,
		logger:     logger.WithPrefix("USECASE"),
	}
}

// IngestStatus принимает снапшот состояния кластера, сохраняет его и
// публикует выходную модель каждого принтера в Kafka. Ошибка публикации
// логируется, но не отменяет прием: снапшот уже принят и хранится.
func (u *Usecase) IngestStatus(ctx context.Context, req models.ClusterStatusRequest) (*entities.ClusterStatusSnapshot, error) {
	snapshot := u.clusterSvc.IngestSnapshot(req.Printers)

	for i := range snapshot.Printers {
		printer := &snapshot.Printers[i]
		outputModel := u.clusterSvc.BuildOutputModel(printer)

		payload, err := json.Marshal(outputModel)
		if err != nil {
			u.logger.Error("Failed to serialize output model for Kafka", "printerUUID", printer.UUID, "error", err)
			continue
		}

		if err := u.producer.Produce(ctx, []byte(printer.UUID), payload); err != nil {
			u.logger.Error("Failed to send output model to Kafka", "printerUUID", printer.UUID, "error", err)
		}
	}

	return snapshot, nil
}

// GetPrinters возвращает выходные модели всех принтеров последнего снапшота.
func (u *Usecase) GetPrinters() []models.PrinterOutputModel {
	printers := u.clusterSvc.GetAllPrinters()

	outputModels := make([]models.PrinterOutputModel, 0, len(printers))
	for i := range printers {
		outputModels = append(outputModels, *u.clusterSvc.BuildOutputModel(&printers[i]))
	}
	return outputModels
}

// GetPrinter возвращает выходную модель одного принтера по UUID.
func (u *Usecase) GetPrinter(uuid string) (*models.PrinterOutputModel, error) {
	printer, found := u.clusterSvc.GetPrinter(uuid)
	if !found {
		return nil, errors.ErrDataNotFound
	}
	return u.clusterSvc.BuildOutputModel(printer), nil
}

// GetAvailableConfigurations возвращает доступные комбинации конфигураций
// одного принтера. Для принтера без станции материалов список пуст.
func (u *Usecase) GetAvailableConfigurations(uuid string) ([]models.PrinterConfigurationModel, error) {
	printer, found := u.clusterSvc.GetPrinter(uuid)
	if !found {
		return nil, errors.ErrDataNotFound
	}

	configurations := u.clusterSvc.ResolveAvailable(printer)
	if configurations == nil {
		configurations = []models.PrinterConfigurationModel{}
	}
	return configurations, nil
}
