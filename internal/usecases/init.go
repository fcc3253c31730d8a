package usecases

import (
	"github.com/iwtcode/clusterAdapter/internal/interfaces"
	"github.com/iwtcode/clusterAdapter/internal/middleware/logging"
)

// UseCases - агрегатор всех use case интерфейсов
type UseCases struct {
	interfaces.Usecases
}

// NewUsecases - конструктор для UseCases
func NewUsecases(
	clusterSvc interfaces.ClusterService,
	producer interfaces.KafkaService,
	logger *logging.Logger,
) interfaces.Usecases {
	return NewUsecase(clusterSvc, producer, logger)
}
