package models

import "github.com/iwtcode/clusterAdapter/internal/domain/entities"

// ClusterStatusRequest определяет структуру запроса на прием снапшота
// состояния кластера. Валидация обязательных полей выполняется на границе
// HTTP через binding-теги; дальше снапшот считается структурно корректным.
type ClusterStatusRequest struct {
	Printers []entities.ClusterPrinterStatus `json:"printers" binding:"required,dive"`
}
