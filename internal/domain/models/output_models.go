package models

import "github.com/iwtcode/clusterAdapter/internal/domain/entities"

// ExtruderOutputModel представляет отображаемое состояние одного экструдера.
type ExtruderOutputModel struct {
	Position    int                `json:"position"`
	PrintCoreID string             `json:"print_core_id"`
	Material    *entities.Material `json:"material,omitempty"`
}

// ExtruderConfigurationModel представляет выбор слота/ядра для одной
// стороны в собираемой комбинации.
type ExtruderConfigurationModel struct {
	Position    int                `json:"position"`
	PrintCoreID string             `json:"print_core_id"`
	Material    *entities.Material `json:"material,omitempty"`
}

// PrinterConfigurationModel представляет одну собираемую комбинацию
// конфигураций (левый и правый экструдер). Производное значение, никогда
// не сохраняется.
type PrinterConfigurationModel struct {
	PrinterType            string                       `json:"printer_type"`
	Buildplate             string                       `json:"buildplate"`
	ExtruderConfigurations []ExtruderConfigurationModel `json:"extruder_configurations"`
}

// PrinterOutputModel представляет UI-модель принтера: чистая проекция
// снапшота, без побочных эффектов.
type PrinterOutputModel struct {
	Key                     string                      `json:"key"`
	Name                    string                      `json:"name"`
	Type                    string                      `json:"type"`
	State                   string                      `json:"state"`
	Buildplate              string                      `json:"buildplate"`
	CameraURL               string                      `json:"camera_url"`
	FirmwareVersion         string                      `json:"firmware_version"`
	Extruders               []ExtruderOutputModel       `json:"extruders"`
	AvailableConfigurations []PrinterConfigurationModel `json:"available_configurations,omitempty"`
}
