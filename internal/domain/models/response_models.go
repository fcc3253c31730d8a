package models

// ErrorResponse представляет стандартный ответ с ошибкой.
type ErrorResponse struct {
	Status string `json:"status" example:"error"`
	Error  struct {
		Code    int    `json:"code" example:"404"`
		Message string `json:"message" example:"Принтер не найден"`
	} `json:"error"`
}

// MessageResponse представляет стандартный успешный ответ с сообщением.
type MessageResponse struct {
	Status  string `json:"status" example:"ok"`
	Message string `json:"message" example:"Snapshot accepted"`
}

// IngestResponse представляет ответ при успешном приеме снапшота.
type IngestResponse struct {
	Status       string `json:"status" example:"ok"`
	SnapshotID   string `json:"snapshot_id" example:"7a9f1b2c-0d34-4e8f-9a1b-2c3d4e5f6a7b"`
	PrinterCount int    `json:"printer_count" example:"2"`
}

// GetPrintersResponse представляет ответ со списком моделей всех принтеров.
type GetPrintersResponse struct {
	Status   string               `json:"status" example:"ok"`
	Count    int                  `json:"count" example:"2"`
	Printers []PrinterOutputModel `json:"printers"`
}

// GetPrinterResponse представляет ответ с моделью одного принтера.
type GetPrinterResponse struct {
	Status  string              `json:"status" example:"ok"`
	Printer *PrinterOutputModel `json:"printer"`
}

// GetConfigurationsResponse представляет ответ со списком доступных
// комбинаций конфигураций одного принтера.
type GetConfigurationsResponse struct {
	Status         string                      `json:"status" example:"ok"`
	Count          int                         `json:"count" example:"4"`
	Configurations []PrinterConfigurationModel `json:"configurations"`
}
