package entities

import "time"

// Состояния принтера, которые кластер сообщает в поле status.
const (
	PrinterStatusIdle     = "idle"
	PrinterStatusPrinting = "printing"
	PrinterStatusDisabled = "disabled"
)

// Material описывает идентичность материала в конфигурации или слоте.
type Material struct {
	GUID         string `json:"guid"`
	MaterialType string `json:"material"`
	Brand        string `json:"brand"`
	Color        string `json:"color"`
}

// IsEmpty сообщает, что материал отсутствует (пустой слот или пустое ядро).
func (m *Material) IsEmpty() bool {
	return m == nil || (m.GUID == "" && m.MaterialType == "")
}

// PrintCoreConfiguration описывает активную конфигурацию одного экструдера.
type PrintCoreConfiguration struct {
	ExtruderIndex int       `json:"extruder_index"`
	PrintCoreID   string    `json:"print_core_id"`
	Material      *Material `json:"material,omitempty"`
}

// MaterialStationSlot описывает один слот станции материалов.
// material_remaining — доля оставшейся катушки; 0 означает пустой слот,
// -1 означает неизвестный остаток (неизвестный считается непустым).
type MaterialStationSlot struct {
	PrintCoreConfiguration
	SlotIndex         int     `json:"slot_index"`
	Compatible        bool    `json:"compatible"`
	MaterialRemaining float64 `json:"material_remaining"`
}

// MaterialStation описывает станцию материалов принтера.
type MaterialStation struct {
	Status        string                `json:"status,omitempty"`
	MaterialSlots []MaterialStationSlot `json:"material_slots"`
}

// HasSlots сообщает, есть ли у станции хотя бы один слот.
func (s *MaterialStation) HasSlots() bool {
	return s != nil && len(s.MaterialSlots) > 0
}

// BuildPlate описывает рабочую пластину принтера.
type BuildPlate struct {
	Type string `json:"type"`
}

// ClusterPrinterStatus описывает состояние одного принтера в кластере.
// Сущность неизменяема после разбора payload: новый снапшот порождает
// полностью новый набор сущностей.
type ClusterPrinterStatus struct {
	Enabled                 bool                     `json:"enabled"`
	FirmwareVersion         string                   `json:"firmware_version"`
	FriendlyName            string                   `json:"friendly_name"`
	IPAddress               string                   `json:"ip_address"`
	MachineVariant          string                   `json:"machine_variant"`
	Status                  string                   `json:"status"`
	UniqueName              string                   `json:"unique_name"`
	UUID                    string                   `json:"uuid" binding:"required"`
	Configuration           []PrintCoreConfiguration `json:"configuration"`
	ReservedBy              string                   `json:"reserved_by,omitempty"`
	MaintenanceRequired     *bool                    `json:"maintenance_required,omitempty"`
	FirmwareUpdateStatus    string                   `json:"firmware_update_status,omitempty"`
	LatestAvailableFirmware string                   `json:"latest_available_firmware,omitempty"`
	BuildPlate              *BuildPlate              `json:"build_plate,omitempty"`
	MaterialStation         *MaterialStation         `json:"material_station,omitempty"`
	MachineExtruderCount    int                      `json:"machine_extruder_count,omitempty"`
}

// ExtruderCount возвращает число физических экструдеров принтера.
// Если payload не сообщает machine_extruder_count, число берется из длины
// списка конфигураций.
func (p *ClusterPrinterStatus) ExtruderCount() int {
	if p.MachineExtruderCount > 0 {
		return p.MachineExtruderCount
	}
	return len(p.Configuration)
}

// ClusterStatusSnapshot агрегирует состояние всех принтеров кластера,
// принятое за один запрос.
type ClusterStatusSnapshot struct {
	SnapshotID string                 `json:"snapshot_id"`
	ReceivedAt time.Time              `json:"received_at"`
	Printers   []ClusterPrinterStatus `json:"printers"`
}
