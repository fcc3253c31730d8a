package cluster_service

import (
	"fmt"
	"net"
	"strconv"

	"github.com/iwtcode/clusterAdapter/internal/domain/entities"
	"github.com/iwtcode/clusterAdapter/internal/domain/models"
)

// Индексы экструдеров двухэкструдерного принтера.
const (
	leftExtruderIndex  = 0
	rightExtruderIndex = 1
)

// defaultBuildplate используется, когда payload не сообщает рабочую пластину.
const defaultBuildplate = "glass"

type configurationResolver struct {
	cameraStreamPort int
}

// NewConfigurationResolver создает резолвер конфигураций. Резолвер чистый:
// не делает I/O и не пишет логи, все аномалии деградируют до фильтрации.
// Порт видеопотока камеры задается конфигурацией приложения.
func NewConfigurationResolver(cameraStreamPort int) *configurationResolver {
	return &configurationResolver{cameraStreamPort: cameraStreamPort}
}

// ResolveActive сопоставляет активные конфигурации ядер с экструдерами.
// Сопоставление идет строго по позиции в списке, а не по полю
// extruder_index самой конфигурации: так делает и прошивка кластера.
// Лишние элементы списка игнорируются, недостающие позиции остаются
// незаполненными. Ошибок не бывает.
func (r *configurationResolver) ResolveActive(printer *entities.ClusterPrinterStatus) []models.ExtruderOutputModel {
	if printer.Configuration == nil {
		return nil
	}

	count := printer.ExtruderCount()
	if len(printer.Configuration) < count {
		count = len(printer.Configuration)
	}

	active := make([]models.ExtruderOutputModel, 0, count)
	for position := 0; position < count; position++ {
		configuration := printer.Configuration[position]
		active = append(active, models.ExtruderOutputModel{
			Position:    position,
			PrintCoreID: configuration.PrintCoreID,
			Material:    configuration.Material,
		})
	}
	return active
}

// ResolveAvailable вычисляет все собираемые комбинации конфигураций из
// слотов станции материалов. Без станции (или с пустой станцией)
// возвращается nil: обновление доступных комбинаций не отправляется.
// Пустое произведение поддерживаемых групп — это пустой список, не nil.
func (r *configurationResolver) ResolveAvailable(printer *entities.ClusterPrinterStatus) []models.PrinterConfigurationModel {
	station := printer.MaterialStation
	if !station.HasSlots() {
		return nil
	}

	var leftSlots, rightSlots []entities.MaterialStationSlot
	for _, slot := range station.MaterialSlots {
		// Слоты с другими индексами не попадают ни в одну группу.
		switch {
		case isSupportedSlot(slot, leftExtruderIndex):
			leftSlots = append(leftSlots, slot)
		case isSupportedSlot(slot, rightExtruderIndex):
			rightSlots = append(rightSlots, slot)
		}
	}

	buildplate := buildplateType(printer)
	available := make([]models.PrinterConfigurationModel, 0, len(leftSlots)*len(rightSlots))
	for _, left := range leftSlots {
		for _, right := range rightSlots {
			available = append(available, models.PrinterConfigurationModel{
				PrinterType:            printer.MachineVariant,
				Buildplate:             buildplate,
				ExtruderConfigurations: []models.ExtruderConfigurationModel{
					slotConfiguration(left),
					slotConfiguration(right),
				},
			})
		}
	}
	return available
}

// BuildOutputModel проецирует снапшот одного принтера на UI-модель.
// Проекция чистая: один и тот же снапшот всегда дает одинаковую модель.
func (r *configurationResolver) BuildOutputModel(printer *entities.ClusterPrinterStatus) *models.PrinterOutputModel {
	state := printer.Status
	if !printer.Enabled {
		state = entities.PrinterStatusDisabled
	}

	model := &models.PrinterOutputModel{
		Key:             printer.UUID,
		Name:            printer.FriendlyName,
		Type:            printer.MachineVariant,
		State:           state,
		Buildplate:      buildplateType(printer),
		CameraURL:       r.cameraStreamURL(printer.IPAddress),
		FirmwareVersion: printer.FirmwareVersion,
	}

	if printer.MaterialStation.HasSlots() {
		model.AvailableConfigurations = r.ResolveAvailable(printer)
	}
	if printer.Configuration != nil {
		model.Extruders = r.ResolveActive(printer)
	}
	return model
}

func (r *configurationResolver) cameraStreamURL(ip string) string {
	host := net.JoinHostPort(ip, strconv.Itoa(r.cameraStreamPort))
	return fmt.Sprintf("http://%s/?action=stream", host)
}

// isSupportedSlot проверяет, можно ли предлагать слот для данного
// экструдера: индекс совпадает, слот совместим, материал есть и не кончился.
func isSupportedSlot(slot entities.MaterialStationSlot, extruderIndex int) bool {
	return slot.ExtruderIndex == extruderIndex &&
		slot.Compatible &&
		!slot.Material.IsEmpty() &&
		slot.MaterialRemaining != 0
}

func slotConfiguration(slot entities.MaterialStationSlot) models.ExtruderConfigurationModel {
	return models.ExtruderConfigurationModel{
		Position:    slot.ExtruderIndex,
		PrintCoreID: slot.PrintCoreID,
		Material:    slot.Material,
	}
}

func buildplateType(printer *entities.ClusterPrinterStatus) string {
	if printer.BuildPlate == nil || printer.BuildPlate.Type == "" {
		return defaultBuildplate
	}
	return printer.BuildPlate.Type
}
