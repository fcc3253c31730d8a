package entities

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMaterialIsEmpty(t *testing.T) {
	var nilMaterial *Material
	require.True(t, nilMaterial.IsEmpty())
	require.True(t, (&Material{}).IsEmpty())
	require.True(t, (&Material{Brand: "Generic", Color: "Blue"}).IsEmpty(), "Бренд и цвет без идентичности — пустой материал")
	require.False(t, (&Material{GUID: "g1"}).IsEmpty())
	require.False(t, (&Material{MaterialType: "PLA"}).IsEmpty())
}

func TestExtruderCountFallsBackToConfiguration(t *testing.T) {
	printer := ClusterPrinterStatus{
		Configuration: []PrintCoreConfiguration{{}, {}},
	}
	require.Equal(t, 2, printer.ExtruderCount())

	printer.MachineExtruderCount = 1
	require.Equal(t, 1, printer.ExtruderCount())
}

func TestMaterialStationHasSlots(t *testing.T) {
	var station *MaterialStation
	require.False(t, station.HasSlots())
	require.False(t, (&MaterialStation{}).HasSlots())
	require.True(t, (&MaterialStation{MaterialSlots: []MaterialStationSlot{{}}}).HasSlots())
}

// Поля слота из payload включают и унаследованные поля конфигурации:
// встраивание не должно менять плоскую wire-форму.
func TestMaterialStationSlotFlatWireShape(t *testing.T) {
	payload := `{
		"extruder_index": 1,
		"print_core_id": "BB 0.4",
		"slot_index": 3,
		"compatible": true,
		"material_remaining": 0.25,
		"material": {"guid": "g2", "material": "PVA", "brand": "Generic", "color": "Natural"}
	}`

	var slot MaterialStationSlot
	require.NoError(t, json.Unmarshal([]byte(payload), &slot))
	require.Equal(t, 1, slot.ExtruderIndex)
	require.Equal(t, "BB 0.4", slot.PrintCoreID)
	require.Equal(t, 3, slot.SlotIndex)
	require.True(t, slot.Compatible)
	require.Equal(t, 0.25, slot.MaterialRemaining)
	require.Equal(t, "g2", slot.Material.GUID)
}
