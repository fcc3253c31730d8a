package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/iwtcode/clusterAdapter/internal/config"
	"github.com/iwtcode/clusterAdapter/internal/domain/models"
	"github.com/iwtcode/clusterAdapter/internal/middleware/logging"
	"github.com/iwtcode/clusterAdapter/internal/middleware/swagger"
	"github.com/iwtcode/clusterAdapter/internal/services/cluster_service"
	"github.com/iwtcode/clusterAdapter/internal/usecases"
	"github.com/stretchr/testify/require"
)

type nopProducer struct{}

func (nopProducer) Produce(_ context.Context, _, _ []byte) error { return nil }
func (nopProducer) Close() error                                 { return nil }

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	cfg := &config.AppConfig{
		GinMode:          "test",
		CameraStreamPort: 8080,
	}
	logger := logging.NewLogger(&logging.Config{Enabled: false}, "test")

	clusterSvc := cluster_service.NewClusterService(cfg, logger)
	usecase := usecases.NewUsecases(clusterSvc, nopProducer{}, logger)
	handler := NewHandler(usecase, logger)

	return ProvideRouter(handler, cfg, &swagger.Config{Enabled: false})
}

func doRequest(t *testing.T, router http.Handler, method, path string, body []byte) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

const clusterStatusPayload = `{
  "printers": [
    {
      "enabled": true,
      "firmware_version": "5.8.2",
      "friendly_name": "Master-Luke",
      "ip_address": "192.168.1.10",
      "machine_variant": "Ultimaker S5",
      "status": "printing",
      "unique_name": "ultimakersystem-ccbdd3004410",
      "uuid": "b9b17611-d25c-4b44-9b61-1a06e6b76afb",
      "configuration": [
        {"extruder_index": 0, "print_core_id": "AA 0.4", "material": {"guid": "g1", "material": "PLA", "brand": "Generic", "color": "Blue"}},
        {"extruder_index": 1, "print_core_id": "BB 0.4", "material": {"guid": "g2", "material": "PVA", "brand": "Generic", "color": "Natural"}}
      ],
      "build_plate": {"type": "glass"},
      "material_station": {
        "material_slots": [
          {"extruder_index": 0, "slot_index": 0, "print_core_id": "AA 0.4", "compatible": true, "material_remaining": 0.75, "material": {"guid": "g1", "material": "PLA", "brand": "Generic", "color": "Blue"}},
          {"extruder_index": 1, "slot_index": 1, "print_core_id": "BB 0.4", "compatible": true, "material_remaining": 0.4, "material": {"guid": "g2", "material": "PVA", "brand": "Generic", "color": "Natural"}}
        ]
      }
    },
    {
      "enabled": false,
      "firmware_version": "5.2.8",
      "friendly_name": "Frame-2",
      "ip_address": "192.168.1.11",
      "machine_variant": "Ultimaker 3",
      "status": "printing",
      "unique_name": "ultimakersystem-aabbcc004411",
      "uuid": "0e7a2571-9ef9-43b1-8500-e042b2d99d4b",
      "configuration": [
        {"extruder_index": 0, "print_core_id": "AA 0.4", "material": {"guid": "g3", "material": "ABS", "brand": "Generic", "color": "Red"}},
        {"extruder_index": 1, "print_core_id": "AA 0.4", "material": null}
      ]
    }
  ]
}`

func TestIngestStatusEndpoint(t *testing.T) {
	router := newTestRouter(t)

	recorder := doRequest(t, router, http.MethodPost, "/api/v1/cluster/status", []byte(clusterStatusPayload))
	require.Equal(t, http.StatusOK, recorder.Code)

	var response models.IngestResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	require.Equal(t, "ok", response.Status)
	require.NotEmpty(t, response.SnapshotID)
	require.Equal(t, 2, response.PrinterCount)
}

func TestIngestStatusRejectsMalformedPayload(t *testing.T) {
	router := newTestRouter(t)

	recorder := doRequest(t, router, http.MethodPost, "/api/v1/cluster/status", []byte(`{"printers": "not-a-list"}`))
	require.Equal(t, http.StatusBadRequest, recorder.Code)

	recorder = doRequest(t, router, http.MethodPost, "/api/v1/cluster/status", []byte(`{}`))
	require.Equal(t, http.StatusBadRequest, recorder.Code, "Payload без поля printers должен отклоняться на границе")
}

func TestGetPrintersEndpoint(t *testing.T) {
	router := newTestRouter(t)
	doRequest(t, router, http.MethodPost, "/api/v1/cluster/status", []byte(clusterStatusPayload))

	recorder := doRequest(t, router, http.MethodGet, "/api/v1/printers", nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	var response models.GetPrintersResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	require.Equal(t, 2, response.Count)
	require.Len(t, response.Printers, 2)

	// Стабильный порядок по UUID.
	require.Equal(t, "0e7a2571-9ef9-43b1-8500-e042b2d99d4b", response.Printers[0].Key)
	require.Equal(t, "b9b17611-d25c-4b44-9b61-1a06e6b76afb", response.Printers[1].Key)

	// Выключенный принтер показывает disabled даже во время печати.
	require.Equal(t, "disabled", response.Printers[0].State)
	require.Equal(t, "printing", response.Printers[1].State)
}

func TestGetPrinterEndpoint(t *testing.T) {
	router := newTestRouter(t)
	doRequest(t, router, http.MethodPost, "/api/v1/cluster/status", []byte(clusterStatusPayload))

	recorder := doRequest(t, router, http.MethodGet, "/api/v1/printers/b9b17611-d25c-4b44-9b61-1a06e6b76afb", nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	var response models.GetPrinterResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	require.Equal(t, "Master-Luke", response.Printer.Name)
	require.Equal(t, "http://192.168.1.10:8080/?action=stream", response.Printer.CameraURL)
	require.Len(t, response.Printer.Extruders, 2)
	require.Len(t, response.Printer.AvailableConfigurations, 1)
}

func TestGetPrinterNotFound(t *testing.T) {
	router := newTestRouter(t)
	doRequest(t, router, http.MethodPost, "/api/v1/cluster/status", []byte(clusterStatusPayload))

	recorder := doRequest(t, router, http.MethodGet, "/api/v1/printers/unknown-uuid", nil)
	require.Equal(t, http.StatusNotFound, recorder.Code)
}

func TestGetConfigurationsEndpoint(t *testing.T) {
	router := newTestRouter(t)
	doRequest(t, router, http.MethodPost, "/api/v1/cluster/status", []byte(clusterStatusPayload))

	recorder := doRequest(t, router, http.MethodGet, "/api/v1/printers/b9b17611-d25c-4b44-9b61-1a06e6b76afb/configurations", nil)
	require.Equal(t, http.StatusOK, recorder.Code)

	var response models.GetConfigurationsResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	require.Equal(t, 1, response.Count)
	require.Len(t, response.Configurations, 1)

	// Принтер без станции материалов: пустой список, не 404.
	recorder = doRequest(t, router, http.MethodGet, "/api/v1/printers/0e7a2571-9ef9-43b1-8500-e042b2d99d4b/configurations", nil)
	require.Equal(t, http.StatusOK, recorder.Code)
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	require.Equal(t, 0, response.Count)
	require.Empty(t, response.Configurations)
}
