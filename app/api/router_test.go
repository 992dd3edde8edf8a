package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"PacsApp/app/config"
	"PacsApp/app/database"
	"PacsApp/app/printer"
	"PacsApp/app/services"
	"PacsApp/app/websocket"
)

type stubTransport struct {
	err error
}

func (s *stubTransport) Print(_ context.Context, _ []byte) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return "job-7", nil
}

func (s *stubTransport) Status(_ context.Context) printer.Status {
	return printer.Status{Ready: s.err == nil, Detail: "stub"}
}

func newTestRouter(t *testing.T, transport printer.Transport) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.Connect(config.DatabaseConfig{Driver: "sqlite", Path: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { database.Close(db) })

	log := logrus.New()
	log.SetOutput(io.Discard)

	loc := time.FixedZone("IST", int(5.5*3600))
	hub := websocket.NewHub(log)
	go hub.Run()

	farmers := services.NewFarmerService(db, hub, log)
	orders := services.NewOrderService(db, hub, log, 5, loc)
	receipts := services.NewReceiptService(orders, transport, log, "PACS-AIZA", loc)
	reports := services.NewReportService(db, transport, log, "PACS-AIZA", loc)

	server := NewServer(farmers, orders, receipts, reports, hub, log, loc)
	cfg := &config.Config{
		App:  config.AppConfig{Env: "development", Port: "0"},
		HTTP: config.HTTPConfig{RateLimitRPS: 1000, CORSOrigins: []string{"*"}},
	}
	return server.Router(cfg)
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func registerTestFarmer(t *testing.T, router *gin.Engine) {
	t.Helper()
	w := doJSON(t, router, http.MethodPost, "/api/farmer", gin.H{
		"aadhaar": "123456789012",
		"name":    "Ramesh Kumar",
		"village": "Aiza",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
}

func createTestOrder(t *testing.T, router *gin.Engine) uint {
	t.Helper()
	w := doJSON(t, router, http.MethodPost, "/api/order", gin.H{"aadhaar": "123456789012"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp struct {
		Data struct {
			ID uint `json:"id"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.Data.ID
}

func TestFarmerLifecycle(t *testing.T) {
	router := newTestRouter(t, &stubTransport{})
	registerTestFarmer(t, router)

	// Duplicate registration conflicts.
	w := doJSON(t, router, http.MethodPost, "/api/farmer", gin.H{
		"aadhaar": "123456789012", "name": "X", "village": "Y",
	})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/farmer/123456789012", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Ramesh Kumar")

	w = doJSON(t, router, http.MethodGet, "/api/farmer/999999999999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/farmer/12ab", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/farmers", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestOrderLifecycle(t *testing.T) {
	router := newTestRouter(t, &stubTransport{})
	registerTestFarmer(t, router)
	id := createTestOrder(t, router)

	w := doJSON(t, router, http.MethodGet, "/api/orders/"+itoa(id), nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "536")

	w = doJSON(t, router, http.MethodGet, "/api/orders", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/orders?date=bogus", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, router, http.MethodGet, "/api/farmer/123456789012/orders", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestOrderQuotaConflict(t *testing.T) {
	router := newTestRouter(t, &stubTransport{})
	registerTestFarmer(t, router)

	// Quota is 5 bags; two default orders of 2 fit, a third does not.
	createTestOrder(t, router)
	createTestOrder(t, router)

	w := doJSON(t, router, http.MethodPost, "/api/order", gin.H{"aadhaar": "123456789012"})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "quota")
}

func TestPrintAndPreviewEndpoints(t *testing.T) {
	router := newTestRouter(t, &stubTransport{})
	registerTestFarmer(t, router)
	id := createTestOrder(t, router)

	w := doJSON(t, router, http.MethodPost, "/api/orders/"+itoa(id)+"/print", gin.H{"style": "decorative"})
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "job-7")

	w = doJSON(t, router, http.MethodGet, "/api/orders/"+itoa(id)+"/preview?style=decorative", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Token No: "+itoa(id))
	assert.Contains(t, w.Body.String(), "Ramesh Kumar")

	w = doJSON(t, router, http.MethodPost, "/api/orders/9999/print", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPrinterFailureMapsToServiceUnavailable(t *testing.T) {
	router := newTestRouter(t, &stubTransport{err: printer.ErrDeviceUnavailable})
	registerTestFarmer(t, router)
	id := createTestOrder(t, router)

	w := doJSON(t, router, http.MethodPost, "/api/orders/"+itoa(id)+"/print", nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	// Preview still works while the printer is down.
	w = doJSON(t, router, http.MethodGet, "/api/orders/"+itoa(id)+"/preview", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestPrinterEndpoints(t *testing.T) {
	router := newTestRouter(t, &stubTransport{})

	w := doJSON(t, router, http.MethodGet, "/api/printer/status", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"ready":true`)

	w = doJSON(t, router, http.MethodGet, "/api/printer/styles", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "decorative")

	w = doJSON(t, router, http.MethodPost, "/api/printer/test", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestReportEndpoints(t *testing.T) {
	router := newTestRouter(t, &stubTransport{})
	registerTestFarmer(t, router)
	createTestOrder(t, router)

	w := doJSON(t, router, http.MethodGet, "/api/reports/daily", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "total_orders")

	w = doJSON(t, router, http.MethodPost, "/api/reports/daily/print", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHealthEndpoint(t *testing.T) {
	router := newTestRouter(t, &stubTransport{})

	w := doJSON(t, router, http.MethodGet, "/api/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}

func itoa(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}
