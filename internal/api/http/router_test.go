package http

import (
	"encoding/json"
	"io"
	nethttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/grupo-salus/careflow-desk/internal/api/http/handlers"
	"github.com/grupo-salus/careflow-desk/internal/config"
	"github.com/grupo-salus/careflow-desk/internal/events"
	"github.com/grupo-salus/careflow-desk/internal/observability"
	"github.com/grupo-salus/careflow-desk/internal/service"
	"github.com/grupo-salus/careflow-desk/internal/store"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	tickets, err := store.LoadTickets("")
	require.NoError(t, err)
	reasons, err := store.LoadReasons("")
	require.NoError(t, err)

	ticketStore := store.NewTicketStore(tickets)
	reasonCatalog := store.NewReasonCatalog(reasons)
	dispatcher := events.NewInMemoryDispatcher()

	ticketService := service.NewTicketService(service.Dependencies{
		Store:      ticketStore,
		Reasons:    reasonCatalog,
		Dispatcher: dispatcher,
	})
	notificationService := service.NewNotificationService(dispatcher, zap.NewNop(), config.NotificationConfig{ToastTTLSeconds: 60})
	notificationService.RegisterHandlers()
	t.Cleanup(notificationService.Center().Stop)

	app := fiber.New()
	RegisterMiddlewares(app, zap.NewNop(), observability.NewMetrics(), 5*time.Second)
	RegisterRoutes(app, RouteConfig{
		Health:        handlers.NewHealthHandler("careflow-desk", "test", ticketStore, reasonCatalog),
		Tickets:       handlers.NewTicketsHandler(ticketService, 10),
		Reasons:       handlers.NewReasonsHandler(ticketService),
		Notifications: handlers.NewNotificationsHandler(notificationService.Center()),
	})
	return app
}

func jsonRequest(method, target, body string) *nethttp.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decodeBody(t *testing.T, res *nethttp.Response) map[string]any {
	t.Helper()
	defer res.Body.Close()
	raw, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	var body map[string]any
	require.NoError(t, json.Unmarshal(raw, &body))
	return body
}

func TestHealthEndpoints(t *testing.T) {
	app := newTestApp(t)

	res, err := app.Test(httptest.NewRequest(nethttp.MethodGet, "/health/live", nil))
	require.NoError(t, err)
	assert.Equal(t, nethttp.StatusOK, res.StatusCode)
	assert.Equal(t, "alive", decodeBody(t, res)["status"])

	res, err = app.Test(httptest.NewRequest(nethttp.MethodGet, "/health/ready", nil))
	require.NoError(t, err)
	assert.Equal(t, nethttp.StatusOK, res.StatusCode)
}

func TestListTickets(t *testing.T) {
	app := newTestApp(t)

	res, err := app.Test(httptest.NewRequest(nethttp.MethodGet, "/tickets?category=critico", nil))
	require.NoError(t, err)
	assert.Equal(t, nethttp.StatusOK, res.StatusCode)

	body := decodeBody(t, res)
	data, ok := body["data"].([]any)
	require.True(t, ok)
	require.NotEmpty(t, data)
	for _, item := range data {
		ticket := item.(map[string]any)
		assert.Equal(t, "critico", ticket["priority"])
		sla, ok := ticket["sla"].(map[string]any)
		require.True(t, ok)
		assert.NotEmpty(t, sla["label"])
	}
	meta, ok := body["meta"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(1), meta["page"])
}

func TestCreateTicketFlow(t *testing.T) {
	app := newTestApp(t)

	payload := `{"reason_id":"sistema-indisponivel","title":"Sistema caiu","description":"Nada carrega desde cedo."}`
	res, err := app.Test(jsonRequest(nethttp.MethodPost, "/tickets", payload))
	require.NoError(t, err)
	assert.Equal(t, nethttp.StatusCreated, res.StatusCode)

	data := decodeBody(t, res)["data"].(map[string]any)
	createdID := data["id"].(string)
	assert.Equal(t, "novo", data["status"])

	// The new ticket is first in the default listing.
	res, err = app.Test(httptest.NewRequest(nethttp.MethodGet, "/tickets", nil))
	require.NoError(t, err)
	list := decodeBody(t, res)["data"].([]any)
	require.NotEmpty(t, list)
	assert.Equal(t, createdID, list[0].(map[string]any)["id"])

	// And a toast is visible.
	res, err = app.Test(httptest.NewRequest(nethttp.MethodGet, "/notifications/current", nil))
	require.NoError(t, err)
	toast, ok := decodeBody(t, res)["data"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Chamado criado com sucesso!", toast["message"])
}

func TestCreateCriticalTicketValidation(t *testing.T) {
	app := newTestApp(t)

	res, err := app.Test(jsonRequest(nethttp.MethodPost, "/tickets/critical", `{"title":"Sistema fora","description":"Tudo parado."}`))
	require.NoError(t, err)
	assert.Equal(t, nethttp.StatusBadRequest, res.StatusCode)

	errBody := decodeBody(t, res)["error"].(map[string]any)
	assert.Equal(t, "VALIDATION_FAILED", errBody["code"])

	res, err = app.Test(jsonRequest(nethttp.MethodPost, "/tickets/critical", `{"title":"Sistema fora","description":"Tudo parado.","acknowledged":true}`))
	require.NoError(t, err)
	assert.Equal(t, nethttp.StatusCreated, res.StatusCode)

	data := decodeBody(t, res)["data"].(map[string]any)
	assert.Equal(t, "critico", data["priority"])
	assert.Equal(t, "Crítico", data["category"])
}

func TestGetTicketNotFound(t *testing.T) {
	app := newTestApp(t)

	res, err := app.Test(httptest.NewRequest(nethttp.MethodGet, "/tickets/CH-999", nil))
	require.NoError(t, err)
	assert.Equal(t, nethttp.StatusNotFound, res.StatusCode)

	errBody := decodeBody(t, res)["error"].(map[string]any)
	assert.Equal(t, "NOT_FOUND", errBody["code"])
}

func TestAddMessageEndpoint(t *testing.T) {
	app := newTestApp(t)

	res, err := app.Test(jsonRequest(nethttp.MethodPost, "/tickets/CH-002/messages", `{"body":"Já estamos verificando."}`))
	require.NoError(t, err)
	assert.Equal(t, nethttp.StatusCreated, res.StatusCode)

	data := decodeBody(t, res)["data"].(map[string]any)
	assert.Equal(t, "usuario", data["kind"])
	assert.Equal(t, "Já estamos verificando.", data["text"])

	res, err = app.Test(jsonRequest(nethttp.MethodPost, "/tickets/CH-002/messages", `{"body":"   "}`))
	require.NoError(t, err)
	assert.Equal(t, nethttp.StatusBadRequest, res.StatusCode)
}

func TestListReasons(t *testing.T) {
	app := newTestApp(t)

	res, err := app.Test(httptest.NewRequest(nethttp.MethodGet, "/reasons?search=sistema", nil))
	require.NoError(t, err)
	assert.Equal(t, nethttp.StatusOK, res.StatusCode)

	data := decodeBody(t, res)["data"].([]any)
	require.NotEmpty(t, data)

	res, err = app.Test(httptest.NewRequest(nethttp.MethodGet, "/reasons?search=semresultado", nil))
	require.NoError(t, err)
	assert.Equal(t, nethttp.StatusOK, res.StatusCode)
	assert.Empty(t, decodeBody(t, res)["data"])
}
