package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"flight-fare-ledger/internal/handler"
	"flight-fare-ledger/internal/service/mocks"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

var (
	InvalidJSON = `{"invalid": json}`
)

type testServices struct {
	inventory *mocks.MockInventoryService
	ledger    *mocks.MockLedgerService
	booking   *mocks.MockBookingService
}

func setupTestRouter(t *testing.T) (*gin.Engine, testServices) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	s := testServices{
		inventory: mocks.NewMockInventoryService(t),
		ledger:    mocks.NewMockLedgerService(t),
		booking:   mocks.NewMockBookingService(t),
	}
	router := handler.NewRouter(nil,
		handler.NewInventoryHandler(s.inventory, s.ledger),
		handler.NewFareHandler(s.ledger),
		handler.NewBookingHandler(s.booking),
	)
	return router, s
}

// create JSON request body
func createJSONRequest(data interface{}) *bytes.Buffer {
	jsonData, err := json.Marshal(data)
	if err != nil {
		return bytes.NewBuffer([]byte(""))
	}
	return bytes.NewBuffer(jsonData)
}

// create HTTP request with JSON body
func createJSONHTTPRequest(method, url string, data interface{}) *http.Request {
	req, err := http.NewRequest(method, url, createJSONRequest(data))
	if err != nil {
		return nil
	}
	req.Header.Set("Content-Type", "application/json")
	return req
}

func serve(router *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}
