package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/govindweb777/erp-sales-backend/internal/application/dto"
	"github.com/govindweb777/erp-sales-backend/internal/domain"
)

func respondErrStatus(t *testing.T, err error) (*http.Response, dto.ErrorResponse) {
	t.Helper()
	app := fiber.New()
	app.Get("/x", func(c *fiber.Ctx) error {
		return respondErr(c, err)
	})
	resp, reqErr := app.Test(httptest.NewRequest(http.MethodGet, "/x", nil), -1)
	require.NoError(t, reqErr)
	var body dto.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	_ = resp.Body.Close()
	return resp, body
}

func TestRespondErr_MapeoDeStatus(t *testing.T) {
	cases := []struct {
		err    error
		status int
		code   string
	}{
		{domain.ErrNotFound, http.StatusNotFound, "NOT_FOUND"},
		{domain.ErrUnauthorized, http.StatusUnauthorized, "UNAUTHORIZED"},
		{domain.ErrForbidden, http.StatusForbidden, "FORBIDDEN"},
		{domain.ErrImbalancedEntry, http.StatusBadRequest, "IMBALANCED_ENTRY"},
		{domain.ErrDuplicateDocumentNo, http.StatusBadRequest, "DUPLICATE_DOCUMENT_NO"},
		{domain.ErrInvalidInput, http.StatusBadRequest, "VALIDATION"},
		// Ítem no disponible es violación de regla de negocio, no conflicto
		// de escritura: 400, no 409.
		{domain.ErrItemUnavailable, http.StatusBadRequest, "ITEM_UNAVAILABLE"},
		{domain.ErrConcurrency, http.StatusConflict, "CONCURRENCY"},
	}
	for _, tc := range cases {
		resp, body := respondErrStatus(t, tc.err)
		assert.Equal(t, tc.status, resp.StatusCode, tc.code)
		assert.Equal(t, tc.code, body.Code)
		assert.False(t, body.Success)
	}
}

// Un error envuelto de infraestructura no filtra su texto al cliente.
func TestRespondErr_ErrorNoMapeadoNoFiltraDetalle(t *testing.T) {
	wrapped := fmt.Errorf("insert ledger document: pq: relation ledger_documents violates fk")
	resp, body := respondErrStatus(t, wrapped)

	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
	assert.Equal(t, "INTERNAL", body.Code)
	assert.Equal(t, "error interno del servidor", body.Message)
	assert.NotContains(t, body.Message, "ledger_documents")
}
