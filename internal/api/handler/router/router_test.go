package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/gas-station-dashboard/pkg/apiErrors"
)

func TestRouter_ErrorResponses(t *testing.T) {
	rt := New(WithRoutes(
		Route{
			Path:   "/ok",
			Method: http.MethodGet,
			Handler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNoContent)
			}),
		},
		Route{
			Path:   "/panic",
			Method: http.MethodGet,
			Handler: http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				panic("falhou")
			}),
		},
	))

	tests := []struct {
		name       string
		method     string
		target     string
		wantStatus int
		wantCode   string
	}{
		{name: "rota registrada", method: http.MethodGet, target: "/ok", wantStatus: http.StatusNoContent},
		{name: "rota desconhecida", method: http.MethodGet, target: "/nada", wantStatus: http.StatusNotFound, wantCode: apiErrors.ErrNotFound},
		{name: "método não suportado", method: http.MethodDelete, target: "/ok", wantStatus: http.StatusMethodNotAllowed, wantCode: apiErrors.ErrMethodNotAllowed},
		{name: "panic no handler", method: http.MethodGet, target: "/panic", wantStatus: http.StatusInternalServerError, wantCode: apiErrors.ErrInternalServer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			rt.ServeHTTP(rec, httptest.NewRequest(tt.method, tt.target, nil))

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantCode == "" {
				return
			}

			var body apiErrors.APIError
			require.NoError(t, jsoniter.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantCode, body.Code)
		})
	}
}
