package middlewares_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Feghellere/memoreasy/internal/middlewares"
)

func TestCorsMiddleware(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
	handler := middlewares.CorsMiddleware(next)

	t.Run("PreflightRespondeSemEncaminhar", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/gerar-quiz", nil)
		req.Header.Set("Origin", "https://app.exemplo.com")
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		if rr.Code != http.StatusOK {
			t.Fatalf("Status incorreto para preflight. Esperado: 200, Recebido: %d", rr.Code)
		}
		if rr.Body.Len() != 0 {
			t.Errorf("Preflight deveria ter corpo vazio, recebido: %q", rr.Body.String())
		}
	})

	t.Run("CabecalhosPermissivos", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/gerar-quiz", nil)
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		if got := rr.Header().Get("Access-Control-Allow-Origin"); got != "*" {
			t.Errorf("Allow-Origin incorreto. Esperado: *, Recebido: %q", got)
		}
		wantHeaders := "authorization, x-client-info, apikey, content-type"
		if got := rr.Header().Get("Access-Control-Allow-Headers"); got != wantHeaders {
			t.Errorf("Allow-Headers incorreto. Esperado: %q, Recebido: %q", wantHeaders, got)
		}
		if got := rr.Header().Get("Access-Control-Allow-Methods"); got == "" {
			t.Error("Allow-Methods não deveria estar vazio")
		}
	})

	t.Run("EncaminhaMetodosNormais", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/gerar-quiz", nil)
		rr := httptest.NewRecorder()

		handler.ServeHTTP(rr, req)

		if rr.Code != http.StatusTeapot {
			t.Errorf("Requisição não-preflight deveria chegar ao próximo handler, status: %d", rr.Code)
		}
	})
}
