package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/cloudwego/eino/schema"
	"go.uber.org/zap"

	"github.com/bunniesplumbing/chat-gateway/internal/handler/chat"
	chatmodel "github.com/bunniesplumbing/chat-gateway/internal/model/chat"
)

type allowAll struct{}

func (allowAll) Admit(context.Context, string) bool { return true }

type staticCompleter struct{}

func (staticCompleter) Complete(context.Context, []*schema.Message) (string, error) {
	return "hi", nil
}

func newTestRouter() http.Handler {
	chatHandler := chat.New(allowAll{}, staticCompleter{}, "prompt", 10, zap.NewNop())
	return NewRouter(chatHandler, nil, zap.NewNop())
}

func TestNonPostMethodRejectedAsJSON(t *testing.T) {
	r := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/api/chat", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusMethodNotAllowed {
		t.Fatalf("expected 405, got %d", resp.Code)
	}

	var decoded chatmodel.GatewayResponse
	if err := json.Unmarshal(resp.Body.Bytes(), &decoded); err != nil {
		t.Fatalf("405 body is not JSON: %v", err)
	}
	if decoded.Success || decoded.Message != "Method not allowed." {
		t.Fatalf("unexpected 405 body: %+v", decoded)
	}
}

func TestPreflightShortCircuits(t *testing.T) {
	r := newTestRouter()

	req := httptest.NewRequest(http.MethodOptions, "/api/chat", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", resp.Code)
	}
	if got := resp.Header().Get("Access-Control-Allow-Methods"); got != "POST, OPTIONS" {
		t.Fatalf("Allow-Methods = %q", got)
	}
}

func TestCORSHeadersOnEveryResponse(t *testing.T) {
	r := newTestRouter()

	req := httptest.NewRequest(http.MethodPost, "/api/chat", strings.NewReader(`{}`))
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Fatal("missing CORS header on a POST response")
	}
}
