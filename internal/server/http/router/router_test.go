package router

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/naijamart/storefront/internal/domain/model"
	"github.com/naijamart/storefront/internal/server/http/handlers"
	"github.com/naijamart/storefront/internal/server/http/middleware"
	testhelpers "github.com/naijamart/storefront/internal/test"
)

func newTestEngine(facade handlers.StorefrontFacade) *gin.Engine {
	gin.SetMode(gin.TestMode)
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	return Setup(facade, logger, middleware.NewHTTPMetrics())
}

func TestSetupRoutes(t *testing.T) {
	facade := &testhelpers.StorefrontFacadeStub{
		OrderFacadeStub: testhelpers.OrderFacadeStub{
			OrdersFn: func(context.Context, int64) ([]model.Order, error) {
				return []model.Order{{ID: "order-1", Status: model.OrderStatusPendingPayment}}, nil
			},
		},
	}
	engine := newTestEngine(facade)

	body, _ := json.Marshal(map[string]string{"email": "ada@example.com", "full_name": "Ada Obi", "password": "password123"})
	req := httptest.NewRequest(http.MethodPost, "/api/user/register", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 for register, got %d", resp.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/products", nil)
	resp = httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 for public catalogue, got %d", resp.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/api/user/orders", nil)
	req.Header.Set("Authorization", "Bearer token")
	resp = httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 for orders, got %d", resp.Code)
	}

	req = httptest.NewRequest(http.MethodGet, "/metrics", nil)
	resp = httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 for metrics scrape, got %d", resp.Code)
	}
}

func TestSetupRequiresAuth(t *testing.T) {
	engine := newTestEngine(&testhelpers.StorefrontFacadeStub{})

	req := httptest.NewRequest(http.MethodGet, "/api/user/balance", nil)
	resp := httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401 without token, got %d", resp.Code)
	}
}

func TestSetupGuardsAdminRoutes(t *testing.T) {
	// The stub parser reports the regular user role for every token.
	facade := &testhelpers.StorefrontFacadeStub{AuthFacadeStub: testhelpers.AuthFacadeStub{
		ParseFn: func(string) (int64, model.Role, error) {
			return 5, model.RoleUser, nil
		},
	}}
	engine := newTestEngine(facade)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/orders", nil)
	req.Header.Set("Authorization", "Bearer token")
	resp := httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusForbidden {
		t.Fatalf("expected status 403 for non-staff caller, got %d", resp.Code)
	}

	staff := &testhelpers.StorefrontFacadeStub{AuthFacadeStub: testhelpers.AuthFacadeStub{
		ParseFn: func(string) (int64, model.Role, error) {
			return 1, model.RoleAdmin, nil
		},
	}}
	engine = newTestEngine(staff)

	req = httptest.NewRequest(http.MethodGet, "/api/admin/orders", nil)
	req.Header.Set("Authorization", "Bearer token")
	resp = httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected status 200 for staff caller, got %d", resp.Code)
	}
}

var _ handlers.StorefrontFacade = (*testhelpers.StorefrontFacadeStub)(nil)
