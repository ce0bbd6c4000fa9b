package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"signature-seal-backend/config"
	"signature-seal-backend/models"
)

var testDBSeq int64

// newTestRouter wires the full router against an in-memory database with
// every optional capability (email, SMS, Stripe) left unconfigured.
func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:routes_test_%d?mode=memory&cache=shared", atomic.AddInt64(&testDBSeq, 1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(&models.Booking{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	cfg := config.Config{
		AdminPassword: "hunter2",
		JWTSecret:     "test-secret",
	}
	return SetupRouter(cfg, db, zap.NewNop())
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any, token string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal body: %v", err)
		}
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func adminToken(t *testing.T, r *gin.Engine) string {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/api/login", map[string]string{"password": "hunter2"}, "")
	if w.Code != http.StatusOK {
		t.Fatalf("login failed: %d %s", w.Code, w.Body.String())
	}
	var resp struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode login response: %v", err)
	}
	return resp.Token
}

func TestSubmitBooking_EndToEnd(t *testing.T) {
	r := newTestRouter(t)

	// No optional fields, no notification channels configured.
	w := doJSON(t, r, http.MethodPost, "/api/bookings", map[string]any{
		"name":    "Jane Doe",
		"email":   "jane@example.com",
		"service": "Loan Signing",
		"date":    "2026-04-01",
		"time":    "10:00 AM",
	}, "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var booking models.Booking
	if err := json.Unmarshal(w.Body.Bytes(), &booking); err != nil {
		t.Fatalf("failed to decode booking: %v", err)
	}
	if booking.CreatedAt.IsZero() {
		t.Fatal("expected server-assigned CreatedAt")
	}

	token := adminToken(t, r)
	w = doJSON(t, r, http.MethodGet, "/api/bookings", nil, token)
	if w.Code != http.StatusOK {
		t.Fatalf("list failed: %d", w.Code)
	}
	var bookings []models.Booking
	if err := json.Unmarshal(w.Body.Bytes(), &bookings); err != nil {
		t.Fatalf("failed to decode list: %v", err)
	}
	if len(bookings) != 1 || bookings[0].ID != booking.ID {
		t.Fatalf("expected the submitted booking in the listing, got %+v", bookings)
	}
}

func TestListBookings_RequiresToken(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodGet, "/api/bookings", nil, "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", w.Code)
	}
}

func TestListBookings_NewestFirst(t *testing.T) {
	r := newTestRouter(t)

	for _, name := range []string{"first", "second", "third"} {
		w := doJSON(t, r, http.MethodPost, "/api/bookings", map[string]any{
			"name":    name,
			"email":   name + "@example.com",
			"service": "Mobile Notary",
			"date":    "2026-04-01",
			"time":    "2:00 PM",
		}, "")
		if w.Code != http.StatusOK {
			t.Fatalf("submit %s failed: %d", name, w.Code)
		}
	}

	w := doJSON(t, r, http.MethodGet, "/api/bookings", nil, adminToken(t, r))
	var bookings []models.Booking
	if err := json.Unmarshal(w.Body.Bytes(), &bookings); err != nil {
		t.Fatalf("failed to decode list: %v", err)
	}
	if len(bookings) != 3 {
		t.Fatalf("expected 3 bookings, got %d", len(bookings))
	}
	for i := 1; i < len(bookings); i++ {
		if bookings[i].CreatedAt.After(bookings[i-1].CreatedAt) {
			t.Fatal("bookings not ordered newest first")
		}
	}
}

func TestDeleteBooking_RequiresTokenAndIsIdempotent(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/bookings", map[string]any{
		"name":    "Jane",
		"email":   "jane@example.com",
		"service": "Mobile Notary",
		"date":    "2026-04-01",
		"time":    "2:00 PM",
	}, "")
	var booking models.Booking
	if err := json.Unmarshal(w.Body.Bytes(), &booking); err != nil {
		t.Fatalf("failed to decode booking: %v", err)
	}

	path := "/api/bookings/delete/" + booking.ID.String()

	if w := doJSON(t, r, http.MethodPost, path, nil, ""); w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", w.Code)
	}

	token := adminToken(t, r)
	for i := 0; i < 2; i++ {
		w := doJSON(t, r, http.MethodPost, path, nil, token)
		if w.Code != http.StatusOK {
			t.Fatalf("delete attempt %d: expected 200, got %d", i+1, w.Code)
		}
		var resp struct {
			Message string `json:"message"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to decode delete response: %v", err)
		}
		if resp.Message != "Deleted" {
			t.Fatalf("unexpected delete message %q", resp.Message)
		}
	}
}

func TestCheckout_UnconfiguredStripeFails(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/create-checkout-session", map[string]any{
		"service": "Loan Signing",
		"mileage": 25,
	}, "")
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 with no Stripe key, got %d", w.Code)
	}
}

func TestRecommend_Endpoint(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/recommend", map[string]any{}, "")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing query, got %d", w.Code)
	}

	w = doJSON(t, r, http.MethodPost, "/api/recommend",
		map[string]any{"query": "mortgage refinance closing"}, "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var rec struct {
		Service string `json:"service"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &rec); err != nil {
		t.Fatalf("failed to decode recommendation: %v", err)
	}
	if rec.Service != "Loan Signing" {
		t.Fatalf("expected Loan Signing, got %q", rec.Service)
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(t, r, http.MethodPost, "/api/login", map[string]string{"password": "wrong"}, "")
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}
