// README: Integration tests for the public pricing/wizard routes and the admin session guard.
package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"sawari/internal/http/handlers"
	httpmiddleware "sawari/internal/http/middleware"
	"sawari/internal/modules/booking"
	"sawari/internal/modules/distance"
	"sawari/internal/modules/pricing"
)

// stubResolver returns a fixed route so offer math is deterministic.
type stubResolver struct {
	result distance.Result
}

func (s *stubResolver) Resolve(_ context.Context, _, _ string) distance.Result {
	return s.result
}

// stubInbox is a test double for handlers.BookingInbox.
type stubInbox struct {
	records []booking.Record
}

func (s *stubInbox) List(_ context.Context) ([]booking.Record, error) { return s.records, nil }
func (s *stubInbox) UpdateStatus(_ context.Context, _, _ string) (bool, error) {
	return false, nil
}

// allowToken authorizes exactly one session token.
type allowToken string

func (a allowToken) Validate(_ context.Context, token string) bool { return token == string(a) }

func buildTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	log := zap.NewNop()

	pricingSvc := pricing.NewService(&stubResolver{result: distance.Result{
		DistanceKm:      250,
		DurationMinutes: 250,
		Source:          distance.SourceStaticTable,
	}}, log)
	// booking.NewService(nil, nil, log) is safe here because the persister is
	// only touched on confirm, which these tests never reach.
	bookingSvc := booking.NewService(nil, nil, log)

	r := gin.New()
	r.GET("/api/cars", handlers.NewPricingHandler(pricingSvc).Cars)

	bh := handlers.NewBookingHandler(bookingSvc)
	r.POST("/api/bookings/wizard", bh.Start)
	r.GET("/api/bookings/wizard/:id", bh.Get)
	r.POST("/api/bookings/wizard/:id/contact", bh.SetContact)

	ah := handlers.NewAdminHandler(nil, &stubInbox{}, nil)
	admin := r.Group("/api/admin", httpmiddleware.AdminAuth(allowToken("good-token")))
	admin.GET("/bookings", ah.ListBookings)

	return r
}

func doRequest(r *gin.Engine, method, path string, body interface{}, headers map[string]string) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCars_RequiresFrom(t *testing.T) {
	r := buildTestRouter()
	w := doRequest(r, http.MethodGet, "/api/cars", nil, nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestCars_RejectsBadHours(t *testing.T) {
	r := buildTestRouter()
	w := doRequest(r, http.MethodGet, "/api/cars?from=delhi&trip_type=local&hours=zero", nil, nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
}

func TestCars_ReturnsAllClasses(t *testing.T) {
	r := buildTestRouter()
	w := doRequest(r, http.MethodGet, "/api/cars?from=delhi&to=jaipur&trip_type=oneway", nil, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var quote pricing.Quote
	if err := json.Unmarshal(w.Body.Bytes(), &quote); err != nil {
		t.Fatalf("unmarshal quote: %v", err)
	}
	if len(quote.Offers) != 6 {
		t.Errorf("expected 6 offers, got %d", len(quote.Offers))
	}
	if quote.DistanceKm != 250 {
		t.Errorf("expected distance 250, got %d", quote.DistanceKm)
	}
	// Cheapest class: 250 km * 13/km + 300 allowance = 3550, +5% tax = 3728.
	if quote.Offers[0].Price != 3728 {
		t.Errorf("expected first offer priced 3728, got %d", quote.Offers[0].Price)
	}
}

func TestWizard_StartAndContactValidation(t *testing.T) {
	r := buildTestRouter()
	w := doRequest(r, http.MethodPost, "/api/bookings/wizard", map[string]any{
		"trip_type":   "oneway",
		"from_city":   "delhi",
		"to_city":     "jaipur",
		"car_id":      "wagonr",
		"distance_km": 250,
	}, nil)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}
	var created struct {
		ID   string `json:"id"`
		Step string `json:"step"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("unmarshal draft: %v", err)
	}
	if created.Step != string(booking.StepContact) {
		t.Errorf("expected step %q, got %q", booking.StepContact, created.Step)
	}

	// A contact payload missing the drop location must not advance the step.
	w = doRequest(r, http.MethodPost, "/api/bookings/wizard/"+created.ID+"/contact", map[string]any{
		"name":   "Asha",
		"email":  "asha@example.com",
		"phone":  "9876543210",
		"pickup": "Connaught Place",
	}, nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", w.Code)
	}
	w = doRequest(r, http.MethodGet, "/api/bookings/wizard/"+created.ID, nil, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if err := json.Unmarshal(w.Body.Bytes(), &created); err != nil {
		t.Fatalf("unmarshal draft: %v", err)
	}
	if created.Step != string(booking.StepContact) {
		t.Errorf("expected step unchanged after rejected contact, got %q", created.Step)
	}
}

func TestWizard_UnknownDraft(t *testing.T) {
	r := buildTestRouter()
	w := doRequest(r, http.MethodGet, "/api/bookings/wizard/no-such-draft", nil, nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
}

func TestAdmin_RejectsMissingToken(t *testing.T) {
	r := buildTestRouter()
	w := doRequest(r, http.MethodGet, "/api/admin/bookings", nil, nil)
	if w.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", w.Code)
	}
}

func TestAdmin_AcceptsBearerToken(t *testing.T) {
	r := buildTestRouter()
	w := doRequest(r, http.MethodGet, "/api/admin/bookings", nil, map[string]string{
		"Authorization": "Bearer good-token",
	})
	if w.Code != http.StatusOK {
		t.Errorf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
}
