package http

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/meds-gateway/internal/config"
	"github.com/MKhiriev/meds-gateway/internal/logger"
	"github.com/MKhiriev/meds-gateway/internal/service"
	"github.com/MKhiriev/meds-gateway/models"
	"github.com/stretchr/testify/require"
)

const (
	testUsername = "admin"
	testPassword = "s3cret"
)

// mockAuthSvc accepts exactly testUsername / testPassword.
type mockAuthSvc struct{}

func (mockAuthSvc) VerifyCredentials(_ context.Context, c models.Credentials) error {
	if c.Username == testUsername && c.Password == testPassword {
		return nil
	}
	return service.ErrAuthenticationFailed
}

// mockMedicationSvc returns the configured list or error and counts calls.
type mockMedicationSvc struct {
	list  models.MedicationList
	err   error
	entry *models.CacheEntry
	calls int
}

func (m *mockMedicationSvc) GetMedications(context.Context) (models.MedicationList, error) {
	m.calls++
	return m.list, m.err
}

func (m *mockMedicationSvc) CacheEntry(context.Context) (models.CacheEntry, bool) {
	if m.entry == nil {
		return models.CacheEntry{}, false
	}
	return *m.entry, true
}

// mockAppInfoSvc implements service.AppInfoService for testing.
type mockAppInfoSvc struct {
	version string
}

func (m *mockAppInfoSvc) GetAppVersion(context.Context) string {
	return m.version
}

// newTestHandler builds a Handler whose services are fakes except for the
// stateless math and greet services, which are used as-is.
func newTestHandler(t *testing.T, meds service.MedicationService) *Handler {
	t.Helper()
	if meds == nil {
		meds = &mockMedicationSvc{}
	}
	return NewHandler(&service.Services{
		AuthService:       mockAuthSvc{},
		MedicationService: meds,
		MathService:       service.NewMathService(),
		GreetService:      service.NewGreetService(),
		AppInfoService:    &mockAppInfoSvc{version: "1.2.3"},
	}, config.Server{HTTPAddress: ":0", RequestTimeout: 5 * time.Second}, logger.Nop())
}

// doRequest sends a request through the full router and returns the recorder.
func doRequest(t *testing.T, h http.Handler, method, target, body string, mutate ...func(*http.Request)) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, m := range mutate {
		m(req)
	}

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	require.NotNil(t, rr)
	return rr
}

func withBasicAuth(username, password string) func(*http.Request) {
	return func(r *http.Request) {
		r.SetBasicAuth(username, password)
	}
}
