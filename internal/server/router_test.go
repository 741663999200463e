package server_test

import (
	"io"
	"log/slog"
	"net/http"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tamga/internal/audit"
	"tamga/internal/certificate"
	certservice "tamga/internal/certificate/service"
	"tamga/internal/ipfs"
	issuerhandler "tamga/internal/issuer/handler"
	"tamga/internal/issuer/registry"
	issuerservice "tamga/internal/issuer/service"
	"tamga/internal/ledger"
	"tamga/internal/platform/config"
	"tamga/internal/property"
	propertyhandler "tamga/internal/property/handler"
	"tamga/internal/server"
	userhandler "tamga/internal/user/handler"
	"tamga/pkg/testutil"
)

// newTestApp wires the full application against in-memory stores, the way
// main does without external backends.
func newTestApp(t *testing.T) chi.Router {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	certStore := certificate.NewInMemoryStore()
	reg := registry.NewInMemory(registry.DefaultIssuers)
	auditSvc := audit.NewService(audit.NewInMemoryStore(), logger)
	ledgerClient := ledger.New(config.SolanaConfig{Network: "devnet"}, logger)
	uploader := ipfs.New(config.PinataConfig{}, logger)

	issuerSvc := issuerservice.New(reg, certStore, uploader, ledgerClient, auditSvc, nil, logger)
	certSvc := certservice.New(certStore)
	propertySvc := property.NewService(property.NewInMemoryStore(), auditSvc, nil, logger)

	return server.NewRouter(server.Dependencies{
		Issuer:   issuerhandler.New(issuerSvc, ledgerClient, "devnet", logger),
		User:     userhandler.New(certSvc, propertySvc, logger),
		Property: propertyhandler.New(propertySvc, logger),
		Logger:   logger,
	})
}

func TestHealth(t *testing.T) {
	r := newTestApp(t)

	rr := testutil.DoRequest(r, testutil.NewRequest(t, http.MethodGet, "/health"))

	testutil.AssertStatus(t, rr, http.StatusOK)
	testutil.AssertJSONContains(t, rr, "status", "ok")
	testutil.AssertJSONContains(t, rr, "service", "tamga-api")
}

func TestMetricsEndpoint(t *testing.T) {
	r := newTestApp(t)

	rr := testutil.DoRequest(r, testutil.NewRequest(t, http.MethodGet, "/metrics"))

	testutil.AssertStatus(t, rr, http.StatusOK)
}

func TestUnknownRouteReturnsJSON404(t *testing.T) {
	r := newTestApp(t)

	rr := testutil.DoRequest(r, testutil.NewRequest(t, http.MethodGet, "/no/such/route"))

	testutil.AssertStatusAndError(t, rr, http.StatusNotFound, "not_found")
}

func TestRequestIDIsEchoed(t *testing.T) {
	r := newTestApp(t)

	req := testutil.NewRequest(t, http.MethodGet, "/health")
	req.Header.Set("X-Request-ID", "test-request-id")
	rr := testutil.DoRequest(r, req)

	assert.Equal(t, "test-request-id", rr.Header().Get("X-Request-ID"))
}

func TestNonJSONBodyRejected(t *testing.T) {
	r := newTestApp(t)

	req := testutil.NewRequest(t, http.MethodPost, "/api/issuer/mintCertificate")
	req.Header.Set("Content-Type", "text/plain")
	req.Body = io.NopCloser(strings.NewReader("not json"))
	rr := testutil.DoRequest(r, req)

	testutil.AssertStatus(t, rr, http.StatusUnsupportedMediaType)
}

func TestIssueAndFetchFlow(t *testing.T) {
	r := newTestApp(t)

	student := "Student9999999999999999999999999999999"
	mintReq := testutil.NewJSONRequest(t, http.MethodPost, "/api/issuer/mintCertificate", map[string]string{
		"issuerPublicKey":  "Demo1111111111111111111111111111111111",
		"studentPublicKey": student,
		"studentName":      "Aidar Nazarbayev",
		"courseName":       "Blockchain Development",
		"issuerName":       "Dulaty University",
	})
	rr := testutil.DoRequest(r, mintReq)
	testutil.AssertStatus(t, rr, http.StatusOK)

	resp := testutil.UnmarshalResponse[map[string]any](t, rr)
	mint, ok := (*resp)["mint"].(string)
	require.True(t, ok)
	require.NotEmpty(t, mint)

	rr = testutil.DoRequest(r, testutil.NewRequest(t, http.MethodGet, "/api/user/certificate/"+mint))
	testutil.AssertStatus(t, rr, http.StatusOK)

	rr = testutil.DoRequest(r, testutil.NewRequest(t, http.MethodGet, "/api/user/certificates/"+student))
	testutil.AssertStatus(t, rr, http.StatusOK)
	testutil.AssertJSONContains(t, rr, "total", float64(1))

	rr = testutil.DoRequest(r, testutil.NewRequest(t, http.MethodGet, "/api/user/verify/"+student))
	testutil.AssertStatus(t, rr, http.StatusOK)
	testutil.AssertJSONContains(t, rr, "verified", true)
}

func TestUnauthorizedIssuerFlow(t *testing.T) {
	r := newTestApp(t)

	mintReq := testutil.NewJSONRequest(t, http.MethodPost, "/api/issuer/mintCertificate", map[string]string{
		"issuerPublicKey":  "Rogue99999999999999999999999999999999",
		"studentPublicKey": "Student9999999999999999999999999999999",
		"studentName":      "A",
		"courseName":       "B",
		"issuerName":       "C",
	})
	rr := testutil.DoRequest(r, mintReq)

	testutil.AssertStatusAndError(t, rr, http.StatusForbidden, "unauthorized_issuer")
}

func TestPropertyFlow(t *testing.T) {
	r := newTestApp(t)

	rr := testutil.DoRequest(r, testutil.NewRequest(t, http.MethodGet, "/api/property/info"))
	testutil.AssertStatus(t, rr, http.StatusOK)

	buyReq := testutil.NewJSONRequest(t, http.MethodPost, "/api/property/buy", map[string]any{
		"propertyId":    "prop-001",
		"walletAddress": "Investor99999999999999999999999999999",
		"tokenAmount":   5,
	})
	rr = testutil.DoRequest(r, buyReq)
	testutil.AssertStatus(t, rr, http.StatusOK)

	rr = testutil.DoRequest(r,
		testutil.NewRequest(t, http.MethodGet, "/api/property/holdings/Investor99999999999999999999999999999"))
	testutil.AssertStatus(t, rr, http.StatusOK)
	testutil.AssertJSONContains(t, rr, "count", float64(1))
}
