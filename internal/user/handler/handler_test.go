package handler_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tamga/internal/certificate"
	certservice "tamga/internal/certificate/service"
	"tamga/internal/property"
	"tamga/internal/user/handler"
	"tamga/pkg/testutil"
)

const seededWallet = "Student111111111111111111111111111111"

func newTestRouter(t *testing.T) (chi.Router, *property.Service) {
	t.Helper()

	store := certificate.NewInMemoryStore()
	certificate.SeedDemoData(store)
	propertySvc := property.NewService(property.NewInMemoryStore(), nil, nil,
		slog.New(slog.NewTextHandler(io.Discard, nil)))

	r := chi.NewRouter()
	h := handler.New(certservice.New(store), propertySvc,
		slog.New(slog.NewTextHandler(io.Discard, nil)))
	h.Register(r)
	return r, propertySvc
}

func TestListCertificates_SeededWallet(t *testing.T) {
	r, _ := newTestRouter(t)

	rr := testutil.DoRequest(r, testutil.NewRequest(t, http.MethodGet, "/certificates/"+seededWallet))

	testutil.AssertStatus(t, rr, http.StatusOK)
	testutil.AssertJSONContains(t, rr, "total", float64(1))
	testutil.AssertJSONContains(t, rr, "wallet", seededWallet)
}

func TestListCertificates_UnknownWalletIsEmptyList(t *testing.T) {
	r, _ := newTestRouter(t)

	rr := testutil.DoRequest(r, testutil.NewRequest(t, http.MethodGet,
		"/certificates/Unknown999999999999999999999999999999"))

	testutil.AssertStatus(t, rr, http.StatusOK)
	testutil.AssertJSONContains(t, rr, "total", float64(0))

	resp := testutil.UnmarshalResponse[map[string]any](t, rr)
	certs, ok := (*resp)["certificates"].([]any)
	assert.True(t, ok, "certificates must be a JSON array, not null")
	assert.Empty(t, certs)
}

func TestListCertificates_ShortWalletRejected(t *testing.T) {
	r, _ := newTestRouter(t)

	rr := testutil.DoRequest(r, testutil.NewRequest(t, http.MethodGet, "/certificates/short"))

	testutil.AssertStatusAndError(t, rr, http.StatusBadRequest, "bad_request")
}

func TestGetCertificate_ByMint(t *testing.T) {
	r, _ := newTestRouter(t)

	rr := testutil.DoRequest(r, testutil.NewRequest(t, http.MethodGet,
		"/certificate/CertMint1111111111111111111111111111111"))

	testutil.AssertStatus(t, rr, http.StatusOK)
	resp := testutil.UnmarshalResponse[map[string]any](t, rr)
	cert, ok := (*resp)["certificate"].(map[string]any)
	if assert.True(t, ok) {
		assert.Equal(t, "Aidar Nazarbayev", cert["studentName"])
	}
}

func TestGetCertificate_UnknownMintIsNotFound(t *testing.T) {
	r, _ := newTestRouter(t)

	rr := testutil.DoRequest(r, testutil.NewRequest(t, http.MethodGet, "/certificate/NoSuchMint111"))

	testutil.AssertStatusAndError(t, rr, http.StatusNotFound, "not_found")
}

func TestVerify_SeededWallet(t *testing.T) {
	r, _ := newTestRouter(t)

	rr := testutil.DoRequest(r, testutil.NewRequest(t, http.MethodGet, "/verify/"+seededWallet))

	testutil.AssertStatus(t, rr, http.StatusOK)
	testutil.AssertJSONContains(t, rr, "verified", true)
	testutil.AssertJSONContains(t, rr, "total", float64(1))
}

func TestVerify_UnknownWalletIsNotVerified(t *testing.T) {
	r, _ := newTestRouter(t)

	rr := testutil.DoRequest(r, testutil.NewRequest(t, http.MethodGet,
		"/verify/Unknown999999999999999999999999999999"))

	testutil.AssertStatus(t, rr, http.StatusOK)
	testutil.AssertJSONContains(t, rr, "verified", false)
	testutil.AssertJSONContains(t, rr, "total", float64(0))
}

func TestDashboard_CombinesCertificatesAndHoldings(t *testing.T) {
	r, propertySvc := newTestRouter(t)

	_, err := propertySvc.Buy(context.Background(), "prop-001", seededWallet, 10)
	require.NoError(t, err)

	rr := testutil.DoRequest(r, testutil.NewRequest(t, http.MethodGet, "/dashboard/"+seededWallet))

	testutil.AssertStatus(t, rr, http.StatusOK)
	resp := testutil.UnmarshalResponse[map[string]any](t, rr)

	summary, ok := (*resp)["summary"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, float64(1), summary["totalCertificates"])
	assert.Equal(t, float64(10), summary["totalPropertyTokens"])
	assert.Equal(t, 2500.0, summary["totalInvestedUsd"])
}

func TestDBStatus(t *testing.T) {
	r, _ := newTestRouter(t)

	rr := testutil.DoRequest(r, testutil.NewRequest(t, http.MethodGet, "/db-status"))

	testutil.AssertStatus(t, rr, http.StatusOK)
	resp := testutil.UnmarshalResponse[map[string]any](t, rr)
	storage, ok := (*resp)["storage"].(map[string]any)
	if assert.True(t, ok) {
		assert.Equal(t, "memory", storage["mode"])
		assert.Equal(t, float64(2), storage["certificateCount"])
	}
}
