// Package handler exposes the holder-facing read endpoints: certificate
// lookups, verification, the combined dashboard, and the storage probe.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"golang.org/x/sync/errgroup"

	"tamga/internal/certificate"
	certservice "tamga/internal/certificate/service"
	"tamga/internal/property"
	dErrors "tamga/pkg/domain-errors"
	"tamga/pkg/platform/httputil"
)

const minWalletLen = 20

// Certificates is the query surface the handler depends on.
type Certificates interface {
	ListByHolder(ctx context.Context, wallet string) ([]certificate.Certificate, error)
	GetByMint(ctx context.Context, mint string) (certificate.Certificate, error)
	ListVerified(ctx context.Context, wallet string) ([]certificate.Certificate, error)
	Status(ctx context.Context) (certservice.StorageStatus, error)
}

// Holdings provides the property positions shown on the dashboard.
type Holdings interface {
	Holdings(ctx context.Context, wallet string) ([]property.Holding, error)
}

// Handler serves the /api/user routes.
type Handler struct {
	certificates Certificates
	holdings     Holdings
	logger       *slog.Logger
}

func New(certs Certificates, holdings Holdings, logger *slog.Logger) *Handler {
	return &Handler{certificates: certs, holdings: holdings, logger: logger}
}

// Register mounts the user routes on the given router.
func (h *Handler) Register(r chi.Router) {
	r.Get("/certificates/{wallet}", h.listCertificates)
	r.Get("/certificate/{mint}", h.getCertificate)
	r.Get("/verify/{wallet}", h.verify)
	r.Get("/dashboard/{wallet}", h.dashboard)
	r.Get("/db-status", h.dbStatus)
}

func walletParam(w http.ResponseWriter, r *http.Request) (string, bool) {
	wallet := chi.URLParam(r, "wallet")
	if len(wallet) < minWalletLen {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid wallet address format"))
		return "", false
	}
	return wallet, true
}

func (h *Handler) listCertificates(w http.ResponseWriter, r *http.Request) {
	wallet, ok := walletParam(w, r)
	if !ok {
		return
	}

	certs, err := h.certificates.ListByHolder(r.Context(), wallet)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, map[string]any{
		"success":      true,
		"wallet":       wallet,
		"certificates": certs,
		"total":        len(certs),
	})
}

func (h *Handler) getCertificate(w http.ResponseWriter, r *http.Request) {
	cert, err := h.certificates.GetByMint(r.Context(), chi.URLParam(r, "mint"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, map[string]any{
		"success":     true,
		"certificate": cert,
	})
}

func (h *Handler) verify(w http.ResponseWriter, r *http.Request) {
	wallet, ok := walletParam(w, r)
	if !ok {
		return
	}

	certs, err := h.certificates.ListVerified(r.Context(), wallet)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, map[string]any{
		"success":      true,
		"wallet":       wallet,
		"verified":     len(certs) > 0,
		"certificates": certs,
		"total":        len(certs),
	})
}

// dashboard gathers certificates and property holdings concurrently; either
// failure fails the whole response.
func (h *Handler) dashboard(w http.ResponseWriter, r *http.Request) {
	wallet, ok := walletParam(w, r)
	if !ok {
		return
	}

	var (
		certs    []certificate.Certificate
		holdings []property.Holding
	)
	g, ctx := errgroup.WithContext(r.Context())
	g.Go(func() error {
		var err error
		certs, err = h.certificates.ListByHolder(ctx, wallet)
		return err
	})
	g.Go(func() error {
		var err error
		holdings, err = h.holdings.Holdings(ctx, wallet)
		return err
	})
	if err := g.Wait(); err != nil {
		httputil.WriteError(w, err)
		return
	}

	totalTokens := 0
	totalInvested := 0.0
	for _, holding := range holdings {
		totalTokens += holding.Tokens
		totalInvested += holding.InvestedUSD
	}

	httputil.WriteJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"wallet":  wallet,
		"certificates": map[string]any{
			"list":  certs,
			"count": len(certs),
		},
		"properties": map[string]any{
			"holdings": holdings,
			"count":    len(holdings),
		},
		"summary": map[string]any{
			"totalCertificates":   len(certs),
			"totalPropertyTokens": totalTokens,
			"totalInvestedUsd":    totalInvested,
		},
	})
}

func (h *Handler) dbStatus(w http.ResponseWriter, r *http.Request) {
	status, err := h.certificates.Status(r.Context())
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"storage": status,
	})
}
