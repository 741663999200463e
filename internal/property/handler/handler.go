// Package handler exposes the fractional real-estate endpoints.
package handler

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"tamga/internal/property"
	"tamga/pkg/platform/httputil"
)

// Handler serves the /api/property routes.
type Handler struct {
	service *property.Service
	logger  *slog.Logger
}

func New(svc *property.Service, logger *slog.Logger) *Handler {
	return &Handler{service: svc, logger: logger}
}

// Register mounts the property routes on the given router. The static /info
// route must not collide with the {propertyID} wildcard; chi resolves static
// segments first.
func (h *Handler) Register(r chi.Router) {
	r.Get("/info", h.info)
	r.Post("/buy", h.buy)
	r.Post("/claim-rent", h.claimRent)
	r.Get("/holdings/{wallet}", h.holdings)
	r.Get("/{propertyID}", h.get)
}

type buyRequest struct {
	PropertyID    string `json:"propertyId"`
	WalletAddress string `json:"walletAddress"`
	TokenAmount   int    `json:"tokenAmount"`
}

type claimRentRequest struct {
	PropertyID    string `json:"propertyId"`
	WalletAddress string `json:"walletAddress"`
}

func (h *Handler) info(w http.ResponseWriter, r *http.Request) {
	info, err := h.service.Info(r.Context())
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"market":  info,
	})
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	p, err := h.service.Get(r.Context(), chi.URLParam(r, "propertyID"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, map[string]any{
		"success":         true,
		"property":        p,
		"availableTokens": p.AvailableTokens(),
	})
}

func (h *Handler) buy(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	req, ok := httputil.DecodeAndPrepare[buyRequest](w, r, h.logger)
	if !ok {
		return
	}

	result, err := h.service.Buy(ctx, req.PropertyID, req.WalletAddress, req.TokenAmount)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, map[string]any{
		"success":   true,
		"message":   "Tokens purchased successfully (simulated)",
		"signature": result.Signature,
		"property":  result.Property,
		"holding":   result.Holding,
		"costUsd":   result.CostUSD,
	})
}

func (h *Handler) claimRent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	req, ok := httputil.DecodeAndPrepare[claimRentRequest](w, r, h.logger)
	if !ok {
		return
	}

	claim, err := h.service.ClaimRent(ctx, req.PropertyID, req.WalletAddress)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Rent claimed successfully (simulated)",
		"claim":   claim,
	})
}

func (h *Handler) holdings(w http.ResponseWriter, r *http.Request) {
	wallet := chi.URLParam(r, "wallet")
	holdings, err := h.service.Holdings(r.Context(), wallet)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, map[string]any{
		"success":  true,
		"wallet":   wallet,
		"holdings": holdings,
		"count":    len(holdings),
	})
}
