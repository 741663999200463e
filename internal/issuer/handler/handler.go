// Package handler exposes the issuer-facing endpoints: certificate minting
// (simulated and on-chain), registry management, and devnet wallet helpers.
package handler

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"tamga/internal/issuer/service"
	"tamga/internal/ledger"
	dErrors "tamga/pkg/domain-errors"
	"tamga/pkg/platform/httputil"
)

//go:generate mockgen -source=handler.go -destination=mocks/mock_deps.go -package=mocks

// Service is the issuance sequencer surface the handler depends on.
type Service interface {
	Issue(ctx context.Context, req service.IssueRequest) (*service.IssueResult, error)
	IssueOnChain(ctx context.Context, req service.OnChainRequest) (*service.OnChainResult, error)
	AuthorizeIssuer(ctx context.Context, issuerWallet, adminWallet string) error
	CheckIssuer(ctx context.Context, wallet string) (bool, error)
	AuthorizedIssuers(ctx context.Context) ([]service.IssuerInfo, error)
}

// Ledger covers the wallet helper endpoints.
type Ledger interface {
	Airdrop(ctx context.Context, wallet string, amountSOL float64) (string, error)
	Balance(ctx context.Context, wallet string) (float64, error)
	Status(ctx context.Context) ledger.Status
}

const (
	minWalletLen  = 20
	maxAirdropSOL = 5
)

// Handler serves the /api/issuer routes.
type Handler struct {
	service Service
	ledger  Ledger
	network string
	logger  *slog.Logger
}

func New(svc Service, ledgerClient Ledger, network string, logger *slog.Logger) *Handler {
	return &Handler{service: svc, ledger: ledgerClient, network: network, logger: logger}
}

// Register mounts the issuer routes on the given router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/mintCertificate", h.mintCertificate)
	r.Post("/mintCertificateReal", h.mintCertificateReal)
	r.Post("/addIssuer", h.addIssuer)
	r.Get("/check/{publicKey}", h.checkIssuer)
	r.Get("/authorized", h.authorizedIssuers)
	r.Get("/network-status", h.networkStatus)
	r.Post("/airdrop", h.airdrop)
	r.Get("/balance/{publicKey}", h.balance)
}

func (h *Handler) mintCertificate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	req, ok := httputil.DecodeAndPrepare[mintCertificateRequest](w, r, h.logger)
	if !ok {
		return
	}

	result, err := h.service.Issue(ctx, service.IssueRequest{
		IssuerWallet:  req.IssuerPublicKey,
		StudentWallet: req.StudentPublicKey,
		StudentName:   req.StudentName,
		CourseName:    req.CourseName,
		IssuerName:    req.IssuerName,
	})
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, map[string]any{
		"success":     true,
		"message":     "Certificate minted successfully (simulated)",
		"signature":   result.Signature,
		"mint":        result.Mint,
		"metadataUri": result.MetadataURI,
		"certificate": result.Certificate,
	})
}

func (h *Handler) mintCertificateReal(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	req, ok := httputil.DecodeAndPrepare[mintCertificateRealRequest](w, r, h.logger)
	if !ok {
		return
	}

	result, err := h.service.IssueOnChain(ctx, service.OnChainRequest{
		IssuerPrivateKey: req.IssuerPrivateKey,
		StudentWallet:    req.StudentPublicKey,
		StudentName:      req.StudentName,
		CourseName:       req.CourseName,
		IssuerName:       req.IssuerName,
	})
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	message := "Certificate minted on-chain"
	if result.Replayed {
		message = "Certificate already issued for this request"
	}
	httputil.WriteJSON(w, http.StatusOK, map[string]any{
		"success":      true,
		"message":      message,
		"signature":    result.Signature,
		"mint":         result.Mint,
		"tokenAccount": result.TokenAccount,
		"metadataUri":  result.MetadataURI,
		"certificate":  result.Certificate,
		"blockchain": map[string]string{
			"network":  h.network,
			"explorer": h.explorerURL(result.Signature),
		},
	})
}

func (h *Handler) addIssuer(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	req, ok := httputil.DecodeAndPrepare[addIssuerRequest](w, r, h.logger)
	if !ok {
		return
	}

	if err := h.service.AuthorizeIssuer(ctx, req.IssuerPublicKey, req.AdminPublicKey); err != nil {
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "Issuer authorized successfully",
		"issuer":  req.IssuerPublicKey,
	})
}

func (h *Handler) checkIssuer(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	publicKey := chi.URLParam(r, "publicKey")

	authorized, err := h.service.CheckIssuer(ctx, publicKey)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, map[string]any{
		"publicKey":    publicKey,
		"isAuthorized": authorized,
	})
}

func (h *Handler) authorizedIssuers(w http.ResponseWriter, r *http.Request) {
	issuers, err := h.service.AuthorizedIssuers(r.Context())
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"issuers": issuers,
		"count":   len(issuers),
	})
}

func (h *Handler) networkStatus(w http.ResponseWriter, r *http.Request) {
	st := h.ledger.Status(r.Context())
	httputil.WriteJSON(w, http.StatusOK, map[string]any{
		"success": st.Connected,
		"status":  st,
	})
}

func (h *Handler) airdrop(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	req, ok := httputil.DecodeAndPrepare[airdropRequest](w, r, h.logger)
	if !ok {
		return
	}

	if len(req.PublicKey) < minWalletLen {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid public key format"))
		return
	}
	amount := req.Amount
	if amount == 0 {
		amount = 1
	}
	if amount < 0 || amount > maxAirdropSOL {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest,
			fmt.Sprintf("amount must be between 0 and %d SOL", maxAirdropSOL)))
		return
	}

	sig, err := h.ledger.Airdrop(ctx, req.PublicKey, amount)
	if err != nil {
		h.logger.ErrorContext(ctx, "airdrop failed", "wallet", req.PublicKey, "error", err.Error())
		httputil.WriteError(w, dErrors.New(dErrors.CodeInternal, ""))
		return
	}

	httputil.WriteJSON(w, http.StatusOK, map[string]any{
		"success":   true,
		"message":   fmt.Sprintf("Airdropped %g SOL", amount),
		"signature": sig,
	})
}

func (h *Handler) balance(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	publicKey := chi.URLParam(r, "publicKey")
	if len(publicKey) < minWalletLen {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid public key format"))
		return
	}

	balance, err := h.ledger.Balance(ctx, publicKey)
	if err != nil {
		h.logger.ErrorContext(ctx, "balance lookup failed", "wallet", publicKey, "error", err.Error())
		httputil.WriteError(w, dErrors.New(dErrors.CodeInternal, ""))
		return
	}

	httputil.WriteJSON(w, http.StatusOK, map[string]any{
		"publicKey": publicKey,
		"balance":   balance,
		"unit":      "SOL",
	})
}

func (h *Handler) explorerURL(signature string) string {
	return fmt.Sprintf("https://explorer.solana.com/tx/%s?cluster=%s", signature, h.network)
}
