package property

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"tamga/internal/audit"
	"tamga/internal/platform/metrics"
	dErrors "tamga/pkg/domain-errors"
	"tamga/pkg/platform/sentinel"
)

const minWalletLen = 20

// demoTokenBalance stands in for wallets claiming rent without a recorded
// purchase, so the demo flow works from a fresh server.
const demoTokenBalance = 50

// Service applies the purchase and rent rules on top of the store.
type Service struct {
	store   Store
	audit   *audit.Service
	metrics *metrics.Metrics
	logger  *slog.Logger
	now     func() time.Time
}

func NewService(store Store, auditSvc *audit.Service, m *metrics.Metrics, logger *slog.Logger) *Service {
	return &Service{store: store, audit: auditSvc, metrics: m, logger: logger, now: time.Now}
}

// MarketInfo is the catalog summary served by the info endpoint.
type MarketInfo struct {
	Properties       []Property `json:"properties"`
	TotalValue       int64      `json:"totalValue"`
	TotalTokens      int        `json:"totalTokens"`
	TokensSold       int        `json:"tokensSold"`
	PropertiesListed int        `json:"propertiesListed"`
}

// Info returns the full catalog with aggregate totals.
func (s *Service) Info(ctx context.Context) (MarketInfo, error) {
	properties, err := s.store.List(ctx)
	if err != nil {
		return MarketInfo{}, fmt.Errorf("list properties: %w", err)
	}

	info := MarketInfo{Properties: properties, PropertiesListed: len(properties)}
	for _, p := range properties {
		info.TotalValue += p.TotalValue
		info.TotalTokens += p.TotalTokens
		info.TokensSold += p.TokensSold
	}
	return info, nil
}

// Get returns one property by id.
func (s *Service) Get(ctx context.Context, id string) (Property, error) {
	p, err := s.store.Get(ctx, id)
	if errors.Is(err, sentinel.ErrNotFound) {
		return Property{}, dErrors.New(dErrors.CodeNotFound, "property not found")
	}
	if err != nil {
		return Property{}, fmt.Errorf("get property: %w", err)
	}
	return p, nil
}

// PurchaseResult reports a completed token purchase.
type PurchaseResult struct {
	Signature string   `json:"signature"`
	Property  Property `json:"property"`
	Holding   Holding  `json:"holding"`
	CostUSD   float64  `json:"costUsd"`
}

// Buy sells tokens to a wallet. Requested amounts must be positive integers
// within the remaining supply.
func (s *Service) Buy(ctx context.Context, propertyID, wallet string, tokens int) (*PurchaseResult, error) {
	if propertyID == "" || len(wallet) < minWalletLen {
		return nil, dErrors.New(dErrors.CodeBadRequest, "propertyId and a valid walletAddress are required")
	}
	if tokens <= 0 {
		return nil, dErrors.New(dErrors.CodeBadRequest, "tokenAmount must be a positive integer")
	}

	property, holding, err := s.store.Purchase(ctx, propertyID, wallet, tokens)
	switch {
	case errors.Is(err, sentinel.ErrNotFound):
		return nil, dErrors.New(dErrors.CodeNotFound, "property not found")
	case errors.Is(err, ErrInsufficientTokens):
		return nil, dErrors.New(dErrors.CodeBadRequest, "not enough tokens available")
	case err != nil:
		return nil, fmt.Errorf("purchase tokens: %w", err)
	}

	cost := float64(tokens) * property.PricePerToken
	s.metrics.AddPropertyTokensSold(tokens)
	s.audit.Record(ctx, audit.ActionPropertyPurchased, propertyID, wallet,
		fmt.Sprintf("%d tokens", tokens))
	s.logger.InfoContext(ctx, "property tokens purchased",
		"property_id", propertyID,
		"wallet", wallet,
		"tokens", tokens,
	)

	return &PurchaseResult{
		Signature: simulatedSignature(),
		Property:  property,
		Holding:   holding,
		CostUSD:   cost,
	}, nil
}

// RentClaim reports a simulated rent payout.
type RentClaim struct {
	Signature   string  `json:"signature"`
	PropertyID  string  `json:"propertyId"`
	Wallet      string  `json:"wallet"`
	Tokens      int     `json:"tokens"`
	MonthlyRent float64 `json:"monthlyRent"`
	RentAmount  float64 `json:"rentAmount"`
}

// ClaimRent computes the wallet's share of one month of rental income. A
// wallet with no recorded purchase claims against the demo balance.
func (s *Service) ClaimRent(ctx context.Context, propertyID, wallet string) (*RentClaim, error) {
	if propertyID == "" || len(wallet) < minWalletLen {
		return nil, dErrors.New(dErrors.CodeBadRequest, "propertyId and a valid walletAddress are required")
	}

	property, err := s.Get(ctx, propertyID)
	if err != nil {
		return nil, err
	}

	tokens := demoTokenBalance
	holdings, err := s.store.HoldingsByWallet(ctx, wallet)
	if err != nil {
		return nil, fmt.Errorf("list holdings: %w", err)
	}
	for _, h := range holdings {
		if h.PropertyID == propertyID {
			tokens = h.Tokens
			break
		}
	}

	monthlyRent := float64(property.TotalValue) * property.AnnualYield / 100 / 12
	rentAmount := monthlyRent * float64(tokens) / float64(property.TotalTokens)

	s.audit.Record(ctx, audit.ActionRentClaimed, propertyID, wallet,
		fmt.Sprintf("%.2f USD", rentAmount))
	s.logger.InfoContext(ctx, "rent claimed",
		"property_id", propertyID,
		"wallet", wallet,
		"rent_amount", rentAmount,
	)

	return &RentClaim{
		Signature:   simulatedSignature(),
		PropertyID:  propertyID,
		Wallet:      wallet,
		Tokens:      tokens,
		MonthlyRent: monthlyRent,
		RentAmount:  rentAmount,
	}, nil
}

// Holdings returns the wallet's positions across all properties.
func (s *Service) Holdings(ctx context.Context, wallet string) ([]Holding, error) {
	if len(wallet) < minWalletLen {
		return nil, dErrors.New(dErrors.CodeBadRequest, "invalid wallet address format")
	}
	holdings, err := s.store.HoldingsByWallet(ctx, wallet)
	if err != nil {
		return nil, fmt.Errorf("list holdings: %w", err)
	}
	return holdings, nil
}

func simulatedSignature() string {
	return "SimTx" + strings.ReplaceAll(uuid.NewString(), "-", "")
}
