// Package service implements the certificate issuance sequencer: it validates
// requests, gates them through the issuer registry, pins metadata, obtains a
// mint address (generated locally or from the ledger), and persists the
// resulting certificate.
package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"tamga/internal/audit"
	"tamga/internal/certificate"
	"tamga/internal/issuer/registry"
	"tamga/internal/ledger"
	"tamga/internal/platform/metrics"
	dErrors "tamga/pkg/domain-errors"
	"tamga/pkg/platform/sentinel"
)

// DemoSignature is the fixed transaction signature attached to simulated
// issuances. Real signatures only come from the on-chain path.
const DemoSignature = "5VGxBMTsBUgMF3FbhjbQYCtKL6UDJdHhAD6F7M4R1Q2k9X9nP8Wj7wZqBvLt3CxD5Fy2Y8GmH4J6K7LqNr1P"

// minWalletLen is the plausibility floor for wallet identifiers. Shorter
// strings are rejected before the registry is consulted.
const minWalletLen = 20

// Uploader pins a metadata document and returns its URI. Implementations
// never fail; see the ipfs package.
type Uploader interface {
	Upload(ctx context.Context, doc any, name string) string
}

// Minter performs the real on-chain issuance sequence.
type Minter interface {
	MintCertificate(ctx context.Context, issuerPrivateKey, studentWallet string) (ledger.MintResult, error)
	IssuerAddress(privateKey string) (string, error)
}

// Service is the issuance sequencer.
type Service struct {
	registry registry.Registry
	store    certificate.Store
	uploader Uploader
	minter   Minter
	audit    *audit.Service
	metrics  *metrics.Metrics
	logger   *slog.Logger

	newMint func() string
	now     func() time.Time
}

// New constructs the sequencer. minter may be nil when the on-chain path is
// not configured; Issue works regardless.
func New(
	reg registry.Registry,
	store certificate.Store,
	uploader Uploader,
	minter Minter,
	auditSvc *audit.Service,
	m *metrics.Metrics,
	logger *slog.Logger,
) *Service {
	return &Service{
		registry: reg,
		store:    store,
		uploader: uploader,
		minter:   minter,
		audit:    auditSvc,
		metrics:  m,
		logger:   logger,
		newMint:  ledger.NewMintAddress,
		now:      time.Now,
	}
}

// IssueRequest carries the fields of a simulated issuance. All five are
// required.
type IssueRequest struct {
	IssuerWallet  string
	StudentWallet string
	StudentName   string
	CourseName    string
	IssuerName    string
}

// IssueResult is the outcome of a successful issuance.
type IssueResult struct {
	Signature   string
	Mint        string
	MetadataURI string
	Certificate certificate.Certificate
}

// Issue runs the simulated issuance sequence. Validation and authorization
// failures happen before any side effect; once the registry check passes the
// metadata is pinned, a mint address is generated locally, and the record is
// persisted with the fixed demo signature.
func (s *Service) Issue(ctx context.Context, req IssueRequest) (*IssueResult, error) {
	if req.IssuerWallet == "" || req.StudentWallet == "" ||
		req.StudentName == "" || req.CourseName == "" || req.IssuerName == "" {
		s.metrics.IncIssuanceRejected("validation")
		return nil, dErrors.New(dErrors.CodeBadRequest,
			"issuerPublicKey, studentPublicKey, studentName, courseName and issuerName are required")
	}
	if len(req.IssuerWallet) < minWalletLen {
		s.metrics.IncIssuanceRejected("validation")
		return nil, dErrors.New(dErrors.CodeBadRequest, "invalid issuer public key format")
	}

	authorized, err := s.registry.IsAuthorized(ctx, req.IssuerWallet)
	if err != nil {
		return nil, fmt.Errorf("check issuer authorization: %w", err)
	}
	if !authorized {
		s.metrics.IncIssuanceRejected("unauthorized")
		s.audit.Record(ctx, audit.ActionIssuanceRejected, req.StudentWallet, req.IssuerWallet, req.CourseName)
		return nil, dErrors.New(dErrors.CodeUnauthorizedIssuer,
			"issuer wallet is not authorized to mint certificates")
	}

	date := s.now().Format(certificate.DateFormat)
	metadata := certificate.NewMetadata(req.StudentName, req.CourseName, req.IssuerName, date)
	uri := s.uploader.Upload(ctx, metadata, certificate.MetadataName(req.StudentName, req.CourseName))

	cert := certificate.Certificate{
		Mint:        s.newMint(),
		StudentName: req.StudentName,
		CourseName:  req.CourseName,
		IssuerName:  req.IssuerName,
		Date:        date,
		Student:     req.StudentWallet,
		Issuer:      req.IssuerWallet,
		MetadataURI: uri,
		Verified:    true,
		Signature:   DemoSignature,
		CreatedAt:   s.now(),
	}
	if err := s.store.Create(ctx, cert); err != nil {
		return nil, fmt.Errorf("persist certificate: %w", err)
	}

	s.metrics.IncCertificatesIssued()
	s.audit.Record(ctx, audit.ActionCertificateIssued, cert.Mint, req.IssuerWallet, req.CourseName)
	s.logger.InfoContext(ctx, "certificate issued",
		"mint", cert.Mint,
		"student", req.StudentWallet,
		"course", req.CourseName,
	)

	return &IssueResult{
		Signature:   DemoSignature,
		Mint:        cert.Mint,
		MetadataURI: uri,
		Certificate: cert,
	}, nil
}

// OnChainRequest carries the fields of a real devnet issuance. The issuer
// authenticates with its private key rather than a wallet address.
type OnChainRequest struct {
	IssuerPrivateKey string
	StudentWallet    string
	StudentName      string
	CourseName       string
	IssuerName       string
}

// OnChainResult is the outcome of a real issuance. Replayed marks responses
// served from a previously persisted record.
type OnChainResult struct {
	Signature    string
	Mint         string
	TokenAccount string
	MetadataURI  string
	Certificate  certificate.Certificate
	Replayed     bool
}

// IssueOnChain runs the real issuance sequence against the ledger. Before any
// RPC round trip it checks the idempotency key, so a retried request whose
// predecessor already persisted a certificate gets that record back instead
// of minting a second token.
func (s *Service) IssueOnChain(ctx context.Context, req OnChainRequest) (*OnChainResult, error) {
	if req.IssuerPrivateKey == "" || req.StudentWallet == "" ||
		req.StudentName == "" || req.CourseName == "" || req.IssuerName == "" {
		s.metrics.IncIssuanceRejected("validation")
		return nil, dErrors.New(dErrors.CodeBadRequest,
			"issuerPrivateKey, studentPublicKey, studentName, courseName and issuerName are required")
	}
	if s.minter == nil {
		return nil, dErrors.New(dErrors.CodeInternal, "")
	}

	issuerWallet, err := s.minter.IssuerAddress(req.IssuerPrivateKey)
	if err != nil {
		s.metrics.IncIssuanceRejected("validation")
		return nil, dErrors.New(dErrors.CodeBadRequest, "invalid issuer private key")
	}

	date := s.now().Format(certificate.DateFormat)
	key := IdempotencyKey(issuerWallet, req.StudentWallet, req.CourseName, date)
	if existing, err := s.store.FindByIdempotencyKey(ctx, key); err == nil {
		s.logger.InfoContext(ctx, "replaying previously issued certificate",
			"mint", existing.Mint,
			"student", req.StudentWallet,
		)
		return &OnChainResult{
			Signature:   existing.Signature,
			Mint:        existing.Mint,
			MetadataURI: existing.MetadataURI,
			Certificate: existing,
			Replayed:    true,
		}, nil
	} else if !errors.Is(err, sentinel.ErrNotFound) {
		return nil, fmt.Errorf("check idempotency key: %w", err)
	}

	metadata := certificate.NewMetadata(req.StudentName, req.CourseName, req.IssuerName, date)
	uri := s.uploader.Upload(ctx, metadata, certificate.MetadataName(req.StudentName, req.CourseName))

	minted, err := s.minter.MintCertificate(ctx, req.IssuerPrivateKey, req.StudentWallet)
	if err != nil {
		s.logger.ErrorContext(ctx, "on-chain mint failed",
			"student", req.StudentWallet,
			"error", err.Error(),
		)
		return nil, dErrors.New(dErrors.CodeInternal, "")
	}

	cert := certificate.Certificate{
		Mint:           minted.Mint,
		StudentName:    req.StudentName,
		CourseName:     req.CourseName,
		IssuerName:     req.IssuerName,
		Date:           date,
		Student:        req.StudentWallet,
		Issuer:         issuerWallet,
		MetadataURI:    uri,
		Verified:       true,
		Signature:      minted.Signature,
		IdempotencyKey: key,
		CreatedAt:      s.now(),
	}
	if err := s.store.Create(ctx, cert); err != nil {
		// The token exists on chain at this point; surface the storage
		// failure and let the idempotency key cover the retry.
		return nil, fmt.Errorf("persist on-chain certificate: %w", err)
	}

	s.metrics.IncCertificatesIssued()
	s.audit.Record(ctx, audit.ActionCertificateIssued, cert.Mint, issuerWallet, req.CourseName)
	s.logger.InfoContext(ctx, "certificate issued on chain",
		"mint", cert.Mint,
		"token_account", minted.TokenAccount,
		"signature", minted.Signature,
	)

	return &OnChainResult{
		Signature:    minted.Signature,
		Mint:         minted.Mint,
		TokenAccount: minted.TokenAccount,
		MetadataURI:  uri,
		Certificate:  cert,
	}, nil
}

// AuthorizeIssuer adds a wallet to the registry. The admin wallet is recorded
// for the trail but not itself verified; this mirrors the open demo setup.
func (s *Service) AuthorizeIssuer(ctx context.Context, issuerWallet, adminWallet string) error {
	if issuerWallet == "" || adminWallet == "" {
		return dErrors.New(dErrors.CodeBadRequest, "issuerPublicKey and adminPublicKey are required")
	}
	if len(issuerWallet) < minWalletLen {
		return dErrors.New(dErrors.CodeBadRequest, "invalid issuer public key format")
	}
	if err := s.registry.Authorize(ctx, issuerWallet); err != nil {
		return fmt.Errorf("authorize issuer: %w", err)
	}

	s.metrics.IncIssuersAuthorized()
	s.audit.Record(ctx, audit.ActionIssuerAuthorized, issuerWallet, adminWallet, "")
	s.logger.InfoContext(ctx, "issuer authorized", "issuer", issuerWallet, "admin", adminWallet)
	return nil
}

// CheckIssuer reports whether a wallet is in the registry.
func (s *Service) CheckIssuer(ctx context.Context, wallet string) (bool, error) {
	if len(wallet) < minWalletLen {
		return false, dErrors.New(dErrors.CodeBadRequest, "invalid public key format")
	}
	authorized, err := s.registry.IsAuthorized(ctx, wallet)
	if err != nil {
		return false, fmt.Errorf("check issuer authorization: %w", err)
	}
	return authorized, nil
}

// IssuerInfo describes one authorized issuer for the directory listing.
type IssuerInfo struct {
	Address           string `json:"address"`
	Name              string `json:"name"`
	Type              string `json:"type"`
	Country           string `json:"country"`
	Verified          bool   `json:"verified"`
	TotalCertificates int    `json:"totalCertificates"`
}

// knownInstitutions maps whitelisted wallets to display details. Wallets
// authorized at runtime fall back to a generic entry.
var knownInstitutions = map[string]IssuerInfo{
	"Fg6PaFpoGXkYsidMpWTK6W2BeZ7FEfcYkg476zPFsLnS": {Name: "Demo Issuer", Type: "demo", Country: "Kazakhstan"},
	"Demo1111111111111111111111111111111111":       {Name: "Dulaty University", Type: "university", Country: "Kazakhstan"},
	"NU11111111111111111111111111111111111111":     {Name: "Nazarbayev University", Type: "university", Country: "Kazakhstan"},
	"KNU1111111111111111111111111111111111111":     {Name: "Al-Farabi Kazakh National University", Type: "university", Country: "Kazakhstan"},
	"AITU111111111111111111111111111111111111":     {Name: "Astana IT University", Type: "university", Country: "Kazakhstan"},
	"Kaspi11111111111111111111111111111111111":     {Name: "Kaspi.kz Academy", Type: "corporate", Country: "Kazakhstan"},
	"KMG1111111111111111111111111111111111111":     {Name: "KazMunayGas Corporate Institute", Type: "corporate", Country: "Kazakhstan"},
	"AstanaHub1111111111111111111111111111111":     {Name: "Astana Hub", Type: "incubator", Country: "Kazakhstan"},
	"DigKZ1111111111111111111111111111111111":      {Name: "NFactorial", Type: "school", Country: "Kazakhstan"},
}

// AuthorizedIssuers returns the registry members with display details, sorted
// by address for a stable response.
func (s *Service) AuthorizedIssuers(ctx context.Context) ([]IssuerInfo, error) {
	wallets, err := s.registry.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list issuers: %w", err)
	}

	out := make([]IssuerInfo, 0, len(wallets))
	for _, w := range wallets {
		info, ok := knownInstitutions[w]
		if !ok {
			info = IssuerInfo{Name: "Authorized Issuer", Type: "unknown", Country: "Kazakhstan"}
		}
		info.Address = w
		info.Verified = true
		out = append(out, info)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Address < out[j].Address })
	return out, nil
}

// IdempotencyKey derives the replay-detection key for an on-chain issuance.
// Same issuer, student, course and calendar day means the same certificate.
func IdempotencyKey(issuerWallet, studentWallet, courseName, date string) string {
	h := sha256.Sum256([]byte(issuerWallet + "|" + studentWallet + "|" + courseName + "|" + date))
	return hex.EncodeToString(h[:])
}
