// Package service implements the certificate query side: lookups by holder
// wallet, by mint, and the verified subset. Issuance lives in the issuer
// service; this package never writes.
package service

import (
	"context"
	"errors"
	"fmt"

	"tamga/internal/certificate"
	dErrors "tamga/pkg/domain-errors"
	"tamga/pkg/platform/sentinel"
)

type Service struct {
	store certificate.Store
}

func New(store certificate.Store) *Service {
	return &Service{store: store}
}

// ListByHolder returns all certificates whose holder wallet matches, in the
// store's insertion order. A holder with no certificates gets an empty list,
// never an error.
func (s *Service) ListByHolder(ctx context.Context, wallet string) ([]certificate.Certificate, error) {
	certs, err := s.store.ListByStudent(ctx, wallet)
	if err != nil {
		return nil, dErrors.New(dErrors.CodeInternal, fmt.Sprintf("list certificates: %v", err))
	}
	if certs == nil {
		certs = []certificate.Certificate{}
	}
	return certs, nil
}

// GetByMint returns the certificate with the given mint identifier.
func (s *Service) GetByMint(ctx context.Context, mint string) (certificate.Certificate, error) {
	cert, err := s.store.FindByMint(ctx, mint)
	if err != nil {
		if errors.Is(err, sentinel.ErrNotFound) {
			return certificate.Certificate{}, dErrors.New(dErrors.CodeNotFound, "no certificate found with this mint address")
		}
		return certificate.Certificate{}, dErrors.New(dErrors.CodeInternal, fmt.Sprintf("find certificate: %v", err))
	}
	return cert, nil
}

// ListVerified returns the verified subset of a holder's certificates. All
// certificates are verified at creation today, but the contract stays
// distinct so revocation can be added without an API change.
func (s *Service) ListVerified(ctx context.Context, wallet string) ([]certificate.Certificate, error) {
	certs, err := s.store.ListVerifiedByStudent(ctx, wallet)
	if err != nil {
		return nil, dErrors.New(dErrors.CodeInternal, fmt.Sprintf("list verified certificates: %v", err))
	}
	if certs == nil {
		certs = []certificate.Certificate{}
	}
	return certs, nil
}

// StorageStatus describes which store variant is active.
type StorageStatus struct {
	Mode             string `json:"mode"`
	Connected        bool   `json:"connected"`
	CertificateCount int    `json:"certificateCount"`
}

// Status reports the storage mode and record count for the db-status probe.
func (s *Service) Status(ctx context.Context) (StorageStatus, error) {
	n, err := s.store.Count(ctx)
	if err != nil {
		return StorageStatus{}, dErrors.New(dErrors.CodeInternal, fmt.Sprintf("count certificates: %v", err))
	}
	return StorageStatus{
		Mode:             s.store.Mode(),
		Connected:        s.store.Mode() == "postgres",
		CertificateCount: n,
	}, nil
}
