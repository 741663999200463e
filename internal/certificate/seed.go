package certificate

import (
	"context"
	"time"
)

// SeedDemoData loads the demo certificates the frontend expects when the
// server runs without a database.
func SeedDemoData(store *InMemoryStore) {
	now := time.Now()
	demo := []Certificate{
		{
			Mint:        "CertMint1111111111111111111111111111111",
			StudentName: "Aidar Nazarbayev",
			CourseName:  "Blockchain Development",
			IssuerName:  "Nazarbayev University",
			Date:        "2024-11-15",
			Student:     "Student111111111111111111111111111111",
			Issuer:      "Issuer1111111111111111111111111111111",
			MetadataURI: "https://gateway.pinata.cloud/ipfs/QmMockHash123456789",
			Verified:    true,
			CreatedAt:   now,
		},
		{
			Mint:        "CertMint2222222222222222222222222222222",
			StudentName: "Aida Toleukhan",
			CourseName:  "Smart Contract Security",
			IssuerName:  "AITU",
			Date:        "2024-10-20",
			Student:     "Student222222222222222222222222222222",
			Issuer:      "Issuer1111111111111111111111111111111",
			MetadataURI: "https://gateway.pinata.cloud/ipfs/QmMockHash987654321",
			Verified:    true,
			CreatedAt:   now,
		},
	}
	for _, c := range demo {
		_ = store.Create(context.Background(), c)
	}
}
