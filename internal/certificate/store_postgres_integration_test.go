//go:build integration

package certificate

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tamga/pkg/platform/sentinel"
	"tamga/pkg/testutil/containers"
)

func TestPostgresStore_RoundTrip(t *testing.T) {
	pg := containers.NewPostgresContainer(t)
	ctx := context.Background()

	store := NewPostgres(pg.DB)
	require.NoError(t, store.EnsureSchema(ctx))

	cert := Certificate{
		Mint:        "Mint111",
		StudentName: "Aliya",
		CourseName:  "Blockchain 101",
		IssuerName:  "Test University",
		Date:        "2025-01-10",
		Student:     "StudentWallet1111111111111111111111111",
		Issuer:      "IssuerWallet11111111111111111111111111",
		MetadataURI: "https://gateway.pinata.cloud/ipfs/QmTest",
		Verified:    true,
		Signature:   "sig111",
	}
	require.NoError(t, store.Create(ctx, cert))

	got, err := store.FindByMint(ctx, "Mint111")
	require.NoError(t, err)
	assert.Equal(t, cert.StudentName, got.StudentName)
	assert.Equal(t, cert.CourseName, got.CourseName)
	assert.Equal(t, cert.IssuerName, got.IssuerName)
	assert.Equal(t, cert.Date, got.Date)
	assert.Equal(t, cert.MetadataURI, got.MetadataURI)
	assert.Equal(t, cert.Signature, got.Signature)
	assert.True(t, got.Verified)
}

func TestPostgresStore_DuplicateMintConflicts(t *testing.T) {
	pg := containers.NewPostgresContainer(t)
	ctx := context.Background()

	store := NewPostgres(pg.DB)
	require.NoError(t, store.EnsureSchema(ctx))

	cert := Certificate{Mint: "Mint111", StudentName: "a", CourseName: "b", IssuerName: "c",
		Date: "2025-01-10", Student: "s", Issuer: "i", Verified: true}
	require.NoError(t, store.Create(ctx, cert))

	err := store.Create(ctx, cert)
	assert.True(t, errors.Is(err, sentinel.ErrConflict))
}

func TestPostgresStore_ListByStudent(t *testing.T) {
	pg := containers.NewPostgresContainer(t)
	ctx := context.Background()

	store := NewPostgres(pg.DB)
	require.NoError(t, store.EnsureSchema(ctx))

	wallet := "StudentWallet1111111111111111111111111"
	for _, mint := range []string{"m1", "m2"} {
		require.NoError(t, store.Create(ctx, Certificate{Mint: mint, StudentName: "a",
			CourseName: "b", IssuerName: "c", Date: "2025-01-10",
			Student: wallet, Issuer: "i", Verified: true}))
	}
	require.NoError(t, store.Create(ctx, Certificate{Mint: "m3", StudentName: "a",
		CourseName: "b", IssuerName: "c", Date: "2025-01-10",
		Student: "OtherWallet11111111111111111111111111", Issuer: "i", Verified: true}))

	certs, err := store.ListByStudent(ctx, wallet)
	require.NoError(t, err)
	require.Len(t, certs, 2)
	assert.Equal(t, "m1", certs[0].Mint)
	assert.Equal(t, "m2", certs[1].Mint)

	n, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
}

func TestPostgresStore_FindByIdempotencyKey(t *testing.T) {
	pg := containers.NewPostgresContainer(t)
	ctx := context.Background()

	store := NewPostgres(pg.DB)
	require.NoError(t, store.EnsureSchema(ctx))

	require.NoError(t, store.Create(ctx, Certificate{Mint: "m1", StudentName: "a",
		CourseName: "b", IssuerName: "c", Date: "2025-01-10", Student: "s", Issuer: "i",
		Verified: true, IdempotencyKey: "key1"}))
	// Rows without a key must never collide with each other or with empty lookups.
	require.NoError(t, store.Create(ctx, Certificate{Mint: "m2", StudentName: "a",
		CourseName: "b", IssuerName: "c", Date: "2025-01-10", Student: "s", Issuer: "i",
		Verified: true}))

	got, err := store.FindByIdempotencyKey(ctx, "key1")
	require.NoError(t, err)
	assert.Equal(t, "m1", got.Mint)

	_, err = store.FindByIdempotencyKey(ctx, "")
	assert.True(t, errors.Is(err, sentinel.ErrNotFound))
}
