package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tamga/internal/audit"
	"tamga/internal/certificate"
	"tamga/internal/issuer/registry"
	"tamga/internal/ledger"
	dErrors "tamga/pkg/domain-errors"
)

const (
	authorizedIssuer = "Demo1111111111111111111111111111111111"
	studentWallet    = "Student9999999999999999999999999999999"
)

type fakeUploader struct {
	uri   string
	calls int
}

func (f *fakeUploader) Upload(_ context.Context, _ any, _ string) string {
	f.calls++
	if f.uri != "" {
		return f.uri
	}
	return "https://gateway.pinata.cloud/ipfs/QmMockHashTest"
}

type fakeMinter struct {
	result ledger.MintResult
	err    error
	calls  int
}

func (f *fakeMinter) MintCertificate(_ context.Context, _, _ string) (ledger.MintResult, error) {
	f.calls++
	if f.err != nil {
		return ledger.MintResult{}, f.err
	}
	return f.result, nil
}

func (f *fakeMinter) IssuerAddress(privateKey string) (string, error) {
	if privateKey == "not-a-key" {
		return "", errors.New("invalid base58")
	}
	return authorizedIssuer, nil
}

func newTestService(t *testing.T, minter Minter) (*Service, *certificate.InMemoryStore) {
	t.Helper()
	store := certificate.NewInMemoryStore()
	svc := New(
		registry.NewInMemory(registry.DefaultIssuers),
		store,
		&fakeUploader{},
		minter,
		audit.NewService(audit.NewInMemoryStore(), nil),
		nil,
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	)
	return svc, store
}

func validRequest() IssueRequest {
	return IssueRequest{
		IssuerWallet:  authorizedIssuer,
		StudentWallet: studentWallet,
		StudentName:   "Aidar Nazarbayev",
		CourseName:    "Blockchain Development",
		IssuerName:    "Dulaty University",
	}
}

func TestIssue_AuthorizedIssuerSucceeds(t *testing.T) {
	svc, store := newTestService(t, nil)
	ctx := context.Background()

	result, err := svc.Issue(ctx, validRequest())
	require.NoError(t, err)

	assert.NotEmpty(t, result.Mint)
	assert.Equal(t, DemoSignature, result.Signature)
	assert.Equal(t, "https://gateway.pinata.cloud/ipfs/QmMockHashTest", result.MetadataURI)

	stored, err := store.FindByMint(ctx, result.Mint)
	require.NoError(t, err)
	assert.Equal(t, "Aidar Nazarbayev", stored.StudentName)
	assert.Equal(t, "Blockchain Development", stored.CourseName)
	assert.Equal(t, "Dulaty University", stored.IssuerName)
	assert.Equal(t, studentWallet, stored.Student)
	assert.Equal(t, authorizedIssuer, stored.Issuer)
	assert.True(t, stored.Verified)

	_, err = time.Parse(certificate.DateFormat, stored.Date)
	assert.NoError(t, err)
}

func TestIssue_MintsAreUnique(t *testing.T) {
	svc, _ := newTestService(t, nil)
	ctx := context.Background()

	first, err := svc.Issue(ctx, validRequest())
	require.NoError(t, err)
	second, err := svc.Issue(ctx, validRequest())
	require.NoError(t, err)

	assert.NotEqual(t, first.Mint, second.Mint)
}

func TestIssue_UnauthorizedIssuerLeavesNoRecord(t *testing.T) {
	svc, store := newTestService(t, nil)
	ctx := context.Background()

	req := validRequest()
	req.IssuerWallet = "Unknown9999999999999999999999999999999"

	_, err := svc.Issue(ctx, req)
	require.Error(t, err)
	assert.True(t, dErrors.Is(err, dErrors.CodeUnauthorizedIssuer))

	count, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestIssue_MissingFieldsRejected(t *testing.T) {
	svc, _ := newTestService(t, nil)

	req := validRequest()
	req.CourseName = ""

	_, err := svc.Issue(context.Background(), req)
	require.Error(t, err)
	assert.True(t, dErrors.Is(err, dErrors.CodeBadRequest))
}

func TestIssue_ShortIssuerWalletRejectedEvenWhenAuthorized(t *testing.T) {
	store := certificate.NewInMemoryStore()
	svc := New(
		registry.NewInMemory([]string{"short"}),
		store,
		&fakeUploader{},
		nil,
		nil,
		nil,
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	)

	req := validRequest()
	req.IssuerWallet = "short"

	_, err := svc.Issue(context.Background(), req)
	require.Error(t, err)
	assert.True(t, dErrors.Is(err, dErrors.CodeBadRequest))
}

func TestIssue_UploaderCalledOncePerIssuance(t *testing.T) {
	uploader := &fakeUploader{uri: "https://gateway.pinata.cloud/ipfs/QmPinned"}
	svc, _ := newTestService(t, nil)
	svc.uploader = uploader

	result, err := svc.Issue(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, 1, uploader.calls)
	assert.Equal(t, "https://gateway.pinata.cloud/ipfs/QmPinned", result.MetadataURI)
}

type failingStore struct {
	certificate.Store
}

func (f *failingStore) Create(context.Context, certificate.Certificate) error {
	return errors.New("storage unavailable")
}

func TestIssue_PersistenceFailureIsFatal(t *testing.T) {
	svc, _ := newTestService(t, nil)
	svc.store = &failingStore{Store: certificate.NewInMemoryStore()}

	_, err := svc.Issue(context.Background(), validRequest())
	require.Error(t, err)
	assert.ErrorContains(t, err, "persist certificate")
	// Not a client error; the transport layer renders it as internal.
	assert.False(t, dErrors.Is(err, dErrors.CodeBadRequest))
	assert.False(t, dErrors.Is(err, dErrors.CodeUnauthorizedIssuer))
}

func validOnChainRequest() OnChainRequest {
	return OnChainRequest{
		IssuerPrivateKey: "issuer-private-key-base58",
		StudentWallet:    studentWallet,
		StudentName:      "Aida Toleukhan",
		CourseName:       "Smart Contract Security",
		IssuerName:       "Astana IT University",
	}
}

func TestIssueOnChain_PersistsMintedCertificate(t *testing.T) {
	minter := &fakeMinter{result: ledger.MintResult{
		Signature:    "RealSig111",
		Mint:         "RealMint1111111111111111111111111111111",
		TokenAccount: "TokenAcct111111111111111111111111111111",
	}}
	svc, store := newTestService(t, minter)
	ctx := context.Background()

	result, err := svc.IssueOnChain(ctx, validOnChainRequest())
	require.NoError(t, err)

	assert.Equal(t, "RealSig111", result.Signature)
	assert.Equal(t, "RealMint1111111111111111111111111111111", result.Mint)
	assert.Equal(t, "TokenAcct111111111111111111111111111111", result.TokenAccount)
	assert.False(t, result.Replayed)

	stored, err := store.FindByMint(ctx, result.Mint)
	require.NoError(t, err)
	assert.Equal(t, "RealSig111", stored.Signature)
	assert.NotEmpty(t, stored.IdempotencyKey)
	assert.Equal(t, authorizedIssuer, stored.Issuer)
}

func TestIssueOnChain_ReplayServesStoredRecord(t *testing.T) {
	minter := &fakeMinter{result: ledger.MintResult{
		Signature: "RealSig222",
		Mint:      "RealMint2222222222222222222222222222222",
	}}
	svc, store := newTestService(t, minter)
	ctx := context.Background()

	first, err := svc.IssueOnChain(ctx, validOnChainRequest())
	require.NoError(t, err)

	second, err := svc.IssueOnChain(ctx, validOnChainRequest())
	require.NoError(t, err)

	assert.Equal(t, 1, minter.calls)
	assert.True(t, second.Replayed)
	assert.Equal(t, first.Mint, second.Mint)
	assert.Equal(t, first.Signature, second.Signature)

	count, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestIssueOnChain_MinterFailureLeavesNoRecord(t *testing.T) {
	minter := &fakeMinter{err: errors.New("rpc unavailable")}
	svc, store := newTestService(t, minter)
	ctx := context.Background()

	_, err := svc.IssueOnChain(ctx, validOnChainRequest())
	require.Error(t, err)
	assert.True(t, dErrors.Is(err, dErrors.CodeInternal))

	count, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestIssueOnChain_InvalidPrivateKeyRejected(t *testing.T) {
	svc, _ := newTestService(t, &fakeMinter{})

	req := validOnChainRequest()
	req.IssuerPrivateKey = "not-a-key"

	_, err := svc.IssueOnChain(context.Background(), req)
	require.Error(t, err)
	assert.True(t, dErrors.Is(err, dErrors.CodeBadRequest))
}

func TestAuthorizeIssuer_ThenCheck(t *testing.T) {
	svc, _ := newTestService(t, nil)
	ctx := context.Background()

	wallet := "NewIssuer111111111111111111111111111111"
	require.NoError(t, svc.AuthorizeIssuer(ctx, wallet, authorizedIssuer))

	authorized, err := svc.CheckIssuer(ctx, wallet)
	require.NoError(t, err)
	assert.True(t, authorized)
}

func TestAuthorizeIssuer_ShortWalletRejected(t *testing.T) {
	svc, _ := newTestService(t, nil)

	err := svc.AuthorizeIssuer(context.Background(), "short", authorizedIssuer)
	require.Error(t, err)
	assert.True(t, dErrors.Is(err, dErrors.CodeBadRequest))
}

func TestCheckIssuer_ShortWalletRejected(t *testing.T) {
	svc, _ := newTestService(t, nil)

	_, err := svc.CheckIssuer(context.Background(), "short")
	require.Error(t, err)
	assert.True(t, dErrors.Is(err, dErrors.CodeBadRequest))
}

func TestAuthorizedIssuers_SortedWithDetails(t *testing.T) {
	svc, _ := newTestService(t, nil)

	issuers, err := svc.AuthorizedIssuers(context.Background())
	require.NoError(t, err)
	require.Len(t, issuers, len(registry.DefaultIssuers))

	for i := 1; i < len(issuers); i++ {
		assert.Less(t, issuers[i-1].Address, issuers[i].Address)
	}
	for _, info := range issuers {
		assert.True(t, info.Verified)
		assert.NotEmpty(t, info.Name)
	}
}

func TestIdempotencyKey(t *testing.T) {
	key := IdempotencyKey("issuer", "student", "course", "2025-11-01")

	assert.Len(t, key, 64)
	assert.Equal(t, key, IdempotencyKey("issuer", "student", "course", "2025-11-01"))
	assert.NotEqual(t, key, IdempotencyKey("issuer", "student", "course", "2025-11-02"))
	assert.NotEqual(t, key, IdempotencyKey("issuer", "other", "course", "2025-11-01"))
}
