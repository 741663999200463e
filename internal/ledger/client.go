// Package ledger wraps the Solana RPC interactions behind the on-chain
// issuance path: minting a one-of-one certificate token, airdrops and
// balance queries for demo wallets, and a connectivity probe.
package ledger

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/blocto/solana-go-sdk/client"
	"github.com/blocto/solana-go-sdk/common"
	"github.com/blocto/solana-go-sdk/program/associated_token_account"
	"github.com/blocto/solana-go-sdk/program/system"
	"github.com/blocto/solana-go-sdk/program/token"
	"github.com/blocto/solana-go-sdk/rpc"
	"github.com/blocto/solana-go-sdk/types"

	"tamga/internal/platform/config"
)

// LamportsPerSOL converts between lamports and whole SOL.
const LamportsPerSOL = 1_000_000_000

// MintResult reports the addresses produced by one on-chain issuance.
type MintResult struct {
	Signature    string
	Mint         string
	TokenAccount string
}

// Status is a point-in-time view of RPC connectivity.
type Status struct {
	Connected bool   `json:"connected"`
	Network   string `json:"network"`
	RPCURL    string `json:"rpcUrl"`
	Slot      uint64 `json:"slot,omitempty"`
	Version   string `json:"version,omitempty"`
	Error     string `json:"error,omitempty"`
}

// Client talks to a Solana RPC node.
type Client struct {
	rpc     *client.Client
	network string
	rpcURL  string
	logger  *slog.Logger
}

// New constructs a ledger client. An empty RPC URL falls back to the public
// devnet endpoint.
func New(cfg config.SolanaConfig, logger *slog.Logger) *Client {
	endpoint := cfg.RPCURL
	if endpoint == "" {
		endpoint = rpc.DevnetRPCEndpoint
	}
	return &Client{
		rpc:     client.NewClient(endpoint),
		network: cfg.Network,
		rpcURL:  endpoint,
		logger:  logger,
	}
}

// Network returns the configured cluster name.
func (c *Client) Network() string { return c.network }

// NewMintAddress generates a fresh keypair and returns its public key. The
// simulated issuance path uses this as the certificate identifier without
// touching the chain.
func NewMintAddress() string {
	return types.NewAccount().PublicKey.ToBase58()
}

// MintCertificate runs the three-transaction issuance sequence: create and
// initialize a zero-decimal mint, create the student's associated token
// account, then mint exactly one token into it. Any failure aborts the
// sequence; a mint account created before a later step fails is left behind
// on the cluster, and the caller's idempotency key prevents a retry from
// issuing a second certificate.
func (c *Client) MintCertificate(ctx context.Context, issuerPrivateKey, studentWallet string) (MintResult, error) {
	issuer, err := types.AccountFromBase58(issuerPrivateKey)
	if err != nil {
		return MintResult{}, fmt.Errorf("parse issuer private key: %w", err)
	}
	student := common.PublicKeyFromString(studentWallet)
	mint := types.NewAccount()

	rent, err := c.rpc.GetMinimumBalanceForRentExemption(ctx, token.MintAccountSize)
	if err != nil {
		return MintResult{}, fmt.Errorf("get rent exemption: %w", err)
	}

	if _, err := c.send(ctx, issuer, []types.Account{issuer, mint}, []types.Instruction{
		system.CreateAccount(system.CreateAccountParam{
			From:     issuer.PublicKey,
			New:      mint.PublicKey,
			Owner:    common.TokenProgramID,
			Lamports: rent,
			Space:    token.MintAccountSize,
		}),
		token.InitializeMint(token.InitializeMintParam{
			Decimals: 0,
			Mint:     mint.PublicKey,
			MintAuth: issuer.PublicKey,
		}),
	}); err != nil {
		return MintResult{}, fmt.Errorf("create mint account: %w", err)
	}

	ata, _, err := common.FindAssociatedTokenAddress(student, mint.PublicKey)
	if err != nil {
		return MintResult{}, fmt.Errorf("derive token account: %w", err)
	}
	if _, err := c.send(ctx, issuer, []types.Account{issuer}, []types.Instruction{
		associated_token_account.Create(associated_token_account.CreateParam{
			Funder:                 issuer.PublicKey,
			Owner:                  student,
			Mint:                   mint.PublicKey,
			AssociatedTokenAccount: ata,
		}),
	}); err != nil {
		return MintResult{}, fmt.Errorf("create token account: %w", err)
	}

	sig, err := c.send(ctx, issuer, []types.Account{issuer}, []types.Instruction{
		token.MintTo(token.MintToParam{
			Mint:   mint.PublicKey,
			To:     ata,
			Auth:   issuer.PublicKey,
			Amount: 1,
		}),
	})
	if err != nil {
		return MintResult{}, fmt.Errorf("mint token: %w", err)
	}

	if c.logger != nil {
		c.logger.InfoContext(ctx, "certificate minted on chain",
			"mint", mint.PublicKey.ToBase58(),
			"token_account", ata.ToBase58(),
			"signature", sig,
		)
	}
	return MintResult{
		Signature:    sig,
		Mint:         mint.PublicKey.ToBase58(),
		TokenAccount: ata.ToBase58(),
	}, nil
}

func (c *Client) send(ctx context.Context, feePayer types.Account, signers []types.Account, instructions []types.Instruction) (string, error) {
	blockhash, err := c.rpc.GetLatestBlockhash(ctx)
	if err != nil {
		return "", fmt.Errorf("get blockhash: %w", err)
	}
	tx, err := types.NewTransaction(types.NewTransactionParam{
		Message: types.NewMessage(types.NewMessageParam{
			FeePayer:        feePayer.PublicKey,
			RecentBlockhash: blockhash.Blockhash,
			Instructions:    instructions,
		}),
		Signers: signers,
	})
	if err != nil {
		return "", fmt.Errorf("build transaction: %w", err)
	}
	sig, err := c.rpc.SendTransaction(ctx, tx)
	if err != nil {
		return "", fmt.Errorf("send transaction: %w", err)
	}
	return sig, nil
}

// IssuerAddress derives the public wallet address from a base58 private key.
func (c *Client) IssuerAddress(privateKey string) (string, error) {
	account, err := types.AccountFromBase58(privateKey)
	if err != nil {
		return "", fmt.Errorf("parse issuer private key: %w", err)
	}
	return account.PublicKey.ToBase58(), nil
}

// Airdrop requests devnet SOL for a wallet and returns the signature.
func (c *Client) Airdrop(ctx context.Context, wallet string, amountSOL float64) (string, error) {
	sig, err := c.rpc.RequestAirdrop(ctx, wallet, uint64(amountSOL*LamportsPerSOL))
	if err != nil {
		return "", fmt.Errorf("request airdrop: %w", err)
	}
	return sig, nil
}

// Balance returns a wallet's balance in SOL.
func (c *Client) Balance(ctx context.Context, wallet string) (float64, error) {
	lamports, err := c.rpc.GetBalance(ctx, wallet)
	if err != nil {
		return 0, fmt.Errorf("get balance: %w", err)
	}
	return float64(lamports) / LamportsPerSOL, nil
}

// Status probes the RPC node. Failures are reported in the result, not as an
// error, so the network-status endpoint can always answer.
func (c *Client) Status(ctx context.Context) Status {
	st := Status{Network: c.network, RPCURL: c.rpcURL}

	version, err := c.rpc.GetVersion(ctx)
	if err != nil {
		st.Error = err.Error()
		return st
	}
	slot, err := c.rpc.GetSlot(ctx)
	if err != nil {
		st.Error = err.Error()
		return st
	}

	st.Connected = true
	st.Version = version.SolanaCore
	st.Slot = slot
	return st
}
