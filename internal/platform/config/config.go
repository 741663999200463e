package config

import (
	"os"
	"time"
)

// Config captures everything the server reads from the environment. Store and
// client variants are selected by presence: no DATABASE_URL means the
// in-memory certificate store, no REDIS_URL means the in-memory issuer
// registry, missing Pinata keys mean placeholder metadata URIs.
type Config struct {
	Addr        string
	DatabaseURL string
	Redis       RedisConfig
	Pinata      PinataConfig
	Solana      SolanaConfig
}

// RedisConfig holds connection settings for the issuer registry backend.
type RedisConfig struct {
	URL          string
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// PinataConfig holds credentials for the IPFS pinning service.
type PinataConfig struct {
	APIKey    string
	SecretKey string
}

// SolanaConfig holds ledger connection settings for the on-chain mint path.
type SolanaConfig struct {
	RPCURL  string
	Network string
}

// FromEnv builds a Config from environment variables so main stays lean.
func FromEnv() Config {
	addr := os.Getenv("TAMGA_ADDR")
	if addr == "" {
		addr = ":3001"
	}

	network := os.Getenv("SOLANA_NETWORK")
	if network == "" {
		network = "devnet"
	}

	return Config{
		Addr:        addr,
		DatabaseURL: os.Getenv("DATABASE_URL"),
		Redis: RedisConfig{
			URL:          os.Getenv("REDIS_URL"),
			PoolSize:     10,
			MinIdleConns: 2,
			DialTimeout:  5 * time.Second,
			ReadTimeout:  3 * time.Second,
			WriteTimeout: 3 * time.Second,
		},
		Pinata: PinataConfig{
			APIKey:    os.Getenv("PINATA_API_KEY"),
			SecretKey: os.Getenv("PINATA_SECRET_API_KEY"),
		},
		Solana: SolanaConfig{
			RPCURL:  os.Getenv("SOLANA_RPC_URL"),
			Network: network,
		},
	}
}
