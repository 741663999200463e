package httpserver

import (
	"net/http"
	"time"
)

// New builds the API server. The write timeout is sized for the on-chain
// mint path, which performs several ledger round trips inside one request;
// everything else finishes well under it.
func New(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      90 * time.Second,
		IdleTimeout:       2 * time.Minute,
	}
}
