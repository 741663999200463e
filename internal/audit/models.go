// Package audit keeps an append-only trail of significant state changes.
// Recording is best-effort: a failed append is logged and never propagated
// to the operation that triggered it.
package audit

import (
	"time"

	"github.com/google/uuid"
)

// Actions recorded by the services.
const (
	ActionCertificateIssued = "certificate.issued"
	ActionIssuanceRejected  = "issuance.rejected"
	ActionIssuerAuthorized  = "issuer.authorized"
	ActionPropertyPurchased = "property.purchased"
	ActionRentClaimed       = "property.rent_claimed"
)

// Event is one audit trail entry.
type Event struct {
	ID        uuid.UUID `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Action    string    `json:"action"`
	Subject   string    `json:"subject"` // mint, wallet or property the action touched
	Actor     string    `json:"actor"`   // wallet that triggered the action
	Detail    string    `json:"detail,omitempty"`
}
