package certificate

import "time"

// Certificate is one issued education certificate. Records are created once
// by the issuance sequencer and never mutated or deleted; Mint is the unique
// identifier across all certificates.
type Certificate struct {
	Mint        string `json:"mint"`
	StudentName string `json:"studentName"`
	CourseName  string `json:"courseName"`
	IssuerName  string `json:"issuerName"`
	Date        string `json:"date"` // issue date, YYYY-MM-DD
	Student     string `json:"student"`
	Issuer      string `json:"issuer"`
	MetadataURI string `json:"metadataUri"`
	Verified    bool   `json:"verified"`

	// Signature and IdempotencyKey back the on-chain variant's replay
	// detection; they are persisted but not part of the API shape.
	Signature      string    `json:"-"`
	IdempotencyKey string    `json:"-"`
	CreatedAt      time.Time `json:"-"`
}

// DateFormat is the calendar-date layout used for issue dates.
const DateFormat = "2006-01-02"
