package certificate

import (
	"fmt"
	"net/url"
)

// Metadata is the NFT-style document pinned to the content store for each
// certificate. The attribute layout follows the common token-metadata shape
// so wallets and explorers can render it.
type Metadata struct {
	Name        string             `json:"name"`
	Description string             `json:"description"`
	Image       string             `json:"image"`
	Attributes  []Attribute        `json:"attributes"`
	Properties  MetadataProperties `json:"properties"`
}

// Attribute is a single trait entry.
type Attribute struct {
	TraitType string `json:"trait_type"`
	Value     any    `json:"value"`
}

// MetadataProperties carries the fixed category labels.
type MetadataProperties struct {
	Category string `json:"category"`
	Country  string `json:"country"`
}

// NewMetadata builds the metadata document for a certificate.
func NewMetadata(studentName, courseName, issuerName, date string) Metadata {
	return Metadata{
		Name: courseName + " Certificate",
		Description: fmt.Sprintf("Certificate of completion for %s issued to %s by %s",
			courseName, studentName, issuerName),
		Image: "https://via.placeholder.com/400x300/4F46E5/FFFFFF?text=" +
			url.QueryEscape(courseName+" Certificate"),
		Attributes: []Attribute{
			{TraitType: "Student Name", Value: studentName},
			{TraitType: "Course Name", Value: courseName},
			{TraitType: "Issuer Name", Value: issuerName},
			{TraitType: "Issue Date", Value: date},
			{TraitType: "Certificate Type", Value: "Education"},
		},
		Properties: MetadataProperties{
			Category: "Education Certificate",
			Country:  "Kazakhstan",
		},
	}
}

// MetadataName derives the pin name for the content store.
func MetadataName(studentName, courseName string) string {
	return studentName + "_" + courseName + "_Certificate"
}
