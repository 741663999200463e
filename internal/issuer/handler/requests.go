package handler

type mintCertificateRequest struct {
	IssuerPublicKey  string `json:"issuerPublicKey"`
	StudentPublicKey string `json:"studentPublicKey"`
	StudentName      string `json:"studentName"`
	CourseName       string `json:"courseName"`
	IssuerName       string `json:"issuerName"`
}

type mintCertificateRealRequest struct {
	IssuerPrivateKey string `json:"issuerPrivateKey"`
	StudentPublicKey string `json:"studentPublicKey"`
	StudentName      string `json:"studentName"`
	CourseName       string `json:"courseName"`
	IssuerName       string `json:"issuerName"`
}

type addIssuerRequest struct {
	IssuerPublicKey string `json:"issuerPublicKey"`
	AdminPublicKey  string `json:"adminPublicKey"`
}

type airdropRequest struct {
	PublicKey string  `json:"publicKey"`
	Amount    float64 `json:"amount"`
}
