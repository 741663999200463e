// Package property implements the fractional real-estate demo: a fixed
// catalog of tokenized properties, token purchases, rent claims, and
// per-wallet holdings. All state is in-memory and mutations are simulated;
// nothing here touches the ledger.
package property

import "time"

// Property is one tokenized listing. TotalTokens is fixed at seed time;
// TokensSold only grows.
type Property struct {
	ID            string  `json:"propertyId"`
	Name          string  `json:"name"`
	Location      string  `json:"location"`
	Description   string  `json:"description"`
	TotalValue    int64   `json:"totalValue"` // USD
	TotalTokens   int     `json:"totalTokens"`
	TokensSold    int     `json:"tokensSold"`
	PricePerToken float64 `json:"pricePerToken"`
	AnnualYield   float64 `json:"annualYield"` // percent
	Image         string  `json:"image"`
}

// AvailableTokens is the remaining sellable supply.
func (p Property) AvailableTokens() int {
	return p.TotalTokens - p.TokensSold
}

// Holding is one wallet's position in one property.
type Holding struct {
	PropertyID   string    `json:"propertyId"`
	Wallet       string    `json:"wallet"`
	Tokens       int       `json:"tokens"`
	InvestedUSD  float64   `json:"investedUsd"`
	LastPurchase time.Time `json:"lastPurchase"`
}

func seedProperties() []Property {
	return []Property{
		{
			ID:            "prop-001",
			Name:          "Almaty Towers Unit 205",
			Location:      "Almaty, Kazakhstan",
			Description:   "Two-bedroom apartment in the Almaty Towers complex near Abai Avenue.",
			TotalValue:    250_000,
			TotalTokens:   1000,
			TokensSold:    347,
			PricePerToken: 250,
			AnnualYield:   8.4,
			Image:         "https://via.placeholder.com/400x300/10B981/FFFFFF?text=Almaty+Towers",
		},
		{
			ID:            "prop-002",
			Name:          "Astana Business Center Office 1204",
			Location:      "Astana, Kazakhstan",
			Description:   "Commercial office space on the 12th floor of the Astana Business Center.",
			TotalValue:    450_000,
			TotalTokens:   1500,
			TokensSold:    580,
			PricePerToken: 300,
			AnnualYield:   7.2,
			Image:         "https://via.placeholder.com/400x300/4F46E5/FFFFFF?text=Astana+BC",
		},
	}
}
