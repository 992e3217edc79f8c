package domain

import "time"

// AuditFields holds standard audit information for domain entities.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     int64     `json:"createdBy"` // User reference, stored only
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy int64     `json:"lastUpdatedBy"`
}

// TaxMethod indicates how a tax rate relates to a price.
// Inclusive tax is assumed embedded in the cost and is never added on top;
// exclusive tax is added on top of the discounted subtotal.
type TaxMethod string

const (
	TaxInclusive TaxMethod = "inclusive"
	TaxExclusive TaxMethod = "exclusive"
)
