package models

import "time"

// AuditFields holds standard audit columns shared by the main tables.
type AuditFields struct {
	CreatedAt     time.Time `json:"created_at"`
	CreatedBy     int64     `json:"created_by"`
	LastUpdatedAt time.Time `json:"updated_at"`
	LastUpdatedBy int64     `json:"updated_by"`
}

// TaxMethod mirrors the tax_method enum columns.
type TaxMethod string

const (
	TaxInclusive TaxMethod = "inclusive"
	TaxExclusive TaxMethod = "exclusive"
)
