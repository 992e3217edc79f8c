package domain

// Account is a payment journal. Only its identity is referenced by payments.
type Account struct {
	AccountID int64  `json:"accountID"`
	Name      string `json:"name"`
	AuditFields
}
