package models

// Account maps the account table (payment journals).
type Account struct {
	AccountID int64  `json:"id"`
	Name      string `json:"name"`
	AuditFields
}
