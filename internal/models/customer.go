package models

// Customer maps the customer table.
type Customer struct {
	CustomerID  int64   `json:"id"`
	Name        string  `json:"name"`
	Email       string  `json:"email"`
	Phone       string  `json:"phone"`
	Address     string  `json:"address"`
	Type        string  `json:"type"` // individual or company
	CompanyName *string `json:"company_name"`
	AuditFields
}
