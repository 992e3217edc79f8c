package domain

// CustomerType distinguishes individuals from companies.
type CustomerType string

const (
	CustomerIndividual CustomerType = "individual"
	CustomerCompany    CustomerType = "company"
)

// Customer owns invoices and payments.
type Customer struct {
	CustomerID  int64        `json:"customerID"`
	Name        string       `json:"name"`
	Email       string       `json:"email"`
	Phone       string       `json:"phone"`
	Address     string       `json:"address"`
	Type        CustomerType `json:"type"`
	CompanyName *string      `json:"companyName"`
	AuditFields
}
