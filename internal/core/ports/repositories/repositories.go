package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	InvoiceRepo    InvoiceRepositoryWithTx
	PaymentRepo    PaymentRepositoryWithTx
	AttachmentRepo AttachmentRepositoryWithTx
	CustomerRepo   CustomerRepositoryFacade
	CurrencyRepo   CurrencyRepositoryFacade
	AccountRepo    AccountRepositoryFacade
}
