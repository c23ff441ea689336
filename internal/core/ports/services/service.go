package services

// ServiceContainer holds all service facades used by the handlers layer.
type ServiceContainer struct {
	Account   AccountSvcFacade
	Ledger    LedgerSvcFacade
	Reporting ReportingSvcFacade
	Category  CategorySvcFacade
}
