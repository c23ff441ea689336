package services

import (
	portsrepo "github.com/ZhouChenhao-hub/personal-accounting-app/internal/core/ports/repositories"
	portssvc "github.com/ZhouChenhao-hub/personal-accounting-app/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Account = NewAccountService(repos.AccountRepo)
	container.Ledger = NewLedgerService(repos.TransactionRepo, repos.AccountRepo)
	container.Reporting = NewReportingService(repos.ReportingRepo)
	container.Category = NewCategoryService(repos.CategoryRepo)

	return container
}
