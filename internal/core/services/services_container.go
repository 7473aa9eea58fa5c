package services

import (
	portsrepo "github.com/SscSPs/earnings_calendar_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/earnings_calendar_app/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly initialized dependencies.
// providers are queried by the lookup service in the order given.
func NewServiceContainer(repos portsrepo.RepositoryProvider, providers ...portssvc.EarningsProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	var store portsrepo.EventDocumentReader
	if repos.EventDocumentRepo != nil {
		store = repos.EventDocumentRepo
	}

	container.EventStore = NewEventStoreService(repos.EventDocumentRepo)
	container.Lookup = NewEarningsLookupService(providers...)
	container.AddEvent = NewAddEventFlow(container.Lookup, container.EventStore)
	container.Health = NewHealthService(store, providers...)

	return container
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.EventStoreSvcFacade = (*eventStoreService)(nil)
	_ portssvc.HealthSvc           = (*healthService)(nil)
)
