package repository

import "context"

// TransactionManager defines the interface for managing database transactions.
// This allows the use case layer to handle transactions without depending on a specific DB driver like GORM.
type TransactionManager interface {
	// Execute runs a function within a database transaction.
	// If the function returns an error, the transaction is rolled back. Otherwise, it's committed.
	// All repository operations within the function will use the same database transaction.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides repository instances bound to one transaction,
// so every write of a registration step or approval transition shares the
// same database connection.
type RepositoryFactory interface {
	// IdentityRepo returns an IdentityRepository bound to the current transaction.
	IdentityRepo() IdentityRepository

	// AddressRepo returns an AddressRepository bound to the current transaction.
	AddressRepo() AddressRepository

	// ProviderRepo returns a ProviderRepository bound to the current transaction.
	ProviderRepo() ProviderRepository

	// CollectionRepo returns a CollectionRepository bound to the current transaction.
	CollectionRepo() CollectionRepository

	// EngagementRepo returns an EngagementRepository bound to the current transaction.
	EngagementRepo() EngagementRepository
}
