package repository

// Factory describes access to different domain repositories.
type Factory interface {
	Users() UserRepository
	Orders() OrderRepository
	Workflow() WorkflowRepository
	Ledger() LedgerRepository
	Notifications() NotificationRepository
	Products() ProductRepository
}
