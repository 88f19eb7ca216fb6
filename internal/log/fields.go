package log

// Common field names for structured logging
const (
	FieldComponent     = "component"
	FieldOperation     = "operation"
	FieldError         = "error"
	FieldTransactionID = "transaction_id"
	FieldAmountCents   = "amount_cents"
	FieldCategory      = "category"
	FieldCategoryID    = "category_id"
	FieldType          = "type"
	FieldBackend       = "backend"
	FieldPath          = "path"
	FieldCount         = "count"
	FieldExchange      = "exchange"
	FieldQueue         = "queue"
)

// Components defines standard component names
const (
	ComponentApp      = "app"
	ComponentLedger   = "ledger"
	ComponentStorage  = "storage"
	ComponentRegistry = "registry"
	ComponentAMQP     = "amqp"
	ComponentCLI      = "cli"
)

// Operations defines standard operation names
const (
	OpLoad    = "load"
	OpAdd     = "add"
	OpRemove  = "remove"
	OpList    = "list"
	OpPersist = "persist"
	OpPublish = "publish"
	OpStartup = "startup"
)
