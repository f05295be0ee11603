package contextkeys

type ContextKey string

const (
	// DBContextKey carries the request-scoped *gorm.DB (pool or open
	// transaction) through gin and request contexts.
	DBContextKey ContextKey = "db"
)
