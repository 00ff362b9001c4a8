package errs

// Categories shared across layers. Concrete errors are Mark-ed with one of
// these so the transport can map them without knowing every sentinel.
var (
	ErrNotFound         = New("entity not found")
	ErrLockContention   = New("lock contention")
	ErrStockExhausted   = New("stock exhausted")
	ErrWindowViolation  = New("outside sale window")
	ErrAlreadyPurchased = New("already purchased")
	ErrTransientStore   = New("transient store failure")
	ErrSerialization    = New("cache payload corrupted")
	ErrUnauthenticated  = New("unauthenticated")
	ErrInvalidInput     = New("invalid input")

	ErrDatabaseOperationFailed = New("database operation failed")
)
