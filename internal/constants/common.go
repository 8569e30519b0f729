package constants

// Common string constants used throughout the codebase
const (
	// Log levels
	ErrorLevel = "error"

	// Environments
	ProdEnvironment = "prod"
	TestEnvironment = "test"

	// Payment status values
	PaymentStatusOpen = "open"
	PaymentStatusPaid = "paid"
)
