package interfaces

import (
	"context"

	"github.com/aikidobw/seminar-api/internal/types/business"
	"github.com/google/uuid"
)

// RegistrationStore persists registrations. Implementations own the
// transactional boundary: a registration write and its computed fee must be
// committed atomically, and rolled back together if a downstream step fails.
type RegistrationStore interface {
	CreateRegistration(ctx context.Context, registration *business.Registration) error
	UpdateRegistration(ctx context.Context, registration *business.Registration) error
	GetRegistration(ctx context.Context, id uuid.UUID) (*business.Registration, error)
}

// NotificationSender delivers registration confirmations. Delivery mechanics
// (mail transport, templates) live outside this module.
type NotificationSender interface {
	SendRegistrationConfirmation(ctx context.Context, confirmation business.RegistrationConfirmation) error
}
