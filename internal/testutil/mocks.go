package testutil

import (
	"context"

	"github.com/aikidobw/seminar-api/internal/types/business"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// MockRegistrationStore provides a mock for the registration store collaborator
type MockRegistrationStore struct {
	mock.Mock
}

func (m *MockRegistrationStore) CreateRegistration(ctx context.Context, registration *business.Registration) error {
	args := m.Called(ctx, registration)
	return args.Error(0)
}

func (m *MockRegistrationStore) UpdateRegistration(ctx context.Context, registration *business.Registration) error {
	args := m.Called(ctx, registration)
	return args.Error(0)
}

func (m *MockRegistrationStore) GetRegistration(ctx context.Context, id uuid.UUID) (*business.Registration, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*business.Registration), args.Error(1)
}

// MockNotificationSender provides a mock for the notification collaborator
type MockNotificationSender struct {
	mock.Mock
}

func (m *MockNotificationSender) SendRegistrationConfirmation(ctx context.Context, confirmation business.RegistrationConfirmation) error {
	args := m.Called(ctx, confirmation)
	return args.Error(0)
}
