package persistence

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockWebhookEventRepository is a mock implementation of the WebhookEventRepository interface
type MockWebhookEventRepository struct {
	mock.Mock
}

func (m *MockWebhookEventRepository) Record(ctx context.Context, eventID, eventType string) (bool, error) {
	args := m.Called(ctx, eventID, eventType)
	return args.Bool(0), args.Error(1)
}
