package payment

import (
	"github.com/stretchr/testify/mock"
	"github.com/voyagehub/payment-ledger/internal/domain/entity"
)

// MockGateway is a mock implementation of the payment Gateway interface
type MockGateway struct {
	mock.Mock
}

func (m *MockGateway) ParseEvent(payload []byte, signature string) (*entity.WebhookEvent, error) {
	args := m.Called(payload, signature)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.WebhookEvent), args.Error(1)
}
