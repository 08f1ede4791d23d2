package testutil

import (
	"context"

	"github.com/stretchr/testify/mock"

	"mwtrack/internal/domain"
)

// MockBackend is a testify mock of domain.Backend.
type MockBackend struct {
	mock.Mock
}

var _ domain.Backend = (*MockBackend)(nil)

func (m *MockBackend) NewCall(
	endpoint string, keyUser domain.KeyUser, fields map[string]any,
) (domain.Call, error) {
	args := m.Called(endpoint, keyUser, fields)
	return args.Get(0).(domain.Call), args.Error(1)
}

func (m *MockBackend) Send(ctx context.Context, call domain.Call) (domain.Envelope, error) {
	args := m.Called(ctx, call)
	return args.Get(0).(domain.Envelope), args.Error(1)
}

func (m *MockBackend) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockBackend) Login(ctx context.Context, email, password string) (domain.User, error) {
	args := m.Called(ctx, email, password)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *MockBackend) Products(ctx context.Context, keyUser domain.KeyUser) ([]domain.Product, error) {
	args := m.Called(ctx, keyUser)
	return args.Get(0).([]domain.Product), args.Error(1)
}

func (m *MockBackend) ProductDetail(
	ctx context.Context, keyUser domain.KeyUser, productID string,
) (domain.ProductDetail, error) {
	args := m.Called(ctx, keyUser, productID)
	return args.Get(0).(domain.ProductDetail), args.Error(1)
}

func (m *MockBackend) Cart(ctx context.Context, keyUser domain.KeyUser) (domain.Cart, error) {
	args := m.Called(ctx, keyUser)
	return args.Get(0).(domain.Cart), args.Error(1)
}

func (m *MockBackend) AddToCart(
	ctx context.Context, keyUser domain.KeyUser, variantID string, quantity int,
) (string, error) {
	args := m.Called(ctx, keyUser, variantID, quantity)
	return args.String(0), args.Error(1)
}

func (m *MockBackend) Orders(ctx context.Context, keyUser domain.KeyUser) ([]domain.Order, error) {
	args := m.Called(ctx, keyUser)
	return args.Get(0).([]domain.Order), args.Error(1)
}

func (m *MockBackend) TrackingLogs(
	ctx context.Context, keyUser domain.KeyUser,
) ([]domain.TrackingLog, error) {
	args := m.Called(ctx, keyUser)
	return args.Get(0).([]domain.TrackingLog), args.Error(1)
}
