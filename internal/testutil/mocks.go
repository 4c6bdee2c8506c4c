package testutil

import (
	"relaybot/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockUserStore is a mock for repository.UserStore
type MockUserStore struct {
	mock.Mock
}

func (m *MockUserStore) Load() ([]domain.User, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserStore) Save(users []domain.User) error {
	args := m.Called(users)
	return args.Error(0)
}

// MockCourier is a mock for service.Courier
type MockCourier struct {
	mock.Mock
}

func (m *MockCourier) SendText(chatID int64, text string) (int, error) {
	args := m.Called(chatID, text)
	return args.Int(0), args.Error(1)
}

func (m *MockCourier) SendHTML(chatID int64, text string) (int, error) {
	args := m.Called(chatID, text)
	return args.Int(0), args.Error(1)
}

func (m *MockCourier) SendContent(chatID int64, content domain.Content) (int, error) {
	args := m.Called(chatID, content)
	return args.Int(0), args.Error(1)
}
