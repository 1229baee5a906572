package mocks

import (
	"github.com/stretchr/testify/mock"
)

// MockKeyValueStore is a mock implementation of port.KeyValueStore.
type MockKeyValueStore struct {
	mock.Mock
}

func (m *MockKeyValueStore) Get(key string) ([]byte, error) {
	args := m.Called(key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

func (m *MockKeyValueStore) Put(key string, value []byte) error {
	args := m.Called(key, value)
	return args.Error(0)
}
