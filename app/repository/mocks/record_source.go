package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"thesis-progress-dashboard/app/models"
)

// MockRecordSource is a testify mock of repository.RecordSource.
type MockRecordSource struct {
	mock.Mock
}

func (m *MockRecordSource) Fetch(ctx context.Context) ([]models.StudentRecord, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.StudentRecord), args.Error(1)
}
