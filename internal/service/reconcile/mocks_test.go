package reconcile

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/nprnops/routing-reconciler/internal/domain/values"
)

// NumberRepository mock for tests
type MockNumberRepository struct {
	mock.Mock
}

func (m *MockNumberRepository) ReassignRouting(ctx context.Context, dns []string, profile values.EnpProfile) ([]string, error) {
	args := m.Called(ctx, dns, profile)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

// RoutingCache mock for tests
type MockRoutingCache struct {
	mock.Mock
}

func (m *MockRoutingCache) DeleteKeys(ctx context.Context, keys []string) ([]int64, error) {
	args := m.Called(ctx, keys)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int64), args.Error(1)
}

func (m *MockRoutingCache) DB() int {
	args := m.Called()
	return args.Int(0)
}

// ProvisioningRepository mock for tests
type MockProvisioningRepository struct {
	mock.Mock
}

func (m *MockProvisioningRepository) SnapshotByTargets(ctx context.Context, targets []string) ([]ProvisioningRow, error) {
	args := m.Called(ctx, targets)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ProvisioningRow), args.Error(1)
}

func (m *MockProvisioningRepository) DeleteByTargets(ctx context.Context, targets []string) (int64, error) {
	args := m.Called(ctx, targets)
	return args.Get(0).(int64), args.Error(1)
}
