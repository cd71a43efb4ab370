package rest

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/nprnops/routing-reconciler/internal/service/reconcile"
)

// reconcile.Service mock for tests
type MockService struct {
	mock.Mock
}

func (m *MockService) ReassignNumbers(ctx context.Context, input string, dryRun bool, enpTarget string) (*reconcile.ReassignResult, error) {
	args := m.Called(ctx, input, dryRun, enpTarget)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*reconcile.ReassignResult), args.Error(1)
}

func (m *MockService) InvalidateRoutingCache(ctx context.Context, input string, dryRun bool) (*reconcile.InvalidateResult, error) {
	args := m.Called(ctx, input, dryRun)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*reconcile.InvalidateResult), args.Error(1)
}

func (m *MockService) CleanupProvisioning(ctx context.Context, input string, dryRun bool) (*reconcile.CleanupResult, error) {
	args := m.Called(ctx, input, dryRun)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*reconcile.CleanupResult), args.Error(1)
}
