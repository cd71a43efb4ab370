// Package reconcile implements the three reconciliation operations that apply
// an expanded number set against the relational numbers store, the routing
// cache, and the provisioning store. Each operation supports a non-mutating
// dry-run mode and performs at most one mutating store interaction.
package reconcile

import (
	"context"

	"go.uber.org/zap"

	"github.com/nprnops/routing-reconciler/internal/domain/values"
)

// service implements the Service interface
type service struct {
	numberRepo       NumberRepository
	routingCache     RoutingCache
	provisioningRepo ProvisioningRepository
	logger           *zap.Logger
}

// NewService creates a new reconciliation service
func NewService(
	numberRepo NumberRepository,
	routingCache RoutingCache,
	provisioningRepo ProvisioningRepository,
	logger *zap.Logger,
) Service {
	return &service{
		numberRepo:       numberRepo,
		routingCache:     routingCache,
		provisioningRepo: provisioningRepo,
		logger:           logger,
	}
}

// ReassignNumbers looks up the ENP profile, builds the preview, and in live
// mode issues the single bulk update against the numbers store. Preview
// failures surface before any store is touched.
func (s *service) ReassignNumbers(ctx context.Context, input string, dryRun bool, enpTarget string) (*ReassignResult, error) {
	profile, err := values.EnpProfileFor(enpTarget)
	if err != nil {
		return nil, err
	}

	preview, err := BuildPreview(input)
	if err != nil {
		return nil, err
	}

	result := &ReassignResult{
		DryRun:    dryRun,
		EnpTarget: profile.Name,
		Preview:   *preview,
		SystemID:  profile.SystemID,
		NPRN:      profile.NPRN,
	}

	if dryRun {
		return result, nil
	}

	updated, err := s.numberRepo.ReassignRouting(ctx, preview.ExpandedDNs, profile)
	if err != nil {
		return nil, err
	}

	s.logger.Info("reassigned number routing",
		zap.String("enp_target", profile.Name),
		zap.Int("requested", preview.Count),
		zap.Int("updated", len(updated)))

	result.UpdatedDNs = updated
	return result, nil
}

// InvalidateRoutingCache builds the preview and in live mode deletes every
// derived cache key within a single batched round-trip. A key that does not
// exist counts as 0, never an error.
func (s *service) InvalidateRoutingCache(ctx context.Context, input string, dryRun bool) (*InvalidateResult, error) {
	preview, err := BuildPreview(input)
	if err != nil {
		return nil, err
	}

	result := &InvalidateResult{
		DryRun:  dryRun,
		Preview: *preview,
		RedisDB: s.routingCache.DB(),
	}

	if dryRun {
		return result, nil
	}

	counts, err := s.routingCache.DeleteKeys(ctx, preview.ExpandedRedisKeys)
	if err != nil {
		return nil, err
	}

	s.logger.Info("invalidated routing cache entries",
		zap.Int("keys", len(preview.ExpandedRedisKeys)),
		zap.Int64s("deleted_counts", counts))

	result.DeletedCounts = counts
	return result, nil
}

// CleanupProvisioning always snapshots the matching provisioning rows first,
// then in live mode deletes by the same target set inside one local
// transaction. The snapshot read and the delete are separate statements with
// no lock held between them; a concurrent external mutation in that window
// can make the deleted count diverge from the snapshot length.
func (s *service) CleanupProvisioning(ctx context.Context, input string, dryRun bool) (*CleanupResult, error) {
	preview, err := BuildPreview(input)
	if err != nil {
		return nil, err
	}

	rows, err := s.provisioningRepo.SnapshotByTargets(ctx, preview.ExpandedTargets)
	if err != nil {
		return nil, err
	}

	result := &CleanupResult{
		DryRun:           dryRun,
		Preview:          *preview,
		WouldDeleteCount: len(rows),
		Rows:             rows,
	}

	if dryRun {
		return result, nil
	}

	deleted, err := s.provisioningRepo.DeleteByTargets(ctx, preview.ExpandedTargets)
	if err != nil {
		return nil, err
	}

	s.logger.Info("cleaned up provisioning rows",
		zap.Int("snapshot", len(rows)),
		zap.Int64("deleted", deleted))

	result.DeletedCount = &deleted
	return result, nil
}
