package reconcile

import (
	"context"
	"time"

	"github.com/nprnops/routing-reconciler/internal/domain/values"
)

// Service defines the reconciliation service interface
type Service interface {
	// ReassignNumbers rewrites routing ownership for the expanded set in the
	// relational numbers store
	ReassignNumbers(ctx context.Context, input string, dryRun bool, enpTarget string) (*ReassignResult, error)
	// InvalidateRoutingCache deletes the expanded set's routing cache entries
	InvalidateRoutingCache(ctx context.Context, input string, dryRun bool) (*InvalidateResult, error)
	// CleanupProvisioning removes the expanded set's provisioning rows
	CleanupProvisioning(ctx context.Context, input string, dryRun bool) (*CleanupResult, error)
}

// NumberRepository defines the interface for the relational numbers store
type NumberRepository interface {
	// ReassignRouting issues one bulk update for all rows whose dn is in dns
	// and returns the dn values the store actually reports as updated. Absent
	// rows are silently skipped; a proper subset is a valid outcome.
	ReassignRouting(ctx context.Context, dns []string, profile values.EnpProfile) ([]string, error)
}

// RoutingCache defines the interface for the key-value routing cache
type RoutingCache interface {
	// DeleteKeys deletes every key in one batched round-trip and returns
	// per-key deletion counts (0 or 1) in the same order as keys.
	DeleteKeys(ctx context.Context, keys []string) ([]int64, error)
	// DB returns the configured logical database index.
	DB() int
}

// ProvisioningRepository defines the interface for the provisioning store
type ProvisioningRepository interface {
	// SnapshotByTargets returns full row snapshots for every row whose target
	// number is in targets.
	SnapshotByTargets(ctx context.Context, targets []string) ([]ProvisioningRow, error)
	// DeleteByTargets deletes all rows whose target number is in targets
	// inside one local transaction and returns the store-reported row count.
	DeleteByTargets(ctx context.Context, targets []string) (int64, error)
}

// ProvisioningRow is a snapshot of one cli_provisioning row.
type ProvisioningRow struct {
	ID           int64     `json:"id"`
	TargetNumber string    `json:"target_number"`
	TargetSystem string    `json:"target_system"`
	Tenant       string    `json:"tenant"`
	NPRN         string    `json:"nprn"`
	InsertDate   time.Time `json:"insert_date"`
}

// ReassignResult is the outcome of a relational reassignment.
// UpdatedDNs is nil in dry-run mode; live mode carries the subset of DNs the
// store reported as updated.
type ReassignResult struct {
	DryRun    bool   `json:"dry_run"`
	EnpTarget string `json:"enp_target"`
	Preview
	SystemID   int      `json:"system_id"`
	NPRN       int      `json:"nprn"`
	UpdatedDNs []string `json:"updated_dns"`
}

// InvalidateResult is the outcome of a cache invalidation.
// DeletedCounts is nil in dry-run mode; live mode carries one count per cache
// key, in key order.
type InvalidateResult struct {
	DryRun bool `json:"dry_run"`
	Preview
	RedisDB       int     `json:"redis_db"`
	DeletedCounts []int64 `json:"deleted_counts"`
}

// CleanupResult is the outcome of a provisioning cleanup. Rows is the
// snapshot taken before any mutation; WouldDeleteCount is its length.
// DeletedCount is set only in live mode and may diverge from the snapshot
// length under concurrent external mutation.
type CleanupResult struct {
	DryRun bool `json:"dry_run"`
	Preview
	WouldDeleteCount int               `json:"would_delete_count"`
	Rows             []ProvisioningRow `json:"rows"`
	DeletedCount     *int64            `json:"deleted_count,omitempty"`
}
