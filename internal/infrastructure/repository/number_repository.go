// Package repository implements the store adapters behind the reconciliation
// service's narrow interfaces.
package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/nprnops/routing-reconciler/internal/domain/errors"
	"github.com/nprnops/routing-reconciler/internal/domain/values"
	"github.com/nprnops/routing-reconciler/internal/service/reconcile"
)

// numberRepository implements reconcile.NumberRepository on PostgreSQL.
type numberRepository struct {
	pool   *pgxpool.Pool
	logger *zap.Logger
}

// NewNumberRepository creates a new numbers store adapter.
func NewNumberRepository(pool *pgxpool.Pool, logger *zap.Logger) reconcile.NumberRepository {
	return &numberRepository{pool: pool, logger: logger}
}

// The reservation timestamp is parked far in the future so the numbers stay
// reserved; the outporting timestamp is cleared because the numbers are back
// under local routing ownership.
const reassignQuery = `
	UPDATE numbers
	SET reservation_tstamp = '2050-01-01 00:00:00',
	    product_id = 1,
	    system_id = $1,
	    nprn = $2,
	    outporting_tstamp = NULL,
	    lastupdated_tstamp = NOW()
	WHERE dn = ANY($3)
	RETURNING dn
`

// ReassignRouting issues the single bulk update and returns the DNs the store
// reports as updated. DNs without a matching row are skipped, not an error.
func (r *numberRepository) ReassignRouting(ctx context.Context, dns []string, profile values.EnpProfile) ([]string, error) {
	rows, err := r.pool.Query(ctx, reassignQuery, profile.SystemID, profile.NPRN, dns)
	if err != nil {
		r.logger.Error("bulk reassign failed",
			zap.Int("dns", len(dns)),
			zap.Error(err))
		return nil, errors.NewStoreOperationFailedError("numbers", err)
	}
	defer rows.Close()

	updated := make([]string, 0, len(dns))
	for rows.Next() {
		var dn string
		if err := rows.Scan(&dn); err != nil {
			return nil, errors.NewStoreOperationFailedError("numbers", err)
		}
		updated = append(updated, dn)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.NewStoreOperationFailedError("numbers", err)
	}

	return updated, nil
}
