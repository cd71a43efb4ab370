package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/go-sql-driver/mysql"
	"go.uber.org/zap"

	"github.com/nprnops/routing-reconciler/internal/domain/errors"
	"github.com/nprnops/routing-reconciler/internal/infrastructure/config"
	"github.com/nprnops/routing-reconciler/internal/service/reconcile"
)

// NewProvisioningDB opens the MySQL/MariaDB provisioning store. Host, user
// and database are all required.
func NewProvisioningDB(cfg *config.ProvisioningConfig, logger *zap.Logger) (*sql.DB, error) {
	if cfg.Host == "" || cfg.User == "" || cfg.Database == "" {
		return nil, errors.NewStoreConnectionMissingError("provisioning")
	}

	dsnCfg := mysql.NewConfig()
	dsnCfg.Net = "tcp"
	dsnCfg.Addr = fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
	dsnCfg.User = cfg.User
	dsnCfg.Passwd = cfg.Password
	dsnCfg.DBName = cfg.Database
	dsnCfg.ParseTime = true

	db, err := sql.Open("mysql", dsnCfg.FormatDSN())
	if err != nil {
		return nil, fmt.Errorf("opening provisioning store: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("pinging provisioning store: %w", err)
	}

	logger.Info("provisioning store connected",
		zap.String("addr", dsnCfg.Addr),
		zap.String("database", cfg.Database))

	return db, nil
}

// provisioningRepository implements reconcile.ProvisioningRepository.
type provisioningRepository struct {
	db     *sql.DB
	logger *zap.Logger
}

// NewProvisioningRepository creates a new provisioning store adapter.
func NewProvisioningRepository(db *sql.DB, logger *zap.Logger) reconcile.ProvisioningRepository {
	return &provisioningRepository{db: db, logger: logger}
}

// SnapshotByTargets captures full row snapshots for every row whose target
// number is in targets. The read runs outside any transaction; no lock is
// held for a later delete.
func (r *provisioningRepository) SnapshotByTargets(ctx context.Context, targets []string) ([]reconcile.ProvisioningRow, error) {
	if len(targets) == 0 {
		return []reconcile.ProvisioningRow{}, nil
	}

	query := fmt.Sprintf(
		`SELECT id, target_number, target_system, tenant, nprn, insert_date
		 FROM cli_provisioning WHERE target_number IN (%s)`,
		placeholders(len(targets)))

	rows, err := r.db.QueryContext(ctx, query, asArgs(targets)...)
	if err != nil {
		r.logger.Error("provisioning snapshot failed",
			zap.Int("targets", len(targets)),
			zap.Error(err))
		return nil, errors.NewStoreOperationFailedError("provisioning", err)
	}
	defer rows.Close()

	snapshot := make([]reconcile.ProvisioningRow, 0, len(targets))
	for rows.Next() {
		var row reconcile.ProvisioningRow
		if err := rows.Scan(&row.ID, &row.TargetNumber, &row.TargetSystem,
			&row.Tenant, &row.NPRN, &row.InsertDate); err != nil {
			return nil, errors.NewStoreOperationFailedError("provisioning", err)
		}
		snapshot = append(snapshot, row)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.NewStoreOperationFailedError("provisioning", err)
	}

	return snapshot, nil
}

// DeleteByTargets deletes all rows whose target number is in targets inside
// one local transaction: commit on success, rollback on any failure.
func (r *provisioningRepository) DeleteByTargets(ctx context.Context, targets []string) (int64, error) {
	if len(targets) == 0 {
		return 0, nil
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, errors.NewStoreOperationFailedError("provisioning", err)
	}

	query := fmt.Sprintf(
		`DELETE FROM cli_provisioning WHERE target_number IN (%s)`,
		placeholders(len(targets)))

	res, err := tx.ExecContext(ctx, query, asArgs(targets)...)
	if err != nil {
		tx.Rollback()
		r.logger.Error("provisioning delete failed, rolled back",
			zap.Int("targets", len(targets)),
			zap.Error(err))
		return 0, errors.NewStoreOperationFailedError("provisioning", err)
	}

	deleted, err := res.RowsAffected()
	if err != nil {
		tx.Rollback()
		return 0, errors.NewStoreOperationFailedError("provisioning", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, errors.NewStoreOperationFailedError("provisioning", err)
	}

	return deleted, nil
}

func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?,", n), ",")
}

func asArgs(targets []string) []interface{} {
	args := make([]interface{}, len(targets))
	for i, t := range targets {
		args[i] = t
	}
	return args
}
