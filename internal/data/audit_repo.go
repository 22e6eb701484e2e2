package data

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/target/settle-ui-api/internal/data/pgxutil"
	"github.com/target/settle-ui-api/internal/ports"
)

// Shared sentinel errors for data-layer repositories.
var (
	ErrAuditActorRequired  = errors.New("audit actor is required")
	ErrAuditActionRequired = errors.New("audit action is required")
	ErrAuditDuplicate      = errors.New("audit entry already recorded")
)

// auditColumns defines the column list for audit SELECT queries to ensure consistent field mapping.
const auditColumns = `id, actor, action, subject, detail, at`

// AuditRepo persists the local audit trail of operator actions. The
// back office keeps the authoritative records; this table only supports
// local troubleshooting and is pruned periodically.
type AuditRepo struct {
	DB           *sql.DB
	timeProvider TimeProvider
}

// NewAuditRepo creates a new AuditRepo instance with the given database connection.
func NewAuditRepo(db *sql.DB) *AuditRepo {
	return &AuditRepo{
		DB:           db,
		timeProvider: &RealTimeProvider{},
	}
}

var _ ports.AuditLog = (*AuditRepo)(nil)

// EnsureSchema creates the audit table when it does not exist yet.
func (r *AuditRepo) EnsureSchema(ctx context.Context) error {
	_, err := r.DB.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS audit_entries (
			id      BIGSERIAL PRIMARY KEY,
			actor   TEXT NOT NULL,
			action  TEXT NOT NULL,
			subject TEXT NOT NULL DEFAULT '',
			detail  TEXT NOT NULL DEFAULT '',
			at      TIMESTAMPTZ NOT NULL DEFAULT now()
		);
		CREATE INDEX IF NOT EXISTS audit_entries_at_idx ON audit_entries (at DESC);
		CREATE UNIQUE INDEX IF NOT EXISTS audit_entries_natural_key
			ON audit_entries (actor, action, subject, at);
	`)
	if err != nil {
		return fmt.Errorf("ensure audit schema: %w", err)
	}
	return nil
}

// Record inserts one audit entry. The entry's At field is ignored; the
// repository stamps its own clock so ordering is consistent. The same
// actor performing the same action on the same subject in the same
// instant is a replayed write and comes back as ErrAuditDuplicate.
func (r *AuditRepo) Record(ctx context.Context, entry ports.AuditEntry) error {
	if entry.Actor == "" {
		return ErrAuditActorRequired
	}
	if entry.Action == "" {
		return ErrAuditActionRequired
	}

	_, err := r.DB.ExecContext(ctx,
		`INSERT INTO audit_entries (actor, action, subject, detail, at)
		 VALUES ($1, $2, $3, $4, $5)`,
		entry.Actor, entry.Action, entry.Subject, entry.Detail, r.timeProvider.Now().UTC(),
	)
	if err != nil {
		return r.handleRecordError(err)
	}
	return nil
}

func (r *AuditRepo) handleRecordError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
		return ErrAuditDuplicate
	}
	return fmt.Errorf("record audit entry: %w", err)
}

// Recent returns the newest entries, most recent first.
func (r *AuditRepo) Recent(ctx context.Context, limit int) ([]ports.AuditEntry, error) {
	if limit < 1 {
		limit = 50
	}

	rows, err := r.DB.QueryContext(ctx,
		`SELECT `+auditColumns+` FROM audit_entries ORDER BY at DESC, id DESC LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("list audit entries: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var entries []ports.AuditEntry
	for rows.Next() {
		var e ports.AuditEntry
		if scanErr := rows.Scan(&e.ID, &e.Actor, &e.Action, &e.Subject, &e.Detail, &e.At); scanErr != nil {
			return nil, fmt.Errorf("scan audit entry: %w", scanErr)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate audit entries: %w", err)
	}
	return entries, nil
}

// Prune deletes everything but the newest keep entries and reports how
// many rows went away. The count and the delete run in one transaction
// so concurrent writers cannot skew the result.
func (r *AuditRepo) Prune(ctx context.Context, keep int) (int64, error) {
	if keep < 0 {
		keep = 0
	}

	var removed int64
	err := pgxutil.WithSQLTx(ctx, r.DB, pgxutil.SQLTxConfig{Fn: func(tx *sql.Tx) error {
		res, execErr := tx.ExecContext(ctx,
			`DELETE FROM audit_entries
			 WHERE id NOT IN (
				SELECT id FROM audit_entries ORDER BY at DESC, id DESC LIMIT $1
			 )`, keep)
		if execErr != nil {
			return fmt.Errorf("prune audit entries: %w", execErr)
		}
		removed, execErr = res.RowsAffected()
		return execErr
	}})
	if err != nil {
		return 0, err
	}
	return removed, nil
}
