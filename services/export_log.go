package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/navedhana-tech/navedhana-cms-backend/models"
)

// ExportLog audits report exports
type ExportLog interface {
	Record(ctx context.Context, e *models.ReportExport) error
	Recent(ctx context.Context, limit int) ([]models.ReportExport, error)
}

// PgxExportLog keeps the audit trail in the admin Postgres database
type PgxExportLog struct {
	pool *pgxpool.Pool
}

func NewPgxExportLog(pool *pgxpool.Pool) *PgxExportLog {
	return &PgxExportLog{pool: pool}
}

// EnsureSchema creates the report_exports table if missing
func (l *PgxExportLog) EnsureSchema(ctx context.Context) error {
	_, err := l.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS report_exports (
			id          UUID PRIMARY KEY,
			admin_id    TEXT NOT NULL,
			admin_email TEXT NOT NULL DEFAULT '',
			report      TEXT NOT NULL,
			format      TEXT NOT NULL,
			filters     JSONB NOT NULL DEFAULT '{}'::jsonb,
			row_count   INTEGER NOT NULL DEFAULT 0,
			ip_address  TEXT NOT NULL DEFAULT '',
			created_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
	`)
	return err
}

func (l *PgxExportLog) Record(ctx context.Context, e *models.ReportExport) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now().UTC()
	}
	filters, err := json.Marshal(e.Filters)
	if err != nil {
		return fmt.Errorf("marshal filters: %w", err)
	}

	query := `
		INSERT INTO report_exports (
			id, admin_id, admin_email, report, format, filters, row_count, ip_address, created_at
		) VALUES ($1, $2, $3, $4, $5, $6::jsonb, $7, $8, $9)
	`
	_, err = l.pool.Exec(ctx, query,
		e.ID.String(),
		e.AdminID,
		e.AdminEmail,
		e.Report,
		e.Format,
		string(filters),
		e.RowCount,
		e.IPAddress,
		e.CreatedAt,
	)
	if err != nil {
		log.Printf("❌ Failed to record report export: %v", err)
		return err
	}

	log.Printf("✅ Report export logged: %s/%s by %s", e.Report, e.Format, e.AdminID)
	return nil
}

func (l *PgxExportLog) Recent(ctx context.Context, limit int) ([]models.ReportExport, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	rows, err := l.pool.Query(ctx, `
		SELECT id, admin_id, admin_email, report, format, filters, row_count, ip_address, created_at
		FROM report_exports
		ORDER BY created_at DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("query report exports: %w", err)
	}
	defer rows.Close()

	exports := make([]models.ReportExport, 0)
	for rows.Next() {
		var e models.ReportExport
		var filters []byte
		if err := rows.Scan(&e.ID, &e.AdminID, &e.AdminEmail, &e.Report, &e.Format,
			&filters, &e.RowCount, &e.IPAddress, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan report export: %w", err)
		}
		if len(filters) > 0 {
			_ = json.Unmarshal(filters, &e.Filters)
		}
		exports = append(exports, e)
	}
	return exports, rows.Err()
}

var (
	exportLogMu sync.RWMutex
	exportLog   ExportLog
)

func SetExportLog(l ExportLog) {
	exportLogMu.Lock()
	defer exportLogMu.Unlock()
	exportLog = l
}

// GetExportLog returns the installed audit log, nil when exports are not audited
func GetExportLog() ExportLog {
	exportLogMu.RLock()
	defer exportLogMu.RUnlock()
	return exportLog
}
