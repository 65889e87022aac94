package postgres

import (
	"context"
	"database/sql"
	"strings"
	"time"

	domain "github.com/dealcheck/contract-audit/internal/domain/analysis"
)

type FailureRepository struct {
	db *sql.DB
}

func NewFailureRepository(db *sql.DB) *FailureRepository { return &FailureRepository{db: db} }

func (r *FailureRepository) Save(ctx context.Context, f *domain.FailureRecord) error {
	const q = `
INSERT INTO analysis_failures
  (tenant_id, file_name, category, message, created_at)
VALUES ($1,$2,$3,$4,$5)
`
	tenant := stringOrDash(f.TenantID)
	fileName := stringOrDash(f.FileName)
	category := stringOrDash(f.Category)
	msg := f.Message
	if strings.TrimSpace(msg) == "" {
		msg = "-"
	}
	created := f.CreatedAt
	if created.IsZero() {
		created = time.Now()
	}
	_, err := r.db.ExecContext(ctx, q, tenant, fileName, category, msg, created)
	return err
}

func (r *FailureRepository) Latest(ctx context.Context, tenant string, limit int) ([]*domain.FailureRecord, error) {
	if limit <= 0 {
		limit = 20
	}
	const q = `
SELECT id, tenant_id, file_name, category, message, created_at
FROM analysis_failures
WHERE tenant_id = $1
ORDER BY created_at DESC, id DESC
LIMIT $2;`
	rows, err := r.db.QueryContext(ctx, q, tenant, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []*domain.FailureRecord
	for rows.Next() {
		var f domain.FailureRecord
		var created time.Time
		if err := rows.Scan(&f.ID, &f.TenantID, &f.FileName, &f.Category, &f.Message, &created); err != nil {
			return nil, err
		}
		f.CreatedAt = created
		out = append(out, &f)
	}
	return out, rows.Err()
}
