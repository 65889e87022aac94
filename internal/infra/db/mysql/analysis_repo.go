package mysql

import (
	"context"
	"database/sql"
	"strings"
	"time"

	domain "github.com/dealcheck/contract-audit/internal/domain/analysis"
)

type AnalysisRepository struct {
	db *sql.DB
}

func NewAnalysisRepository(db *sql.DB) *AnalysisRepository {
	return &AnalysisRepository{db: db}
}

// Save inserts an analysis record
func (r *AnalysisRepository) Save(ctx context.Context, rec *domain.Record) error {
	const q = `
INSERT INTO contract_analyses
  (id, tenant_id, file_name, media_type, artifact_url, result_json, score, created_at)
VALUES (?,?,?,?,?,?,?,?)
ON DUPLICATE KEY UPDATE
  tenant_id=VALUES(tenant_id), file_name=VALUES(file_name), media_type=VALUES(media_type),
  artifact_url=VALUES(artifact_url), result_json=VALUES(result_json), score=VALUES(score);
`
	tenant := stringOrDash(rec.TenantID)
	fileName := stringOrDash(rec.FileName)
	result := rec.Result
	if strings.TrimSpace(result) == "" {
		// result_json column requires valid JSON; use empty object
		result = "{}"
	}
	createdAt := rec.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	_, err := r.db.ExecContext(ctx, q, rec.ID, tenant, fileName, rec.MediaType, rec.ArtifactURL, result, rec.Score, createdAt)
	return err
}

// Get returns one record by id scoped to tenant
func (r *AnalysisRepository) Get(ctx context.Context, tenant string, id domain.RecordID) (*domain.Record, error) {
	const q = `
SELECT id, tenant_id, file_name, media_type, artifact_url, result_json, score, created_at
FROM contract_analyses
WHERE tenant_id=? AND id=?;
`
	row := r.db.QueryRowContext(ctx, q, tenant, id)
	var rec domain.Record
	var created time.Time
	if err := row.Scan(&rec.ID, &rec.TenantID, &rec.FileName, &rec.MediaType, &rec.ArtifactURL, &rec.Result, &rec.Score, &created); err != nil {
		return nil, err
	}
	rec.CreatedAt = created
	return &rec, nil
}

// Paginate returns a page of analysis records ordered by created_at desc
func (r *AnalysisRepository) Paginate(ctx context.Context, tenant string, page, pageSize int) ([]*domain.Record, error) {
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 20
	}
	offset := (page - 1) * pageSize

	const q = `
SELECT id, tenant_id, file_name, media_type, artifact_url, result_json, score, created_at
FROM contract_analyses
WHERE tenant_id=?
ORDER BY created_at DESC, id DESC
LIMIT ? OFFSET ?;
`
	rows, err := r.db.QueryContext(ctx, q, tenant, pageSize, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*domain.Record
	for rows.Next() {
		var rec domain.Record
		var created time.Time
		if err := rows.Scan(&rec.ID, &rec.TenantID, &rec.FileName, &rec.MediaType, &rec.ArtifactURL, &rec.Result, &rec.Score, &created); err != nil {
			return nil, err
		}
		rec.CreatedAt = created
		out = append(out, &rec)
	}
	return out, rows.Err()
}

// Count returns the total number of records for a tenant
func (r *AnalysisRepository) Count(ctx context.Context, tenant string) (int64, error) {
	const q = `SELECT COUNT(*) FROM contract_analyses WHERE tenant_id=?;`
	var total int64
	if err := r.db.QueryRowContext(ctx, q, tenant).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}
