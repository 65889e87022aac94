package analysis

import (
	"context"
	"io"
)

// Repository port for persisting and querying analysis records
type Repository interface {
	Save(ctx context.Context, rec *Record) error
	Get(ctx context.Context, tenant string, id RecordID) (*Record, error)
	Paginate(ctx context.Context, tenant string, page, pageSize int) ([]*Record, error)
	Count(ctx context.Context, tenant string) (int64, error)
}

// FailureRepository port for the failure audit log
type FailureRepository interface {
	Save(ctx context.Context, f *FailureRecord) error
	Latest(ctx context.Context, tenant string, limit int) ([]*FailureRecord, error)
}

// ArtifactStore port for keeping the analyzed document bytes
type ArtifactStore interface {
	Put(ctx context.Context, key string, body io.Reader, size int64, contentType string) (string, error)
}
