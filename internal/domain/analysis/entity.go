package analysis

import "time"

// RecordID identifier type
type RecordID string

// Record represents a completed contract analysis stored for auditing and retrieval
type Record struct {
	ID          RecordID  `json:"id"`
	TenantID    string    `json:"tenant_id"`
	FileName    string    `json:"file_name"`
	MediaType   string    `json:"media_type"`
	ArtifactURL string    `json:"artifact_url,omitempty"`
	Result      string    `json:"result"` // JSON string from the model
	Score       int       `json:"score"`
	CreatedAt   time.Time `json:"created_at"`
}

// FailureRecord represents a persisted analysis failure entry
type FailureRecord struct {
	ID        int64     `json:"id"`
	TenantID  string    `json:"tenant_id"`
	FileName  string    `json:"file_name,omitempty"`
	Category  string    `json:"category"` // validation | throttled | model_transition | parse | external | unknown
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}
