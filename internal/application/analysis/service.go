package analysis

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/dealcheck/contract-audit/internal/application"
	domai "github.com/dealcheck/contract-audit/internal/domain/ai"
	domain "github.com/dealcheck/contract-audit/internal/domain/analysis"
	"github.com/dealcheck/contract-audit/internal/domain/contract"
)

// User-facing failure messages, keyed by classification.
const (
	MsgThrottled       = "Too many requests right now. Please wait a moment and try again."
	MsgModelTransition = "The analysis model is being updated. Please retry shortly."
	MsgParseFailure    = "Unable to analyze this document. Please try again with a clearer image or PDF."
	MsgUnknown         = "An unexpected error occurred during analysis. Please try again."
)

// Service implements the contract-analysis use case: validate the upload,
// send it to the model, parse the structured result, classify any failure.
// Safe for concurrent use; each call owns its own buffers.
type Service struct {
	ai        domai.Client
	repo      domain.Repository
	failures  domain.FailureRepository
	artifacts domain.ArtifactStore
	clock     application.Clock
	logger    *slog.Logger
	prompt    string
}

func NewService(
	client domai.Client,
	repo domain.Repository,
	failures domain.FailureRepository,
	artifacts domain.ArtifactStore,
	clock application.Clock,
	logger *slog.Logger,
	prompt string,
) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		ai:        client,
		repo:      repo,
		failures:  failures,
		artifacts: artifacts,
		clock:     clock,
		logger:    logger,
		prompt:    prompt,
	}
}

// Analyze runs the whole pipeline for one uploaded file and always returns
// an Outcome; no error escapes to the caller. No retry at any step: a failed
// attempt is terminal for this request.
func (s *Service) Analyze(ctx context.Context, tenant string, file *contract.UploadedFile) domain.Outcome {
	if err := contract.Validate(file); err != nil {
		return s.fail(ctx, tenant, file, domain.FailureValidation, err.Error())
	}

	encoded := base64.StdEncoding.EncodeToString(file.Content)
	raw, err := s.ai.GenerateContent(ctx, s.prompt, domai.InlinePart{
		Data:      encoded,
		MediaType: file.MediaType,
	})
	if err != nil {
		kind, msg := classifyModelError(err)
		return s.fail(ctx, tenant, file, kind, msg)
	}

	candidate := ExtractJSON(raw)
	var result domain.Result
	if err := json.Unmarshal([]byte(candidate), &result); err != nil {
		s.logger.Warn("model response did not parse", "tenant", tenant, "err", err)
		return s.fail(ctx, tenant, file, domain.FailureParse, MsgParseFailure)
	}
	if err := result.Validate(); err != nil {
		s.logger.Warn("model response failed schema validation", "tenant", tenant, "err", err)
		return s.fail(ctx, tenant, file, domain.FailureParse, MsgParseFailure)
	}

	s.store(ctx, tenant, file, candidate, &result)
	return domain.Succeed(&result)
}

// GetRecord returns one stored analysis record.
func (s *Service) GetRecord(ctx context.Context, tenant string, id domain.RecordID) (*domain.Record, error) {
	return s.repo.Get(ctx, tenant, id)
}

// ListRecords returns a page of stored analyses, newest first.
func (s *Service) ListRecords(ctx context.Context, tenant string, page, pageSize int) (*domain.PaginatedResult, error) {
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 20
	}
	records, err := s.repo.Paginate(ctx, tenant, page, pageSize)
	if err != nil {
		return nil, err
	}
	total, err := s.repo.Count(ctx, tenant)
	if err != nil {
		return nil, err
	}
	totalPages := int((total + int64(pageSize) - 1) / int64(pageSize))
	return &domain.PaginatedResult{
		Data:       records,
		Page:       page,
		PageSize:   pageSize,
		Total:      total,
		TotalPages: totalPages,
	}, nil
}

// ListFailures returns the latest failure audit entries for a tenant.
func (s *Service) ListFailures(ctx context.Context, tenant string, limit int) ([]*domain.FailureRecord, error) {
	return s.failures.Latest(ctx, tenant, limit)
}

// classifyModelError maps a model-call failure onto a user-facing category.
// Tagged variants first; the wrapped message passes through otherwise.
func classifyModelError(err error) (domain.FailureKind, string) {
	switch {
	case errors.Is(err, domai.ErrModelDeprecated):
		return domain.FailureModelTransition, MsgModelTransition
	case errors.Is(err, domai.ErrRateLimited):
		return domain.FailureThrottled, MsgThrottled
	case err != nil:
		return domain.FailureExternal, err.Error()
	default:
		return domain.FailureUnknown, MsgUnknown
	}
}

// store persists the record and artifact. Best effort: the caller already
// has a successful Outcome and persistence problems must not revoke it.
func (s *Service) store(ctx context.Context, tenant string, file *contract.UploadedFile, resultJSON string, result *domain.Result) {
	if s.repo == nil {
		return
	}
	id := domain.RecordID(uuid.New().String())
	rec := &domain.Record{
		ID:        id,
		TenantID:  tenant,
		FileName:  file.Name,
		MediaType: file.MediaType,
		Result:    resultJSON,
		Score:     result.TrustworthinessScore,
		CreatedAt: s.clock.Now(),
	}

	if s.artifacts != nil {
		key := fmt.Sprintf("%s/contracts/%s_%s", tenant, id, sanitizeFileName(file.Name))
		url, err := s.artifacts.Put(ctx, key, bytes.NewReader(file.Content), int64(len(file.Content)), file.MediaType)
		if err != nil {
			s.logger.Warn("artifact upload failed", "tenant", tenant, "key", key, "err", err)
		} else {
			rec.ArtifactURL = url
		}
	}

	if err := s.repo.Save(ctx, rec); err != nil {
		s.logger.Warn("analysis record save failed", "tenant", tenant, "id", id, "err", err)
	}
}

func (s *Service) fail(ctx context.Context, tenant string, file *contract.UploadedFile, kind domain.FailureKind, msg string) domain.Outcome {
	if s.failures != nil {
		name := ""
		if file != nil {
			name = file.Name
		}
		f := &domain.FailureRecord{
			TenantID:  tenant,
			FileName:  name,
			Category:  string(kind),
			Message:   msg,
			CreatedAt: s.clock.Now(),
		}
		if err := s.failures.Save(ctx, f); err != nil {
			s.logger.Warn("failure audit save failed", "tenant", tenant, "err", err)
		}
	}
	return domain.Fail(kind, msg)
}

func sanitizeFileName(name string) string {
	base := filepath.Base(name)
	base = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			return r
		case r == '.', r == '-', r == '_':
			return r
		default:
			return '_'
		}
	}, base)
	if base == "" || base == "." {
		return "document.bin"
	}
	return base
}
