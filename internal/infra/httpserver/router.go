package httpserver

import (
	"database/sql"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	appanalysis "github.com/dealcheck/contract-audit/internal/application/analysis"
	domain "github.com/dealcheck/contract-audit/internal/domain/analysis"
	"github.com/dealcheck/contract-audit/internal/domain/contract"
	"github.com/dealcheck/contract-audit/internal/middleware"
)

type Router struct {
	analysisSvc *appanalysis.Service
	metrics     *middleware.Metrics
}

func NewRouter(analysisSvc *appanalysis.Service, metrics *middleware.Metrics) http.Handler {
	r := &Router{analysisSvc: analysisSvc, metrics: metrics}
	mux := chi.NewRouter()

	mux.Route("/v1/{tenant}", func(rt chi.Router) {
		rt.Use(requireTenant)
		rt.Post("/contracts/analyze", r.handleAnalyze)
		rt.Get("/contracts/analyses", r.wrap(r.handleList))
		rt.Get("/contracts/analyses/{id}", r.wrap(r.handleGet))
		rt.Get("/contracts/failures", r.wrap(r.handleFailures))
	})

	return mux
}

func requireTenant(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		tenant := chi.URLParam(req, "tenant")
		if err := middleware.ValidateTenantID(tenant); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		// When auth bound a tenant to the API key, the URL must agree.
		if bound := middleware.GetTenantFromContext(req.Context()); bound != "" && bound != tenant {
			http.Error(w, "API key is not authorized for this tenant", http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, req)
	})
}

type handlerFunc func(http.ResponseWriter, *http.Request) error

func (r *Router) wrap(h handlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		if err := h(w, req); err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				http.Error(w, "not found", http.StatusNotFound)
				return
			}
			http.Error(w, err.Error(), http.StatusInternalServerError)
		}
	}
}

// POST /v1/{tenant}/contracts/analyze
// Multipart form with one "file" field; responds with the Outcome JSON.
func (r *Router) handleAnalyze(w http.ResponseWriter, req *http.Request) {
	tenant := chi.URLParam(req, "tenant")
	start := time.Now()

	file := readUpload(req)
	out := r.analysisSvc.Analyze(req.Context(), tenant, file)

	if r.metrics != nil {
		outcome := "success"
		if !out.Success {
			outcome = string(out.Kind)
		}
		r.metrics.ObserveAnalysis("api", outcome, time.Since(start))
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusFor(out))
	_ = json.NewEncoder(w).Encode(out)
}

// readUpload extracts the uploaded file; a nil return means no file was
// attached, which the validator reports as the missing-file failure.
func readUpload(req *http.Request) *contract.UploadedFile {
	f, header, err := req.FormFile("file")
	if err != nil {
		return nil
	}
	defer f.Close()

	// Read at most one byte past the limit; the validator rejects on size,
	// so there is no reason to buffer an arbitrarily large body.
	content, err := io.ReadAll(io.LimitReader(f, contract.MaxUploadBytes+1))
	if err != nil {
		return nil
	}

	size := header.Size
	if size == 0 {
		size = int64(len(content))
	}
	return &contract.UploadedFile{
		Name:      middleware.SanitizeString(header.Filename),
		MediaType: header.Header.Get("Content-Type"),
		Size:      size,
		Content:   content,
	}
}

func statusFor(out domain.Outcome) int {
	if out.Success {
		return http.StatusOK
	}
	switch out.Kind {
	case domain.FailureValidation:
		return http.StatusBadRequest
	case domain.FailureThrottled:
		return http.StatusTooManyRequests
	case domain.FailureParse:
		return http.StatusUnprocessableEntity
	case domain.FailureModelTransition:
		return http.StatusServiceUnavailable
	default:
		return http.StatusBadGateway
	}
}

// GET /v1/{tenant}/contracts/analyses?page=&page_size=
func (r *Router) handleList(w http.ResponseWriter, req *http.Request) error {
	tenant := chi.URLParam(req, "tenant")
	page, _ := strconv.Atoi(req.URL.Query().Get("page"))
	size, _ := strconv.Atoi(req.URL.Query().Get("page_size"))
	size = middleware.ValidatePageSize(size)

	list, err := r.analysisSvc.ListRecords(req.Context(), tenant, page, size)
	if err != nil {
		return err
	}
	w.Header().Set("Content-Type", "application/json")
	return json.NewEncoder(w).Encode(list)
}

// GET /v1/{tenant}/contracts/analyses/{id}
func (r *Router) handleGet(w http.ResponseWriter, req *http.Request) error {
	tenant := chi.URLParam(req, "tenant")
	id := chi.URLParam(req, "id")
	if err := middleware.ValidateRecordID(id); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return nil
	}

	rec, err := r.analysisSvc.GetRecord(req.Context(), tenant, domain.RecordID(id))
	if err != nil {
		return err
	}

	w.Header().Set("Content-Type", "application/json")
	return json.NewEncoder(w).Encode(rec)
}

// GET /v1/{tenant}/contracts/failures?limit=20
func (r *Router) handleFailures(w http.ResponseWriter, req *http.Request) error {
	tenant := chi.URLParam(req, "tenant")
	limit, _ := strconv.Atoi(req.URL.Query().Get("limit"))

	list, err := r.analysisSvc.ListFailures(req.Context(), tenant, limit)
	if err != nil {
		return err
	}
	w.Header().Set("Content-Type", "application/json")
	return json.NewEncoder(w).Encode(list)
}
