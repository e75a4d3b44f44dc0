package service

import (
	"fmt"
	"io"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"datasieve/internal/config"
	"datasieve/internal/domain"
	"datasieve/internal/engine"
	"datasieve/internal/ingest"
	"datasieve/internal/report"
	"datasieve/internal/schema"
)

// ValidationRun pairs a validation result with its request metadata.
type ValidationRun struct {
	ID        uuid.UUID                `json:"id"`
	Filename  string                   `json:"filename"`
	Industry  string                   `json:"industry"`
	CreatedAt time.Time                `json:"created_at"`
	Result    *domain.ValidationResult `json:"result"`
}

// ValidationService defines the validation workflow contract.
type ValidationService interface {
	ValidateUpload(r io.Reader, filename, industry string) (*ValidationRun, error)
	ValidateDataset(ds *domain.Dataset, filename, industry string) *ValidationRun
	GetRun(id uuid.UUID) (*ValidationRun, error)
	ExportReport(id uuid.UUID, w io.Writer) (*ValidationRun, error)
	Schemas() []*schema.Schema
}

type validationService struct {
	orchestrator *engine.Orchestrator
	registry     *schema.Registry
	maxRows      int
	maxRuns      int

	mu    sync.Mutex
	runs  map[uuid.UUID]*ValidationRun
	order []uuid.UUID
}

// NewValidationService creates a ValidationService over the given schema
// registry. Completed runs are kept in a bounded in-memory store so the
// API can re-fetch results and export reports.
func NewValidationService(registry *schema.Registry, cfg *config.EngineConfig) ValidationService {
	return &validationService{
		orchestrator: engine.NewOrchestrator(registry, engine.NewOverlapDetector(registry)),
		registry:     registry,
		maxRows:      cfg.MaxRows,
		maxRuns:      cfg.MaxRuns,
		runs:         make(map[uuid.UUID]*ValidationRun),
	}
}

func (s *validationService) ValidateUpload(r io.Reader, filename, industry string) (*ValidationRun, error) {
	ds, err := ingest.ReadFile(r, filename, s.maxRows)
	if err != nil {
		return nil, fmt.Errorf("ingesting %s: %w", filename, err)
	}
	return s.ValidateDataset(ds, filename, industry), nil
}

func (s *validationService) ValidateDataset(ds *domain.Dataset, filename, industry string) *ValidationRun {
	result := s.orchestrator.Validate(ds, industry)
	run := &ValidationRun{
		ID:        uuid.New(),
		Filename:  filename,
		Industry:  industry,
		CreatedAt: time.Now().UTC(),
		Result:    result,
	}
	s.store(run)
	log.Printf("service.ValidationService: run %s file=%s industry=%s valid=%t errors=%d warnings=%d score=%.2f",
		run.ID, filename, industry, result.IsValid, len(result.Errors), len(result.Warnings),
		result.Summary.DataQualityScore)
	return run
}

func (s *validationService) GetRun(id uuid.UUID) (*ValidationRun, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	run, ok := s.runs[id]
	if !ok {
		return nil, domain.ErrRunNotFound
	}
	return run, nil
}

func (s *validationService) ExportReport(id uuid.UUID, w io.Writer) (*ValidationRun, error) {
	run, err := s.GetRun(id)
	if err != nil {
		return nil, err
	}
	if err := report.Export(w, run.Result); err != nil {
		return nil, fmt.Errorf("exporting report for run %s: %w", id, err)
	}
	return run, nil
}

func (s *validationService) Schemas() []*schema.Schema {
	return s.registry.All()
}

// store adds a run, evicting the oldest when the store is full.
func (s *validationService) store(run *ValidationRun) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.maxRuns > 0 && len(s.order) >= s.maxRuns {
		oldest := s.order[0]
		s.order = s.order[1:]
		delete(s.runs, oldest)
	}
	s.runs[run.ID] = run
	s.order = append(s.order, run.ID)
}
