package app

import (
	"context"
	"time"
)

type HealthStatus struct {
	Status     string            `json:"status"`
	Timestamp  time.Time         `json:"timestamp"`
	Components map[string]string `json:"components"`
}

type HealthService struct {
	svc *Service
}

func NewHealthService(svc *Service) *HealthService {
	return &HealthService{svc: svc}
}

func (s *HealthService) Check(ctx context.Context) HealthStatus {
	status := HealthStatus{
		Status:     "up",
		Timestamp:  time.Now().UTC(),
		Components: make(map[string]string),
	}

	if s.svc == nil {
		status.Status = "down"
		status.Components["service"] = "missing"
		return status
	}

	// Extractor
	if s.svc.extractor == nil {
		status.Status = "degraded"
		status.Components["extractor"] = "missing"
	} else {
		dialect := s.svc.opts.Dialect
		if dialect == "" {
			dialect = "javascript"
		}
		status.Components["extractor"] = "ok (" + dialect + ")"
	}

	// Linter
	if s.svc.opts.LintEnabled {
		status.Components["linter"] = "ok"
	} else {
		status.Components["linter"] = "disabled"
	}

	return status
}
