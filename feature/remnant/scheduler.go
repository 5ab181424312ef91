package remnant

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"apo-analyzer/feature/remnant/models"

	rcron "github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Scheduler periodically analyzes the newest upload and saves a run for it.
// An upload is analyzed once; later ticks skip it until a newer one arrives.
type Scheduler struct {
	service *Service
	logger  *zap.Logger
	cron    *rcron.Cron
	timeout time.Duration

	mu       sync.Mutex
	lastSeen uint
}

// NewScheduler registers the job under a six-field cron spec (seconds first).
func NewScheduler(service *Service, spec string, logger *zap.Logger) (*Scheduler, error) {
	s := &Scheduler{
		service: service,
		logger:  logger,
		cron:    rcron.New(rcron.WithSeconds()),
		timeout: 5 * time.Minute,
	}
	if _, err := s.cron.AddFunc(spec, s.tick); err != nil {
		return nil, fmt.Errorf("invalid schedule %q: %w", spec, err)
	}
	return s, nil
}

// Start runs the cron loop in the background.
func (s *Scheduler) Start() {
	s.cron.Start()
	s.logger.Info("Remnant scheduler started")
}

// Stop stops the cron loop and waits for a running job to finish.
func (s *Scheduler) Stop() {
	<-s.cron.Stop().Done()
	s.logger.Info("Remnant scheduler stopped")
}

func (s *Scheduler) tick() {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	run, err := s.RunOnce(ctx)
	switch {
	case errors.Is(err, ErrNotFound):
		s.logger.Debug("No uploads to analyze")
	case err != nil:
		s.logger.Error("Scheduled analysis failed", zap.Error(err))
	case run == nil:
		s.logger.Debug("Newest upload already analyzed")
	default:
		s.logger.Info("Scheduled analysis saved",
			zap.Uint("run_id", run.ID),
			zap.String("status", run.Status),
			zap.Int("remnant_sites", run.RemnantSites),
		)
	}
}

// RunOnce analyzes the newest upload and saves a run. It returns a nil run
// when that upload was already handled by this scheduler.
func (s *Scheduler) RunOnce(ctx context.Context) (*models.AnalysisRun, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	up, err := s.service.LatestUpload(ctx)
	if err != nil {
		return nil, err
	}
	if up.ID == s.lastSeen {
		return nil, nil
	}

	a, err := s.service.analyzeStored(ctx, up)
	if err != nil {
		return nil, err
	}
	run, err := s.service.SaveRun(ctx, a, up.OrigFilename, &up.ID)
	if err != nil {
		return nil, err
	}
	s.lastSeen = up.ID
	return run, nil
}
