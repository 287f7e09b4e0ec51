// Package scheduler drives recurring batch prediction runs off a cron
// schedule.
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"github.com/yourusername/gridiron-edge/internal/batch"
	"github.com/yourusername/gridiron-edge/internal/metrics"
	"github.com/yourusername/gridiron-edge/internal/repository"
)

// Scheduler manages scheduled prediction runs
type Scheduler struct {
	cron            *cron.Cron
	runner          *batch.Runner
	games           repository.GameRepository
	resolveLine     batch.LineResolver
	logger          *logrus.Logger
	mu              sync.RWMutex
	isRunning       bool
	jobIDs          []cron.EntryID
	gracefulTimeout time.Duration
}

// NewScheduler creates a new scheduler
func NewScheduler(runner *batch.Runner, games repository.GameRepository, resolveLine batch.LineResolver, logger *logrus.Logger) *Scheduler {
	if logger == nil {
		logger = logrus.New()
	}
	return &Scheduler{
		cron:            cron.New(cron.WithLocation(time.UTC)),
		runner:          runner,
		games:           games,
		resolveLine:     resolveLine,
		logger:          logger,
		jobIDs:          make([]cron.EntryID, 0),
		gracefulTimeout: 30 * time.Second,
	}
}

// SchedulePredictionRun schedules a recurring batch prediction over all
// games kicking off within the lookahead window.
func (s *Scheduler) SchedulePredictionRun(cronExpression string, lookaheadHours int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return fmt.Errorf("cannot schedule job while scheduler is running")
	}

	if lookaheadHours <= 0 {
		lookaheadHours = 72
	}

	jobFunc := func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Hour)
		defer cancel()

		start := time.Now()
		end := start.Add(time.Duration(lookaheadHours) * time.Hour)

		games, err := s.games.GetByKickoffWindow(ctx, start, end)
		if err != nil {
			s.logger.WithError(err).Error("Scheduled prediction run failed to load games")
			return
		}
		metrics.UpdateScheduledGames(float64(len(games)))
		if len(games) == 0 {
			s.logger.Debug("No games in prediction window")
			return
		}

		s.logger.WithFields(logrus.Fields{
			"games":     len(games),
			"window_to": end.Format(time.RFC3339),
		}).Info("Starting scheduled prediction run")

		outcomes := s.runner.Run(ctx, games, s.resolveLine)

		failures := 0
		for _, outcome := range outcomes {
			if outcome.Err != nil {
				failures++
				s.logger.WithError(outcome.Err).WithField("game_id", outcome.Game.ID).Warn("Game prediction failed")
			}
		}
		s.logger.WithFields(logrus.Fields{
			"games":    len(outcomes),
			"failures": failures,
		}).Info("Scheduled prediction run completed")
	}

	entryID, err := s.cron.AddFunc(cronExpression, jobFunc)
	if err != nil {
		return fmt.Errorf("failed to add job: %w", err)
	}

	s.jobIDs = append(s.jobIDs, entryID)
	s.logger.WithField("cron", cronExpression).Info("Scheduled prediction run")

	return nil
}

// Start starts the scheduler
func (s *Scheduler) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isRunning {
		return fmt.Errorf("scheduler is already running")
	}

	if len(s.jobIDs) == 0 {
		return fmt.Errorf("no jobs scheduled")
	}

	s.cron.Start()
	s.isRunning = true
	s.logger.WithField("jobs", len(s.jobIDs)).Info("Scheduler started")

	return nil
}

// Stop gracefully stops the scheduler
func (s *Scheduler) Stop() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isRunning {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), s.gracefulTimeout)
	defer cancel()

	select {
	case <-s.cron.Stop().Done():
	case <-ctx.Done():
		s.logger.Warn("Scheduler stop timed out with jobs still running")
	}
	s.isRunning = false
	s.logger.Info("Scheduler stopped")

	return nil
}

// IsRunning returns whether the scheduler is currently running
func (s *Scheduler) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.isRunning
}

// GetNextRun returns the time of the next scheduled job run
func (s *Scheduler) GetNextRun() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.isRunning || len(s.jobIDs) == 0 {
		return time.Time{}
	}

	nextRun := time.Time{}
	for _, jobID := range s.jobIDs {
		entry := s.cron.Entry(jobID)
		if entry.Valid() {
			nextTime := entry.Next
			if nextRun.IsZero() || nextTime.Before(nextRun) {
				nextRun = nextTime
			}
		}
	}

	return nextRun
}

// Entries returns information about scheduled entries
func (s *Scheduler) Entries() []cron.Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := make([]cron.Entry, 0, len(s.jobIDs))
	for _, jobID := range s.jobIDs {
		entry := s.cron.Entry(jobID)
		if entry.Valid() {
			entries = append(entries, entry)
		}
	}

	return entries
}
