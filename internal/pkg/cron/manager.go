package cron

import (
	log "log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/LucaDevAr/futcuervo-backend/internal/job"
)

type Manager struct {
	engine        *cron.Cron
	dailyGamesJob *job.DailyGamesJob
}

// NewCronManager schedules against the canonical game-day timezone so
// "@daily" fires at the same midnight the caches roll over on.
func NewCronManager(loc *time.Location, dailyGamesJob *job.DailyGamesJob) *Manager {
	return &Manager{
		engine:        cron.New(cron.WithSeconds(), cron.WithLocation(loc)),
		dailyGamesJob: dailyGamesJob,
	}
}

func (s *Manager) RegisterJobs() error {
	if _, err := s.engine.AddJob("@daily", s.dailyGamesJob); err != nil {
		return err
	}
	return nil
}

func (s *Manager) Start() {
	log.Info("Cron engine started")
	s.engine.Start()
}

func (s *Manager) Stop() {
	log.Info("Cron engine stopped")
	s.engine.Stop()
}
