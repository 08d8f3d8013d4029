package scheduler

import (
	"context"
	"fmt"
	"log"

	"CoinPulse/internal/job"

	"github.com/robfig/cron/v3"
)

// Scheduler runs the ETL job on a cron cadence.
type Scheduler struct {
	Cron *cron.Cron
	Job  *job.Job
	Ctx  context.Context
}

// NewScheduler creates a new Scheduler.
func NewScheduler(ctx context.Context, j *job.Job) *Scheduler {
	return &Scheduler{
		Cron: cron.New(cron.WithSeconds()),
		Job:  j,
		Ctx:  ctx,
	}
}

// Register registers the ETL run at the given cron spec.
func (s *Scheduler) Register(spec string) error {
	if _, err := s.Cron.AddFunc(spec, s.run); err != nil {
		return fmt.Errorf("register etl task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	log.Println("[INFO] scheduler stopped")
}

// RunNow executes the job immediately (for manual trigger / RUN_ON_START).
func (s *Scheduler) RunNow() {
	s.run()
}

func (s *Scheduler) run() {
	log.Println("[INFO] running scheduled etl")
	if err := s.Job.Run(s.Ctx); err != nil {
		log.Printf("[ERROR] etl run: %v", err)
	}
}
