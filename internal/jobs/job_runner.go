package jobs

import (
	"fleethire-backend/internal/config"
	"fleethire-backend/internal/logger"
	"fleethire-backend/internal/repository"
	"fleethire-backend/internal/service"
)

// JobRunner coordinates all scheduled jobs
type JobRunner struct {
	quoteRepo repository.QuoteRepository
	emailSvc  service.EmailService
	config    *config.Config
}

// NewJobRunner creates a new job runner with all dependencies
func NewJobRunner(quoteRepo repository.QuoteRepository, emailSvc service.EmailService, cfg *config.Config) *JobRunner {
	return &JobRunner{
		quoteRepo: quoteRepo,
		emailSvc:  emailSvc,
		config:    cfg,
	}
}

// Config exposes the configuration for the scheduler
func (jr *JobRunner) Config() *config.Config {
	return jr.config
}

// runWithRecovery wraps job execution with panic recovery
func (jr *JobRunner) runWithRecovery(jobName string, jobFunc func()) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("Job panicked", "job", jobName, "panic", r)
		}
	}()

	logger.Info("Starting job", "job", jobName)
	jobFunc()
	logger.Info("Job completed", "job", jobName)
}

// RunAllNightlyJobs runs all nightly jobs (for manual execution)
func (jr *JobRunner) RunAllNightlyJobs() {
	jr.ExpireQuotes()
	jr.SendExpiryReminders()
}
