package jobs

import (
	"fmt"
)

// JobManager coordinates the application's scheduled jobs and provides a
// single start and stop point for the composition root.
type JobManager struct {
	assignmentJob *CarrierAssignmentJob
}

// NewJobManager creates a manager over the given jobs.
func NewJobManager(assignmentJob *CarrierAssignmentJob) *JobManager {
	return &JobManager{assignmentJob: assignmentJob}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.assignmentJob.Start(); err != nil {
		return fmt.Errorf("failed to start carrier assignment job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs.
func (jm *JobManager) StopAll() {
	jm.assignmentJob.Stop()
}
