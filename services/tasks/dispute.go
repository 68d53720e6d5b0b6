// File: services/tasks/dispute.go
package tasks

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"

	"tutorhive/config"
	"tutorhive/models"
)

// TypeDisputeDeadline is the task type scheduled for each dispute's response
// deadline.
const TypeDisputeDeadline = "dispute:deadline"

// NewDisputeDeadlineTask builds the asynq task that fires when a dispute's
// response window closes.
func NewDisputeDeadlineTask(payload models.DisputeDeadlinePayload, fireAt time.Time) (*asynq.Task, []asynq.Option, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return nil, nil, err
	}
	task := asynq.NewTask(TypeDisputeDeadline, b)
	opts := []asynq.Option{asynq.ProcessAt(fireAt)}

	return task, opts, nil
}

// Enqueuer wraps the asynq client used to schedule deadline tasks.
type Enqueuer struct {
	client *asynq.Client
}

// NewEnqueuer connects an asynq client to the tasks Redis DB.
func NewEnqueuer() *Enqueuer {
	return &Enqueuer{client: asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisTasksDB,
	})}
}

// EnqueueDisputeDeadline schedules the auto-close task for a dispute.
func (e *Enqueuer) EnqueueDisputeDeadline(disputeID string, deadline time.Time) error {
	task, opts, err := NewDisputeDeadlineTask(models.DisputeDeadlinePayload{DisputeID: disputeID}, deadline)
	if err != nil {
		return err
	}
	_, err = e.client.Enqueue(task, opts...)
	return err
}

// Close releases the underlying asynq client.
func (e *Enqueuer) Close() error {
	return e.client.Close()
}
