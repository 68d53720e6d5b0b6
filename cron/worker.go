// File: cron/worker.go
package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/hibiken/asynq"

	"tutorhive/config"
	"tutorhive/models"
	"tutorhive/services/payment"
	"tutorhive/services/tasks"
)

// InitDisputeWorker runs the async worker that closes disputes whose response
// deadline has passed. Runs in the background; the caller keeps the process
// alive.
func InitDisputeWorker(paymentSvc payment.PaymentService) {
	redisOpts := asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisTasksDB,
	}

	srv := asynq.NewServer(
		redisOpts,
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(tasks.TypeDisputeDeadline, handleDisputeDeadline(paymentSvc))

	go func() {
		log.Println("[DisputeWorker] starting async worker")
		const maxAttempts = 5

		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[DisputeWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)

				if attempts == maxAttempts {
					log.Fatal("[DisputeWorker] max retry attempts reached, exiting")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

func handleDisputeDeadline(paymentSvc payment.PaymentService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p models.DisputeDeadlinePayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[DisputeWorker] invalid payload: %v", err)
			return err
		}

		if err := paymentSvc.CloseExpiredDispute(ctx, p.DisputeID); err != nil {
			log.Printf("[DisputeWorker] failed to close dispute %s: %v", p.DisputeID, err)
			return err
		}
		return nil
	}
}
