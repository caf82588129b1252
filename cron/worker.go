package cron

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"dojovcp/config"
	"dojovcp/models"
	"dojovcp/services/booking"
	"dojovcp/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

const TypePaymentReminder = "reminder:payment"

// paymentReminderPayload is the task body for a pending-payment nudge.
type paymentReminderPayload struct {
	ReservationID string    `json:"reservation_id"`
	Code          string    `json:"code"`
	Start         time.Time `json:"start"`
}

func redisOpts() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderDB,
	}
}

// InitReminderWorker runs the async reminder worker in the background.
func InitReminderWorker(svc booking.BookingService) {
	srv := asynq.NewServer(
		redisOpts(),
		asynq.Config{
			Concurrency: 10,
			Queues: map[string]int{
				"default": 1,
			},
		},
	)

	mux := asynq.NewServeMux()
	mux.HandleFunc(TypePaymentReminder, handlePaymentReminder(svc))

	go func() {
		log.Println("[ReminderWorker] starting async worker...")
		const maxAttempts = 5
		for attempts := 1; attempts <= maxAttempts; attempts++ {
			if err := srv.Run(mux); err != nil {
				log.Printf("[ReminderWorker] attempt %d/%d failed to start worker: %v", attempts, maxAttempts, err)
				if attempts == maxAttempts {
					log.Fatal("[ReminderWorker] max retry attempts reached, exiting")
				}
				time.Sleep(time.Duration(attempts*2) * time.Second)
			} else {
				break
			}
		}
	}()
}

// EnqueuePaymentReminder schedules a nudge shortly before the session starts.
// Reminders that would fire in the past are skipped.
func EnqueuePaymentReminder(res *models.Reservation) {
	fireAt := res.Start.Add(-time.Duration(config.AppConfig.ReminderLeadMin) * time.Minute)
	if !fireAt.After(time.Now()) {
		return
	}
	payload, err := json.Marshal(paymentReminderPayload{
		ReservationID: res.ID,
		Code:          res.Code,
		Start:         res.Start,
	})
	if err != nil {
		return
	}

	client := asynq.NewClient(redisOpts())
	defer client.Close()

	task := asynq.NewTask(TypePaymentReminder, payload)
	if _, err := client.Enqueue(task, asynq.ProcessAt(fireAt)); err != nil {
		utils.GetLogger().Warn("failed to enqueue payment reminder",
			zap.String("reservation", res.ID), zap.Error(err))
	}
}

// handlePaymentReminder fires the nudge. The reservation is re-read at fire
// time; anything no longer pending needs no reminder. The reminder never
// mutates the reservation.
func handlePaymentReminder(svc booking.BookingService) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		var p paymentReminderPayload
		if err := json.Unmarshal(task.Payload(), &p); err != nil {
			log.Printf("[ReminderHandler] invalid payload: %v", err)
			return err
		}

		res, err := svc.Get(ctx, p.ReservationID)
		if err != nil {
			log.Printf("[ReminderHandler] reservation %s gone: %v", p.ReservationID, err)
			return nil
		}
		if res.Status != models.StatusPending {
			return nil
		}

		utils.GetLogger().Info("payment reminder due",
			zap.String("reservation", res.ID),
			zap.String("code", res.Code),
			zap.Time("start", res.Start))
		return nil
	}
}
