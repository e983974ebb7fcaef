package cron

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"pawbook/config"
	"pawbook/models"
	"pawbook/utils"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

const TypeAppointmentReminder = "appointment:reminder"

// How far ahead of the appointment the reminder fires.
const reminderLead = 24 * time.Hour

// ReminderPayload is the task body queued per appointment.
type ReminderPayload struct {
	AppointmentID string `json:"appointmentId"`
	UserID        string `json:"userId"`
	PetName       string `json:"petName"`
	ServiceID     string `json:"serviceId"`
	StartsAt      string `json:"startsAt"` // RFC 3339
}

func redisOpts() asynq.RedisClientOpt {
	return asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisReminderQueueDB,
	}
}

// AsynqReminderScheduler queues appointment reminders on Redis.
type AsynqReminderScheduler struct {
	client *asynq.Client
}

func NewAsynqReminderScheduler() *AsynqReminderScheduler {
	return &AsynqReminderScheduler{client: asynq.NewClient(redisOpts())}
}

// ScheduleReminder enqueues a reminder ahead of the appointment start. An
// appointment starting sooner than the lead fires immediately.
func (s *AsynqReminderScheduler) ScheduleReminder(ctx context.Context, appt models.Appointment) error {
	startsAt := appt.StartAt(config.Location())
	payload, err := json.Marshal(ReminderPayload{
		AppointmentID: appt.ID,
		UserID:        appt.UserID,
		PetName:       appt.PetName,
		ServiceID:     appt.ServiceID,
		StartsAt:      startsAt.Format(time.RFC3339),
	})
	if err != nil {
		return fmt.Errorf("failed to marshal reminder payload: %w", err)
	}

	fireAt := startsAt.Add(-reminderLead)
	task := asynq.NewTask(TypeAppointmentReminder, payload)
	if fireAt.Before(time.Now()) {
		_, err = s.client.EnqueueContext(ctx, task)
	} else {
		_, err = s.client.EnqueueContext(ctx, task, asynq.ProcessAt(fireAt))
	}
	if err != nil {
		return fmt.Errorf("failed to enqueue reminder: %w", err)
	}
	return nil
}

// InitReminderWorker runs the async worker in background.
func InitReminderWorker() {
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
	mux.HandleFunc(TypeAppointmentReminder, handleReminderTask)

	go func() {
		log.Println("[ReminderWorker] starting async worker...")
		if err := srv.Run(mux); err != nil {
			log.Fatalf("[ReminderWorker] failed to start worker: %v", err)
		}
	}()
}

func handleReminderTask(ctx context.Context, task *asynq.Task) error {
	var p ReminderPayload
	if err := json.Unmarshal(task.Payload(), &p); err != nil {
		return fmt.Errorf("invalid reminder payload: %w", err)
	}

	// Delivery itself belongs to the messaging service; this side records the
	// trigger so it can be picked up by the outbound channel.
	utils.GetLogger().Info("Appointment reminder due",
		zap.String("appointment", p.AppointmentID),
		zap.String("user", p.UserID),
		zap.String("pet", p.PetName),
		zap.String("startsAt", p.StartsAt))
	return nil
}
