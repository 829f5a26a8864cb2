package service

import (
	"context"
	"encoding/json"
	"time"

	"meditrack/internal/domain/entity"
	"meditrack/pkg/datetime"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// NotificationChannel is the Redis pub/sub channel for appointment events.
const NotificationChannel = "meditrack:appointments"

const publishTimeout = 5 * time.Second

// AppointmentEvent is the payload published on every status change.
type AppointmentEvent struct {
	AppointmentID int    `json:"appointment_id"`
	Status        string `json:"status"`
	DateTime      string `json:"appointment_datetime"`
}

// AppointmentNotifier emits a log line and a Redis pub/sub event when an
// appointment changes status. All side effects are best-effort: failures
// are logged and never fail the triggering operation.
type AppointmentNotifier struct {
	log         *logrus.Logger
	redisClient *redis.Client
}

// NewAppointmentNotifier creates a notifier. redisClient may be nil, in
// which case only the log side effect happens.
func NewAppointmentNotifier(log *logrus.Logger, redisClient *redis.Client) *AppointmentNotifier {
	return &AppointmentNotifier{
		log:         log,
		redisClient: redisClient,
	}
}

// StatusChanged reports an appointment status transition.
func (n *AppointmentNotifier) StatusChanged(ctx context.Context, appointment *entity.Appointment) {
	switch appointment.Status {
	case entity.AppointmentStatusConfirmed:
		n.log.Infof("Appointment #%d confirmed for %s", appointment.ID, datetime.FormatDateTime(appointment.DateTime))
	case entity.AppointmentStatusCancelled:
		n.log.Infof("Appointment #%d cancelled", appointment.ID)
	default:
		n.log.Infof("Appointment #%d is now %s", appointment.ID, appointment.Status)
	}

	if n.redisClient == nil {
		return
	}

	event := AppointmentEvent{
		AppointmentID: appointment.ID,
		Status:        string(appointment.Status),
		DateTime:      datetime.FormatDateTime(appointment.DateTime),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		n.log.Warnf("Failed to encode appointment event: %+v", err)
		return
	}

	pubCtx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()
	if err := n.redisClient.Publish(pubCtx, NotificationChannel, payload).Err(); err != nil {
		n.log.Warnf("Failed to publish appointment event for #%d (non-fatal): %+v", appointment.ID, err)
	}
}
