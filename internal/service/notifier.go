package service

import (
	"context"

	"mediconnect/internal/domain/entity"
	"mediconnect/pkg/metrics"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Notifier is the user-visible notification channel of the appointment page
type Notifier interface {
	Notify(ctx context.Context, sessionID uuid.UUID, notice entity.Notice)
}

type logNotifier struct {
	log     *logrus.Logger
	metrics *metrics.Collector
}

func NewLogNotifier(log *logrus.Logger, collector *metrics.Collector) Notifier {
	return &logNotifier{
		log:     log,
		metrics: collector,
	}
}

func (n *logNotifier) Notify(ctx context.Context, sessionID uuid.UUID, notice entity.Notice) {
	n.log.WithFields(logrus.Fields{
		"session_id": sessionID.String(),
		"kind":       notice.Kind,
	}).Info(notice.Message)

	if n.metrics != nil {
		n.metrics.RecordNotice(string(notice.Kind))
	}
}
