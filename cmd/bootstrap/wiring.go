package bootstrap

import (
	"context"
	"fmt"
	"time"

	"mediconnect/config"
	"mediconnect/internal/domain/repository"
	"mediconnect/internal/service"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// directoryRefreshTimeout bounds one scheduled reload of the doctor directory
const directoryRefreshTimeout = 30 * time.Second

// newBookingSubmitter picks the submission seam for BOOKING_MODE
func newBookingSubmitter(
	mode string,
	db *gorm.DB,
	log *logrus.Logger,
	bookingRepo repository.BookingRepository,
	auditService service.AuditService,
	directory service.DoctorDirectory,
) service.BookingSubmitter {
	switch mode {
	case config.BookingModePersist:
		return service.NewPersistentSubmitter(db, log, bookingRepo, auditService, directory)
	case config.BookingModeAcknowledge:
		return service.NewAcknowledgingSubmitter(log)
	default:
		log.Warnf("Unknown booking mode %q, falling back to %s", mode, config.BookingModeAcknowledge)
		return service.NewAcknowledgingSubmitter(log)
	}
}

// newDirectoryRefresher schedules periodic directory reloads. It returns nil when no schedule is configured.
func newDirectoryRefresher(log *logrus.Logger, loc *time.Location, spec string, directory service.DoctorDirectory) (*cron.Cron, error) {
	if spec == "" {
		return nil, nil
	}

	c := cron.New(cron.WithLocation(loc))
	_, err := c.AddFunc(spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), directoryRefreshTimeout)
		defer cancel()

		if err := directory.Load(ctx); err != nil {
			log.Warnf("Failed to refresh doctor directory: %+v", err)
		}
	})
	if err != nil {
		return nil, fmt.Errorf("invalid DIRECTORY_REFRESH_CRON %q: %w", spec, err)
	}

	log.Infof("Doctor directory refresh scheduled: %s", spec)
	return c, nil
}
