package reservations

import (
	"context"
	"errors"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/neillbeauty/neill-beauty-api/internal/notify"
	"github.com/neillbeauty/neill-beauty-api/internal/observability/metrics"
	"github.com/neillbeauty/neill-beauty-api/pkg/logging"
)

var bookingTracer = otel.Tracer("neillbeauty.internal.reservations")

// Service wraps the repository with logging, booking metrics and the
// acknowledgement email.
type Service struct {
	repo    *Repository
	metrics *metrics.BookingMetrics
	sender  notify.EmailSender
	logger  *logging.Logger
}

// NewService constructs a reservations service.
func NewService(repo *Repository, m *metrics.BookingMetrics, logger *logging.Logger) *Service {
	if repo == nil {
		panic("reservations: repository required")
	}
	if logger == nil {
		logger = logging.Default()
	}
	return &Service{repo: repo, metrics: m, logger: logger}
}

// WithEmailSender enables the booking acknowledgement email.
func (s *Service) WithEmailSender(sender notify.EmailSender) *Service {
	s.sender = sender
	return s
}

// Create records a booking request, see Repository.Create.
func (s *Service) Create(ctx context.Context, req *CreateReservationRequest) (*Reservation, error) {
	ctx, span := bookingTracer.Start(ctx, "reservations.create")
	defer span.End()
	span.SetAttributes(
		attribute.String("booking.service_type", req.ServiceType),
		attribute.Bool("booking.scheduled", req.Scheduled()),
	)

	rv, err := s.repo.Create(ctx, req)
	if err != nil {
		span.RecordError(err)
		switch {
		case errors.Is(err, ErrSlotUnavailable):
			s.metrics.ObserveConflict("unavailable")
			s.logger.Info("booking rejected, slot unavailable",
				"date", req.PreferredDate, "time", req.PreferredTime)
		case errors.Is(err, ErrSlotConflict):
			s.metrics.ObserveConflict("conflict")
			s.logger.Info("booking rejected, slot already booked",
				"date", req.PreferredDate, "time", req.PreferredTime)
		}
		return nil, err
	}

	s.metrics.ObserveCreated(rv.Scheduled())
	s.logger.Info("reservation created",
		"id", rv.ID,
		"service_type", rv.ServiceType,
		"date", rv.PreferredDate,
		"time", rv.PreferredTime,
	)

	// acknowledgement is best-effort, the booking stands either way
	if s.sender != nil {
		msg := notify.NewReservationReceived(notify.ReservationDetails{
			Name:        rv.Name,
			Email:       rv.Email,
			ServiceName: rv.ServiceName,
			Date:        rv.PreferredDate,
			Time:        rv.PreferredTime,
		})
		if err := s.sender.Send(ctx, msg); err != nil {
			s.logger.Error("failed to send booking acknowledgement", "id", rv.ID, "error", err)
		}
	}
	return rv, nil
}

// UpdateStatus applies an administrative transition, see Repository.UpdateStatus.
func (s *Service) UpdateStatus(ctx context.Context, id int64, next Status) (*Reservation, error) {
	rv, err := s.repo.UpdateStatus(ctx, id, next)
	if err != nil {
		return nil, err
	}
	s.logger.Info("reservation status updated", "id", id, "status", next)
	return rv, nil
}
