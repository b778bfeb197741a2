package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/1Burhanuddin/oneway-taxi-backend/internal/adapter/storage/postgres"
	"github.com/1Burhanuddin/oneway-taxi-backend/internal/core/domain"
	"github.com/1Burhanuddin/oneway-taxi-backend/internal/core/port"
)

// BookingService persists trip requests carrying a previously quoted
// price and feeds the admin console's live feed.
type BookingService struct {
	repo     postgres.Querier
	notifier port.BookingNotifier
	logger   *zap.Logger
}

func NewBookingService(repo postgres.Querier, notifier port.BookingNotifier, logger *zap.Logger) *BookingService {
	return &BookingService{repo: repo, notifier: notifier, logger: logger}
}

// Create stores the booking as PENDING and notifies the admin feed.
// Notification is best-effort; the booking has already landed when it
// fires.
func (s *BookingService) Create(ctx context.Context, arg postgres.CreateBookingParams) (domain.Booking, error) {
	if arg.Reference == "" {
		arg.Reference = newReference()
	}

	booking, err := s.repo.CreateBooking(ctx, arg)
	if err != nil {
		return domain.Booking{}, fmt.Errorf("create booking: %w", err)
	}

	if s.notifier != nil {
		s.notifier.BookingCreated(booking)
	}

	s.logger.Info("booking created",
		zap.Int64("booking_id", booking.ID),
		zap.String("reference", booking.Reference),
		zap.String("trip_type", string(booking.TripType)))

	return booking, nil
}

func (s *BookingService) Get(ctx context.Context, id int64) (domain.Booking, error) {
	return s.repo.GetBooking(ctx, id)
}

func (s *BookingService) List(ctx context.Context) ([]domain.Booking, error) {
	return s.repo.ListBookings(ctx)
}

func (s *BookingService) UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus) (domain.Booking, error) {
	booking, err := s.repo.UpdateBookingStatus(ctx, id, status)
	if err != nil {
		return domain.Booking{}, err
	}
	if s.notifier != nil {
		s.notifier.BookingUpdated(booking)
	}
	return booking, nil
}

// newReference builds the short booking code shown to customers.
func newReference() string {
	id := strings.ToUpper(uuid.NewString())
	return "OWT-" + id[:8]
}
