package report

import (
	"context"
	"time"

	"github.com/google/uuid"

	"booking-report-backend/internal/auth"
	"booking-report-backend/internal/fetch"
	"booking-report-backend/internal/model"
	"booking-report-backend/internal/rooms"
)

// Generated is one finished report run: both rendered documents plus the
// summary the HTTP layer exposes.
type Generated struct {
	ID           string
	TargetDate   string
	AuthSource   auth.Source
	Warnings     []string
	Bookings     int
	Arrivals     int
	Departures   int
	StayThrough  int
	GeneratedAt  time.Time
	FrontDesk    []byte
	Housekeeping []byte
}

// Service runs the whole pipeline: authenticate, fetch, parse, categorize,
// render.
type Service struct {
	session *auth.Session
	fetcher *fetch.Fetcher
	rooms   rooms.Table
	now     func() time.Time
}

// NewService wires the report pipeline.
func NewService(session *auth.Session, fetcher *fetch.Fetcher, table rooms.Table) *Service {
	return &Service{
		session: session,
		fetcher: fetcher,
		rooms:   table,
		now:     time.Now,
	}
}

// Generate produces both PDF documents for the target date. Authentication
// failures and malformed records abort the run; individual query failures
// only surface as warnings. Either both documents render or neither does.
func (s *Service) Generate(ctx context.Context, target time.Time, creds auth.Credentials) (*Generated, error) {
	authRes, err := s.session.Authenticate(ctx, creds)
	if err != nil {
		return nil, err
	}

	raws, warnings := s.fetcher.ForDate(ctx, authRes.AccessToken, target)

	reservations, err := model.ParseAll(raws, s.rooms)
	if err != nil {
		return nil, err
	}

	categories := Categorize(reservations, target)
	generatedAt := s.now()

	frontDesk, err := RenderFrontDesk(categories, target, generatedAt)
	if err != nil {
		return nil, err
	}
	housekeeping, err := RenderHousekeeping(categories, target, generatedAt)
	if err != nil {
		return nil, err
	}

	return &Generated{
		ID:           uuid.NewString(),
		TargetDate:   target.Format(dateLayout),
		AuthSource:   authRes.Source,
		Warnings:     warnings,
		Bookings:     len(reservations),
		Arrivals:     len(categories.Arrivals),
		Departures:   len(categories.Departures),
		StayThrough:  len(categories.StayThrough),
		GeneratedAt:  generatedAt,
		FrontDesk:    frontDesk,
		Housekeeping: housekeeping,
	}, nil
}

// ClearTokens drops the persisted credential bundle.
func (s *Service) ClearTokens() error {
	return s.session.Clear()
}
