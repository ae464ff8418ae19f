// README: Booking wizard service; guards step transitions, recomputes totals, freezes on confirm.
package booking

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"sawari/internal/modules/pricing"
	"sawari/internal/modules/ratecard"
)

var (
	ErrNotFound     = errors.New("booking draft not found")
	ErrInvalidState = errors.New("invalid wizard step for this action")
	ErrValidation   = errors.New("missing or invalid field")
	ErrBadRequest   = errors.New("bad request")
	ErrPersist      = errors.New("booking could not be saved")
)

// Persister stores a confirmed booking record. Failure means the booking
// is not confirmed; retry is user-initiated.
type Persister interface {
	Save(ctx context.Context, r *Record) error
}

// Publisher emits a booking-confirmed event. Best effort only.
type Publisher interface {
	BookingConfirmed(ctx context.Context, r *Record) error
}

type Service struct {
	mu        sync.Mutex
	drafts    map[string]*Draft
	persister Persister
	events    Publisher // nil when no broker is configured
	log       *zap.Logger
	now       func() time.Time
}

func NewService(persister Persister, events Publisher, log *zap.Logger) *Service {
	return &Service{
		drafts:    make(map[string]*Draft),
		persister: persister,
		events:    events,
		log:       log,
		now:       time.Now,
	}
}

// StartCommand seeds a wizard from the offer the user selected. The fare
// is recomputed server-side from the rate card, never trusted from the
// client.
type StartCommand struct {
	TripType   string
	FromCity   string
	ToCity     string
	PickupDate string
	PickupTime string
	CarID      string
	DistanceKm int
	Hours      int
}

func (s *Service) Start(cmd StartCommand) (*Draft, error) {
	if cmd.TripType == "" || cmd.DistanceKm <= 0 {
		return nil, ErrBadRequest
	}
	if cmd.Hours <= 0 {
		cmd.Hours = pricing.DefaultHours
	}
	car := ratecard.Lookup(cmd.CarID)
	base := pricing.CalculateFare(cmd.TripType, car.ID, cmd.DistanceKm, cmd.Hours)

	d := &Draft{
		ID:   uuid.NewString(),
		Step: StepContact,
		Trip: Trip{
			TripType:   cmd.TripType,
			FromCity:   cmd.FromCity,
			ToCity:     cmd.ToCity,
			PickupDate: cmd.PickupDate,
			PickupTime: cmd.PickupTime,
			CarID:      car.ID,
			CarName:    car.Name,
			DistanceKm: cmd.DistanceKm,
		},
		Base:         base,
		Selected:     make(map[string]bool),
		SplitPercent: 25,
		Total:        base.Total,
		CreatedAt:    s.now(),
	}

	s.mu.Lock()
	s.drafts[d.ID] = d
	s.mu.Unlock()

	return snapshot(d), nil
}

// Get returns a point-in-time copy of the draft.
func (s *Service) Get(id string) (*Draft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.drafts[id]
	if !ok {
		return nil, ErrNotFound
	}
	return snapshot(d), nil
}

// SetContact stores the customer fields and advances Contact → Services.
// All five fields are required.
func (s *Service) SetContact(id string, c Contact) (*Draft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.drafts[id]
	if !ok {
		return nil, ErrNotFound
	}
	if d.Step != StepContact {
		return nil, ErrInvalidState
	}
	if c.Name == "" || c.Email == "" || c.Phone == "" || c.Pickup == "" || c.Drop == "" {
		return nil, fmt.Errorf("%w: name, email, phone, pickup and drop are required", ErrValidation)
	}
	d.Contact = c
	d.Step = StepServices
	return snapshot(d), nil
}

// Back moves one step backwards (Services→Contact, Payment→Services).
func (s *Service) Back(id string) (*Draft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.drafts[id]
	if !ok {
		return nil, ErrNotFound
	}
	var to Step
	switch d.Step {
	case StepServices:
		to = StepContact
	case StepPayment:
		to = StepServices
	default:
		return nil, ErrInvalidState
	}
	if !CanTransition(d.Step, to) {
		return nil, ErrInvalidState
	}
	d.Step = to
	return snapshot(d), nil
}

// ToggleResult reports the effect of one add-on toggle so the UI can show
// its transient "+price"/"-price" indicator.
type ToggleResult struct {
	Draft   *Draft
	Service AddOnService
	Added   bool
}

// ToggleAddOn flips one add-on and recomputes the total from the current
// selection set, so toggling on then off restores the prior total exactly.
func (s *Service) ToggleAddOn(id, serviceID string) (*ToggleResult, error) {
	svc, ok := addOnByID[serviceID]
	if !ok {
		return nil, fmt.Errorf("%w: unknown service %q", ErrBadRequest, serviceID)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	d, exists := s.drafts[id]
	if !exists {
		return nil, ErrNotFound
	}
	if d.Step != StepServices {
		return nil, ErrInvalidState
	}
	added := !d.Selected[serviceID]
	if added {
		d.Selected[serviceID] = true
	} else {
		delete(d.Selected, serviceID)
	}
	d.Total = d.Base.Total + d.ServicesTotal()
	return &ToggleResult{Draft: snapshot(d), Service: svc, Added: added}, nil
}

// Next advances Services → Payment. Zero selected add-ons is fine.
func (s *Service) Next(id string) (*Draft, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.drafts[id]
	if !ok {
		return nil, ErrNotFound
	}
	if !CanTransition(d.Step, StepPayment) || d.Step != StepServices {
		return nil, ErrInvalidState
	}
	d.Step = StepPayment
	return snapshot(d), nil
}

// SetPayment records the payment split and optional GST fields.
func (s *Service) SetPayment(id string, splitPercent int, gst GST) (*Draft, error) {
	switch splitPercent {
	case 0, 25, 50, 100:
	default:
		return nil, fmt.Errorf("%w: split must be 0, 25, 50 or 100", ErrValidation)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.drafts[id]
	if !ok {
		return nil, ErrNotFound
	}
	if d.Step != StepPayment {
		return nil, ErrInvalidState
	}
	d.SplitPercent = splitPercent
	d.GST = gst
	return snapshot(d), nil
}

// Confirm freezes the draft, persists the flattened record and emits the
// confirmed event. On persistence failure the wizard stays in Payment and
// nothing partial is kept.
func (s *Service) Confirm(ctx context.Context, id string) (*Record, error) {
	s.mu.Lock()
	d, ok := s.drafts[id]
	if !ok {
		s.mu.Unlock()
		return nil, ErrNotFound
	}
	if d.Step != StepPayment || !CanTransition(d.Step, StepConfirmed) {
		s.mu.Unlock()
		return nil, ErrInvalidState
	}
	now := s.now()
	rec := s.buildRecord(d, now)
	s.mu.Unlock()

	if err := s.persister.Save(ctx, rec); err != nil {
		s.log.Error("booking save failed", zap.String("draft_id", id), zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrPersist, err)
	}

	s.mu.Lock()
	d.Step = StepConfirmed
	d.BookingID = rec.BookingID
	d.ConfirmedAt = &now
	s.mu.Unlock()

	if s.events != nil {
		if err := s.events.BookingConfirmed(ctx, rec); err != nil {
			s.log.Warn("booking event publish failed", zap.String("booking_id", rec.BookingID), zap.Error(err))
		}
	}
	s.log.Info("booking confirmed",
		zap.String("booking_id", rec.BookingID),
		zap.Int64("total", rec.TotalFare),
		zap.String("payment_option", rec.PaymentOption),
	)
	return rec, nil
}

func (s *Service) buildRecord(d *Draft, now time.Time) *Record {
	titles := make([]string, 0, len(d.Selected))
	for _, svc := range addOns {
		if d.Selected[svc.ID] {
			titles = append(titles, svc.Title)
		}
	}
	selected := "None"
	if len(titles) > 0 {
		selected = strings.Join(titles, ", ")
	}
	paymentStatus := "Partial"
	if d.SplitPercent == 100 {
		paymentStatus = "Paid"
	}
	return &Record{
		BookingID:        fmt.Sprintf("BK%d", now.UnixMilli()),
		CreatedAt:        now,
		CustomerName:     d.Contact.Name,
		CustomerEmail:    d.Contact.Email,
		CustomerPhone:    d.Contact.Phone,
		PickupLocation:   d.Contact.Pickup,
		DropLocation:     d.Contact.Drop,
		TripType:         d.Trip.TripType,
		FromCity:         d.Trip.FromCity,
		ToCity:           d.Trip.ToCity,
		PickupDate:       d.Trip.PickupDate,
		PickupTime:       d.Trip.PickupTime,
		CarName:          d.Trip.CarName,
		DistanceKm:       d.Trip.DistanceKm,
		BaseFare:         d.Base.BaseFare + d.Base.ExtraKmCharge + d.Base.ExtraHourCharge,
		DriverAllowance:  d.Base.DriverAllowance,
		Taxes:            d.Base.TaxAmount,
		SelectedServices: selected,
		ServicesTotal:    d.ServicesTotal(),
		TotalFare:        d.Total,
		PaymentOption:    paymentOption(d.SplitPercent),
		AmountPaidNow:    d.AmountDueNow(),
		AmountPaidLater:  d.AmountDueLater(),
		PaymentStatus:    paymentStatus,
		HasGST:           d.GST.Enabled,
		GSTCompany:       orDash(d.GST.Company),
		GSTNumber:        orDash(d.GST.Number),
		Status:           StatusPending,
	}
}

func paymentOption(split int) string {
	if split == 0 {
		return "Pay Later"
	}
	return fmt.Sprintf("%d%%", split)
}

func orDash(v string) string {
	if v == "" {
		return "-"
	}
	return v
}

// RunDraftJanitor drops abandoned drafts so the in-memory registry does
// not grow unbounded. Confirmed drafts are kept until they age out too.
func (s *Service) RunDraftJanitor(ctx context.Context, maxAge time.Duration) {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cutoff := s.now().Add(-maxAge)
			s.mu.Lock()
			for id, d := range s.drafts {
				if d.CreatedAt.Before(cutoff) {
					delete(s.drafts, id)
				}
			}
			s.mu.Unlock()
		}
	}
}

// snapshot copies a draft so callers never share the live selection map.
func snapshot(d *Draft) *Draft {
	cp := *d
	cp.Selected = make(map[string]bool, len(d.Selected))
	for k, v := range d.Selected {
		cp.Selected[k] = v
	}
	return &cp
}
