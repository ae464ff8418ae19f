// README: Booking wizard draft, add-on catalog and step transition table.
package booking

import (
	"time"

	"sawari/internal/modules/pricing"
)

// Step is one stage of the linear booking wizard.
type Step string

const (
	StepContact   Step = "contact"
	StepServices  Step = "services"
	StepPayment   Step = "payment"
	StepConfirmed Step = "confirmed"
)

// AllowedTransitions represents the wizard flow as code. Forward moves are
// linear; back moves are limited to one step; confirmed is terminal.
var AllowedTransitions = map[Step][]Step{
	StepContact:  {StepServices},
	StepServices: {StepPayment, StepContact},
	StepPayment:  {StepConfirmed, StepServices},
}

func CanTransition(from, to Step) bool {
	for _, s := range AllowedTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// AddOnService is an optional flat-priced extra.
type AddOnService struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Price int64  `json:"price"`
}

var addOns = []AddOnService{
	{ID: "newcar", Title: "New Car Promise - Model that is 2022 or newer", Price: 249},
	{ID: "lang", Title: "Chauffeurs who know your language", Price: 199},
	{ID: "luggage", Title: "Cab with Luggage Carrier", Price: 149},
}

var addOnByID = func() map[string]AddOnService {
	m := make(map[string]AddOnService, len(addOns))
	for _, s := range addOns {
		m[s.ID] = s
	}
	return m
}()

// AddOns returns the catalog of optional services in display order.
func AddOns() []AddOnService {
	out := make([]AddOnService, len(addOns))
	copy(out, addOns)
	return out
}

// Contact holds the customer fields collected in step one.
type Contact struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Phone  string `json:"phone"`
	Pickup string `json:"pickup"`
	Drop   string `json:"drop"`
}

// GST holds the optional tax-invoice fields from the payment step.
type GST struct {
	Enabled bool   `json:"enabled"`
	Company string `json:"company"`
	Number  string `json:"number"`
}

// Trip carries the search selection the wizard was seeded with.
type Trip struct {
	TripType   string `json:"trip_type"`
	FromCity   string `json:"from_city"`
	ToCity     string `json:"to_city"`
	PickupDate string `json:"pickup_date"`
	PickupTime string `json:"pickup_time"`
	CarID      string `json:"car_id"`
	CarName    string `json:"car_name"`
	DistanceKm int    `json:"distance_km"`
}

// Draft is the mutable aggregate built over one wizard run. Owned by a
// single flow; mutated only through the service. Frozen once confirmed.
type Draft struct {
	ID           string
	Step         Step
	Trip         Trip
	Base         pricing.FareBreakdown
	Selected     map[string]bool
	SplitPercent int
	Contact      Contact
	GST          GST
	Total        int64
	CreatedAt    time.Time
	BookingID    string
	ConfirmedAt  *time.Time
}

// AmountDueNow is the payment-split share rounded half-up to whole rupees.
func (d *Draft) AmountDueNow() int64 {
	return (d.Total*int64(d.SplitPercent) + 50) / 100
}

func (d *Draft) AmountDueLater() int64 {
	return d.Total - d.AmountDueNow()
}

// ServicesTotal sums the currently selected add-ons.
func (d *Draft) ServicesTotal() int64 {
	var sum int64
	for id, on := range d.Selected {
		if on {
			sum += addOnByID[id].Price
		}
	}
	return sum
}

// Booking record statuses as shown in the admin panel.
const (
	StatusPending   = "Pending"
	StatusConfirmed = "Confirmed"
	StatusCompleted = "Completed"
	StatusCancelled = "Cancelled"
)

// Record is the flattened confirmed booking handed to the persistence
// collaborator. Field layout mirrors the back-office sheet columns.
type Record struct {
	BookingID string    `json:"booking_id"`
	CreatedAt time.Time `json:"created_at"`

	CustomerName   string `json:"customer_name"`
	CustomerEmail  string `json:"customer_email"`
	CustomerPhone  string `json:"customer_phone"`
	PickupLocation string `json:"pickup_location"`
	DropLocation   string `json:"drop_location"`

	TripType   string `json:"trip_type"`
	FromCity   string `json:"from_city"`
	ToCity     string `json:"to_city"`
	PickupDate string `json:"pickup_date"`
	PickupTime string `json:"pickup_time"`
	CarName    string `json:"car_name"`
	DistanceKm int    `json:"distance_km"`

	BaseFare         int64  `json:"base_fare"`
	DriverAllowance  int64  `json:"driver_allowance"`
	Taxes            int64  `json:"taxes"`
	SelectedServices string `json:"selected_services"`
	ServicesTotal    int64  `json:"services_total"`
	TotalFare        int64  `json:"total_fare"`

	PaymentOption   string `json:"payment_option"`
	AmountPaidNow   int64  `json:"amount_paid_now"`
	AmountPaidLater int64  `json:"amount_paid_later"`
	PaymentStatus   string `json:"payment_status"`

	HasGST     bool   `json:"has_gst"`
	GSTCompany string `json:"gst_company"`
	GSTNumber  string `json:"gst_number"`

	Status string `json:"status"`
}
