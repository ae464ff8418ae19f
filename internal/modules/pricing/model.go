// README: Fare breakdown and priced-offer types.
package pricing

import "sawari/internal/modules/distance"

// Trip types accepted by the fare calculator. Anything else prices as a
// plain full-day rental.
const (
	TripOneWay    = "oneway"
	TripRoundTrip = "roundtrip"
	TripLocal     = "local"
	TripAirport   = "airport"
)

// FareBreakdown is the itemized fare for one (trip type, class, distance,
// hours) tuple. All amounts are whole rupees.
type FareBreakdown struct {
	BaseFare        int64 `json:"base_fare"`
	ExtraKmCharge   int64 `json:"extra_km_charge"`
	ExtraHourCharge int64 `json:"extra_hour_charge"`
	DriverAllowance int64 `json:"driver_allowance"`
	TaxAmount       int64 `json:"tax_amount"`
	Total           int64 `json:"total"`
}

// Perk is a display-only derived highlight shown on an offer card.
type Perk struct {
	Icon string `json:"icon"`
	Text string `json:"text"`
}

// Offer joins a vehicle class with its fare for the requested route.
type Offer struct {
	ClassID         string        `json:"class_id"`
	Name            string        `json:"name"`
	Image           string        `json:"image"`
	Subtitle        string        `json:"subtitle"`
	Price           int64         `json:"price"`
	PerKmRate       int64         `json:"per_km_rate"`
	DistanceKm      int           `json:"distance_km"`
	DurationMinutes int           `json:"duration_minutes"`
	Breakdown       FareBreakdown `json:"breakdown"`
	Perks           []Perk        `json:"perks"`
}

// Quote is the priced vehicle list for one search, all offers sharing a
// single distance resolution.
type Quote struct {
	Offers          []Offer         `json:"offers"`
	DistanceKm      int             `json:"distance_km"`
	DurationMinutes int             `json:"duration_minutes"`
	Estimated       bool            `json:"estimated"`
	Source          distance.Source `json:"source"`
	Warning         string          `json:"warning,omitempty"`
}
