// README: Fare calculation per trip type plus the all-classes pricing aggregator.
package pricing

import (
	"context"
	"fmt"
	"math"

	"go.uber.org/zap"

	"sawari/internal/modules/distance"
	"sawari/internal/modules/ratecard"
)

const (
	taxRate          = 0.05
	airportSurcharge = 500
	// DefaultHours is the rental duration assumed when the caller does not
	// supply one; matches the full-day bundle of every class.
	DefaultHours = 8
)

// CalculateFare prices one trip for one vehicle class. Pure: no I/O, no
// failure modes; an unknown class id prices as the default class.
//
// Components are computed and held as whole rupees, then the tax is
// rounded half-up on the summed subtotal. The grand total is the exact sum
// of the rounded pieces, never re-rounded.
func CalculateFare(tripType, classID string, distanceKm, hours int) FareBreakdown {
	car := ratecard.Lookup(classID)
	km := int64(distanceKm)

	var b FareBreakdown
	b.DriverAllowance = car.DriverAllowance

	switch tripType {
	case TripOneWay:
		b.BaseFare = km * car.OutstationPerKm

	case TripRoundTrip:
		b.BaseFare = 2 * km * car.OutstationPerKm

	case TripLocal:
		b.BaseFare = car.FullDay.Base
		if extraKm := distanceKm - car.FullDay.Kms; extraKm > 0 {
			b.ExtraKmCharge = int64(extraKm) * car.ExtraKmRate
		}
		if extraHours := hours - car.FullDay.Hours; extraHours > 0 {
			b.ExtraHourCharge = int64(extraHours) * car.ExtraHourRate
		}

	case TripAirport:
		b.BaseFare = airportSurcharge + km*car.OutstationPerKm
		b.DriverAllowance = roundHalfUp(float64(car.DriverAllowance) * 0.5)

	default:
		b.BaseFare = car.FullDay.Base
	}

	subtotal := b.BaseFare + b.ExtraKmCharge + b.ExtraHourCharge + b.DriverAllowance
	b.TaxAmount = roundHalfUp(float64(subtotal) * taxRate)
	b.Total = subtotal + b.TaxAmount
	return b
}

// Resolver is the single distance lookup a quote depends on.
type Resolver interface {
	Resolve(ctx context.Context, origin, destination string) distance.Result
}

type Service struct {
	resolver Resolver
	log      *zap.Logger
}

func NewService(resolver Resolver, log *zap.Logger) *Service {
	return &Service{resolver: resolver, log: log}
}

// PriceAllVehicles resolves the route once and prices every catalog class
// against that shared distance, in catalog order.
func (s *Service) PriceAllVehicles(ctx context.Context, origin, destination, tripType string, hours int) Quote {
	if hours <= 0 {
		hours = DefaultHours
	}
	d := s.resolver.Resolve(ctx, origin, destination)
	s.log.Info("priced route",
		zap.String("from", origin),
		zap.String("to", destination),
		zap.String("trip_type", tripType),
		zap.Int("distance_km", d.DistanceKm),
		zap.String("source", string(d.Source)),
	)

	catalog := ratecard.All()
	offers := make([]Offer, 0, len(catalog))
	for _, car := range catalog {
		b := CalculateFare(tripType, car.ID, d.DistanceKm, hours)
		offers = append(offers, Offer{
			ClassID:         car.ID,
			Name:            car.Name,
			Image:           car.Image,
			Subtitle:        fmt.Sprintf("or equivalent | %s seater AC Cab", car.Seater),
			Price:           b.Total,
			PerKmRate:       car.OutstationPerKm,
			DistanceKm:      d.DistanceKm,
			DurationMinutes: d.DurationMinutes,
			Breakdown:       b,
			Perks: []Perk{
				{Icon: "👨‍✈️", Text: fmt.Sprintf("Driver allowance: ₹%d", b.DriverAllowance)},
				{Icon: "🧭", Text: fmt.Sprintf("%d km | ₹%d/km", d.DistanceKm, car.OutstationPerKm)},
			},
		})
	}

	return Quote{
		Offers:          offers,
		DistanceKm:      d.DistanceKm,
		DurationMinutes: d.DurationMinutes,
		Estimated:       d.Estimated,
		Source:          d.Source,
		Warning:         d.Warning,
	}
}

func roundHalfUp(v float64) int64 {
	return int64(math.Floor(v + 0.5))
}
