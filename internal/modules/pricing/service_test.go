// README: Fare calculator tests; spec'd rates, tax invariant and the aggregator.
package pricing

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"sawari/internal/modules/distance"
	"sawari/internal/modules/ratecard"
)

func TestCalculateFare(t *testing.T) {
	cases := []struct {
		name       string
		tripType   string
		classID    string
		distanceKm int
		hours      int
		want       FareBreakdown
	}{
		{
			name: "oneway wagonr 100km", tripType: TripOneWay, classID: "wagonr",
			distanceKm: 100, hours: DefaultHours,
			want: FareBreakdown{
				BaseFare: 1300, DriverAllowance: 300, TaxAmount: 80, Total: 1680,
			},
		},
		{
			name: "roundtrip doubles distance", tripType: TripRoundTrip, classID: "wagonr",
			distanceKm: 100, hours: DefaultHours,
			want: FareBreakdown{
				BaseFare: 2600, DriverAllowance: 300, TaxAmount: 145, Total: 3045,
			},
		},
		{
			name: "local with extra km and hours", tripType: TripLocal, classID: "wagonr",
			distanceKm: 100, hours: 10,
			want: FareBreakdown{
				BaseFare: 1600, ExtraKmCharge: 260, ExtraHourCharge: 300,
				DriverAllowance: 300, TaxAmount: 123, Total: 2583,
			},
		},
		{
			name: "local within bundle has no extras", tripType: TripLocal, classID: "wagonr",
			distanceKm: 60, hours: 8,
			want: FareBreakdown{
				BaseFare: 1600, DriverAllowance: 300, TaxAmount: 95, Total: 1995,
			},
		},
		{
			name: "airport crysta halves driver allowance", tripType: TripAirport, classID: "crysta",
			distanceKm: 50, hours: DefaultHours,
			want: FareBreakdown{
				BaseFare: 1500, DriverAllowance: 200, TaxAmount: 85, Total: 1785,
			},
		},
		{
			name: "airport wagonr rounds half allowance", tripType: TripAirport, classID: "wagonr",
			distanceKm: 20, hours: DefaultHours,
			want: FareBreakdown{
				BaseFare: 760, DriverAllowance: 150, TaxAmount: 46, Total: 956,
			},
		},
		{
			name: "unrecognized trip type prices as full day", tripType: "heli", classID: "wagonr",
			distanceKm: 100, hours: DefaultHours,
			want: FareBreakdown{
				BaseFare: 1600, DriverAllowance: 300, TaxAmount: 95, Total: 1995,
			},
		},
		{
			name: "unknown class falls back to default", tripType: TripOneWay, classID: "submarine",
			distanceKm: 100, hours: DefaultHours,
			want: FareBreakdown{
				BaseFare: 1300, DriverAllowance: 300, TaxAmount: 80, Total: 1680,
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := CalculateFare(tc.tripType, tc.classID, tc.distanceKm, tc.hours)
			if got != tc.want {
				t.Errorf("CalculateFare(%s, %s, %d, %d) =\n  %+v\nwant\n  %+v",
					tc.tripType, tc.classID, tc.distanceKm, tc.hours, got, tc.want)
			}
		})
	}
}

// TestTaxInvariant checks total == subtotal + round(subtotal * 0.05) across
// every trip type, class and a spread of distances and hours.
func TestTaxInvariant(t *testing.T) {
	tripTypes := []string{TripOneWay, TripRoundTrip, TripLocal, TripAirport, "other"}
	distances := []int{1, 25, 80, 81, 100, 250, 500, 1400, 2150}
	hourChoices := []int{1, 8, 9, 12, 24}

	for _, trip := range tripTypes {
		for _, car := range ratecard.All() {
			for _, km := range distances {
				for _, hours := range hourChoices {
					b := CalculateFare(trip, car.ID, km, hours)
					subtotal := b.BaseFare + b.ExtraKmCharge + b.ExtraHourCharge + b.DriverAllowance
					if b.TaxAmount != roundHalfUp(float64(subtotal)*taxRate) {
						t.Fatalf("%s/%s km=%d h=%d: tax %d != round(%d * 0.05)",
							trip, car.ID, km, hours, b.TaxAmount, subtotal)
					}
					if b.Total != subtotal+b.TaxAmount {
						t.Fatalf("%s/%s km=%d h=%d: total %d != subtotal %d + tax %d",
							trip, car.ID, km, hours, b.Total, subtotal, b.TaxAmount)
					}
					if b.BaseFare < 0 || b.ExtraKmCharge < 0 || b.ExtraHourCharge < 0 ||
						b.DriverAllowance < 0 || b.TaxAmount < 0 {
						t.Fatalf("%s/%s km=%d h=%d: negative component in %+v",
							trip, car.ID, km, hours, b)
					}
				}
			}
		}
	}
}

type fixedResolver struct {
	result distance.Result
	calls  int
}

func (f *fixedResolver) Resolve(ctx context.Context, origin, destination string) distance.Result {
	f.calls++
	return f.result
}

func TestPriceAllVehicles(t *testing.T) {
	res := &fixedResolver{result: distance.Result{
		DistanceKm:      280,
		DurationMinutes: 280,
		Source:          distance.SourceStaticTable,
		Estimated:       true,
	}}
	svc := NewService(res, zap.NewNop())

	q := svc.PriceAllVehicles(context.Background(), "Delhi", "Jaipur", TripOneWay, 0)

	if res.calls != 1 {
		t.Fatalf("resolver called %d times, want exactly 1", res.calls)
	}
	catalog := ratecard.All()
	if len(q.Offers) != len(catalog) {
		t.Fatalf("%d offers, want %d", len(q.Offers), len(catalog))
	}
	for i, offer := range q.Offers {
		if offer.ClassID != catalog[i].ID {
			t.Errorf("offer[%d] = %s, want catalog order %s", i, offer.ClassID, catalog[i].ID)
		}
		if offer.DistanceKm != 280 || offer.DurationMinutes != 280 {
			t.Errorf("offer %s does not share the resolved distance", offer.ClassID)
		}
		want := CalculateFare(TripOneWay, offer.ClassID, 280, DefaultHours)
		if offer.Breakdown != want {
			t.Errorf("offer %s breakdown %+v, want %+v", offer.ClassID, offer.Breakdown, want)
		}
		if offer.Price != want.Total {
			t.Errorf("offer %s price %d, want total %d", offer.ClassID, offer.Price, want.Total)
		}
	}
	if !q.Estimated || q.Source != distance.SourceStaticTable {
		t.Errorf("quote must carry the resolver's source/estimated flags, got %+v", q)
	}
}
