// README: Google Distance Matrix client used as the live tier of the distance resolver.
package maps

import (
	"context"
	"fmt"
	"time"

	"googlemaps.github.io/maps"
)

// countryHint disambiguates bare city names ("Delhi" vs "Delhi, NY").
const countryHint = ", India"

// DistanceService handles interactions with the Google Distance Matrix API.
type DistanceService struct {
	client *maps.Client
}

// NewDistanceService creates a new DistanceService with the given API key.
func NewDistanceService(apiKey string) (*DistanceService, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return &DistanceService{client: client}, nil
}

// Driving returns the driving distance in meters and the trip duration
// between the two free-text place names. Both names are qualified with a
// country hint. Any non-OK status from the API is returned as an error so
// the caller can fall through to its next resolution tier.
func (s *DistanceService) Driving(ctx context.Context, origin, destination string) (int, time.Duration, error) {
	r := &maps.DistanceMatrixRequest{
		Origins:      []string{origin + countryHint},
		Destinations: []string{destination + countryHint},
		Mode:         maps.TravelModeDriving,
		Units:        maps.UnitsMetric,
	}

	resp, err := s.client.DistanceMatrix(ctx, r)
	if err != nil {
		return 0, 0, fmt.Errorf("maps api error: %w", err)
	}

	if len(resp.Rows) == 0 || len(resp.Rows[0].Elements) == 0 {
		return 0, 0, fmt.Errorf("no route found")
	}

	el := resp.Rows[0].Elements[0]
	if el.Status != "OK" {
		return 0, 0, fmt.Errorf("route element status: %s", el.Status)
	}
	return el.Distance.Meters, el.Duration, nil
}
