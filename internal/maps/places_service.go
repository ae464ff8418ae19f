// README: Google Places autocomplete for the search box, restricted to Indian cities.
package maps

import (
	"context"
	"fmt"

	"googlemaps.github.io/maps"
)

// Suggestion is a simplified autocomplete prediction.
type Suggestion struct {
	Description string `json:"description"`
	PlaceID     string `json:"place_id"`
}

// PlacesService handles interactions with the Google Places API.
type PlacesService struct {
	client *maps.Client
}

// NewPlacesService creates a new PlacesService with the given API key.
func NewPlacesService(apiKey string) (*PlacesService, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create maps client: %w", err)
	}
	return &PlacesService{client: client}, nil
}

// Autocomplete returns city predictions for a partial input. Results are
// biased to India, matching the booking flow's search box.
func (s *PlacesService) Autocomplete(ctx context.Context, input string) ([]Suggestion, error) {
	r := &maps.PlaceAutocompleteRequest{
		Input: input,
		Types: maps.AutocompletePlaceTypeCities,
		Components: map[maps.Component][]string{
			maps.ComponentCountry: {"in"},
		},
	}

	resp, err := s.client.PlaceAutocomplete(ctx, r)
	if err != nil {
		return nil, fmt.Errorf("places api error: %w", err)
	}

	out := make([]Suggestion, 0, len(resp.Predictions))
	for _, p := range resp.Predictions {
		out = append(out, Suggestion{Description: p.Description, PlaceID: p.PlaceID})
	}
	return out, nil
}
