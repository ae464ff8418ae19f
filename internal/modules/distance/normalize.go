// README: Place-name normalization for static-table lookups.
package distance

import "strings"

// NormalizeCity folds case, collapses internal whitespace to single
// hyphens, and canonicalizes known metro-area spelling variants so that
// "Gurgaon"/"Gurugram" and "Bangalore"/"Bengaluru" share one key.
func NormalizeCity(city string) string {
	s := strings.ToLower(strings.TrimSpace(city))
	s = strings.Join(strings.Fields(s), "-")
	s = strings.ReplaceAll(s, "gurgaon", "gurugram")
	s = strings.ReplaceAll(s, "bangalore", "bengaluru")
	return s
}

func pairKey(from, to string) string {
	return from + "-" + to
}
