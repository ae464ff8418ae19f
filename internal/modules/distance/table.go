// README: Preloaded road distances for known Indian metro pairs (fallback tier).
package distance

// cityDistances maps "from-to" keys to road kilometers. Lookup is
// symmetric; keys carry both metro spellings so the data survives being
// queried without normalization too.
var cityDistances = map[string]int{
	"gurugram-delhi": 310, "gurugram-noida": 45, "gurugram-jaipur": 250,
	"gurugram-agra": 240, "gurugram-chandigarh": 250, "gurugram-mumbai": 1420,
	"gurugram-pune": 1460, "gurugram-bengaluru": 2150, "gurugram-bangalore": 2150,
	"gurugram-hyderabad": 1580, "gurugram-kolkata": 1500, "gurugram-ahmedabad": 950,
	"gurugram-lucknow": 550, "gurugram-indore": 750, "gurugram-dehradun": 250,
	"gurugram-haridwar": 220, "gurugram-rishikesh": 240, "gurugram-shimla": 350,
	"gurugram-manali": 520, "gurugram-amritsar": 450,

	"delhi-noida": 25, "delhi-gurugram": 30, "delhi-gurgaon": 30,
	"delhi-jaipur": 280, "delhi-agra": 230, "delhi-chandigarh": 250,
	"delhi-mumbai": 1400, "delhi-pune": 1450, "delhi-bengaluru": 2150,
	"delhi-bangalore": 2150, "delhi-hyderabad": 1570, "delhi-kolkata": 1480,

	"mumbai-pune": 150, "mumbai-nashik": 165, "mumbai-goa": 580,
	"mumbai-ahmedabad": 530, "mumbai-surat": 280, "mumbai-bangalore": 980,
	"mumbai-bengaluru": 980, "mumbai-hyderabad": 710, "mumbai-delhi": 1400,

	"bangalore-mysore": 145, "bengaluru-mysore": 145, "bangalore-chennai": 350,
	"bengaluru-chennai": 350, "bangalore-hyderabad": 570, "bengaluru-hyderabad": 570,

	"jaipur-delhi": 280, "jaipur-gurugram": 250, "jaipur-agra": 240,
	"jaipur-udaipur": 400, "jaipur-jodhpur": 335, "jaipur-ajmer": 135,

	"pune-mumbai": 150, "pune-nashik": 210, "pune-goa": 450,
	"pune-bangalore": 840, "pune-bengaluru": 840, "pune-hyderabad": 560,
}

// tableLookup resolves a pair against the static table in either direction.
func tableLookup(from, to string) (int, bool) {
	f, t := NormalizeCity(from), NormalizeCity(to)
	if km, ok := cityDistances[pairKey(f, t)]; ok {
		return km, true
	}
	if km, ok := cityDistances[pairKey(t, f)]; ok {
		return km, true
	}
	return 0, false
}
