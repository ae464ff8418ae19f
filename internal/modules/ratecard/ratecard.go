// README: Static per-vehicle-class rate card, loaded once and immutable.
package ratecard

// FullDay is the local-rental allowance bundled into a class's day rate.
type FullDay struct {
	Base  int64
	Hours int
	Kms   int
}

// VehicleClass holds the hand-authored pricing parameters for one car class.
type VehicleClass struct {
	ID              string
	Name            string
	Image           string
	Seater          string
	FullDay         FullDay
	ExtraHourRate   int64
	ExtraKmRate     int64
	OutstationPerKm int64
	DriverAllowance int64
}

// DefaultClassID is used whenever a caller asks for a class we don't know.
const DefaultClassID = "wagonr"

// classes is the catalog in display order. Never mutated at runtime.
var classes = []VehicleClass{
	{
		ID:              "wagonr",
		Name:            "Swift Dzire/Wagon R",
		Image:           "https://www.savaari.com/assets/img/cars/indica.png",
		Seater:          "4",
		FullDay:         FullDay{Base: 1600, Hours: 8, Kms: 80},
		ExtraHourRate:   150,
		ExtraKmRate:     13,
		OutstationPerKm: 13,
		DriverAllowance: 300,
	},
	{
		ID:              "etios",
		Name:            "Toyota Etios",
		Image:           "https://www.savaari.com/assets/img/cars/toyota_etios.png",
		Seater:          "4",
		FullDay:         FullDay{Base: 1600, Hours: 8, Kms: 80},
		ExtraHourRate:   150,
		ExtraKmRate:     14,
		OutstationPerKm: 13,
		DriverAllowance: 300,
	},
	{
		ID:              "crysta",
		Name:            "Innova Crysta",
		Image:           "https://www.savaari.com/assets/img/cars/innova.png",
		Seater:          "4",
		FullDay:         FullDay{Base: 2700, Hours: 8, Kms: 80},
		ExtraHourRate:   200,
		ExtraKmRate:     20,
		OutstationPerKm: 20,
		DriverAllowance: 400,
	},
	{
		ID:              "hycross",
		Name:            "Innova Hycross",
		Image:           "https://www.savaari.com/assets/img/cars/crysta.png",
		Seater:          "4",
		FullDay:         FullDay{Base: 3000, Hours: 8, Kms: 80},
		ExtraHourRate:   300,
		ExtraKmRate:     25,
		OutstationPerKm: 22,
		DriverAllowance: 400,
	},
	{
		ID:              "traveller",
		Name:            "Traveller 12 Seater",
		Image:           "https://www.savaari.com/assets/img/cars/tempo_traveller.png",
		Seater:          "12+",
		FullDay:         FullDay{Base: 6000, Hours: 8, Kms: 80},
		ExtraHourRate:   200,
		ExtraKmRate:     28,
		OutstationPerKm: 28,
		DriverAllowance: 400,
	},
	{
		ID:              "urbania",
		Name:            "Force Urbania",
		Image:           "https://www.savaari.com/assets/img/cars/tempo_traveller.png",
		Seater:          "12+",
		FullDay:         FullDay{Base: 8000, Hours: 8, Kms: 80},
		ExtraHourRate:   700,
		ExtraKmRate:     35,
		OutstationPerKm: 35,
		DriverAllowance: 400,
	},
}

var byID = func() map[string]VehicleClass {
	m := make(map[string]VehicleClass, len(classes))
	for _, c := range classes {
		m[c.ID] = c
	}
	return m
}()

// All returns the catalog in declaration order.
func All() []VehicleClass {
	out := make([]VehicleClass, len(classes))
	copy(out, classes)
	return out
}

// Lookup returns the class for id, falling back to the default class when
// the id is unknown.
func Lookup(id string) VehicleClass {
	if c, ok := byID[id]; ok {
		return c
	}
	return byID[DefaultClassID]
}

// Known reports whether id is a catalog entry.
func Known(id string) bool {
	_, ok := byID[id]
	return ok
}
