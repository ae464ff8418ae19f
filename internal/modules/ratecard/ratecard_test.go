package ratecard

import "testing"

func TestLookupFallsBackToDefault(t *testing.T) {
	got := Lookup("hovercraft")
	if got.ID != DefaultClassID {
		t.Fatalf("Lookup(unknown) = %q, want %q", got.ID, DefaultClassID)
	}
}

func TestAllPreservesDeclarationOrder(t *testing.T) {
	want := []string{"wagonr", "etios", "crysta", "hycross", "traveller", "urbania"}
	all := All()
	if len(all) != len(want) {
		t.Fatalf("All() returned %d classes, want %d", len(all), len(want))
	}
	for i, c := range all {
		if c.ID != want[i] {
			t.Errorf("All()[%d].ID = %q, want %q", i, c.ID, want[i])
		}
	}
}

func TestRateInvariants(t *testing.T) {
	for _, c := range All() {
		if c.FullDay.Base < 0 || c.ExtraHourRate < 0 || c.ExtraKmRate < 0 ||
			c.OutstationPerKm < 0 || c.DriverAllowance < 0 {
			t.Errorf("class %s has a negative rate", c.ID)
		}
		if c.FullDay.Hours <= 0 || c.FullDay.Kms <= 0 {
			t.Errorf("class %s full-day bundle must be positive, got %d h / %d km",
				c.ID, c.FullDay.Hours, c.FullDay.Kms)
		}
	}
}

func TestAllReturnsCopy(t *testing.T) {
	a := All()
	a[0].ID = "mutated"
	if All()[0].ID != "wagonr" {
		t.Fatal("All() must return a copy of the catalog")
	}
}
