package geo

import (
	"math"
	"testing"
)

func TestPseudoLocate_Deterministic(t *testing.T) {
	lat1, lon1 := PseudoLocate("Flat 101, Block B")
	lat2, lon2 := PseudoLocate("Flat 101, Block B")
	if lat1 != lat2 || lon1 != lon2 {
		t.Fatalf("same input produced different points: (%v,%v) vs (%v,%v)", lat1, lon1, lat2, lon2)
	}
}

func TestPseudoLocate_StaysNearBase(t *testing.T) {
	for _, loc := range []string{"", "Plot No. 45", "Flat 101, Block B", "behind the water tank"} {
		lat, lon := PseudoLocate(loc)
		if math.Abs(lat-BaseLatitude) > 0.005 || math.Abs(lon-BaseLongitude) > 0.005 {
			t.Fatalf("PseudoLocate(%q) = (%v, %v), outside the ±0.005 window", loc, lat, lon)
		}
	}
}

func TestPseudoLocate_DifferentInputsUsuallyDiffer(t *testing.T) {
	lat1, _ := PseudoLocate("Flat 101, Block B")
	lat2, _ := PseudoLocate("Plot No. 45")
	if lat1 == lat2 {
		t.Fatal("distinct locations mapped to the same offset; hash spread broken")
	}
}
