package codes

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_vehicles01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("vehicles01. catalogue totals")

	a, err := VehicleByName("CLASS_A")
	if err != nil {
		tst.Fatalf("VehicleByName failed: %v", err)
	}
	chk.IntAssert(len(a.Axles), 8)
	chk.Float64(tst, "Class A total", 1e-12, a.TotalLoadKN(), 554)

	b, _ := VehicleByName("CLASS_B")
	chk.Float64(tst, "Class B total", 1e-12, b.TotalLoadKN(), 332)

	w70, _ := VehicleByName("CLASS_70R")
	chk.IntAssert(len(w70.Axles), 7)
	chk.Float64(tst, "70R wheeled total", 1e-12, w70.TotalLoadKN(), 1010)

	bogie, _ := VehicleByName("CLASS_70R_BOGIE")
	chk.Float64(tst, "70R bogie total", 1e-12, bogie.TotalLoadKN(), 400)

	aa, _ := VehicleByName("class_aa") // lookup is case-insensitive
	chk.Float64(tst, "AA tracked total", 1e-9, aa.TotalLoadKN(), 350)
	chk.Float64(tst, "AA min rated span", 1e-12, aa.MinRatedSpanM, 9)

	if _, err := VehicleByName("CLASS_X"); err == nil {
		tst.Errorf("unknown vehicle must fail")
	}
}

func Test_impact01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("impact01. IRC:6 Cl.211.2 values")

	// Steel, Class A: 1 + 9/(13.5+L).
	chk.Float64(tst, "A 45m", 1e-12, ImpactFactor("steel", 45, "CLASS_A"), 1.0+9.0/58.5)
	// Long spans hit the 10% floor.
	chk.Float64(tst, "A 200m", 1e-12, ImpactFactor("steel", 200, "CLASS_A"), 1.10)

	// Tracked/70R: 25% plateau to 9 m, decaying to the floor.
	chk.Float64(tst, "AA 5m", 1e-12, ImpactFactor("steel", 5, "CLASS_AA_TRACKED"), 1.25)
	chk.Float64(tst, "AA 9m", 1e-12, ImpactFactor("steel", 9, "CLASS_AA_TRACKED"), 1.25)
	chk.Float64(tst, "70R 45m", 1e-12, ImpactFactor("steel", 45, "CLASS_70R"), 1.10)

	// Concrete uses the 4.5 curve.
	chk.Float64(tst, "A concrete 24m", 1e-12, ImpactFactor("concrete", 24, "CLASS_A"), 1.15)
}

func Test_impact02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("impact02. non-increasing in span")

	for _, class := range []string{"CLASS_A", "CLASS_B", "CLASS_AA", "CLASS_70R"} {
		prev := ImpactFactor("steel", 1, class)
		for span := 2.0; span <= 120; span += 1 {
			cur := ImpactFactor("steel", span, class)
			if cur > prev {
				tst.Fatalf("%s: impact increased from %g to %g at span %g", class, prev, cur, span)
			}
			prev = cur
		}
	}
}

func Test_lanes01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("lanes01. lane distribution and congestion")

	chk.Float64(tst, "1 lane", 1e-15, LaneDistributionFactor(1), 1.0)
	chk.Float64(tst, "2 lanes", 1e-15, LaneDistributionFactor(2), 1.0)
	chk.Float64(tst, "3 lanes", 1e-15, LaneDistributionFactor(3), 0.9)
	chk.Float64(tst, "4 lanes", 1e-15, LaneDistributionFactor(4), 0.75)
	chk.Float64(tst, "6 lanes", 1e-15, LaneDistributionFactor(6), 0.75)

	chk.Float64(tst, "congestion 10m", 1e-15, CongestionFactor(10), 1.0)
	chk.Float64(tst, "congestion 25m", 1e-12, CongestionFactor(25), 1.075)
	chk.Float64(tst, "congestion 50m", 1e-15, CongestionFactor(50), 1.15)
}
