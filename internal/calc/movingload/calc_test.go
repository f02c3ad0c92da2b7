package movingload

import (
	"context"
	"reflect"
	"testing"

	"github.com/cpmech/gosl/chk"

	"Girder/internal/codes"
	"Girder/internal/solver"
)

// singleAxle is the textbook case: one load crossing the span gives a
// parabolic moment envelope with PL/4 at midspan.
func singleAxle() codes.Vehicle {
	return codes.Vehicle{
		Class:        "CLASS_A",
		Axles:        []codes.Axle{{LoadKN: 100, PositionM: 0}},
		TotalLengthM: 0,
	}
}

func Test_envelope01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("envelope01. single axle, 20 m span")

	sv := &solver.Native{}
	env, err := Analyze(context.Background(), sv, 20000, singleAxle(), 1, Config{})
	if err != nil {
		tst.Fatalf("Analyze failed: %v", err)
	}

	impact := codes.ImpactFactor("steel", 20, "CLASS_A")
	chk.Float64(tst, "impact", 1e-12, env.ImpactFactor, 1.0+9.0/33.5)
	chk.Float64(tst, "lane factor", 1e-12, env.LaneFactor, 1.0)

	// Midspan PL/4 = 500 kN*m before impact; the load passes exactly over
	// the midspan station during the sweep.
	chk.Float64(tst, "max M", 1e-9, env.MaxMomentKNM, 500*impact)
	chk.Float64(tst, "max M position", 1e-6, env.MaxMomentPositionMM, 10000)

	// Max shear at a support with the load one step in: R = P(1 - 0.1/20).
	// Either support may win the float tie.
	chk.Float64(tst, "max V", 1e-9, env.MaxShearKN, 99.5*impact)
	if env.MaxShearPositionMM > 1 && env.MaxShearPositionMM < 19999 {
		tst.Errorf("max shear must sit at a support, got %g mm", env.MaxShearPositionMM)
	}

	// The critical placement keeps the raw service load.
	chk.IntAssert(len(env.CriticalPlacement), 1)
	chk.Float64(tst, "placement load", 1e-12, env.CriticalPlacement[0].LoadKN, 100)
	chk.Float64(tst, "placement position", 1e-9, env.CriticalPlacement[0].PositionM, 10)
}

func Test_envelope02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("envelope02. symmetry of the single-axle envelope")

	sv := &solver.Native{}
	env, err := Analyze(context.Background(), sv, 20000, singleAxle(), 1, Config{})
	if err != nil {
		tst.Fatalf("Analyze failed: %v", err)
	}

	n := len(env.Points)
	for i := 0; i < n/2; i++ {
		chk.Float64(tst, "moment symmetry", 1e-8,
			env.Points[i].MomentKNM, env.Points[n-1-i].MomentKNM)
		chk.Float64(tst, "shear symmetry", 1e-8,
			env.Points[i].ShearKN, env.Points[n-1-i].ShearKN)
	}
}

func Test_envelope03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("envelope03. determinism across worker counts")

	sv := &solver.Native{}
	vehicle, err := codes.VehicleByName("CLASS_A")
	if err != nil {
		tst.Fatalf("VehicleByName failed: %v", err)
	}

	base, err := Analyze(context.Background(), sv, 30000, vehicle, 2, Config{Workers: 1})
	if err != nil {
		tst.Fatalf("Analyze failed: %v", err)
	}
	for _, workers := range []int{2, 4, 7} {
		env, err := Analyze(context.Background(), sv, 30000, vehicle, 2, Config{Workers: workers})
		if err != nil {
			tst.Fatalf("Analyze with %d workers failed: %v", workers, err)
		}
		if !reflect.DeepEqual(base, env) {
			tst.Fatalf("envelope differs with %d workers", workers)
		}
	}
}

func Test_envelope04(tst *testing.T) {

	//verbose()
	chk.PrintTitle("envelope04. below rated span flag")

	sv := &solver.Native{}
	bogie, err := codes.VehicleByName("CLASS_70R_BOGIE")
	if err != nil {
		tst.Fatalf("VehicleByName failed: %v", err)
	}

	short, err := Analyze(context.Background(), sv, 8000, bogie, 1, Config{})
	if err != nil {
		tst.Fatalf("Analyze failed: %v", err)
	}
	if !short.BelowRatedSpan {
		tst.Errorf("8 m span must be flagged below the 9 m rated minimum")
	}
	if short.MaxMomentKNM <= 0 {
		tst.Errorf("flagged result must still carry the envelope")
	}

	ok, err := Analyze(context.Background(), sv, 9000, bogie, 1, Config{})
	if err != nil {
		tst.Fatalf("Analyze failed: %v", err)
	}
	if ok.BelowRatedSpan {
		tst.Errorf("9 m span is at the rated minimum, not below it")
	}

	if _, err := Analyze(context.Background(), sv, 0, bogie, 1, Config{}); err == nil {
		tst.Errorf("zero span must fail validation")
	}
}
