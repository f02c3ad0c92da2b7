// IRC:6-2017, Standard Specifications for Road Bridges, Section II (Loads).
// Vehicle load trains, impact factors and lane factors.

package codes

import (
	"sort"
	"strings"

	"Girder/internal/calc/errs"
)

// Axle is one axle of a load train: magnitude and position measured from
// the front of the vehicle. Positions in metres as published in the IRC
// annexure figures; the moving-load engine converts at the boundary.
type Axle struct {
	LoadKN    float64 `json:"load_kn"`
	PositionM float64 `json:"position_m"`
}

// Vehicle is an immutable IRC load train selected from the catalogue.
type Vehicle struct {
	Class         string  `json:"class"`
	Axles         []Axle  `json:"axles"`
	TotalLengthM  float64 `json:"total_length_m"`
	MinSpacingM   float64 `json:"min_spacing_same_lane_m"`
	MinRatedSpanM float64 `json:"min_rated_span_m"` // 0 means no minimum
}

// TotalLoadKN is the full vehicle weight.
func (v Vehicle) TotalLoadKN() float64 {
	var sum float64
	for _, a := range v.Axles {
		sum += a.LoadKN
	}
	return sum
}

// ClassATrain is the standard two-lane highway loading
// (IRC:6-2017 Annexure A, Fig. 1). Axles front to rear:
// 2x27 kN, 2x114 kN, 4x68 kN.
func ClassATrain() Vehicle {
	return Vehicle{
		Class: "CLASS_A",
		Axles: []Axle{
			{27, 0.0}, {27, 1.1},
			{114, 4.3}, {114, 5.5},
			{68, 9.8}, {68, 12.8}, {68, 15.8}, {68, 18.8},
		},
		TotalLengthM: 20.3,
		MinSpacingM:  18.5,
	}
}

// ClassBTrain is the lighter loading for minor roads (Fig. 2): same
// geometry as Class A with axles 2x16, 2x68, 4x41 kN.
func ClassBTrain() Vehicle {
	return Vehicle{
		Class: "CLASS_B",
		Axles: []Axle{
			{16, 0.0}, {16, 1.1},
			{68, 4.3}, {68, 5.5},
			{41, 9.8}, {41, 12.8}, {41, 15.8}, {41, 18.8},
		},
		TotalLengthM: 20.3,
		MinSpacingM:  18.5,
	}
}

// trackVehicle models a tracked (tank-type) vehicle as five equivalent
// point loads per track footprint.
func trackVehicle(class string, trackLoadKN, trackLengthM, totalLengthM float64) Vehicle {
	const n = 5
	spacing := trackLengthM / (n - 1)
	axles := make([]Axle, n)
	for i := range axles {
		axles[i] = Axle{LoadKN: trackLoadKN / n, PositionM: float64(i) * spacing}
	}
	return Vehicle{
		Class:         class,
		Axles:         axles,
		TotalLengthM:  totalLengthM,
		MinSpacingM:   30.0,
		MinRatedSpanM: 9.0,
	}
}

// ClassAATracked is the 700 kN tank loading (Fig. 3), 3.6 m tracks.
func ClassAATracked() Vehicle {
	return trackVehicle("CLASS_AA_TRACKED", 350, 3.6, 7.2)
}

// ClassAAWheeled is the 400 kN heavy wheeled loading (Fig. 3A).
func ClassAAWheeled() Vehicle {
	return Vehicle{
		Class: "CLASS_AA_WHEELED",
		Axles: []Axle{
			{62.5, 0.0}, {62.5, 1.2},
			{125, 3.99}, {125, 5.19},
		},
		TotalLengthM:  8.19,
		MinSpacingM:   30.0,
		MinRatedSpanM: 9.0,
	}
}

// Class70RWheeled is the 7-axle ~1000 kN special vehicle (Fig. 5):
// 2x80 kN steering axles, then 5x170 kN bogie axles.
func Class70RWheeled() Vehicle {
	return Vehicle{
		Class: "CLASS_70R_WHEELED",
		Axles: []Axle{
			{80, 0.0}, {80, 1.37},
			{170, 5.94}, {170, 7.31}, {170, 8.68}, {170, 10.05}, {170, 11.42},
		},
		TotalLengthM:  15.22,
		MinSpacingM:   30.0,
		MinRatedSpanM: 9.0,
	}
}

// Class70RTracked is the 700 kN tracked loading (Fig. 4), 4.57 m tracks.
func Class70RTracked() Vehicle {
	return trackVehicle("CLASS_70R_TRACKED", 350, 4.57, 7.92)
}

// Class70RBogie is two 200 kN axles 1.22 m apart (Fig. 6).
func Class70RBogie() Vehicle {
	return Vehicle{
		Class: "CLASS_70R_BOGIE",
		Axles: []Axle{
			{200, 0.0}, {200, 1.22},
		},
		TotalLengthM:  4.87,
		MinSpacingM:   30.0,
		MinRatedSpanM: 9.0,
	}
}

var vehicleCatalogue = map[string]func() Vehicle{
	"CLASS_A":           ClassATrain,
	"CLASS_B":           ClassBTrain,
	"CLASS_AA":          ClassAATracked,
	"CLASS_AA_TRACKED":  ClassAATracked,
	"CLASS_AA_WHEELED":  ClassAAWheeled,
	"CLASS_70R":         Class70RWheeled,
	"CLASS_70R_WHEELED": Class70RWheeled,
	"CLASS_70R_TRACKED": Class70RTracked,
	"CLASS_70R_BOGIE":   Class70RBogie,
}

// VehicleByName returns the catalogue vehicle for an IRC designation
// such as "CLASS_A" or "CLASS_70R".
func VehicleByName(name string) (Vehicle, error) {
	factory, ok := vehicleCatalogue[strings.ToUpper(name)]
	if !ok {
		return Vehicle{}, errs.Validation("load_class",
			"unknown vehicle %q, valid: %s", name, strings.Join(VehicleNames(), ", "))
	}
	return factory(), nil
}

// VehicleNames lists the catalogue designations, sorted.
func VehicleNames() []string {
	names := make([]string, 0, len(vehicleCatalogue))
	for k := range vehicleCatalogue {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// ImpactFactor is the dynamic amplification multiplier on live load per
// IRC:6-2017 Clause 211.2, a non-increasing function of span. bridgeType
// is "steel", "concrete" or "composite"; span in metres.
func ImpactFactor(bridgeType string, spanM float64, class string) float64 {
	var impact float64
	switch {
	case strings.HasPrefix(class, "CLASS_A") && !strings.HasPrefix(class, "CLASS_AA"),
		strings.HasPrefix(class, "CLASS_B"):
		switch bridgeType {
		case "concrete":
			impact = 4.5 / (6.0 + spanM)
		case "composite":
			impact = (9.0/(13.5+spanM) + 4.5/(6.0+spanM)) / 2
		default: // steel
			impact = 9.0 / (13.5 + spanM)
		}
	case strings.HasPrefix(class, "CLASS_AA"), strings.HasPrefix(class, "CLASS_70R"):
		// 25% plateau up to 9 m, linear decay to 10% at 45 m.
		if spanM <= 9.0 {
			impact = 0.25
		} else {
			impact = 0.25 - (spanM-9.0)*(0.15/36.0)
		}
	default:
		impact = 0.20
	}
	if impact < 0.10 {
		impact = 0.10
	}
	return 1.0 + impact
}

// LaneDistributionFactor reduces multi-lane live load per Clause 208.3:
// simultaneous full loading of many lanes is improbable.
func LaneDistributionFactor(lanesLoaded int) float64 {
	switch {
	case lanesLoaded <= 2:
		return 1.0
	case lanesLoaded == 3:
		return 0.9
	default:
		return 0.75
	}
}

// CongestionFactor increases live load on long spans per Clause 209.
func CongestionFactor(spanM float64) float64 {
	switch {
	case spanM <= 10.0:
		return 1.0
	case spanM <= 40.0:
		return 1.0 + 0.15*(spanM-10.0)/30.0
	default:
		return 1.15
	}
}
