package entity

// Measurements are proxy centimeters derived from normalized landmark
// distances. They mirror the mobile client's legacy field names.
type Measurements struct {
	ShoulderWidth float64 `json:"shoulderWidth"`
	ChestWidth    float64 `json:"chestWidth"`
	WaistWidth    float64 `json:"waistWidth"`
	HipWidth      float64 `json:"hipWidth"`
	ArmLength     float64 `json:"armLength"`
	LegLength     float64 `json:"legLength"`
}

type BodyAnalysis struct {
	Measurements       Measurements `json:"measurements"`
	StrongSpots        []string     `json:"strongSpots"`
	WeakSpots          []string     `json:"weakSpots"`
	BodyFatEstimate    float64      `json:"bodyFatEstimate"`
	MuscleMassEstimate float64      `json:"muscleMassEstimate"`
}
