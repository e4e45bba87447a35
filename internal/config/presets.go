package config

// Preset is one named tuning of the modulator and kernels. Each of the
// site's background variants was hand-tuned with slightly different base
// constants and speed factors, so they are kept as named presets rather
// than a single canonical set.
type Preset struct {
	Name string

	// Attractor recurrence coefficients: the base values at
	// scrollDepth=0, sessionTime=0, plus the full-range offsets added
	// at scrollDepth=1 and engagement=1 respectively.
	Coeff       [4]float64
	ScrollCoeff [4]float64
	EngageCoeff [4]float64

	// Damped selects damped integration; SpeedFactor is the fraction of
	// the distance to the direct-iteration target covered per frame at
	// a 60 Hz reference rate.
	Damped      bool
	SpeedFactor float64
	Substeps    int

	// Wave-field terms.
	Frequency      float64
	FrequencySweep float64
	Amplitude      float64
	AmplitudeSweep float64

	// Color. Hue drifts sinusoidally in session time on top of the
	// scroll sweep.
	BaseHue      float64
	HueSweep     float64
	HueDriftAmp  float64
	HueDriftRate float64

	// Geometry and compositing.
	BaseScale  float64
	ScaleSweep float64
	BaseAlpha  float64
	AlphaSweep float64
}

// DeJongClassic is the primary attractor tuning.
var DeJongClassic = Preset{
	Name:        "dejong-classic",
	Coeff:       [4]float64{1.4, -2.3, 2.4, -2.1},
	ScrollCoeff: [4]float64{0.6, 0.4, -0.5, 0.3},
	EngageCoeff: [4]float64{0.2, -0.15, 0.1, -0.2},
	Damped:      true,
	SpeedFactor: 0.14,
	Substeps:    AttractorSubsteps,

	Frequency:      1.0,
	FrequencySweep: 0.8,
	Amplitude:      60,
	AmplitudeSweep: 30,

	BaseHue:      200,
	HueSweep:     120,
	HueDriftAmp:  14,
	HueDriftRate: 0.05,

	BaseScale:  150,
	ScaleSweep: 60,
	BaseAlpha:  0.55,
	AlphaSweep: 0.25,
}

// DeJongDust raises the speed factor past the basin so tracers visibly
// disperse, matching the dotted variant.
var DeJongDust = Preset{
	Name:        "dejong-dust",
	Coeff:       [4]float64{-2.0, -2.0, -1.2, 2.0},
	ScrollCoeff: [4]float64{0.5, -0.3, 0.4, -0.4},
	EngageCoeff: [4]float64{0.1, 0.1, -0.1, 0.1},
	Damped:      true,
	SpeedFactor: 0.3,
	Substeps:    AttractorSubsteps,

	Frequency:      1.2,
	FrequencySweep: 0.6,
	Amplitude:      50,
	AmplitudeSweep: 25,

	BaseHue:      320,
	HueSweep:     90,
	HueDriftAmp:  10,
	HueDriftRate: 0.04,

	BaseScale:  140,
	ScaleSweep: 50,
	BaseAlpha:  0.45,
	AlphaSweep: 0.3,
}

// CliffordStrict uses direct iteration for maximal attractor structure.
var CliffordStrict = Preset{
	Name:        "clifford-strict",
	Coeff:       [4]float64{-1.7, 1.8, -1.9, -0.4},
	ScrollCoeff: [4]float64{0.4, -0.4, 0.3, 0.5},
	EngageCoeff: [4]float64{-0.1, 0.2, 0.1, -0.1},
	Damped:      false,
	SpeedFactor: 0.08,
	Substeps:    1,

	Frequency:      0.9,
	FrequencySweep: 1.0,
	Amplitude:      70,
	AmplitudeSweep: 20,

	BaseHue:      40,
	HueSweep:     150,
	HueDriftAmp:  18,
	HueDriftRate: 0.06,

	BaseScale:  160,
	ScaleSweep: 70,
	BaseAlpha:  0.6,
	AlphaSweep: 0.2,
}

// Presets lists all tunings in cycling order.
var Presets = []Preset{DeJongClassic, DeJongDust, CliffordStrict}
