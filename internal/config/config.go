package config

const (
	WindowWidth  = 1280
	WindowHeight = 800

	// ContentPages is the virtual scrollable height in viewport multiples.
	// Scroll depth is the wheel offset normalized over (pages-1) viewports.
	ContentPages = 4.0

	// ScrollStep is the wheel-to-pixels multiplier for scroll offset updates.
	ScrollStep = 40.0

	// EngagementWindow is the session time (seconds) at which the
	// engagement measure saturates at 1.
	EngagementWindow = 60.0

	// Symmetry bounds for rotational-copy drawing.
	MinSymmetry = 3
	MaxSymmetry = 12

	// DragDecay is the per-frame decay applied to drag velocity and
	// accumulated rotation velocity.
	DragDecay = 0.96

	// TrailFadeAlpha is the opacity of the full-screen fade rectangle
	// composited over the trail buffer each frame.
	TrailFadeAlpha = 28
)

// Wave-field kernel defaults.
const (
	WaveGridSize = 80

	// WaveCellFactor scales min(width,height)/N into a cell size.
	WaveCellFactor = 0.8
)

// Point-cloud kernel defaults.
const (
	CloudPointCount = 1500

	// CloudRadiusFactor scales min(width,height) into the sphere radius.
	CloudRadiusFactor = 0.4

	// CloudInfluenceRadius is the pointer repulsion radius in pixels.
	CloudInfluenceRadius = 220.0

	// CloudRepulsionFalloff is the exponent of the (1 - d/radius) falloff.
	CloudRepulsionFalloff = 2.5

	// CloudOffsetRelax is the per-frame relaxation of repulsion offsets.
	CloudOffsetRelax = 0.88

	// CameraDepth is the weak-perspective camera constant D in
	// scale = D / (D + z).
	CameraDepth = 900.0
)

// Attractor kernel defaults.
const (
	AttractorTracerCount = 900

	// AttractorSubsteps is the damped-integration substep count per frame.
	AttractorSubsteps = 5
)

// Flow-field kernel defaults.
const (
	FlowTracerCount = 1200
	FlowNoiseScale  = 0.0016
	FlowSpeed       = 55.0
)
