package physics

// Default tuning values. These were hand-tuned for gameplay feel; the search
// step and clip bounds in particular set the width of the snap zone.
const (
	DefaultGravity       = -0.15
	DefaultFriction      = 0.98
	DefaultAirResistance = 0.995
	DefaultSnapStrength  = 0.3
	DefaultFollowSpeed   = 0.12
	DefaultPathThreshold = 0.8
	DefaultMaxTrail      = 25
	DefaultSearchRadius  = 2.0

	DefaultMarbleRadius = 0.15
	DefaultStarRadius   = 0.3

	SearchStep         = 0.05 // x/y scan step for explicit curves
	SearchClip         = 10.0 // scan never leaves [-SearchClip, SearchClip]
	ImplicitResolution = 50   // per-axis samples for implicit windows
	DerivativeStep     = 0.01 // central-difference step

	LookaheadWindow  = 5.0 // units scanned ahead when scoring paths
	LookaheadSamples = 20
	StarAttractRange = 2.0   // lookahead sample must pass this close to score
	ProximityWeight  = 100.0 // per unit of approach inside StarAttractRange
	HeadingWeight    = 10.0  // per unit of tangent·toStar when positive

	onPathGravityScale = 0.3 // damped gravity while following a path
	blendOnPath        = 0.8 // velocity blend weight when already on a path
	blendSnapOn        = 0.5 // blend weight on the tick a path is acquired
	stallSpeed         = 0.001
	stallNudge         = 0.01
)

// Tuning carries the per-tick physics parameters. All fields are tunable but
// the defaults define the intended feel.
type Tuning struct {
	Gravity       float64
	Friction      float64
	AirResistance float64
	SnapStrength  float64
	FollowSpeed   float64
	SearchRadius  float64
	Dt            float64
}

func DefaultTuning() Tuning {
	return Tuning{
		Gravity:       DefaultGravity,
		Friction:      DefaultFriction,
		AirResistance: DefaultAirResistance,
		SnapStrength:  DefaultSnapStrength,
		FollowSpeed:   DefaultFollowSpeed,
		SearchRadius:  DefaultSearchRadius,
		Dt:            1.0,
	}
}
