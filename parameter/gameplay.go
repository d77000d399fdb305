package parameter

// Lives & Score
const (
	// InitialLives is the life count at start and after reset
	InitialLives = 3

	// ScorePerHit is awarded for each sliced fruit
	ScorePerHit = 1
)

// Gesture Path
const (
	// GesturePathCapacity is the number of recent detections kept as the blade
	GesturePathCapacity = 6
)

// Juice Effect
const (
	// JuiceLifetimeTicks is the number of frame ticks a hit marker lives
	JuiceLifetimeTicks = 30
)

// Fruit Sizing
// Base size is a responsive function of viewport width with a playable floor
const (
	// BaseSizeWidthFactor is the share of viewport width used as glyph size
	BaseSizeWidthFactor = 0.06

	// BaseSizeMin is the smallest glyph size in pixels
	BaseSizeMin = 30.0

	// HitboxReferenceSize is the glyph size at which hitbox scale is 1.0
	HitboxReferenceSize = 90.0

	// HitboxScaleMin is the hitbox scale floor for tiny viewports
	HitboxScaleMin = 0.4
)

// Spawn Placement
const (
	// SpawnMargin is the horizontal keep-out band on both sides, in pixels
	SpawnMargin = 200.0

	// SpawnHeightFraction limits initial y to the top fraction of the viewport
	SpawnHeightFraction = 0.25

	// SpeedReferenceHeight normalizes fall speed to viewport height
	SpeedReferenceHeight = 800.0
)

// SpeedTier is a score bracket with its pre-scale fall speed range
type SpeedTier struct {
	MinScore int
	MinSpeed float64
	MaxSpeed float64
}

// SpeedTiers are ordered by ascending MinScore
var SpeedTiers = []SpeedTier{
	{MinScore: 0, MinSpeed: 5, MaxSpeed: 10},
	{MinScore: 50, MinSpeed: 10, MaxSpeed: 15},
	{MinScore: 100, MinSpeed: 15, MaxSpeed: 20},
}
