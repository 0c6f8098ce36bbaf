package config

import "image/color"

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Movement
	MoveImpulse       float64 `yaml:"move_impulse"`       // Added to vx every frame a direction is held
	HorizontalDamping float64 `yaml:"horizontal_damping"` // vx is divided by this every frame
	VelocityEpsilon   float64 `yaml:"velocity_epsilon"`   // |vx| below this snaps to zero

	// Jumping
	JumpSpeed        float64 `yaml:"jump_speed"`
	JumpCooldown     float64 `yaml:"jump_cooldown"`      // seconds
	WallJumpCooldown float64 `yaml:"wall_jump_cooldown"` // seconds, per wall side
	WallJumpKick     float64 `yaml:"wall_jump_kick"`     // horizontal speed away from the wall
	WallSlideSpeed   float64 `yaml:"wall_slide_speed"`   // max descent while sliding

	// Ground spring
	GroundRayLength float64 `yaml:"ground_ray_length"`
	SpringConstant  float64 `yaml:"spring_constant"`
	SpringDamping   float64 `yaml:"spring_damping"`
	Mass            float64 `yaml:"mass"`

	// Dimensions
	CollisionWidth  float64 `yaml:"collision_width"`
	CollisionHeight float64 `yaml:"collision_height"`

	// Sensors, measured from the collider centre
	GroundSensorWidth  float64 `yaml:"ground_sensor_width"`
	GroundSensorTop    float64 `yaml:"ground_sensor_top"`
	GroundSensorBottom float64 `yaml:"ground_sensor_bottom"`
	WallSensorReach    float64 `yaml:"wall_sensor_reach"`
	WallSensorHeight   float64 `yaml:"wall_sensor_height"`

	FrameWidth  int `yaml:"frame_width"`
	FrameHeight int `yaml:"frame_height"`
}

// PhysicsConfig contains physics-related configuration values
type PhysicsConfig struct {
	Gravity      float64 `yaml:"gravity"` // negative, world is Y-up
	MaxFallSpeed float64 `yaml:"max_fall_speed"`
	CellSize     int     `yaml:"cell_size"` // resolv spatial hash cell size
}

// CameraConfig contains camera rig configuration
type CameraConfig struct {
	VisibleHeight float64 `yaml:"visible_height"` // world units visible vertically
	VisibleWidth  float64 `yaml:"visible_width"`  // world units visible horizontally

	ForegroundCoefficient float64 `yaml:"foreground_coefficient"`
	MidgroundCoefficient  float64 `yaml:"midground_coefficient"`
	BackgroundCoefficient float64 `yaml:"background_coefficient"`

	PanningDivisor float64 `yaml:"panning_divisor"` // follow divisor while any pan is active
	SettledDivisor float64 `yaml:"settled_divisor"` // follow divisor once waiting at the player
	PanEpsilon     float64 `yaml:"pan_epsilon"`
	GoalDwell      float64 `yaml:"goal_dwell"` // seconds

	DefaultLevelWidth float64 `yaml:"default_level_width"`
}

// BarrierConfig positions the backwards barrier
type BarrierConfig struct {
	Offset       float64 `yaml:"offset"`
	JitterMargin float64 `yaml:"jitter_margin"`
	Width        float64 `yaml:"width"`
}

// TransitionConfig drives the dim-to-black overlay
type TransitionConfig struct {
	DimRate   float64    `yaml:"dim_rate"`   // alpha per second
	HoldAlpha float64    `yaml:"hold_alpha"` // alpha at which the transition fires
	Color     color.RGBA `yaml:"-"`
}

// PickupConfig contains collectible tuning
type PickupConfig struct {
	JumpTokenRespawn float64 `yaml:"jump_token_respawn"` // seconds
	HoverHeight      float64 `yaml:"hover_height"`
	HoverPeriod      float64 `yaml:"hover_period"` // seconds for one up or down leg
	SignFadeIn       float64 `yaml:"sign_fade_in"`
	Size             float64 `yaml:"size"`
}

// HUDConfig contains HUD layout values
type HUDConfig struct {
	MaxIcons  int        `yaml:"max_icons"`
	IconSize  float64    `yaml:"icon_size"`
	IconGap   float64    `yaml:"icon_gap"`
	Margin    float64    `yaml:"margin"`
	FontSize  float64    `yaml:"font_size"`
	TextColor color.RGBA `yaml:"-"`
}

// Config holds general game configuration
type Config struct {
	Width   int
	Height  int
	AppName string
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipMenu     bool // Skip menu and go directly to game
	StartLevel   int  // Level index used with SkipMenu
	Verbose      bool // Trace player state transitions
	TuningPath   string
	AllowSkip    bool // Enable the skip-level key
	DrawHitboxes bool
}

// Global configuration instances
var C *Config
var Player PlayerConfig
var Physics PhysicsConfig
var Camera CameraConfig
var Barrier BarrierConfig
var Transition TransitionConfig
var Pickups PickupConfig
var HUD HUDConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black        = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	Yellow       = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	LightGreen   = color.RGBA{R: 100, G: 255, B: 100, A: 255}
	Purple       = color.RGBA{R: 128, G: 0, B: 255, A: 255}
	Magenta      = color.RGBA{R: 255, G: 0, B: 255, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	DarkBlue     = color.RGBA{R: 60, G: 100, B: 160, A: 255}
	Stone        = color.RGBA{R: 92, G: 84, B: 110, A: 255}
	Water        = color.RGBA{R: 40, G: 110, B: 200, A: 220}
	Wood         = color.RGBA{R: 150, G: 105, B: 60, A: 255}
	Sky          = color.RGBA{R: 24, G: 28, B: 52, A: 255}
	Hills        = color.RGBA{R: 38, G: 48, B: 82, A: 255}
	FarHills     = color.RGBA{R: 30, G: 36, B: 66, A: 255}
	PlayerBody   = color.RGBA{R: 236, G: 236, B: 220, A: 255}
	PlayerAccent = color.RGBA{R: 230, G: 80, B: 80, A: 255}
)

// Direction constants for player facing
const (
	DirectionLeft  = -1.0
	DirectionRight = 1.0
)

func init() {
	C = &Config{
		Width:   640,
		Height:  360,
		AppName: "loopjump",
	}

	Player = PlayerConfig{
		MoveImpulse:       55,
		HorizontalDamping: 1.6,
		VelocityEpsilon:   0.1,

		JumpSpeed:        130,
		JumpCooldown:     0.3,
		WallJumpCooldown: 0.4,
		WallJumpKick:     90,
		WallSlideSpeed:   75,

		GroundRayLength: 10,
		SpringConstant:  15000,
		SpringDamping:   15000 / 5,
		Mass:            50,

		CollisionWidth:  14,
		CollisionHeight: 10,

		GroundSensorWidth:  10,
		GroundSensorTop:    0.2,
		GroundSensorBottom: 9.6,
		WallSensorReach:    1.5,
		WallSensorHeight:   6,

		FrameWidth:  16,
		FrameHeight: 16,
	}

	Physics = PhysicsConfig{
		// 9.81 m/s^2 at 24 units per metre
		Gravity:      -9.81 * 24,
		MaxFallSpeed: 400,
		CellSize:     16,
	}

	Camera = CameraConfig{
		VisibleHeight: 256,
		VisibleWidth:  256 * 16.0 / 9.0,

		ForegroundCoefficient: 1.0,
		MidgroundCoefficient:  0.35,
		BackgroundCoefficient: 0.25,

		PanningDivisor: 30,
		SettledDivisor: 3,
		PanEpsilon:     1.0,
		GoalDwell:      0.3,

		DefaultLevelWidth: 1000 * 16,
	}

	Barrier = BarrierConfig{
		Offset:       5,
		JitterMargin: 10,
		Width:        1,
	}

	Transition = TransitionConfig{
		DimRate:   2,
		HoldAlpha: 1.5,
		Color:     Black,
	}

	Pickups = PickupConfig{
		JumpTokenRespawn: 5,
		HoverHeight:      2,
		HoverPeriod:      0.8,
		SignFadeIn:       0.25,
		Size:             10,
	}

	HUD = HUDConfig{
		MaxIcons:  15,
		IconSize:  10,
		IconGap:   3,
		Margin:    8,
		FontSize:  10,
		TextColor: White,
	}
}
