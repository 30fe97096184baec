package stereogram

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"strings"
)

type WindowCfg struct {
	Width  int    `json:"width,omitempty"`
	Height int    `json:"height,omitempty"`
	Title  string `json:"title,omitempty"`
	TPS    int    `json:"tps,omitempty"`
}

// Rotation in degrees for JSON (friendlier than radians).
type Rot3Deg struct {
	X Real `json:"x"`
	Y Real `json:"y"`
	Z Real `json:"z"`
}

type Rot4Deg struct {
	XY Real `json:"xy"`
	XZ Real `json:"xz"`
	YZ Real `json:"yz"`
	XW Real `json:"xw"`
	YW Real `json:"yw"`
	ZW Real `json:"zw"`
}

// ViewCfg holds the startup view. Zero values mean "use the default";
// the booleans are phrased so that false is the default.
type ViewCfg struct {
	Mode                string   `json:"mode,omitempty"` // "3d" or "4d"
	Solid               string   `json:"solid,omitempty"`
	Hypersolid          string   `json:"hypersolid,omitempty"`
	EyeSeparation       Real     `json:"eyeSeparation,omitempty"`
	PerspectiveDistance Real     `json:"perspectiveDistance,omitempty"`
	Orthographic        bool     `json:"orthographic,omitempty"`
	DarkBackground      bool     `json:"darkBackground,omitempty"`
	FlatColor           bool     `json:"flatColor,omitempty"`
	WDepthColoring      bool     `json:"wDepthColoring,omitempty"`
	HideGuides          bool     `json:"hideGuides,omitempty"`
	HideUI              bool     `json:"hideUI,omitempty"`
	ShowSliders         bool     `json:"showSliders,omitempty"`
	Paused              bool     `json:"paused,omitempty"`
	Velocity3Deg        *Rot3Deg `json:"velocity3Deg,omitempty"` // degrees per tick
	Velocity4Deg        *Rot4Deg `json:"velocity4Deg,omitempty"` // degrees per tick
}

type SnapshotCfg struct {
	Width       int    `json:"width,omitempty"`
	Height      int    `json:"height,omitempty"`
	Frames      int    `json:"frames,omitempty"`
	GIFOut      string `json:"gifOut,omitempty"`
	GIFDelay    int    `json:"gifDelay,omitempty"`
	PNGPrefix   string `json:"pngPrefix,omitempty"`
	OutputWidth int    `json:"outputWidth,omitempty"` // 0 keeps the rendered width
}

type Config struct {
	Window   WindowCfg   `json:"window"`
	View     ViewCfg     `json:"view"`
	Snapshot SnapshotCfg `json:"snapshot"`
}

func (r Rot3Deg) Radians() Rot3 {
	const k = math.Pi / 180
	return Rot3{X: r.X * k, Y: r.Y * k, Z: r.Z * k}
}

func (r Rot4Deg) Radians() Rot4 {
	const k = math.Pi / 180
	return Rot4{
		XY: r.XY * k, XZ: r.XZ * k, YZ: r.YZ * k,
		XW: r.XW * k, YW: r.YW * k, ZW: r.ZW * k,
	}
}

// Build validates the view section and constructs the runtime state.
func (c ViewCfg) Build() (*ViewState, error) {
	v := NewViewState()
	switch strings.ToLower(c.Mode) {
	case "", "3d":
		v.Mode = Mode3D
	case "4d":
		v.Mode = Mode4D
	default:
		return nil, fmt.Errorf("mode must be \"3d\" or \"4d\", got %q", c.Mode)
	}
	if c.Solid != "" {
		s, err := ParseSolid(c.Solid)
		if err != nil {
			return nil, err
		}
		v.Solid = s
	}
	if c.Hypersolid != "" {
		h, err := ParseHypersolid(c.Hypersolid)
		if err != nil {
			return nil, err
		}
		v.Hypersolid = h
	}
	if c.EyeSeparation != 0 {
		v.EyeSeparation = clamp(c.EyeSeparation, EyeSeparationMin, EyeSeparationMax)
	}
	if c.PerspectiveDistance != 0 {
		v.PerspectiveDistance = clamp(c.PerspectiveDistance, DistanceMin, DistanceMax)
	}
	v.Orthographic = c.Orthographic
	v.DarkBackground = c.DarkBackground
	v.DepthColoring = !c.FlatColor && !c.WDepthColoring
	v.WDepthColoring = c.WDepthColoring
	v.ShowGuides = !c.HideGuides
	v.ShowUI = !c.HideUI
	v.ShowSliders = c.ShowSliders
	v.Paused = c.Paused
	if c.Velocity3Deg != nil {
		v.Velocity3 = clampRot3(c.Velocity3Deg.Radians())
	}
	if c.Velocity4Deg != nil {
		v.Velocity4 = clampRot4(c.Velocity4Deg.Radians())
	}
	return v, nil
}

func clampRot3(r Rot3) Rot3 {
	for i := 0; i < 3; i++ {
		r.Set(i, clamp(r.Get(i), -MaxVelocity, MaxVelocity))
	}
	return r
}

func clampRot4(r Rot4) Rot4 {
	for i := 0; i < 6; i++ {
		r.Set(i, clamp(r.Get(i), -MaxVelocity, MaxVelocity))
	}
	return r
}

// DefaultConfig is what an empty or missing config path yields.
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

func (cfg *Config) applyDefaults() {
	if cfg.Window.Width <= 0 {
		cfg.Window.Width = WindowWidth
	}
	if cfg.Window.Height <= 0 {
		cfg.Window.Height = WindowHeight
	}
	if cfg.Window.Title == "" {
		cfg.Window.Title = WindowTitle
	}
	if cfg.Window.TPS <= 0 {
		cfg.Window.TPS = TPS
	}
	if cfg.Snapshot.Width <= 0 {
		cfg.Snapshot.Width = cfg.Window.Width
	}
	if cfg.Snapshot.Height <= 0 {
		cfg.Snapshot.Height = cfg.Window.Height
	}
	if cfg.Snapshot.Frames <= 0 {
		cfg.Snapshot.Frames = SnapshotFrames
	}
	if cfg.Snapshot.GIFOut == "" {
		cfg.Snapshot.GIFOut = GIFOut
	}
	if cfg.Snapshot.GIFDelay <= 0 {
		cfg.Snapshot.GIFDelay = GIFDelay
	}
	if cfg.Snapshot.PNGPrefix == "" {
		cfg.Snapshot.PNGPrefix = PNGPrefix
	}
	if cfg.Snapshot.OutputWidth < 0 {
		cfg.Snapshot.OutputWidth = 0
	}
}

// LoadConfig reads a JSON config; an empty path returns the defaults.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		DebugLog("No config given, using defaults")
		return DefaultConfig(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	cfg.applyDefaults()
	// validate the view section early so a bad name fails before a window opens
	if _, err := cfg.View.Build(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	DebugLog("Loaded config from %s: window=(%d, %d), snapshot frames=%d, gif=%s", path, cfg.Window.Width, cfg.Window.Height, cfg.Snapshot.Frames, cfg.Snapshot.GIFOut)
	return &cfg, nil
}
