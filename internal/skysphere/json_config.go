package skysphere

import (
	"encoding/json"
	"fmt"
	"os"
)

type SphereCfg struct {
	Center Point3 `json:"center"`
	Radius Real   `json:"radius"`
}

type Config struct {
	ImageWidth     int        `json:"imageWidth"`
	AspectRatio    Real       `json:"aspectRatio"`
	ViewportHeight Real       `json:"viewportHeight"`
	FocalLength    Real       `json:"focalLength"`
	Out            string     `json:"out"`
	Workers        int        `json:"workers,omitempty"`
	Sphere         *SphereCfg `json:"sphere,omitempty"`
}

// DefaultConfig is the fixed reference scene: a half-unit sphere one focal
// length in front of a 16:9, 1000-pixel-wide viewport.
func DefaultConfig() *Config {
	return &Config{
		ImageWidth:     ImageWidth,
		AspectRatio:    AspectRatio,
		ViewportHeight: ViewportHeight,
		FocalLength:    FocalLength,
		Out:            OutFile,
		Sphere:         &SphereCfg{Center: DefaultSphereCenter, Radius: SphereRadius},
	}
}

func loadConfig(path string) (*Config, error) {
	if path == "" {
		return DefaultConfig(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	// Defaults / validation
	if cfg.ImageWidth <= 0 {
		cfg.ImageWidth = ImageWidth
	}
	if cfg.ImageWidth < 2 {
		return nil, fmt.Errorf("imageWidth must be >= 2, got %d", cfg.ImageWidth)
	}
	if cfg.AspectRatio <= 0 {
		cfg.AspectRatio = AspectRatio
	}
	if cfg.ViewportHeight <= 0 {
		cfg.ViewportHeight = ViewportHeight
	}
	if cfg.FocalLength <= 0 {
		cfg.FocalLength = FocalLength
	}
	if cfg.Out == "" {
		cfg.Out = OutFile
	}
	if cfg.Workers < 0 {
		cfg.Workers = 0
	}
	if cfg.Sphere == nil {
		cfg.Sphere = &SphereCfg{Center: DefaultSphereCenter, Radius: SphereRadius}
	}
	if cfg.Sphere.Radius == 0 {
		cfg.Sphere.Radius = SphereRadius
	}
	if h := ImageHeightFor(cfg.ImageWidth, cfg.AspectRatio); h < 2 {
		return nil, fmt.Errorf("derived image height %d is too small; increase imageWidth or lower aspectRatio", h)
	}
	DebugLog("Loaded config from %s: width=%d, aspect=%f, out=%s", path, cfg.ImageWidth, cfg.AspectRatio, cfg.Out)
	return &cfg, nil
}
