package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/smoothrect"
	"github.com/npillmayer/smoothrect/roundrect"
	"gopkg.in/yaml.v3"
)

// ErrBadRadii is reported for shapes listing neither 0, 1 nor 4 radii.
var ErrBadRadii = errors.New("shape needs a radius or 4 corner radii")

// Scene is the content of a scene file. A shape without a smoothness of its
// own gets the scene's smoothness.
//
//	page:
//	  width: 400
//	  height: 300
//	smoothness: 0.6
//	shapes:
//	  - { x: 20, y: 20, width: 160, height: 100, radius: 24, fill: "#336699" }
//	  - { x: 200, y: 20, width: 160, height: 100, radii: [8, 32, 8, 32], stroke: black }
//	logging:
//	  level: debug
type Scene struct {
	Page       PageConfig    `yaml:"page"`
	Smoothness float64       `yaml:"smoothness"`
	Shapes     []ShapeConfig `yaml:"shapes"`
	Logging    LoggingConfig `yaml:"logging"`
}

// PageConfig is the size of the output page, in points.
type PageConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// ShapeConfig describes a single rectangle. Radii are ordered top-left,
// top-right, bottom-right, bottom-left; Radius is used for all corners if
// Radii is empty.
type ShapeConfig struct {
	X           float64   `yaml:"x"`
	Y           float64   `yaml:"y"`
	Width       float64   `yaml:"width"`
	Height      float64   `yaml:"height"`
	Smoothness  float64   `yaml:"smoothness"`
	Radius      float64   `yaml:"radius"`
	Radii       []float64 `yaml:"radii"`
	Fill        string    `yaml:"fill"`
	Stroke      string    `yaml:"stroke"`
	StrokeWidth float64   `yaml:"stroke_width"`
}

// LoggingConfig selects the trace level: "debug", "info" or "error".
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Defaults returns a scene with a single demo shape.
func Defaults() Scene {
	return Scene{
		Page:       PageConfig{Width: 240, Height: 160},
		Smoothness: 0.6,
		Shapes: []ShapeConfig{
			{X: 20, Y: 20, Width: 200, Height: 120, Radius: 24, Fill: "#336699"},
		},
		Logging: LoggingConfig{Level: "info"},
	}
}

// LoadScene reads a YAML scene file and merges it onto the defaults.
func LoadScene(filename string) (Scene, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return Defaults(), fmt.Errorf("reading scene: %w", err)
	}
	return ParseScene(data)
}

// ParseScene decodes a YAML scene and merges it onto the defaults. A scene
// listing shapes replaces the demo shape.
func ParseScene(data []byte) (Scene, error) {
	scene := Defaults()
	var fileScene Scene
	if err := yaml.Unmarshal(data, &fileScene); err != nil {
		return scene, fmt.Errorf("decoding scene: %w", err)
	}
	mergeInto(&scene, &fileScene)
	return scene, nil
}

func mergeInto(dst *Scene, src *Scene) {
	if src.Page.Width != 0 {
		dst.Page.Width = src.Page.Width
	}
	if src.Page.Height != 0 {
		dst.Page.Height = src.Page.Height
	}
	if src.Smoothness != 0 {
		dst.Smoothness = src.Smoothness
	}
	if len(src.Shapes) > 0 {
		dst.Shapes = src.Shapes
	}
	if strings.TrimSpace(src.Logging.Level) != "" {
		dst.Logging.Level = strings.ToLower(strings.TrimSpace(src.Logging.Level))
	}
}

// Rect converts a shape configuration into a validated rectangle.
// smoothness is used if the shape does not carry its own.
func (s ShapeConfig) Rect(smoothness float64) (roundrect.Rect, error) {
	if s.Smoothness != 0 {
		smoothness = s.Smoothness
	}
	var radii [4]float64
	switch len(s.Radii) {
	case 0:
		radii = [4]float64{s.Radius, s.Radius, s.Radius, s.Radius}
	case 4:
		copy(radii[:], s.Radii)
	default:
		return roundrect.Rect{}, fmt.Errorf("%w, have %d", ErrBadRadii, len(s.Radii))
	}
	r := roundrect.Rect{
		Origin:     smoothrect.P(s.X, s.Y),
		Width:      s.Width,
		Height:     s.Height,
		Smoothness: smoothness,
		Radii:      radii,
	}
	if err := r.Validate(); err != nil {
		return roundrect.Rect{}, err
	}
	return r, nil
}

// traceLevel maps a configured level name onto a tracing level. Unknown
// names select info.
func traceLevel(name string) tracing.TraceLevel {
	return tracing.TraceLevelFromString(strings.TrimSpace(name))
}

// rgb parses a colour in #rrggbb or #rgb notation or one of a few names.
func rgb(c string) (r, g, b int, ok bool) {
	c = strings.ToLower(strings.TrimSpace(c))
	switch c {
	case "black":
		return 0, 0, 0, true
	case "white":
		return 255, 255, 255, true
	case "red":
		return 255, 0, 0, true
	case "green":
		return 0, 128, 0, true
	case "blue":
		return 0, 0, 255, true
	}
	if !strings.HasPrefix(c, "#") {
		return 0, 0, 0, false
	}
	c = c[1:]
	if len(c) == 3 {
		c = string([]byte{c[0], c[0], c[1], c[1], c[2], c[2]})
	}
	if len(c) != 6 {
		return 0, 0, 0, false
	}
	v, err := strconv.ParseUint(c, 16, 32)
	if err != nil {
		return 0, 0, 0, false
	}
	return int(v >> 16 & 0xff), int(v >> 8 & 0xff), int(v & 0xff), true
}
