// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package viewport

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/gviegas/folio/linear"
	"github.com/gviegas/folio/material"
	"github.com/gviegas/folio/model"
	"github.com/gviegas/folio/orbit"
	"github.com/gviegas/folio/wsi"
)

// Camera is the initial camera configuration.
type Camera struct {
	// Initial position.
	//
	// Default is (0, 5, 10).
	Position linear.V3 `toml:"position" yaml:"position"`

	// Vertical field of view, in degrees.
	//
	// Default is 50.
	FOV float32 `toml:"fov" yaml:"fov"`

	// Clipping planes.
	//
	// Default is 0.1 and 1000.
	Near float32 `toml:"near" yaml:"near"`
	Far  float32 `toml:"far" yaml:"far"`
}

// Asset identifies the asset to display and how to
// present it.
type Asset struct {
	// Path of the asset, resolved against the asset
	// root of the Fetcher.
	//
	// Default is "/model.glb".
	URL string `toml:"url" yaml:"url"`

	// Default is model.DefaultPlacement().
	Placement model.Placement `toml:"placement" yaml:"placement"`

	// Default is material.DefaultOverride().
	Override material.Override `toml:"override" yaml:"override"`
}

// Duration is a time.Duration that is written as a
// string such as "30s" in configuration files.
type Duration time.Duration

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(time.Duration(d).String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(b []byte) error {
	x, err := time.ParseDuration(string(b))
	if err != nil {
		return err
	}
	*d = Duration(x)
	return nil
}

// Config is used to configure a Controller.
type Config struct {
	Camera Camera `toml:"camera" yaml:"camera"`

	// Default is orbit.DefaultConfig().
	Orbit orbit.Config `toml:"orbit" yaml:"orbit"`

	// Lifts the azimuth bounds of Orbit.
	// Configuration files cannot set Orbit.Azimuth to
	// nil otherwise.
	//
	// Default is false.
	FreeAzimuth bool `toml:"free_azimuth" yaml:"free_azimuth"`

	Asset Asset `toml:"asset" yaml:"asset"`

	// Default is wsi.DefaultOptions().
	Surface wsi.Options `toml:"surface" yaml:"surface"`

	// Maximum duration of the asset load.
	// Zero means no limit.
	//
	// Default is zero.
	LoadTimeout Duration `toml:"load_timeout" yaml:"load_timeout"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Camera: Camera{
			Position: linear.V3{0, 5, 10},
			FOV:      50,
			Near:     0.1,
			Far:      1000,
		},
		Orbit: orbit.DefaultConfig(),
		Asset: Asset{
			URL:       "/model.glb",
			Placement: model.DefaultPlacement(),
			Override:  material.DefaultOverride(),
		},
		Surface: wsi.DefaultOptions(),
	}
}

// Validate checks that c is a valid configuration.
func (c *Config) Validate() error {
	switch {
	case c.Camera.FOV <= 0 || c.Camera.FOV >= 180:
		return newViewportErr("Camera.FOV outside (0, 180) interval")
	case c.Camera.Near <= 0:
		return newViewportErr("Camera.Near must be greater than 0.0")
	case c.Camera.Far <= c.Camera.Near:
		return newViewportErr("Camera.Far must be greater than Camera.Near")
	case c.Asset.URL == "":
		return newViewportErr("empty Asset.URL")
	case c.LoadTimeout < 0:
		return newViewportErr("negative LoadTimeout")
	}
	if err := c.Orbit.Validate(); err != nil {
		return err
	}
	if err := c.Asset.Placement.Validate(); err != nil {
		return err
	}
	return c.Asset.Override.Validate()
}

// LoadConfig reads a configuration file.
// The format is chosen from the extension: ".toml"
// for TOML, ".yaml" or ".yml" for YAML. Settings absent
// from the file keep their DefaultConfig values, and
// unknown settings are an error.
func LoadConfig(name string) (Config, error) {
	b, err := os.ReadFile(name)
	if err != nil {
		return Config{}, err
	}
	return ParseConfig(b, filepath.Ext(name))
}

// ParseConfig decodes a configuration in the format
// that ext names.
func ParseConfig(b []byte, ext string) (Config, error) {
	cfg := DefaultConfig()
	var err error
	switch strings.ToLower(ext) {
	case ".toml":
		dec := toml.NewDecoder(bytes.NewReader(b))
		dec.DisallowUnknownFields()
		err = dec.Decode(&cfg)
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(b))
		dec.KnownFields(true)
		if err = dec.Decode(&cfg); err != nil && len(bytes.TrimSpace(b)) == 0 {
			err = nil
		}
	default:
		return Config{}, newViewportErr("unknown config format " + ext)
	}
	if err != nil {
		return Config{}, fmt.Errorf(viewportPrefix+"%w", err)
	}
	if err = cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
