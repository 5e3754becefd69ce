// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package material

// Override is a fixed set of material properties that
// replaces those of a decoded asset.
// Applying an Override disables emission, replaces the
// base color with a flat color and sets constant
// metalness/roughness. Textures of the replaced maps
// are dropped.
type Override struct {
	BaseColor [4]float32 `toml:"base_color" yaml:"base_color"`
	Metalness float32    `toml:"metalness" yaml:"metalness"`
	Roughness float32    `toml:"roughness" yaml:"roughness"`
}

// DefaultOverride returns the override used by the
// viewport when none is configured.
func DefaultOverride() Override {
	return Override{
		BaseColor: [4]float32{0.8, 0.8, 0.8, 1},
		Metalness: 0.3,
		Roughness: 0.6,
	}
}

// Validate checks that o describes valid material values.
func (o *Override) Validate() error {
	for _, x := range o.BaseColor {
		if x < 0 || x > 1 {
			return newMatErr("Override.BaseColor outside [0.0, 1.0] interval")
		}
	}
	if o.Metalness < 0 || o.Metalness > 1 {
		return newMatErr("Override.Metalness outside [0.0, 1.0] interval")
	}
	if o.Roughness < 0 || o.Roughness > 1 {
		return newMatErr("Override.Roughness outside [0.0, 1.0] interval")
	}
	return nil
}

// Apply overrides the properties of p.
// Every write is an assignment, so applying the same
// Override more than once has no further effect.
func (o *Override) Apply(p *PBR) {
	p.Emissive = EmissiveMap{TexRef: NoTexture}
	p.BaseColor = BaseColor{NoTexture, o.BaseColor}
	p.MetalRough = MetalRough{NoTexture, o.Metalness, o.Roughness}
}

// Applied returns whether p is in the state that
// o.Apply produces.
func (o *Override) Applied(p *PBR) bool {
	return p.Emissive.Off() &&
		p.BaseColor == BaseColor{NoTexture, o.BaseColor} &&
		p.MetalRough == MetalRough{NoTexture, o.Metalness, o.Roughness}
}
