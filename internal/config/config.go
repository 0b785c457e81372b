// Package config handles viewer configuration loading and management.
package config

// Config holds all viewer settings.
type Config struct {
	Display  DisplayConfig  `yaml:"display"`
	Viewer   ViewerConfig   `yaml:"viewer"`
	Lighting LightingConfig `yaml:"lighting"`
	Lens     LensConfig     `yaml:"lens"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// DisplayConfig describes the physical display the scene is rendered for.
// Lengths are in millimetres.
type DisplayConfig struct {
	Width                int     `yaml:"width"`  // Canvas width in pixels
	Height               int     `yaml:"height"` // Canvas height in pixels
	PixelPitch           float32 `yaml:"pixel_pitch"`
	DistanceScreenViewer float32 `yaml:"distance_screen_viewer"`
	IPD                  float32 `yaml:"ipd"`
	Fullscreen           bool    `yaml:"fullscreen"`
	VSync                bool    `yaml:"vsync"`
}

// ViewerConfig holds the initial camera and shading settings.
type ViewerConfig struct {
	ClipNear     float32 `yaml:"clip_near"`
	ClipFar      float32 `yaml:"clip_far"`
	Orthographic bool    `yaml:"orthographic"`
	Shading      string  `yaml:"shading"` // gouraud-diffuse, gouraud or phong
}

// LightingConfig describes the scene lights and the material of the model.
type LightingConfig struct {
	Ambient           [3]float32               `yaml:"ambient"`
	Attenuation       [3]float32               `yaml:"attenuation"` // constant, linear, quadratic
	Material          MaterialConfig           `yaml:"material"`
	PointLights       []PointLightConfig       `yaml:"point_lights,omitempty"`
	DirectionalLights []DirectionalLightConfig `yaml:"directional_lights,omitempty"`
}

// MaterialConfig holds Phong reflectance coefficients.
type MaterialConfig struct {
	Ambient   [3]float32 `yaml:"ambient"`
	Diffuse   [3]float32 `yaml:"diffuse"`
	Specular  [3]float32 `yaml:"specular"`
	Shininess float32    `yaml:"shininess"`
}

// PointLightConfig is a point light in world space.
type PointLightConfig struct {
	Position [3]float32 `yaml:"position"`
	Color    [3]float32 `yaml:"color"`
}

// DirectionalLightConfig is a directional light. When Direction is zero the
// direction is derived from the Longitude/Latitude sun angles (degrees).
type DirectionalLightConfig struct {
	Direction [3]float32 `yaml:"direction"`
	Longitude float32    `yaml:"longitude"`
	Latitude  float32    `yaml:"latitude"`
	Color     [3]float32 `yaml:"color"`
}

// LensConfig holds the head-mounted display lens parameters.
type LensConfig struct {
	DistLensScreen float32 `yaml:"dist_lens_screen"` // mm
	K1             float32 `yaml:"k1"`
	K2             float32 `yaml:"k2"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Shading model names accepted in ViewerConfig.Shading.
const (
	ShadingGouraudDiffuse = "gouraud-diffuse"
	ShadingGouraud        = "gouraud"
	ShadingPhong          = "phong"
)

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Display: DisplayConfig{
			Width:                1280,
			Height:               720,
			PixelPitch:           0.311,
			DistanceScreenViewer: 500,
			IPD:                  64,
			Fullscreen:           false,
			VSync:                true,
		},
		Viewer: ViewerConfig{
			ClipNear:     1,
			ClipFar:      10000,
			Orthographic: false,
			Shading:      ShadingPhong,
		},
		Lighting: LightingConfig{
			Ambient:     [3]float32{1, 1, 1},
			Attenuation: [3]float32{1, 0, 0},
			Material: MaterialConfig{
				Ambient:   [3]float32{0.1, 0.1, 0.1},
				Diffuse:   [3]float32{0.6, 0.3, 0.2},
				Specular:  [3]float32{0.5, 0.5, 0.5},
				Shininess: 32,
			},
			PointLights: []PointLightConfig{
				{Position: [3]float32{200, 200, 200}, Color: [3]float32{1, 1, 1}},
			},
		},
		Lens: LensConfig{
			DistLensScreen: 39.4,
			K1:             0.34,
			K2:             0.55,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}
