package lighting

import (
	"github.com/Faultbox/hmdview/internal/config"
	"github.com/Faultbox/hmdview/pkg/math"
)

// FromConfig builds the material and light environment described by cfg.
// A directional light with a zero direction takes it from its sun angles.
func FromConfig(cfg config.LightingConfig) (Material, Environment) {
	m := Material{
		Ambient:   math.FromArray(cfg.Material.Ambient),
		Diffuse:   math.FromArray(cfg.Material.Diffuse),
		Specular:  math.FromArray(cfg.Material.Specular),
		Shininess: cfg.Material.Shininess,
	}

	env := Environment{
		AmbientColor: math.FromArray(cfg.Ambient),
		Attenuation: Attenuation{
			Constant:  cfg.Attenuation[0],
			Linear:    cfg.Attenuation[1],
			Quadratic: cfg.Attenuation[2],
		},
	}

	for _, pl := range cfg.PointLights {
		env.PointLights = append(env.PointLights, PointLight{
			Position: math.FromArray(pl.Position),
			Color:    math.FromArray(pl.Color),
		})
	}

	for _, dl := range cfg.DirectionalLights {
		dir := math.FromArray(dl.Direction)
		if dir == (math.Vec3{}) {
			dir = SunDirection(dl.Longitude, dl.Latitude)
		}
		env.DirectionalLights = append(env.DirectionalLights, DirectionalLight{
			Direction: dir,
			Color:     math.FromArray(dl.Color),
		})
	}

	return m, env
}
