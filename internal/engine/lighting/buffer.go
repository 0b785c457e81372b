package lighting

// Maximum light counts accepted by the shading programs.
const (
	MaxPointLights       = 16
	MaxDirectionalLights = 4
)

// LightBuffer holds scene lights in the flat layout used for uniform upload.
type LightBuffer struct {
	Point       []PointLight
	Directional []DirectionalLight
}

// NewLightBuffer creates an empty light buffer.
func NewLightBuffer() *LightBuffer {
	return &LightBuffer{
		Point:       make([]PointLight, 0, MaxPointLights),
		Directional: make([]DirectionalLight, 0, MaxDirectionalLights),
	}
}

// Clear removes all lights from the buffer.
func (b *LightBuffer) Clear() {
	b.Point = b.Point[:0]
	b.Directional = b.Directional[:0]
}

// AddPoint adds a point light. Returns false if the buffer is full.
func (b *LightBuffer) AddPoint(light PointLight) bool {
	if len(b.Point) >= MaxPointLights {
		return false
	}
	b.Point = append(b.Point, light)
	return true
}

// AddDirectional adds a directional light. Returns false if the buffer is full.
func (b *LightBuffer) AddDirectional(light DirectionalLight) bool {
	if len(b.Directional) >= MaxDirectionalLights {
		return false
	}
	b.Directional = append(b.Directional, light)
	return true
}

// SetEnvironment replaces the buffer contents with the lights of env.
// Lights beyond the maximum counts are dropped; the number dropped is returned.
func (b *LightBuffer) SetEnvironment(env Environment) int {
	b.Clear()
	dropped := 0
	for _, l := range env.PointLights {
		if !b.AddPoint(l) {
			dropped++
		}
	}
	for _, l := range env.DirectionalLights {
		if !b.AddDirectional(l) {
			dropped++
		}
	}
	return dropped
}

// PointPositions returns positions as a flat float32 slice.
// Format: [x0, y0, z0, x1, y1, z1, ...]
func (b *LightBuffer) PointPositions() []float32 {
	result := make([]float32, 0, len(b.Point)*3)
	for _, l := range b.Point {
		result = append(result, l.Position.X, l.Position.Y, l.Position.Z)
	}
	return result
}

// PointColors returns point light colours as a flat float32 slice.
func (b *LightBuffer) PointColors() []float32 {
	result := make([]float32, 0, len(b.Point)*3)
	for _, l := range b.Point {
		result = append(result, l.Color.X, l.Color.Y, l.Color.Z)
	}
	return result
}

// DirectionalDirections returns directions as a flat float32 slice.
func (b *LightBuffer) DirectionalDirections() []float32 {
	result := make([]float32, 0, len(b.Directional)*3)
	for _, l := range b.Directional {
		result = append(result, l.Direction.X, l.Direction.Y, l.Direction.Z)
	}
	return result
}

// DirectionalColors returns directional light colours as a flat float32 slice.
func (b *LightBuffer) DirectionalColors() []float32 {
	result := make([]float32, 0, len(b.Directional)*3)
	for _, l := range b.Directional {
		result = append(result, l.Color.X, l.Color.Y, l.Color.Z)
	}
	return result
}
