package scene

import "fmt"

// Category selects how a model is drawn. It is assigned once when the model is built.
type Category int

const (
	// CategoryDefault covers the terrain and any plain textured model.
	CategoryDefault Category = iota
	// CategoryVehicle is a textured model with a fixed placement on the terrain.
	CategoryVehicle
	// CategorySkybox is drawn without depth and centred on the camera.
	CategorySkybox
	// CategoryCube is the colour cube with a spinning transform.
	CategoryCube
)

func (c Category) String() string {
	switch c {
	case CategoryDefault:
		return "default"
	case CategoryVehicle:
		return "vehicle"
	case CategorySkybox:
		return "skybox"
	case CategoryCube:
		return "cube"
	default:
		return fmt.Sprintf("Category(%d)", int(c))
	}
}
