package geometry

import (
	"errors"
	"fmt"
)

// ErrSkyboxFaceCount is returned when the skybox does not have exactly six meshes and six textures.
var ErrSkyboxFaceCount = errors.New("skybox needs six faces")

// Face identifies one side of the skybox.
type Face int

// Skybox faces in the order the skybox model emits its sub-meshes.
const (
	FaceTop Face = iota
	FaceRight
	FaceLeft
	FaceFront
	FaceBack
	FaceBottom
)

// SkyboxFaceOrder is the fixed sub-mesh order of the skybox model.
var SkyboxFaceOrder = [6]Face{FaceTop, FaceRight, FaceLeft, FaceFront, FaceBack, FaceBottom}

func (f Face) String() string {
	switch f {
	case FaceTop:
		return "top"
	case FaceRight:
		return "right"
	case FaceLeft:
		return "left"
	case FaceFront:
		return "front"
	case FaceBack:
		return "back"
	case FaceBottom:
		return "bottom"
	default:
		return fmt.Sprintf("Face(%d)", int(f))
	}
}

// SkyboxFace pairs a skybox sub-mesh with its face tag and texture path.
type SkyboxFace struct {
	Face    Face
	Mesh    *MeshData
	Texture string
}

// PairSkyboxFaces assigns the Nth sub-mesh the Nth texture, tagging both with SkyboxFaceOrder[N].
// textures must already be in SkyboxFaceOrder.
func PairSkyboxFaces(meshes []ParsedMesh, textures []string) ([]SkyboxFace, error) {
	if len(meshes) != len(SkyboxFaceOrder) {
		return nil, fmt.Errorf("%w: got %d meshes", ErrSkyboxFaceCount, len(meshes))
	}
	if len(textures) != len(SkyboxFaceOrder) {
		return nil, fmt.Errorf("%w: got %d textures", ErrSkyboxFaceCount, len(textures))
	}

	faces := make([]SkyboxFace, len(SkyboxFaceOrder))
	for i, face := range SkyboxFaceOrder {
		if textures[i] == "" {
			return nil, fmt.Errorf("skybox %s face has no texture", face)
		}
		mesh, err := FromParsed(meshes[i])
		if err != nil {
			return nil, fmt.Errorf("skybox %s face: %w", face, err)
		}
		faces[i] = SkyboxFace{Face: face, Mesh: mesh, Texture: textures[i]}
	}
	return faces, nil
}
