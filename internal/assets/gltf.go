package assets

import (
	"fmt"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
	"go.uber.org/zap"

	"github.com/Faultbox/tramway/internal/logger"
)

// LoadGLTF reads a .gltf (with external or embedded buffers) or .glb file.
func LoadGLTF(path string) (*Model, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening gltf: %w", err)
	}

	model, err := ModelFromDocument(doc)
	if err != nil {
		return nil, err
	}
	model.Path = path
	return model, nil
}

// ModelFromDocument converts every triangle primitive of every mesh in doc
// into a MeshData. Primitives without positions or with a non-triangle mode
// are skipped.
func ModelFromDocument(doc *gltf.Document) (*Model, error) {
	model := &Model{}

	for mi, mesh := range doc.Meshes {
		for pi, prim := range mesh.Primitives {
			name := fmt.Sprintf("%s#%d", mesh.Name, pi)
			if mesh.Name == "" {
				name = fmt.Sprintf("mesh%d#%d", mi, pi)
			}

			if prim.Mode != gltf.PrimitiveTriangles {
				logger.Debug("skipping non-triangle primitive", zap.String("mesh", name))
				continue
			}
			posIdx, ok := prim.Attributes["POSITION"]
			if !ok {
				logger.Debug("skipping primitive without positions", zap.String("mesh", name))
				continue
			}

			data, err := readPrimitive(doc, prim, posIdx)
			if err != nil {
				return nil, fmt.Errorf("mesh %s: %w", name, err)
			}
			data.Name = name
			model.Meshes = append(model.Meshes, data)
		}
	}

	if len(model.Meshes) == 0 {
		return nil, fmt.Errorf("gltf has no triangle meshes")
	}
	return model, nil
}

func readPrimitive(doc *gltf.Document, prim *gltf.Primitive, posIdx uint32) (*MeshData, error) {
	acr, err := accessor(doc, posIdx)
	if err != nil {
		return nil, fmt.Errorf("reading positions: %w", err)
	}
	positions, err := modeler.ReadPosition(doc, acr, nil)
	if err != nil {
		return nil, fmt.Errorf("reading positions: %w", err)
	}
	data := &MeshData{Positions: positions}

	if idx, ok := prim.Attributes["NORMAL"]; ok {
		acr, err := accessor(doc, idx)
		if err != nil {
			return nil, fmt.Errorf("reading normals: %w", err)
		}
		normals, err := modeler.ReadNormal(doc, acr, nil)
		if err != nil {
			return nil, fmt.Errorf("reading normals: %w", err)
		}
		if len(normals) == len(positions) {
			data.Normals = normals
		}
	}

	if idx, ok := prim.Attributes["TEXCOORD_0"]; ok {
		acr, err := accessor(doc, idx)
		if err != nil {
			return nil, fmt.Errorf("reading texcoords: %w", err)
		}
		uvs, err := modeler.ReadTextureCoord(doc, acr, nil)
		if err != nil {
			return nil, fmt.Errorf("reading texcoords: %w", err)
		}
		if len(uvs) == len(positions) {
			data.UVs = uvs
		}
	}

	if prim.Indices != nil {
		acr, err := accessor(doc, *prim.Indices)
		if err != nil {
			return nil, fmt.Errorf("reading indices: %w", err)
		}
		indices, err := modeler.ReadIndices(doc, acr, nil)
		if err != nil {
			return nil, fmt.Errorf("reading indices: %w", err)
		}
		for _, i := range indices {
			if int(i) >= len(positions) {
				return nil, fmt.Errorf("index %d out of range (%d vertices)", i, len(positions))
			}
		}
		data.Indices = indices
	} else {
		data.Indices = make([]uint32, len(positions))
		for i := range data.Indices {
			data.Indices[i] = uint32(i)
		}
	}

	data.EnsureNormals()
	return data, nil
}

func accessor(doc *gltf.Document, idx uint32) (*gltf.Accessor, error) {
	if int(idx) >= len(doc.Accessors) || doc.Accessors[idx] == nil {
		return nil, fmt.Errorf("accessor %d out of range (%d accessors)", idx, len(doc.Accessors))
	}
	return doc.Accessors[idx], nil
}
