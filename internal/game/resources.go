package game

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/tramway/internal/assets"
	"github.com/Faultbox/tramway/internal/config"
	"github.com/Faultbox/tramway/internal/engine/mesh"
	"github.com/Faultbox/tramway/internal/engine/renderer"
	"github.com/Faultbox/tramway/internal/engine/scene"
	"github.com/Faultbox/tramway/internal/engine/shader"
	"github.com/Faultbox/tramway/internal/engine/shaders"
	"github.com/Faultbox/tramway/internal/engine/texture"
	"github.com/Faultbox/tramway/internal/logger"
	"github.com/Faultbox/tramway/internal/world"
)

type deleter interface {
	Delete()
}

// resources is the drawable set the scene graph points into.
type resources struct {
	programs []*shader.Program
	meshes   []deleter
	cubemap  uint32

	tram      scene.Drawable
	door      scene.Drawable
	ground    scene.Drawable
	buildings scene.Drawable

	log *zap.Logger
}

type programSource struct {
	name     string
	vertex   string
	fragment string
}

// Programs in the order tram, door, ground, buildings.
var programSources = [...]programSource{
	{"tram", shaders.ReflectVertexShader, shaders.RefractFragmentShader},
	{"door", shaders.ReflectVertexShader, shaders.ReflectFragmentShader},
	{"ground", shaders.ColorVertexShader, shaders.ColorFragmentShader},
	{"buildings", shaders.BuildingVertexShader, shaders.ColorFragmentShader},
}

func loadResources(cfg *config.Config, am *assets.Manager, r *renderer.Renderer) (*resources, error) {
	res := &resources{log: logger.Named("resources")}

	var progs [len(programSources)]*shader.Program
	for i, src := range programSources {
		p, err := shader.New(src.name, src.vertex, src.fragment)
		if err != nil {
			res.release()
			return nil, fmt.Errorf("failed to build shaders: %w", err)
		}
		r.Register(p)
		res.programs = append(res.programs, p)
		progs[i] = p
	}

	res.tram = res.loadModel(am, cfg.Assets.TramModel, progs[0])
	res.door = res.loadModel(am, cfg.Assets.DoorModel, progs[1])

	plane := mesh.New(mesh.PlaneVertices, mesh.PositionColor)
	res.meshes = append(res.meshes, plane)
	res.ground = scene.NewModel(plane, progs[2])

	blocks := mesh.NewInstanced(mesh.BuildingVertices, mesh.PositionColor, world.BuildingOffsets(cfg.Buildings))
	res.meshes = append(res.meshes, blocks)
	res.buildings = scene.NewModel(blocks, progs[3])

	id, err := loadCubemap(am, cfg.Assets.SkyboxFaces)
	if err != nil {
		res.log.Warn("skybox unavailable", zap.Error(err))
	} else {
		res.cubemap = id
		r.SetCubemap(id)
	}

	return res, nil
}

// loadModel uploads every mesh of a model file. It returns nil when the
// file cannot be loaded, so the node using it draws nothing.
func (res *resources) loadModel(am *assets.Manager, path string, p *shader.Program) scene.Drawable {
	model, err := am.Load(path)
	if err != nil {
		res.log.Warn("model unavailable", zap.String("path", path), zap.Error(err))
		return nil
	}
	if len(model.Meshes) == 0 {
		res.log.Warn("model has no meshes", zap.String("path", path))
		return nil
	}

	meshes := make([]scene.Mesh, 0, len(model.Meshes))
	for _, md := range model.Meshes {
		// The cached model is shared; normals go on a copy.
		d := *md
		d.EnsureNormals()

		m := mesh.FromAsset(&d)
		res.meshes = append(res.meshes, m)
		meshes = append(meshes, m)
	}
	return scene.NewMultiModel(p, meshes...)
}

func loadCubemap(am *assets.Manager, faces []string) (uint32, error) {
	data := make([][]byte, 0, len(faces))
	for _, f := range faces {
		b, err := am.ReadFile(f)
		if err != nil {
			return 0, err
		}
		data = append(data, b)
	}

	imgs, err := texture.DecodeCubemap(data)
	if err != nil {
		return 0, err
	}
	return texture.UploadCubemap(imgs), nil
}

func (res *resources) drawables() world.Drawables {
	return world.Drawables{
		Tram:      res.tram,
		Door:      res.door,
		Ground:    res.ground,
		Buildings: res.buildings,
	}
}

func (res *resources) release() {
	for _, m := range res.meshes {
		m.Delete()
	}
	res.meshes = nil
	for _, p := range res.programs {
		p.Delete()
	}
	res.programs = nil
	texture.Delete(res.cubemap)
	res.cubemap = 0
}
