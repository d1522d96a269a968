package mesh

import (
	"errors"
	"fmt"
	gomath "math"

	"go.uber.org/zap"

	"github.com/Faultbox/glsamples/internal/logger"
)

// Import errors.
var (
	ErrEmptyMesh          = errors.New("empty mesh")
	ErrDegenerateMesh     = errors.New("degenerate mesh: zero-length bounding diagonal")
	ErrMalformedMesh      = errors.New("malformed mesh")
	ErrMaterialOutOfRange = errors.New("material reference out of range")
	ErrIndexOutOfRange    = errors.New("index out of range")
)

// Parser turns a model file into structured mesh and material data.
type Parser interface {
	Parse(path string) (*Source, error)
}

// ParserFunc adapts a function to the Parser interface.
type ParserFunc func(path string) (*Source, error)

// Parse calls f(path).
func (f ParserFunc) Parse(path string) (*Source, error) {
	return f(path)
}

// Importer loads model files through a Parser and normalizes them.
type Importer struct {
	parser Parser
}

// NewImporter creates an importer backed by the given parser.
func NewImporter(p Parser) *Importer {
	return &Importer{parser: p}
}

// Import loads the file at path with the OBJ parser.
func Import(path string) (*Result, error) {
	return NewImporter(OBJParser{}).Import(path)
}

// Import parses path and returns the flattened, normalized mesh.
func (im *Importer) Import(path string) (*Result, error) {
	src, err := im.parser.Parse(path)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}

	res, err := Normalize(src)
	if err != nil {
		return nil, fmt.Errorf("importing %s: %w", path, err)
	}
	return res, nil
}

// Normalize flattens all sub-meshes of src into one vertex and index stream
// and computes the scale that fits the bounding diagonal to TargetDiagonal.
//
// Indices of each sub-mesh are re-based by the number of vertices contributed
// by the sub-meshes before it, so multi-object files draw correctly with a
// single index buffer.
func Normalize(src *Source) (*Result, error) {
	total, totalIdx := 0, 0
	for i := range src.Meshes {
		if err := validateSubMesh(&src.Meshes[i], len(src.Materials)); err != nil {
			return nil, err
		}
		total += len(src.Meshes[i].Positions) / 3
		totalIdx += len(src.Meshes[i].Indices)
	}
	if total == 0 {
		return nil, ErrEmptyMesh
	}

	res := &Result{
		Vertices: make([]Vertex, 0, total),
		Indices:  make([]uint32, 0, totalIdx),
		Bounds:   EmptyBounds(),
	}

	for i := range src.Meshes {
		sm := &src.Meshes[i]
		logger.Debug("loading sub-mesh",
			zap.String("name", sm.Name),
			zap.Int("vertices", len(sm.Positions)/3),
			zap.Int("indices", len(sm.Indices)),
		)

		base := uint32(len(res.Vertices))
		diffuse, specular := resolveColors(sm.MaterialID, src.Materials)
		hasNormals := len(sm.Normals) > 0

		for v := 0; v < len(sm.Positions)/3; v++ {
			pos := [3]float32{sm.Positions[3*v], sm.Positions[3*v+1], sm.Positions[3*v+2]}
			var normal [3]float32
			if hasNormals {
				normal = [3]float32{sm.Normals[3*v], sm.Normals[3*v+1], sm.Normals[3*v+2]}
			}
			res.Vertices = append(res.Vertices, Vertex{
				Position: pos,
				Normal:   normal,
				Diffuse:  diffuse,
				Specular: specular,
			})
			res.Bounds.Extend(pos)
		}

		for _, idx := range sm.Indices {
			res.Indices = append(res.Indices, base+idx)
		}
	}

	diag := res.Bounds.Diagonal()
	if diag == 0 {
		return nil, ErrDegenerateMesh
	}
	scale := float32(TargetDiagonal / diag)
	if !isFinite(scale) || scale <= 0 {
		return nil, fmt.Errorf("%w: diagonal %g has no finite float32 scale", ErrDegenerateMesh, diag)
	}
	res.Scale = scale

	logger.Info("model scaled to fit",
		zap.Float32("scale", res.Scale),
		zap.Int("vertices", len(res.Vertices)),
		zap.Int("indices", len(res.Indices)),
	)
	return res, nil
}

// resolveColors returns the diffuse and specular+shininess colors for a material id.
func resolveColors(id int, mats []Material) ([3]float32, [4]float32) {
	if id == NoMaterial {
		return DefaultDiffuse, DefaultSpecular
	}
	m := mats[id]
	return m.Diffuse, [4]float32{m.Specular[0], m.Specular[1], m.Specular[2], m.Shininess}
}

func validateSubMesh(sm *SubMesh, materialCount int) error {
	if len(sm.Positions)%3 != 0 {
		return fmt.Errorf("%w: sub-mesh %q has %d position floats", ErrMalformedMesh, sm.Name, len(sm.Positions))
	}
	if len(sm.Normals) > 0 && len(sm.Normals) != len(sm.Positions) {
		return fmt.Errorf("%w: sub-mesh %q has %d normal floats for %d position floats",
			ErrMalformedMesh, sm.Name, len(sm.Normals), len(sm.Positions))
	}
	if sm.MaterialID != NoMaterial && (sm.MaterialID < 0 || sm.MaterialID >= materialCount) {
		return fmt.Errorf("%w: sub-mesh %q references material %d of %d",
			ErrMaterialOutOfRange, sm.Name, sm.MaterialID, materialCount)
	}
	for i, f := range sm.Positions {
		if !isFinite(f) {
			return fmt.Errorf("%w: sub-mesh %q vertex %d has non-finite position", ErrMalformedMesh, sm.Name, i/3)
		}
	}
	for i, f := range sm.Normals {
		if !isFinite(f) {
			return fmt.Errorf("%w: sub-mesh %q vertex %d has non-finite normal", ErrMalformedMesh, sm.Name, i/3)
		}
	}
	count := uint32(len(sm.Positions) / 3)
	for _, idx := range sm.Indices {
		if idx >= count {
			return fmt.Errorf("%w: sub-mesh %q index %d, %d vertices", ErrIndexOutOfRange, sm.Name, idx, count)
		}
	}
	return nil
}

func isFinite(f float32) bool {
	return !gomath.IsInf(float64(f), 0) && !gomath.IsNaN(float64(f))
}
