package mesh

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	g3nobj "github.com/g3n/engine/loader/obj"
	"go.uber.org/zap"

	"github.com/Faultbox/glsamples/internal/logger"
)

// Parser names accepted by ParserFor.
const (
	ParserBuiltin = "builtin"
	ParserG3N     = "g3n"
)

// ParserFor returns the parser registered under name.
func ParserFor(name string) (Parser, error) {
	switch name {
	case "", ParserBuiltin:
		return OBJParser{}, nil
	case ParserG3N:
		return G3NParser{}, nil
	default:
		return nil, fmt.Errorf("unknown model parser %q", name)
	}
}

// G3NParser reads OBJ files with the g3n engine decoder.
type G3NParser struct{}

// Parse implements Parser. The material library named by mtllib is resolved
// relative to the OBJ file and must exist when referenced.
func (G3NParser) Parse(path string) (*Source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var mtl io.Reader = strings.NewReader("")
	if name := findMaterialLib(data); name != "" {
		f, err := os.Open(filepath.Join(filepath.Dir(path), name))
		if err != nil {
			return nil, fmt.Errorf("mtllib %s: %w", name, err)
		}
		defer f.Close()
		mtl = f
	}

	dec, err := g3nobj.DecodeReader(bytes.NewReader(data), mtl)
	if err != nil {
		return nil, err
	}
	for _, w := range dec.Warnings {
		logger.Warn("obj decoder", zap.String("path", path), zap.String("warning", w))
	}
	return FromDecoder(dec)
}

// findMaterialLib returns the first mtllib reference in OBJ data.
func findMaterialLib(data []byte) string {
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) >= 2 && fields[0] == "mtllib" {
			return fields[1]
		}
	}
	return ""
}

// g3nVertexKey identifies a unified vertex inside a sub-mesh.
type g3nVertexKey struct {
	pos, normal int
}

// FromDecoder converts decoded g3n OBJ data into a Source. Faces are fan
// triangulated and split into sub-meshes whenever the material changes.
// Vertices are unified per (position, normal) pair.
func FromDecoder(dec *g3nobj.Decoder) (*Source, error) {
	src := &Source{}

	names := make([]string, 0, len(dec.Materials))
	for name := range dec.Materials {
		names = append(names, name)
	}
	sort.Strings(names)
	ids := make(map[string]int, len(names))
	for _, name := range names {
		m := dec.Materials[name]
		ids[name] = len(src.Materials)
		src.Materials = append(src.Materials, Material{
			Name:      name,
			Diffuse:   [3]float32{m.Diffuse.R, m.Diffuse.G, m.Diffuse.B},
			Specular:  [3]float32{m.Specular.R, m.Specular.G, m.Specular.B},
			Shininess: m.Shininess,
		})
	}

	positions := len(dec.Vertices) / 3
	normals := len(dec.Normals) / 3

	for _, o := range dec.Objects {
		var (
			cur        *SubMesh
			lookup     map[g3nVertexKey]uint32
			hasNormals bool
		)
		flush := func() {
			if cur != nil && len(cur.Indices) > 0 {
				if !hasNormals {
					cur.Normals = nil
				}
				src.Meshes = append(src.Meshes, *cur)
			}
			cur = nil
		}

		for fi, face := range o.Faces {
			matID, ok := ids[face.Material]
			if !ok {
				matID = NoMaterial
			}
			if cur == nil || cur.MaterialID != matID {
				flush()
				cur = &SubMesh{Name: o.Name, MaterialID: matID}
				lookup = make(map[g3nVertexKey]uint32)
				hasNormals = false
			}
			if len(face.Vertices) < 3 {
				return nil, fmt.Errorf("%w: object %q face %d has %d vertices", ErrMalformedMesh, o.Name, fi, len(face.Vertices))
			}

			verts := make([]uint32, len(face.Vertices))
			for i, p := range face.Vertices {
				if p < 0 || p >= positions {
					return nil, fmt.Errorf("%w: object %q face %d position %d, %d positions",
						ErrIndexOutOfRange, o.Name, fi, p, positions)
				}
				// Missing normals are reported with an out-of-range sentinel
				key := g3nVertexKey{pos: p, normal: -1}
				if i < len(face.Normals) && face.Normals[i] >= 0 && face.Normals[i] < normals {
					key.normal = face.Normals[i]
				}
				idx, seen := lookup[key]
				if !seen {
					idx = uint32(len(cur.Positions) / 3)
					cur.Positions = append(cur.Positions, dec.Vertices[3*p:3*p+3]...)
					if key.normal >= 0 {
						cur.Normals = append(cur.Normals, dec.Normals[3*key.normal:3*key.normal+3]...)
						hasNormals = true
					} else {
						cur.Normals = append(cur.Normals, 0, 0, 0)
					}
					lookup[key] = idx
				}
				verts[i] = idx
			}
			for i := 1; i+1 < len(verts); i++ {
				cur.Indices = append(cur.Indices, verts[0], verts[i], verts[i+1])
			}
		}
		flush()
	}
	return src, nil
}
