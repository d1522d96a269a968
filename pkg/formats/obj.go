// Package formats parses the Wavefront OBJ and MTL asset formats.
package formats

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// OBJ format errors.
var (
	ErrInvalidOBJFace     = errors.New("invalid OBJ face")
	ErrOBJIndexOutOfRange = errors.New("OBJ index out of range")
	ErrInvalidOBJValue    = errors.New("invalid OBJ value")
	ErrUnknownMaterial    = errors.New("unknown material")
)

// NoMaterial marks an object without a material reference.
const NoMaterial = -1

// OBJ represents a parsed Wavefront object file.
type OBJ struct {
	Objects   []OBJObject
	Materials []MTLMaterial
}

// OBJObject is one named group of triangles. Vertex attributes are unified
// per (position, normal) pair, so Positions and Normals share the index space
// used by Indices.
type OBJObject struct {
	Name      string
	Positions []float32 // x,y,z triples
	Normals   []float32 // x,y,z triples, empty if the object has no normals
	Indices   []uint32  // triangle list
	Material  int       // index into OBJ.Materials or NoMaterial
}

// VertexCount returns the number of unified vertices in the object.
func (o *OBJObject) VertexCount() int {
	return len(o.Positions) / 3
}

// MaterialLoader resolves an mtllib reference to its materials.
type MaterialLoader func(name string) ([]MTLMaterial, error)

// LoadOBJ reads an OBJ file from disk. Material libraries are resolved
// relative to the directory of the OBJ file.
func LoadOBJ(path string) (*OBJ, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	dir := filepath.Dir(path)
	return ParseOBJ(f, func(name string) ([]MTLMaterial, error) {
		return LoadMTL(filepath.Join(dir, name))
	})
}

// objVertexKey identifies a unified vertex inside an object.
type objVertexKey struct {
	pos    int
	normal int
}

// objBuilder accumulates the current object while parsing.
type objBuilder struct {
	obj        OBJObject
	lookup     map[objVertexKey]uint32
	hasNormals bool
}

func newOBJBuilder(name string, material int) *objBuilder {
	return &objBuilder{
		obj:    OBJObject{Name: name, Material: material},
		lookup: make(map[objVertexKey]uint32),
	}
}

// objParser holds the global coordinate lists shared by all objects.
type objParser struct {
	positions [][3]float32
	normals   [][3]float32
	texCount  int

	result   *OBJ
	matIndex map[string]int
	loadMTL  MaterialLoader
	cur      *objBuilder
	curName  string
	curMat   int
}

// ParseOBJ parses Wavefront OBJ data. loadMTL may be nil, in which case
// mtllib statements are ignored and any usemtl fails with ErrUnknownMaterial.
func ParseOBJ(r io.Reader, loadMTL MaterialLoader) (*OBJ, error) {
	p := &objParser{
		result:   &OBJ{},
		matIndex: make(map[string]int),
		loadMTL:  loadMTL,
		curName:  "unnamed",
		curMat:   NoMaterial,
	}

	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}
		if err := p.parseLine(fields); err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNum, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	p.flush()
	return p.result, nil
}

func (p *objParser) parseLine(fields []string) error {
	switch fields[0] {
	case "v":
		v, err := parseVec3(fields)
		if err != nil {
			return err
		}
		p.positions = append(p.positions, v)
	case "vn":
		v, err := parseVec3(fields)
		if err != nil {
			return err
		}
		p.normals = append(p.normals, v)
	case "vt":
		p.texCount++
	case "o", "g":
		p.flush()
		if len(fields) > 1 {
			p.curName = strings.Join(fields[1:], " ")
		}
	case "usemtl":
		if len(fields) != 2 {
			return fmt.Errorf("%w: usemtl expects 1 argument, got %d", ErrInvalidOBJValue, len(fields)-1)
		}
		idx, ok := p.matIndex[fields[1]]
		if !ok {
			return fmt.Errorf("%w: %q", ErrUnknownMaterial, fields[1])
		}
		// A material switch inside an object starts a new sub-mesh
		if p.cur != nil && p.cur.obj.Material != idx {
			p.flush()
		}
		p.curMat = idx
	case "mtllib":
		if p.loadMTL == nil {
			return nil
		}
		for _, name := range fields[1:] {
			mats, err := p.loadMTL(name)
			if err != nil {
				return fmt.Errorf("mtllib %s: %w", name, err)
			}
			for _, m := range mats {
				p.matIndex[m.Name] = len(p.result.Materials)
				p.result.Materials = append(p.result.Materials, m)
			}
		}
	case "f":
		return p.parseFace(fields[1:])
	}
	return nil
}

// flush closes the current object. Objects without faces are dropped.
func (p *objParser) flush() {
	if p.cur == nil {
		return
	}
	if len(p.cur.obj.Indices) > 0 {
		if !p.cur.hasNormals {
			p.cur.obj.Normals = nil
		}
		p.result.Objects = append(p.result.Objects, p.cur.obj)
	}
	p.cur = nil
}

// parseFace fan-triangulates a polygon of at least 3 vertex references.
func (p *objParser) parseFace(refs []string) error {
	if len(refs) < 3 {
		return fmt.Errorf("%w: need at least 3 vertices, got %d", ErrInvalidOBJFace, len(refs))
	}
	if p.cur == nil {
		p.cur = newOBJBuilder(p.curName, p.curMat)
	}

	verts := make([]uint32, len(refs))
	for i, ref := range refs {
		key, err := p.parseVertexRef(ref)
		if err != nil {
			return err
		}
		verts[i] = p.cur.vertex(key, p)
	}

	for i := 1; i+1 < len(verts); i++ {
		p.cur.obj.Indices = append(p.cur.obj.Indices, verts[0], verts[i], verts[i+1])
	}
	return nil
}

// parseVertexRef decodes "v", "v/t", "v//n" or "v/t/n".
func (p *objParser) parseVertexRef(ref string) (objVertexKey, error) {
	parts := strings.Split(ref, "/")
	if len(parts) > 3 || parts[0] == "" {
		return objVertexKey{}, fmt.Errorf("%w: %q", ErrInvalidOBJFace, ref)
	}

	key := objVertexKey{normal: -1}
	var err error
	key.pos, err = resolveIndex(parts[0], len(p.positions))
	if err != nil {
		return objVertexKey{}, err
	}
	if len(parts) > 1 && parts[1] != "" {
		if _, err := resolveIndex(parts[1], p.texCount); err != nil {
			return objVertexKey{}, err
		}
	}
	if len(parts) > 2 && parts[2] != "" {
		key.normal, err = resolveIndex(parts[2], len(p.normals))
		if err != nil {
			return objVertexKey{}, err
		}
	}
	return key, nil
}

// vertex returns the unified index for key, appending it on first use.
func (b *objBuilder) vertex(key objVertexKey, p *objParser) uint32 {
	if idx, ok := b.lookup[key]; ok {
		return idx
	}
	idx := uint32(len(b.obj.Positions) / 3)
	pos := p.positions[key.pos]
	b.obj.Positions = append(b.obj.Positions, pos[0], pos[1], pos[2])

	var n [3]float32
	if key.normal >= 0 {
		n = p.normals[key.normal]
		b.hasNormals = true
	}
	b.obj.Normals = append(b.obj.Normals, n[0], n[1], n[2])

	b.lookup[key] = idx
	return idx
}

// resolveIndex converts a 1-based (or negative, relative) OBJ index into a
// 0-based offset into a list of length n.
func resolveIndex(token string, n int) (int, error) {
	idx, err := strconv.Atoi(token)
	if err != nil {
		return -1, fmt.Errorf("%w: index %q", ErrInvalidOBJValue, token)
	}

	var off int
	if idx < 0 {
		off = n + idx
	} else {
		off = idx - 1
	}
	if off < 0 || off >= n {
		return -1, fmt.Errorf("%w: %d (have %d)", ErrOBJIndexOutOfRange, idx, n)
	}
	return off, nil
}

// parseFloats parses count floats following the keyword in fields.
func parseFloats(fields []string, count int) ([]float32, error) {
	if len(fields) < count+1 {
		return nil, fmt.Errorf("%w: %s expects %d values, got %d", ErrInvalidOBJValue, fields[0], count, len(fields)-1)
	}
	out := make([]float32, count)
	for i := 0; i < count; i++ {
		v, err := strconv.ParseFloat(fields[i+1], 32)
		if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
			return nil, fmt.Errorf("%w: %s %q", ErrInvalidOBJValue, fields[0], fields[i+1])
		}
		out[i] = float32(v)
	}
	return out, nil
}

func parseVec3(fields []string) ([3]float32, error) {
	vals, err := parseFloats(fields, 3)
	if err != nil {
		return [3]float32{}, err
	}
	return [3]float32{vals[0], vals[1], vals[2]}, nil
}
