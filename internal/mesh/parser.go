package mesh

import "github.com/Faultbox/glsamples/pkg/formats"

// OBJParser reads Wavefront OBJ files and their material libraries.
type OBJParser struct{}

// Parse implements Parser.
func (OBJParser) Parse(path string) (*Source, error) {
	obj, err := formats.LoadOBJ(path)
	if err != nil {
		return nil, err
	}
	return FromOBJ(obj), nil
}

// FromOBJ converts a parsed OBJ file into a Source.
func FromOBJ(obj *formats.OBJ) *Source {
	src := &Source{
		Meshes:    make([]SubMesh, len(obj.Objects)),
		Materials: make([]Material, len(obj.Materials)),
	}
	for i, m := range obj.Materials {
		src.Materials[i] = Material{
			Name:      m.Name,
			Diffuse:   m.Diffuse,
			Specular:  m.Specular,
			Shininess: m.Shininess,
		}
	}
	for i, o := range obj.Objects {
		id := NoMaterial
		if o.Material != formats.NoMaterial {
			id = o.Material
		}
		src.Meshes[i] = SubMesh{
			Name:       o.Name,
			Positions:  o.Positions,
			Normals:    o.Normals,
			Indices:    o.Indices,
			MaterialID: id,
		}
	}
	return src
}
