package formats

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// MTL format errors.
var (
	ErrMTLMissingNewmtl = errors.New("MTL statement before newmtl")
	ErrDuplicateMTL     = errors.New("duplicate MTL material")
)

// MTLMaterial is the subset of a Wavefront material used for shading.
type MTLMaterial struct {
	Name      string
	Diffuse   [3]float32 // Kd
	Specular  [3]float32 // Ks
	Shininess float32    // Ns
}

// LoadMTL reads a material library from disk.
func LoadMTL(path string) ([]MTLMaterial, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ParseMTL(f)
}

// ParseMTL parses a Wavefront material library. Statements other than
// newmtl, Kd, Ks and Ns are skipped.
func ParseMTL(r io.Reader) ([]MTLMaterial, error) {
	var mats []MTLMaterial
	seen := make(map[string]bool)

	scanner := bufio.NewScanner(r)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}

		if fields[0] == "newmtl" {
			if len(fields) != 2 {
				return nil, fmt.Errorf("line %d: %w: newmtl expects 1 argument, got %d", lineNum, ErrInvalidOBJValue, len(fields)-1)
			}
			if seen[fields[1]] {
				return nil, fmt.Errorf("line %d: %w: %q", lineNum, ErrDuplicateMTL, fields[1])
			}
			seen[fields[1]] = true
			mats = append(mats, MTLMaterial{Name: fields[1]})
			continue
		}

		var err error
		switch fields[0] {
		case "Kd", "Ks", "Ns":
			if len(mats) == 0 {
				return nil, fmt.Errorf("line %d: %w: %s", lineNum, ErrMTLMissingNewmtl, fields[0])
			}
			cur := &mats[len(mats)-1]
			switch fields[0] {
			case "Kd":
				cur.Diffuse, err = parseVec3(fields)
			case "Ks":
				cur.Specular, err = parseVec3(fields)
			case "Ns":
				var vals []float32
				vals, err = parseFloats(fields, 1)
				if err == nil {
					cur.Shininess = vals[0]
				}
			}
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNum, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return mats, nil
}
