package formats

import (
	"errors"
	"strings"
	"testing"
)

func TestParseMTL(t *testing.T) {
	src := `# two materials
newmtl gold
Ka 0.2 0.2 0.2
Kd 0.8 0.6 0.1
Ks 1.0 0.9 0.5
Ns 32
illum 2

newmtl plain
Kd 0.5 0.5 0.5
`
	mats, err := ParseMTL(strings.NewReader(src))
	if err != nil {
		t.Fatalf("ParseMTL failed: %v", err)
	}
	if len(mats) != 2 {
		t.Fatalf("expected 2 materials, got %d", len(mats))
	}

	gold := mats[0]
	if gold.Name != "gold" {
		t.Errorf("expected name gold, got %q", gold.Name)
	}
	if gold.Diffuse != [3]float32{0.8, 0.6, 0.1} {
		t.Errorf("unexpected diffuse %v", gold.Diffuse)
	}
	if gold.Specular != [3]float32{1.0, 0.9, 0.5} {
		t.Errorf("unexpected specular %v", gold.Specular)
	}
	if gold.Shininess != 32 {
		t.Errorf("expected shininess 32, got %v", gold.Shininess)
	}

	plain := mats[1]
	if plain.Specular != [3]float32{} || plain.Shininess != 0 {
		t.Errorf("expected zero specular for plain, got %v / %v", plain.Specular, plain.Shininess)
	}
}

func TestParseMTL_Errors(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		wantErr error
	}{
		{"statement before newmtl", "Kd 1 1 1\n", ErrMTLMissingNewmtl},
		{"duplicate", "newmtl a\nnewmtl a\n", ErrDuplicateMTL},
		{"bad value", "newmtl a\nNs shiny\n", ErrInvalidOBJValue},
		{"infinite shininess", "newmtl a\nNs +Inf\n", ErrInvalidOBJValue},
		{"newmtl without name", "newmtl\n", ErrInvalidOBJValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseMTL(strings.NewReader(tt.src))
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}
