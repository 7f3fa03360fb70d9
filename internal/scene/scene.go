// SPDX-License-Identifier: MIT

package scene

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/homog/matrix"
	"github.com/katalvlaran/homog/term"
)

// File is the on-disk shape of a scene.
type File struct {
	Matrices map[string][][]Literal `yaml:"matrices"`
	Vectors  map[string][]Literal   `yaml:"vectors"`
}

// Scene holds the parsed, immutable values of a File.
type Scene struct {
	matrices map[string]matrix.Matrix4x4
	vectors  map[string]matrix.Vector4
}

// Load reads and parses the scene at path.
func Load(path string, alg term.Algebra) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	sc, err := Parse(data, alg)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return sc, nil
}

// Parse decodes YAML and builds every matrix and vector with alg.
// A nil alg selects term.Default.
func Parse(data []byte, alg term.Algebra) (*Scene, error) {
	if alg == nil {
		alg = term.Default
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, err
	}

	sc := &Scene{
		matrices: make(map[string]matrix.Matrix4x4, len(f.Matrices)),
		vectors:  make(map[string]matrix.Vector4, len(f.Vectors)),
	}
	for name, raw := range f.Matrices {
		m, err := buildMatrix(alg, raw)
		if err != nil {
			return nil, fmt.Errorf("matrix %q: %w", name, err)
		}
		sc.matrices[name] = m
	}
	for name, raw := range f.Vectors {
		v, err := buildVector(alg, raw)
		if err != nil {
			return nil, fmt.Errorf("vector %q: %w", name, err)
		}
		sc.vectors[name] = v
	}

	return sc, nil
}

// Matrix returns the named matrix.
func (s *Scene) Matrix(name string) (matrix.Matrix4x4, error) {
	m, ok := s.matrices[name]
	if !ok {
		return matrix.Matrix4x4{}, fmt.Errorf("matrix %q: %w", name, ErrUnknownName)
	}

	return m, nil
}

// Vector returns the named vector.
func (s *Scene) Vector(name string) (matrix.Vector4, error) {
	v, ok := s.vectors[name]
	if !ok {
		return matrix.Vector4{}, fmt.Errorf("vector %q: %w", name, ErrUnknownName)
	}

	return v, nil
}

// MatrixNames returns the matrix names in ascending order.
func (s *Scene) MatrixNames() []string { return sortedKeys(s.matrices) }

// VectorNames returns the vector names in ascending order.
func (s *Scene) VectorNames() []string { return sortedKeys(s.vectors) }

func buildMatrix(alg term.Algebra, raw [][]Literal) (matrix.Matrix4x4, error) {
	rows := make([][]term.Term, len(raw))
	for i, r := range raw {
		rows[i] = make([]term.Term, len(r))
		for j, lit := range r {
			t, err := ParseTerm(alg, string(lit))
			if err != nil {
				return matrix.Matrix4x4{}, fmt.Errorf("entry (%d,%d): %w", i, j, err)
			}
			rows[i][j] = t
		}
	}

	return matrix.FromRows(alg, rows)
}

var componentOptions = [...]func(term.Term) matrix.VectorOption{
	matrix.WithX, matrix.WithY, matrix.WithZ, matrix.WithW,
}

func buildVector(alg term.Algebra, raw []Literal) (matrix.Vector4, error) {
	if len(raw) == 0 || len(raw) > len(componentOptions) {
		return matrix.Vector4{}, fmt.Errorf("%d entries: %w", len(raw), ErrBadVector)
	}

	opts := make([]matrix.VectorOption, 0, len(raw))
	for i, lit := range raw {
		t, err := ParseTerm(alg, string(lit))
		if err != nil {
			return matrix.Vector4{}, fmt.Errorf("component %d: %w", i, err)
		}
		opts = append(opts, componentOptions[i](t))
	}

	return matrix.NewVector4(alg, opts...), nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}
