// Package vectors loads and runs conformance vectors for fixed point
// multiplication.
//
// A vector file is YAML:
//
//	vectors:
//	  - name: "PI * -E"
//	    group: opposite-sign
//	    x: "PI"
//	    y: "-E"
//	    want: "-8.539734222673567063"
//	  - name: "MIN * 1e-18"
//	    x: "MIN"
//	    y: "1e-18"
//	    kind: MulInputTooSmall
//
// Operands and products accept anything sd59x18.Parse does. Each vector
// names exactly one of want or kind.
package vectors

import (
	"bytes"
	_ "embed"
	"fmt"
	"io"
	"os"

	"github.com/zeebo/errs"
	"gopkg.in/yaml.v3"

	"github.com/calebcase/sd59x18/sd59x18"
)

// Error is the error class for this package.
var Error = errs.Class("vectors")

// ErrInvalid is returned for vectors that cannot be run.
var ErrInvalid = Error.New("invalid vector")

//go:embed mul.yaml
var defaultFile []byte

// Vector is a vector as written in a file.
type Vector struct {
	Name  string `yaml:"name"`
	Group string `yaml:"group,omitempty"`
	X     string `yaml:"x"`
	Y     string `yaml:"y"`
	Want  string `yaml:"want,omitempty"`
	Kind  string `yaml:"kind,omitempty"`
}

type file struct {
	Vectors []Vector `yaml:"vectors"`
}

// Case is a parsed Vector.
type Case struct {
	Name  string
	Group string

	X, Y sd59x18.SD59x18

	// Want is the expected product when Kind is zero.
	Want sd59x18.SD59x18

	// Kind is the expected failure, or zero for success.
	Kind sd59x18.Kind
}

// Load decodes and parses every vector in r. Unknown fields are rejected.
func Load(r io.Reader) (cases []Case, err error) {
	defer Error.WrapP(&err)

	var f file

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	err = dec.Decode(&f)
	if err != nil {
		return nil, err
	}

	if len(f.Vectors) == 0 {
		return nil, fmt.Errorf("%w: no vectors", ErrInvalid)
	}

	cases = make([]Case, 0, len(f.Vectors))
	for i, v := range f.Vectors {
		c, err := v.Parse()
		if err != nil {
			return nil, fmt.Errorf("vector %d: %w", i, err)
		}

		cases = append(cases, c)
	}

	return cases, nil
}

// LoadFile is Load for the named file.
func LoadFile(path string) (cases []Case, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, Error.Wrap(err)
	}
	defer func() {
		err = errs.Combine(err, Error.Wrap(f.Close()))
	}()

	return Load(f)
}

// Default returns the embedded boundary suite.
func Default() ([]Case, error) {
	return Load(bytes.NewReader(defaultFile))
}

// Parse validates v and parses its literals.
func (v Vector) Parse() (c Case, err error) {
	if v.Name == "" {
		return c, fmt.Errorf("%w: name is required", ErrInvalid)
	}

	if (v.Want == "") == (v.Kind == "") {
		return c, fmt.Errorf("%w: %q: exactly one of want and kind is required", ErrInvalid, v.Name)
	}

	c.Name = v.Name
	c.Group = v.Group

	c.X, err = sd59x18.Parse(v.X)
	if err != nil {
		return c, fmt.Errorf("%w: %q: x: %w", ErrInvalid, v.Name, err)
	}

	c.Y, err = sd59x18.Parse(v.Y)
	if err != nil {
		return c, fmt.Errorf("%w: %q: y: %w", ErrInvalid, v.Name, err)
	}

	if v.Kind != "" {
		err = c.Kind.UnmarshalText([]byte(v.Kind))
		if err != nil {
			return c, fmt.Errorf("%w: %q: %w", ErrInvalid, v.Name, err)
		}

		return c, nil
	}

	c.Want, err = sd59x18.Parse(v.Want)
	if err != nil {
		return c, fmt.Errorf("%w: %q: want: %w", ErrInvalid, v.Name, err)
	}

	return c, nil
}

// Expected returns the expectation as it would be written in a file.
func (c Case) Expected() string {
	if c.Kind != 0 {
		return c.Kind.String()
	}

	return c.Want.String()
}
