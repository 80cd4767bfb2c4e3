// SPDX-License-Identifier: MIT

package bench

import (
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

// Defaults mirror a plain `matbench` run.
const (
	// DefaultSize is the square operand size.
	DefaultSize = 512

	// DefaultRepeat is the number of timed runs per operation.
	DefaultRepeat = 1
)

// Case describes one set of operands and the operations timed on them.
// A is Rows×Inner, B is Inner×Cols. Inversion needs Rows == Inner.
type Case struct {
	Name    string   `yaml:"name"`
	Rows    int      `yaml:"rows"`
	Inner   int      `yaml:"inner"`
	Cols    int      `yaml:"cols"`
	Threads int      `yaml:"threads"` // 0 = runtime.NumCPU()
	Repeat  int      `yaml:"repeat"`  // 0 = DefaultRepeat
	Kernels []string `yaml:"kernels"` // empty = all multiplies, plus invert when square

	ops []Op // resolved by Validate
}

// Suite is an ordered list of cases sharing one seed.
type Suite struct {
	Seed   uint64 `yaml:"seed"`   // 0 = nondeterministic operands
	Verify bool   `yaml:"verify"` // cross-check kernels against MultiplyStandard
	Cases  []Case `yaml:"cases"`
}

// DefaultSuite returns a single square case of the given size timing every
// multiply kernel and inversion.
func DefaultSuite(size, threads int) Suite {
	return Suite{Cases: []Case{{
		Name:    fmt.Sprintf("%dx%d", size, size),
		Rows:    size,
		Inner:   size,
		Cols:    size,
		Threads: threads,
		Repeat:  DefaultRepeat,
	}}}
}

// LoadSuite decodes a YAML suite from r and validates it.
// Unknown keys are rejected.
func LoadSuite(r io.Reader) (Suite, error) {
	var s Suite
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		if errors.Is(err, io.EOF) {
			return Suite{}, errors.Wrap(ErrInvalidSuite, "empty suite")
		}
		return Suite{}, errors.WithSecondaryError(errors.Wrap(ErrInvalidSuite, "decode suite"), err)
	}
	if err := s.Validate(); err != nil {
		return Suite{}, err
	}

	return s, nil
}

// LoadSuiteFile opens path and calls LoadSuite.
func LoadSuiteFile(path string) (Suite, error) {
	f, err := os.Open(path)
	if err != nil {
		return Suite{}, errors.Wrapf(err, "open suite %s", path)
	}
	defer f.Close()

	s, err := LoadSuite(f)
	if err != nil {
		return Suite{}, errors.Wrapf(err, "load suite %s", path)
	}

	return s, nil
}

// Validate checks every case and resolves defaults in place: empty names,
// zero threads and repeats, and the default operation list.
func (s *Suite) Validate() error {
	if len(s.Cases) == 0 {
		return errors.Wrap(ErrInvalidSuite, "no cases")
	}
	names := make(map[string]int, len(s.Cases))
	for i := range s.Cases {
		c := &s.Cases[i]
		if err := c.validate(); err != nil {
			return errors.Wrapf(err, "case %d", i)
		}
		if prev, dup := names[c.Name]; dup {
			return errors.Wrapf(ErrInvalidSuite, "case %d: name %q already used by case %d", i, c.Name, prev)
		}
		names[c.Name] = i
	}

	return nil
}

func (c *Case) validate() error {
	if c.Rows < 1 || c.Inner < 1 || c.Cols < 1 {
		return errors.Wrapf(ErrInvalidSuite, "shape %dx%dx%d: dimensions must be >= 1", c.Rows, c.Inner, c.Cols)
	}
	if c.Threads < 0 {
		return errors.Wrapf(ErrInvalidSuite, "threads %d", c.Threads)
	}
	if c.Repeat < 0 {
		return errors.Wrapf(ErrInvalidSuite, "repeat %d", c.Repeat)
	}
	if c.Threads == 0 {
		c.Threads = runtime.NumCPU()
	}
	if c.Repeat == 0 {
		c.Repeat = DefaultRepeat
	}
	if c.Name == "" {
		c.Name = fmt.Sprintf("%dx%dx%d", c.Rows, c.Inner, c.Cols)
	}

	if len(c.Kernels) == 0 {
		c.ops = nil
		for _, op := range DefaultOps() {
			if op.Invert && !c.Square() {
				continue
			}
			c.ops = append(c.ops, op)
		}
		return nil
	}
	ops, err := ParseOps(c.Kernels)
	if err != nil {
		return err
	}
	for _, op := range ops {
		if op.Invert && !c.Square() {
			return errors.Wrapf(ErrInvalidSuite, "invert needs a square A, got %dx%d", c.Rows, c.Inner)
		}
	}
	c.ops = ops

	return nil
}

// Square reports whether A is square, i.e. inversion is possible.
func (c Case) Square() bool { return c.Rows == c.Inner }

// Ops returns the resolved operation list (valid after Validate).
func (c Case) Ops() []Op { return c.ops }
