// Package input reads element evaluation cases from YAML files for the
// command line tools.
package input

import (
	"fmt"
	"os"

	"github.com/ghodss/yaml"
)

// ElementCase describes one element and the parametric points to
// evaluate it at, as read from a YAML case file.
type ElementCase struct {
	Title   string      `yaml:"Title"`
	Element string      `yaml:"Element"`         // basis name, e.g. "quad4"
	Coords  [][]float64 `yaml:"Coords"`          // [Np][ndim] nodal physical coordinates
	Points  [][]float64 `yaml:"Points"`          // [...][Dim] parametric evaluation points
	Field   [][]float64 `yaml:"Field,omitempty"` // optional [Np][ncomp] nodal field values
}

// Parse fills the case from YAML data.
func (ec *ElementCase) Parse(data []byte) error {
	return yaml.Unmarshal(data, ec)
}

// Validate checks the case for structural consistency. Lengths against
// the basis itself are checked later by the evaluation kernel.
func (ec *ElementCase) Validate() error {
	if ec.Element == "" {
		return fmt.Errorf("case has no Element name")
	}
	if len(ec.Coords) == 0 {
		return fmt.Errorf("case has no nodal Coords")
	}
	ndim := len(ec.Coords[0])
	for k := range ec.Coords {
		if len(ec.Coords[k]) != ndim {
			return fmt.Errorf("Coords[%d] has %d entries, want %d", k, len(ec.Coords[k]), ndim)
		}
	}
	if len(ec.Points) == 0 {
		return fmt.Errorf("case has no evaluation Points")
	}
	if ec.Field != nil {
		if len(ec.Field) != len(ec.Coords) {
			return fmt.Errorf("Field has %d nodal values, Coords has %d nodes",
				len(ec.Field), len(ec.Coords))
		}
		nc := len(ec.Field[0])
		for k := range ec.Field {
			if len(ec.Field[k]) != nc {
				return fmt.Errorf("Field[%d] has %d components, want %d", k, len(ec.Field[k]), nc)
			}
		}
	}
	return nil
}

// ReadCaseFile loads and validates a case file.
func ReadCaseFile(path string) (*ElementCase, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	ec := &ElementCase{}
	if err := ec.Parse(data); err != nil {
		return nil, fmt.Errorf("parsing %s: %v", path, err)
	}
	if err := ec.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %v", path, err)
	}
	return ec, nil
}

// Print writes a summary of the case to standard output.
func (ec *ElementCase) Print() {
	fmt.Printf("\"%s\"\t= Title\n", ec.Title)
	fmt.Printf("[%s]\t\t= Element\n", ec.Element)
	fmt.Printf("[%d]\t\t= Nodes\n", len(ec.Coords))
	fmt.Printf("[%d]\t\t= Evaluation points\n", len(ec.Points))
	if ec.Field != nil {
		fmt.Printf("[%d]\t\t= Field components\n", len(ec.Field[0]))
	}
}
