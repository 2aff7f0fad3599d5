package plan

import (
	_ "embed"
	"fmt"
	"strings"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

//go:embed steps.yaml
var catalogue []byte

// Step is a single collaborator invocation.
type Step struct {
	Announce string   `yaml:"announce" mapstructure:"announce"` // Printed on its own line before the step, if set
	Command  string   `yaml:"command" mapstructure:"command"`   // Bare collaborator name (e.g. "runall")
	Args     []string `yaml:"args" mapstructure:"args"`         // Literal arguments
	Dir      string   `yaml:"dir" mapstructure:"dir"`           // Relative to the run's base directory
}

// String renders the invocation as it would be typed, e.g. "runall 2".
func (s Step) String() string {
	if len(s.Args) == 0 {
		return s.Command
	}
	return s.Command + " " + strings.Join(s.Args, " ")
}

// Plan is an ordered list of steps.
type Plan []Step

// Commands returns the distinct collaborator names in order of first use.
func (p Plan) Commands() []string {
	seen := make(map[string]bool, len(p))
	var names []string
	for _, s := range p {
		if seen[s.Command] {
			continue
		}
		seen[s.Command] = true
		names = append(names, s.Command)
	}
	return names
}

type catalogueFile struct {
	Steps []map[string]any `yaml:"steps"`
}

// Decode parses a YAML step catalogue.
// Unknown step keys are rejected so typos cannot silently drop a field.
func Decode(data []byte) (Plan, error) {
	var file catalogueFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse step catalogue: %w", err)
	}

	p := make(Plan, 0, len(file.Steps))
	for i, raw := range file.Steps {
		var step Step
		decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
			ErrorUnused:      true,
			WeaklyTypedInput: true, // args: [2] decodes as "2"
			Result:           &step,
		})
		if err != nil {
			return nil, err
		}
		if err := decoder.Decode(raw); err != nil {
			return nil, fmt.Errorf("step %d: %w", i+1, err)
		}
		p = append(p, step)
	}

	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// Default returns the canonical plan compiled into the binary.
// The embedded catalogue is covered by tests, so a decode failure is a build defect.
func Default() Plan {
	p, err := Decode(catalogue)
	if err != nil {
		panic(fmt.Sprintf("plan: embedded catalogue is invalid: %v", err))
	}
	return p
}
