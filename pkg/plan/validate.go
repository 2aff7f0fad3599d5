package plan

import (
	"path/filepath"
	"strings"
)

// Validate checks every step and reports all failures at once.
func (p Plan) Validate() error {
	var errs []error
	for i, s := range p {
		errs = append(errs, s.validate(i+1)...)
	}
	if len(errs) > 0 {
		return &AggregateError{Errors: errs}
	}
	return nil
}

func (s Step) validate(index int) []error {
	var errs []error
	if strings.TrimSpace(s.Command) == "" {
		errs = append(errs, &ValidationError{Step: index, Field: "command", Reason: "required"})
	} else if strings.ContainsAny(s.Command, `/\`) {
		errs = append(errs, &ValidationError{Step: index, Field: "command", Reason: "must be a bare name", Value: s.Command})
	}

	if s.Dir != "" {
		clean := filepath.Clean(filepath.FromSlash(s.Dir))
		switch {
		case filepath.IsAbs(clean) || filepath.VolumeName(clean) != "" || strings.HasPrefix(s.Dir, "/") || strings.HasPrefix(s.Dir, `\`):
			errs = append(errs, &ValidationError{Step: index, Field: "dir", Reason: "must be relative", Value: s.Dir})
		case clean == ".." || strings.HasPrefix(clean, ".."+string(filepath.Separator)):
			errs = append(errs, &ValidationError{Step: index, Field: "dir", Reason: "escapes the base directory", Value: s.Dir})
		}
	}
	return errs
}
