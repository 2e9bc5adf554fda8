// Package config loads game definitions from YAML and CLI settings from the
// environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/montecarlo/internal/dice"
)

// ParseEnv loads Settings from environment variables
func ParseEnv() (*Settings, error) {
	var s Settings
	if err := env.Parse(&s); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return &s, nil
}

// LoadDefinition reads and validates a YAML game definition
func LoadDefinition(path string) (*Definition, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read game file: %w", err)
	}
	return ParseDefinition(b)
}

// ParseDefinition decodes and validates a YAML game definition.
// A missing face kind defaults to int.
func ParseDefinition(b []byte) (*Definition, error) {
	var def Definition
	if err := yaml.Unmarshal(b, &def); err != nil {
		return nil, fmt.Errorf("decode game file: %w", err)
	}
	if def.Faces == "" {
		def.Faces = FaceKindInt
	}
	if err := def.Validate(); err != nil {
		return nil, err
	}
	return &def, nil
}

// Validate checks the definition and reports every problem at once
func (d *Definition) Validate() error {
	var errs []error

	switch d.Faces {
	case FaceKindInt, FaceKindString:
	default:
		errs = append(errs, fmt.Errorf("faces must be one of: int, string; got %q", d.Faces))
	}
	if len(d.Dice) == 0 {
		errs = append(errs, errors.New("dice must list at least one die"))
	}

	for i, die := range d.Dice {
		if len(die.Faces) == 0 {
			errs = append(errs, fmt.Errorf("dice[%d].faces must not be empty", i))
		}
		listed := make(map[string]bool, len(die.Faces))
		for _, f := range die.Faces {
			if d.Faces == FaceKindInt {
				if _, err := strconv.Atoi(f); err != nil {
					errs = append(errs, fmt.Errorf("dice[%d].faces: %q is not an integer", i, f))
				}
			}
			listed[f] = true
		}
		for face, w := range die.Weights {
			if !listed[face] {
				errs = append(errs, fmt.Errorf("dice[%d].weights: %q is not a face", i, face))
			}
			if w < 0 {
				errs = append(errs, fmt.Errorf("dice[%d].weights[%s] must be >= 0", i, face))
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("game definition invalid: %w", errors.Join(errs...))
	}
	return nil
}

// ParseInt parses an int face
func ParseInt(s string) (int, error) {
	return strconv.Atoi(s)
}

// ParseString returns a string face unchanged
func ParseString(s string) (string, error) {
	return s, nil
}

// BuildDice creates the dice of a definition, parsing faces with parse.
// Die i gets seed+i when seed is non-zero so dice draw independent streams.
func BuildDice[F dice.Face](def *Definition, parse func(string) (F, error), seed uint64) ([]*dice.Die[F], error) {
	out := make([]*dice.Die[F], 0, len(def.Dice))
	for i, dd := range def.Dice {
		faces := make([]F, len(dd.Faces))
		byText := make(map[string]F, len(dd.Faces))
		for k, text := range dd.Faces {
			f, err := parse(text)
			if err != nil {
				return nil, fmt.Errorf("dice[%d] face %q: %w", i, text, err)
			}
			faces[k] = f
			byText[text] = f
		}

		cfg := &dice.Config{}
		if seed != 0 {
			cfg.Seed = seed + uint64(i)
		}
		d, err := dice.New(faces, cfg)
		if err != nil {
			return nil, fmt.Errorf("dice[%d]: %w", i, err)
		}

		for text, w := range dd.Weights {
			face, ok := byText[text]
			if !ok {
				return nil, fmt.Errorf("dice[%d] weight for unknown face %q", i, text)
			}
			if err := d.SetWeight(face, w); err != nil {
				return nil, fmt.Errorf("dice[%d]: %w", i, err)
			}
		}
		out = append(out, d)
	}
	return out, nil
}
