// Package envx overlays configuration from the process environment. Values
// may come from real environment variables or from .env files loaded with
// godotenv; variables that are already set always win over file values.
package envx

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// LoadDotEnv reads the given .env files into the environment. Missing files
// are skipped so a bare checkout works without one.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return err
		}
	}
	return nil
}

// Source looks variables up under a common prefix, e.g. "FRESHIFY_".
type Source struct {
	Prefix string
	lookup func(string) (string, bool)
}

func New(prefix string) *Source {
	return &Source{Prefix: prefix, lookup: os.LookupEnv}
}

// NewFromMap is used by tests to avoid touching the real environment.
func NewFromMap(prefix string, m map[string]string) *Source {
	return &Source{Prefix: prefix, lookup: func(k string) (string, bool) {
		v, ok := m[k]
		return v, ok
	}}
}

func (s *Source) get(name string) (string, bool) {
	v, ok := s.lookup(s.Prefix + name)
	if !ok || v == "" {
		return "", false
	}
	return v, true
}

// String overwrites *dst when name is set.
func (s *Source) String(name string, dst *string) {
	if v, ok := s.get(name); ok {
		*dst = v
	}
}

// Duration accepts Go duration strings ("90s", "5m").
func (s *Source) Duration(name string, dst *time.Duration) error {
	v, ok := s.get(name)
	if !ok {
		return nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return &ParseError{Name: s.Prefix + name, Err: err}
	}
	*dst = d
	return nil
}

func (s *Source) Bool(name string, dst *bool) error {
	v, ok := s.get(name)
	if !ok {
		return nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return &ParseError{Name: s.Prefix + name, Err: err}
	}
	*dst = b
	return nil
}

func (s *Source) Float(name string, dst *float64) error {
	v, ok := s.get(name)
	if !ok {
		return nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return &ParseError{Name: s.Prefix + name, Err: err}
	}
	*dst = f
	return nil
}

func (s *Source) Int(name string, dst *int) error {
	v, ok := s.get(name)
	if !ok {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return &ParseError{Name: s.Prefix + name, Err: err}
	}
	*dst = n
	return nil
}

type ParseError struct {
	Name string
	Err  error
}

func (e *ParseError) Error() string { return "env " + e.Name + ": " + e.Err.Error() }

func (e *ParseError) Unwrap() error { return e.Err }
