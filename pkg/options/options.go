// Package options provides configuration for the seqdoc command, loaded from environment variables or JSON.
package options

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"reflect"
	"strconv"

	"github.com/norio-nomura/lazyseq/pkg/shellwords"
	"github.com/norio-nomura/lazyseq/pkg/sigdoc"
)

// Options holds configuration values for seqdoc.
type Options struct {
	Root        string   `env:"SEQDOC_ROOT" json:","`
	Packages    []string `env:"SEQDOC_PACKAGES" json:","`
	Format      string   `env:"SEQDOC_FORMAT" json:","`
	WithDoc     bool     `env:"SEQDOC_WITH_DOC" json:","`
	WithMethods bool     `env:"SEQDOC_WITH_METHODS" json:","`
}

// Default creates a new Options instance with default values.
func Default() *Options {
	return &Options{
		Root:        ".",
		Packages:    []string{"pkg/option", "pkg/source", "pkg/xiter", "pkg/accum"},
		Format:      string(sigdoc.FormatText),
		WithMethods: true,
	}
}

// FromEnv populates Options from environment variables dynamically.
// Unset variables keep their default. List values are split like shell words.
// The result is not validated, so later sources can still correct it; call Validate once all are applied.
func FromEnv() (*Options, error) {
	options := Default()
	v := reflect.ValueOf(options).Elem()
	t := v.Type()

	for i := range v.NumField() {
		field := v.Field(i)
		envKey := t.Field(i).Tag.Get("env")
		if envKey == "" {
			continue
		}
		envValue, exists := os.LookupEnv(envKey)
		if !exists {
			continue
		}

		// Set the field value based on its type
		switch field.Kind() {
		case reflect.Slice:
			if field.Type().Elem().Kind() != reflect.String {
				return nil, fmt.Errorf("unsupported slice type for %s", envKey)
			}
			sliceValue, err := shellwords.Split(envValue)
			if err != nil {
				return nil, fmt.Errorf("failed to parse %s: %w", envKey, err)
			}
			field.Set(reflect.ValueOf(sliceValue))
		case reflect.String:
			field.SetString(envValue)
		case reflect.Bool:
			boolValue, err := strconv.ParseBool(envValue)
			if err != nil {
				return nil, fmt.Errorf("invalid value for %s: %w", envKey, err)
			}
			field.SetBool(boolValue)
		default:
			return nil, fmt.Errorf("unsupported type %s for %s", field.Kind(), envKey)
		}
	}
	return options, nil
}

// FromReader reads JSON from r, populates Options on top of the defaults and validates the result.
func FromReader(r io.Reader) (*Options, error) {
	options := Default()
	if err := options.DecodeJSON(r); err != nil {
		return nil, err
	}
	if err := options.Validate(); err != nil {
		return nil, err
	}
	return options, nil
}

// DecodeJSON overlays the fields present in the JSON document read from r onto o.
func (o *Options) DecodeJSON(r io.Reader) error {
	decoder := json.NewDecoder(r)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(o); err != nil {
		return fmt.Errorf("failed to decode JSON: %w", err)
	}
	return nil
}

// Validate reports the first setting that seqdoc cannot run with.
func (o *Options) Validate() error {
	if _, err := sigdoc.ParseFormat(o.Format); err != nil {
		return err
	}
	if len(o.Packages) == 0 {
		return errors.New("no packages to document")
	}
	if o.Root == "" {
		return errors.New("root directory is empty")
	}
	return nil
}
