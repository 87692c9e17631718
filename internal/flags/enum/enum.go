// Package enum provides a pflag.Value that only accepts one of a fixed set of strings.
package enum

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
)

// Flag is a string flag restricted to a list of options.
// The first option is the default.
type Flag struct {
	value   string
	options []string
}

var _ pflag.Value = (*Flag)(nil)

// New creates a Flag with the given options. It panics without options.
func New(options ...string) *Flag {
	if len(options) == 0 {
		panic("enum flag requires at least one option")
	}
	return &Flag{value: options[0], options: options}
}

func (f *Flag) String() string {
	return f.value
}

// Set accepts value only if it is one of the options.
func (f *Flag) Set(value string) error {
	for _, o := range f.options {
		if o == value {
			f.value = value
			return nil
		}
	}
	return fmt.Errorf("invalid value %q, must be one of %s", value, strings.Join(f.options, ", "))
}

func (f *Flag) Type() string {
	return "enum"
}

// Options returns the accepted values.
func (f *Flag) Options() []string {
	return append([]string(nil), f.options...)
}

// Var registers an enum flag on flagset. The usage text is suffixed with the options.
func Var(flagset *pflag.FlagSet, name string, options []string, usage string) {
	flagset.Var(New(options...), name, fmt.Sprintf("%s (must be one of [%s])", usage, strings.Join(options, " ")))
}

// VarP is like Var but also registers a one-letter shorthand.
func VarP(flagset *pflag.FlagSet, name, shorthand string, options []string, usage string) {
	flagset.VarP(New(options...), name, shorthand, fmt.Sprintf("%s (must be one of [%s])", usage, strings.Join(options, " ")))
}

// Get returns the value of the enum flag name in flagset.
func Get(flagset *pflag.FlagSet, name string) (string, error) {
	flag := flagset.Lookup(name)
	if flag == nil {
		return "", fmt.Errorf("flag %q not found", name)
	}
	f, ok := flag.Value.(*Flag)
	if !ok {
		return "", fmt.Errorf("flag %q is not an enum flag", name)
	}
	return f.String(), nil
}
