package sql

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/syssam/dialect/schema"
)

// Option configures a provider at construction time. Providers are
// immutable afterwards.
type Option func(*base)

// WithNaming replaces the provider's naming strategy.
func WithNaming(n schema.NamingStrategy) Option {
	return func(b *base) { b.naming = n }
}

// WithDefaultStringLength sets the length used for string columns that
// specify none.
func WithDefaultStringLength(n int) Option {
	return func(b *base) { b.defaultString = n }
}

// WithDefaultSchema sets the schema used by catalog introspection when
// the caller passes an empty schema name.
func WithDefaultSchema(s string) Option {
	return func(b *base) { b.defaultSchema = s }
}

// Options is the file-loadable provider configuration.
type Options struct {
	// DefaultStringLength is the length for string columns without one.
	DefaultStringLength int `yaml:"default_string_length"`
	// DefaultSchema is the introspection schema fallback.
	DefaultSchema string `yaml:"default_schema"`
	// Naming selects the naming strategy: "same", "lowercase" or "snake".
	Naming string `yaml:"naming"`
}

// LoadOptions reads provider options from a YAML file.
func LoadOptions(path string) (*Options, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("dialect/sql: reading options: %w", err)
	}
	var o Options
	if err := yaml.Unmarshal(data, &o); err != nil {
		return nil, fmt.Errorf("dialect/sql: parsing options: %w", err)
	}
	return &o, nil
}

// Apply converts the loaded options into construction options. Unknown
// naming strategy names are rejected.
func (o *Options) Apply() ([]Option, error) {
	var opts []Option
	if o.DefaultStringLength > 0 {
		opts = append(opts, WithDefaultStringLength(o.DefaultStringLength))
	}
	if o.DefaultSchema != "" {
		opts = append(opts, WithDefaultSchema(o.DefaultSchema))
	}
	switch o.Naming {
	case "":
	case "same":
		opts = append(opts, WithNaming(schema.SameNaming{}))
	case "lowercase":
		opts = append(opts, WithNaming(schema.LowercaseNaming{}))
	case "snake":
		opts = append(opts, WithNaming(schema.SnakeNaming{}))
	default:
		return nil, fmt.Errorf("dialect/sql: unknown naming strategy %q", o.Naming)
	}
	return opts, nil
}
