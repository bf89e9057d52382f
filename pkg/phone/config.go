package phone

import (
	"github.com/dmitrymomot/phonerule/pkg/config"
)

// DefaultEnvPrefix is the prefix LoadConfig uses when none is given.
const DefaultEnvPrefix = "PHONE_"

// Config is the rule configuration. It is read-only once passed to New.
type Config struct {
	// Strict turns a missing country into a validation failure.
	// When false, a model without a resolvable country passes unchecked.
	Strict bool `env:"STRICT" envDefault:"true"`

	// CountryAttribute names the model field holding the ISO 3166-1 alpha-2 code.
	CountryAttribute string `env:"COUNTRY_ATTRIBUTE"`

	// Country fixes the region for every model.
	Country string `env:"COUNTRY"`

	// Format controls rewriting of valid numbers.
	Format Style `env:"FORMAT" envDefault:"true"`

	// Message replaces every default error message when set.
	Message string `env:"MESSAGE"`

	// SkipOnEmpty passes missing or empty attribute values without checking them.
	// It is off by default, unlike form frameworks that skip empty values
	// implicitly, so a strict rule still reports a missing country for an
	// empty attribute.
	SkipOnEmpty bool `env:"SKIP_ON_EMPTY" envDefault:"false"`
}

// DefaultConfig returns a strict configuration that rewrites valid numbers
// in international format.
func DefaultConfig() Config {
	return Config{
		Strict: true,
		Format: StyleDefault,
	}
}

// LoadConfig reads a Config from environment variables named prefix + tag,
// for example PHONE_COUNTRY. An empty prefix means DefaultEnvPrefix.
func LoadConfig(prefix string) (Config, error) {
	if prefix == "" {
		prefix = DefaultEnvPrefix
	}

	var cfg Config
	if err := config.LoadPrefixed(&cfg, prefix); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
