package projstat

import (
	"fmt"
	"slices"
	"strings"
)

const (
	// ProfileBase leaves the base configuration untouched.
	ProfileBase = "base"
	// ProfileWeb targets web projects (scripts, styles, server code, C++ modules).
	ProfileWeb = "web"
)

// Profile applies a preset sequence of registry mutations to a configuration.
type Profile func(*Configuration)

//nolint:gochecknoglobals // Preset table
var profiles = map[string]Profile{
	ProfileBase: func(*Configuration) {},
	ProfileWeb: func(c *Configuration) {
		c.AddIgnore("htaccess")
		c.AddSource("js", "php", "css", "cpp", "h")
		c.AddType("cpp", "cpp", "h")
	},
}

// Profiles returns the names of the built-in profiles, sorted.
func Profiles() []string {
	names := make([]string, 0, len(profiles))
	for name := range profiles {
		names = append(names, name)
	}

	slices.Sort(names)

	return names
}

// ApplyProfile applies the named profile to cfg.
func ApplyProfile(cfg *Configuration, name string) error {
	profile, ok := profiles[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return fmt.Errorf("%w %q: must be one of %v", ErrUnknownProfile, name, Profiles())
	}

	profile(cfg)

	return nil
}

// NewProfileConfiguration returns the base configuration with the named profile applied.
func NewProfileConfiguration(name string) (*Configuration, error) {
	cfg := NewConfiguration()
	if err := ApplyProfile(cfg, name); err != nil {
		return nil, err
	}

	return cfg, nil
}
