package projstat

import (
	"slices"
)

// Options configures a project scan and CLI behavior.
type Options struct {
	// Path is the directory to analyze.
	Path string
	// Profile is the name of the built-in profile applied first.
	Profile string
	// Ignore lists extensions added to the ignore list.
	Ignore []string
	// RemoveIgnore lists extensions removed from the ignore list.
	RemoveIgnore []string
	// ClearIgnore empties the ignore list before additions.
	ClearIgnore bool
	// Source lists extensions added to the source list.
	Source []string
	// RemoveSource lists extensions removed from the source list.
	RemoveSource []string
	// ClearSource empties the source list before additions.
	ClearSource bool
	// Types maps type names to the extensions they group.
	Types map[string][]string
	// RemoveTypes lists type names to unregister.
	RemoveTypes []string
	// Output represents the output format (auto, html, json, yaml or text).
	Output string
	// File is the report destination; empty means stdout.
	File string
	// Debug indicates whether debug logging is enabled.
	Debug bool
}

// Configuration builds the scan configuration described by the options.
//
// The profile is applied first, then clears, removals and additions of
// extensions, then type removals and type additions. Types are added in name
// order so the result does not depend on map iteration.
func (o Options) Configuration() (*Configuration, error) {
	profile := o.Profile
	if profile == "" {
		profile = ProfileBase
	}

	cfg, err := NewProfileConfiguration(profile)
	if err != nil {
		return nil, err
	}

	if o.ClearIgnore {
		cfg.RemoveIgnore()
	}

	if o.ClearSource {
		cfg.RemoveSource()
	}

	if len(o.RemoveIgnore) > 0 {
		cfg.RemoveIgnore(o.RemoveIgnore...)
	}

	if len(o.RemoveSource) > 0 {
		cfg.RemoveSource(o.RemoveSource...)
	}

	cfg.AddIgnore(o.Ignore...)
	cfg.AddSource(o.Source...)

	for _, name := range o.RemoveTypes {
		cfg.RemoveType(name)
	}

	names := make([]string, 0, len(o.Types))
	for name := range o.Types {
		names = append(names, name)
	}

	slices.Sort(names)

	for _, name := range names {
		cfg.AddType(name, o.Types[name]...)
	}

	return cfg, nil
}
