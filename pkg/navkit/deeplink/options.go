package deeplink

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// DuplicatePolicy decides which value wins when a query key repeats.
type DuplicatePolicy int

const (
	LastWins DuplicatePolicy = iota // Keep the latest value (default)
	FirstWins                       // Keep the earliest value
)

func (p DuplicatePolicy) String() string {
	switch p {
	case LastWins:
		return "last_wins"
	case FirstWins:
		return "first_wins"
	default:
		return fmt.Sprintf("DuplicatePolicy(%d)", int(p))
	}
}

func (p DuplicatePolicy) MarshalText() ([]byte, error) {
	switch p {
	case LastWins, FirstWins:
		return []byte(p.String()), nil
	}
	return nil, fmt.Errorf("deeplink: unknown duplicate policy %d", int(p))
}

func (p *DuplicatePolicy) UnmarshalText(text []byte) error {
	switch strings.ToLower(strings.ReplaceAll(string(text), "-", "_")) {
	case "last_wins", "lastwins", "last":
		*p = LastWins
	case "first_wins", "firstwins", "first":
		*p = FirstWins
	default:
		return fmt.Errorf("deeplink: unknown duplicate policy %q", text)
	}
	return nil
}

// Options controls how URLs are normalized during parsing.
// The zero value disables every normalization; use DefaultOptions for the
// parser's standard behavior.
type Options struct {
	IncludeHostForCustomSchemes bool            `toml:"include_host_for_custom_schemes" yaml:"include_host_for_custom_schemes"`
	LowercasePath               bool            `toml:"lowercase_path" yaml:"lowercase_path"`
	LowercaseQueryKeys          bool            `toml:"lowercase_query_keys" yaml:"lowercase_query_keys"`
	DuplicatePolicy             DuplicatePolicy `toml:"duplicate_policy" yaml:"duplicate_policy"`
}

// DefaultOptions returns the options used by Parse and ParseURL.
func DefaultOptions() Options {
	return Options{
		IncludeHostForCustomSchemes: true,
		LowercasePath:               false,
		LowercaseQueryKeys:          true,
		DuplicatePolicy:             LastWins,
	}
}

// DecodeOptionsTOML reads parser options from a TOML document. Keys the
// document omits keep their DefaultOptions value.
//
//	include_host_for_custom_schemes = true
//	lowercase_path = true
//	duplicate_policy = "first_wins"
func DecodeOptionsTOML(data []byte) (Options, error) {
	opts := DefaultOptions()
	md, err := toml.NewDecoder(bytes.NewReader(data)).Decode(&opts)
	if err != nil {
		return DefaultOptions(), fmt.Errorf("deeplink: decode toml options: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return DefaultOptions(), fmt.Errorf("deeplink: unknown toml option %q", undecoded[0].String())
	}
	return opts, nil
}

// DecodeOptionsYAML reads parser options from a YAML document. Keys the
// document omits keep their DefaultOptions value.
func DecodeOptionsYAML(data []byte) (Options, error) {
	opts := DefaultOptions()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&opts); err != nil {
		// An empty document leaves the defaults in place.
		if errors.Is(err, io.EOF) {
			return opts, nil
		}
		return DefaultOptions(), fmt.Errorf("deeplink: decode yaml options: %w", err)
	}
	return opts, nil
}
