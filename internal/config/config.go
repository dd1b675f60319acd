// Package config loads harness settings from .unit.yaml or unit.toml.
//
// Settings are resolved in three layers: Default, then the config file,
// then command-line flags applied by the caller. Every loaded config is
// checked against an embedded CUE schema.
package config

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"
	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/awesomekyle/unit-test/internal/check"
	"github.com/awesomekyle/unit-test/internal/registry"
	"github.com/awesomekyle/unit-test/internal/report"
	"github.com/awesomekyle/unit-test/internal/script"
)

//go:embed schema.cue
var schemaSource string

// FileNames are the config files Find looks for, in order.
var FileNames = []string{".unit.yaml", ".unit.yml", "unit.toml"}

// Config holds every tunable of a run.
type Config struct {
	Epsilon      float64 `json:"epsilon" yaml:"epsilon" toml:"epsilon"`
	Wrap         int     `json:"wrap" yaml:"wrap" toml:"wrap"`
	Capacity     int     `json:"capacity" yaml:"capacity" toml:"capacity"`
	Scripts      bool    `json:"scripts" yaml:"scripts" toml:"scripts"`
	ScriptDir    string  `json:"script_dir" yaml:"script_dir" toml:"script_dir"`
	ScriptExt    string  `json:"script_ext" yaml:"script_ext" toml:"script_ext"`
	TestMarker   string  `json:"test_marker" yaml:"test_marker" toml:"test_marker"`
	IgnoreMarker string  `json:"ignore_marker" yaml:"ignore_marker" toml:"ignore_marker"`
	SortScripts  bool    `json:"sort_scripts" yaml:"sort_scripts" toml:"sort_scripts"`
	Token        string  `json:"token" yaml:"token" toml:"token"`
	NoColor      bool    `json:"no_color" yaml:"no_color" toml:"no_color"`

	// Path is the file the config was loaded from, empty for defaults.
	Path string `json:"-" yaml:"-" toml:"-"`
}

// DefaultToken is the command-line argument that activates a test run.
const DefaultToken = "-t"

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Epsilon:      check.DefaultEpsilon,
		Wrap:         report.DefaultWrap,
		Capacity:     registry.DefaultCapacity,
		Scripts:      true,
		ScriptDir:    ".",
		ScriptExt:    script.DefaultExtension,
		TestMarker:   script.DefaultTestMarker,
		IgnoreMarker: script.DefaultIgnoreMarker,
		SortScripts:  true,
		Token:        DefaultToken,
	}
}

// Error is a config file that could not be read, parsed or validated.
type Error struct {
	Path string
	Err  error
}

func (e *Error) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("config: %v", e.Err)
	}
	return fmt.Sprintf("config %s: %v", e.Path, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Load reads the file at path over Default and validates the result. The
// format is chosen by extension: .yaml and .yml, or .toml. Unknown keys are
// rejected.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, &Error{Path: path, Err: err}
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return cfg, &Error{Path: path, Err: err}
		}
	case ".toml":
		md, err := toml.Decode(string(data), &cfg)
		if err != nil {
			return cfg, &Error{Path: path, Err: err}
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, k := range undecoded {
				keys[i] = k.String()
			}
			sort.Strings(keys)
			return cfg, &Error{Path: path, Err: fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))}
		}
	default:
		return cfg, &Error{Path: path, Err: fmt.Errorf("unsupported config format %q", ext)}
	}

	cfg.Path = path
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Find returns the first config file from FileNames present in dir, or ""
// when there is none.
func Find(dir string) (string, error) {
	for _, name := range FileNames {
		path := filepath.Join(dir, name)
		info, err := os.Stat(path)
		if err == nil && !info.IsDir() {
			return path, nil
		}
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return "", &Error{Path: path, Err: err}
		}
	}
	return "", nil
}

// FindAndLoad loads the config file in dir, or returns Default when there
// is none.
func FindAndLoad(dir string) (Config, error) {
	path, err := Find(dir)
	if err != nil {
		return Default(), err
	}
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}

// Validate checks the config against the embedded schema.
func (c Config) Validate() error {
	ctx := cuecontext.New()
	schema := ctx.CompileString(schemaSource, cue.Filename("schema.cue"))
	if err := schema.Err(); err != nil {
		return &Error{Path: "schema.cue", Err: err}
	}

	def := schema.LookupPath(cue.ParsePath("#Config"))
	val := def.Unify(ctx.Encode(c))
	if err := val.Validate(cue.Concrete(true)); err != nil {
		return &Error{Path: c.Path, Err: errors.New(strings.TrimSpace(cueerrors.Details(err, nil)))}
	}
	return nil
}
