package project

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"strings"

	"github.com/expr-lang/expr"
	"github.com/pelletier/go-toml/v2"
)

const DefaultsFilename = "cstart.toml"

// Defaults are the values used for every option that was not given on the command line
type Defaults struct {
	Version   string `toml:"version"`
	Name      string `toml:"name"`
	OutputDir string `toml:"output-dir"`
	SourceDir string `toml:"source-dir"`
	CopyRes   bool   `toml:"copy-res"`
	Language  string `toml:"language"`
}

var BuiltinDefaults = Defaults{
	Version:   "3.26.0",
	Name:      "...",
	OutputDir: "bin",
	SourceDir: "src",
	CopyRes:   false,
	Language:  "c++",
}

func (d Defaults) Lang() Language { return ParseLanguage(d.Language) }

// merge copies every non-zero field of src over d
func (d *Defaults) merge(src Defaults) {
	if src.Version != "" {
		d.Version = src.Version
	}
	if src.Name != "" {
		d.Name = src.Name
	}
	if src.OutputDir != "" {
		d.OutputDir = src.OutputDir
	}
	if src.SourceDir != "" {
		d.SourceDir = src.SourceDir
	}
	if src.Language != "" {
		d.Language = src.Language
	}
	d.CopyRes = d.CopyRes || src.CopyRes
}

// ConfigEnv is the environment {{...}} expressions in cstart.toml are evaluated against
type ConfigEnv struct {
	TargetOS   string            `expr:"target_os"`
	TargetArch string            `expr:"target_arch"`
	Environ    map[string]string `expr:"environ"`
	Dirname    string            `expr:"dirname"`
}

func NewConfigEnv(basedir string) ConfigEnv {
	environ := make(map[string]string)
	for _, e := range os.Environ() {
		if i := strings.Index(e, "="); i >= 0 {
			environ[e[:i]] = e[i+1:]
		}
	}

	dirname := ""
	if abs, err := filepath.Abs(basedir); err == nil {
		dirname = filepath.Base(abs)
	}

	return ConfigEnv{
		TargetOS:   runtime.GOOS,
		TargetArch: runtime.GOARCH,
		Environ:    environ,
		Dirname:    dirname,
	}
}

var exprRegex = regexp.MustCompile(`\{\{(.+?)\}\}`)

// evaluateString finds and evaluates all {{...}} expressions in a string
func evaluateString(s string, env ConfigEnv) (string, error) {
	matches := exprRegex.FindAllStringSubmatchIndex(s, -1)
	if len(matches) == 0 {
		return s, nil
	}

	var sb strings.Builder
	lastIndex := 0

	for _, m := range matches {
		sb.WriteString(s[lastIndex:m[0]])

		expression := strings.TrimSpace(s[m[2]:m[3]])
		program, err := expr.Compile(expression, expr.Env(env))
		if err != nil {
			return "", fmt.Errorf("failed to compile expression %q: %w", expression, err)
		}

		result, err := expr.Run(program, env)
		if err != nil {
			return "", fmt.Errorf("failed to run expression %q: %w", expression, err)
		}

		fmt.Fprintf(&sb, "%v", result)
		lastIndex = m[1]
	}

	sb.WriteString(s[lastIndex:])
	return sb.String(), nil
}

// processExpressions recursively walks the parsed TOML data and evaluates expressions in strings
func processExpressions(data any, env ConfigEnv) (any, error) {
	switch v := data.(type) {
	case map[string]any:
		for key, val := range v {
			processed, err := processExpressions(val, env)
			if err != nil {
				return nil, err
			}
			v[key] = processed
		}
		return v, nil
	case []any:
		for i, item := range v {
			processed, err := processExpressions(item, env)
			if err != nil {
				return nil, err
			}
			v[i] = processed
		}
		return v, nil
	case string:
		return evaluateString(v, env)
	default:
		return data, nil
	}
}

// ParseDefaults reads a cstart.toml document and returns BuiltinDefaults
// overridden by its [defaults] table
func ParseDefaults(rdr io.Reader, env ConfigEnv) (Defaults, error) {
	d := BuiltinDefaults

	var raw map[string]any
	if err := toml.NewDecoder(rdr).Decode(&raw); err != nil {
		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			return d, errors.New(derr.String())
		}
		return d, err
	}

	section, ok := raw["defaults"]
	if !ok {
		return d, nil
	}
	processed, err := processExpressions(section, env)
	if err != nil {
		return d, fmt.Errorf("error processing expressions in [defaults]: %w", err)
	}

	b, err := toml.Marshal(processed)
	if err != nil {
		return d, err
	}
	var parsed Defaults
	if err := toml.Unmarshal(b, &parsed); err != nil {
		return d, fmt.Errorf("failed to parse [defaults] section: %w", err)
	}

	d.merge(parsed)
	return d, nil
}

// ParseDefaultsFromFile parses a defaults file from a filepath
func ParseDefaultsFromFile(path string, env ConfigEnv) (Defaults, error) {
	f, err := os.Open(path)
	if err != nil {
		return BuiltinDefaults, err
	}
	defer f.Close()

	return ParseDefaults(bufio.NewReader(f), env)
}

// DefaultsPaths returns the locations searched for cstart.toml, in priority order
func DefaultsPaths(basedir string) []string {
	paths := []string{filepath.Join(basedir, DefaultsFilename)}
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, "cstart", DefaultsFilename))
	}
	return paths
}

// LoadDefaults returns the defaults from the first cstart.toml found, or
// BuiltinDefaults when there is none. The second return value is the file used.
func LoadDefaults(basedir string) (Defaults, string, error) {
	env := NewConfigEnv(basedir)
	for _, path := range DefaultsPaths(basedir) {
		if _, err := os.Stat(path); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return BuiltinDefaults, "", err
		}
		d, err := ParseDefaultsFromFile(path, env)
		if err != nil {
			return BuiltinDefaults, path, fmt.Errorf("%s: %w", path, err)
		}
		return d, path, nil
	}
	return BuiltinDefaults, "", nil
}
