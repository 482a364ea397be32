// Package args turns the cstart command line into a project.Config.
//
// Unknown tokens are skipped, an option that appears twice keeps its first
// value and an option missing its value at the end of the line is dropped.
// Skipped tokens end up in Config.Diagnostics; they never fail the parse.
package args

import (
	"errors"
	"fmt"
	"strings"

	"github.com/qobs-build/cstart/internal/project"
)

// ErrHelpRequested is returned when -h or --help is seen. No Config is produced.
var ErrHelpRequested = errors.New("help requested")

type option int

const (
	optHelp option = iota
	optName
	optVersion
	optOutputDir
	optSourceDir
	optLibraries
	optCopyRes
	optIncludeDirs
	optLinkDirs
	optLanguage
	optGit
)

type kind int

const (
	kindSwitch kind = iota // takes no value
	kindValue              // takes exactly the next token
	kindList               // takes every following token up to the next '-' token
)

type optDef struct {
	field project.Field
	kind  kind
}

var options = map[option]optDef{
	optName:        {project.FieldName, kindValue},
	optVersion:     {project.FieldVersion, kindValue},
	optOutputDir:   {project.FieldOutputDir, kindValue},
	optSourceDir:   {project.FieldSourceDir, kindValue},
	optLanguage:    {project.FieldLanguage, kindValue},
	optLibraries:   {project.FieldLibraries, kindList},
	optIncludeDirs: {project.FieldIncludeDirs, kindList},
	optLinkDirs:    {project.FieldLinkDirs, kindList},
	optCopyRes:     {project.FieldCopyRes, kindSwitch},
	optGit:         {project.FieldGit, kindSwitch},
}

// spellings maps every accepted spelling to its option
var spellings = map[string]option{
	"-h":           optHelp,
	"--help":       optHelp,
	"-n":           optName,
	"-p":           optName,
	"--name":       optName,
	"--project":    optName,
	"-v":           optVersion,
	"--version":    optVersion,
	"-o":           optOutputDir,
	"--output-dir": optOutputDir,
	"-s":           optSourceDir,
	"--source-dir": optSourceDir,
	"-l":           optLibraries,
	"--libraries":  optLibraries,
	"--copy-res":   optCopyRes,
	"--incl-dirs":  optIncludeDirs,
	"--link-dirs":  optLinkDirs,
	"--language":   optLanguage,
	"--git":        optGit,
}

func isFlag(tok string) bool { return strings.HasPrefix(tok, "-") }

// Parse reads tokens (without the program name) into a new Config
func Parse(tokens []string) (*project.Config, error) {
	cfg := new(project.Config)

	for i := 0; i < len(tokens); i++ {
		tok := tokens[i]
		opt, ok := spellings[tok]
		if !ok {
			cfg.Diagnostics = append(cfg.Diagnostics, fmt.Sprintf("ignoring unrecognized argument %q", tok))
			continue
		}
		if opt == optHelp {
			return nil, ErrHelpRequested
		}

		def := options[opt]
		if cfg.Has(def.field) {
			cfg.Diagnostics = append(cfg.Diagnostics, fmt.Sprintf("ignoring repeated option %s", tok))
			continue
		}

		if def.kind == kindSwitch {
			apply(cfg, opt, nil)
			cfg.Mark(def.field)
			continue
		}

		if i+1 >= len(tokens) {
			cfg.Diagnostics = append(cfg.Diagnostics, fmt.Sprintf("option %s has no value, ignoring it", tok))
			break
		}

		if def.kind == kindValue {
			i++
			apply(cfg, opt, tokens[i:i+1])
			cfg.Mark(def.field)
			continue
		}

		end := i + 1
		for end < len(tokens) && !isFlag(tokens[end]) {
			end++
		}
		apply(cfg, opt, tokens[i+1:end])
		cfg.Mark(def.field)
		i = end - 1
	}

	return cfg, nil
}

func apply(cfg *project.Config, opt option, values []string) {
	switch opt {
	case optName:
		cfg.Name = values[0]
	case optVersion:
		cfg.CMakeVersion = values[0]
	case optOutputDir:
		cfg.OutputDir = values[0]
	case optSourceDir:
		cfg.SourceDir = values[0]
	case optLanguage:
		cfg.Language = project.ParseLanguage(values[0])
	case optLibraries:
		cfg.Libraries = append([]string{}, values...)
	case optIncludeDirs:
		cfg.IncludeDirs = append([]string{}, values...)
	case optLinkDirs:
		cfg.LinkDirs = append([]string{}, values...)
	case optCopyRes:
		cfg.CopyResources = true
	case optGit:
		cfg.InitGit = true
	default:
		panic("apply: unreachable")
	}
}
