// cstart [options]
package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/qobs-build/cstart/internal/args"
	"github.com/qobs-build/cstart/internal/cmake"
	"github.com/qobs-build/cstart/internal/msg"
	"github.com/qobs-build/cstart/internal/project"
	"github.com/qobs-build/cstart/internal/scaffold"
	"github.com/spf13/cobra"
)

const helpPage = `cstart help page:

Options:
    -n -p --name --project -> Set the project name inside CMake (also the executable name)
    -v --version -> Set the required CMake version
    -o --output-dir -> The folder for the build output
    -s --source-dir -> The folder for the sources (it includes the 'Source Files' and 'Header Files' directories)
    -l --libraries -> The name of the libraries that have to be linked (e.g. from 'vulkan-1.lib' you use 'vulkan-1')
    --copy-res -> Enables the use of a 'Resource Files' folder inside the src folder and copies the resources to the bin output
                  folder before compilation for accessing them in your program.
    --incl-dirs -> Specify additional include directories beside the default header and src files
                   (prefix an entry with '+' to use an environment variable, e.g. +VULKAN_SDK)
    --link-dirs -> Specify link directories for the libraries to be linked from (same '+' rule)
    --language -> Specify the language for your project (if option 'c' is chosen, then the language is set to c.
                  If anything else is chosen, the language is set to c++)
    --git -> Initialize a git repository and a .gitignore if there is none

!!! ALL options will default to a value if omitted:
    -n -p --name --project -> '...'
    -v --version -> '3.26.0'
    -o --output-dir -> 'bin'
    -s --source-dir -> 'src'
    --copy-res -> false
    --incl-dirs -> none
    --link-dirs -> none
    --language -> c++

!!! Defaults can be changed in a cstart.toml file, in the current directory or in the user
    config directory, under a [defaults] table (version, name, output-dir, source-dir,
    copy-res, language). String values may use {{ expressions }}, e.g. name = "{{ dirname }}".

!!! The source folder contains three folders in the default CMake config:
 - 'Source Files'
 - 'Header Files'
 - 'Resource Files' (only included if the --copy-res option is specified)

!!! cstart automatically creates those directories if it doesn't find them.
`

// root is the directory the project is generated in
var root = "."

func doGenerate(cmd *cobra.Command, tokens []string) {
	cfg, err := args.Parse(tokens)
	if errors.Is(err, args.ErrHelpRequested) {
		fmt.Fprint(cmd.OutOrStdout(), cmd.Long)
		return
	}
	if err != nil {
		msg.Fatal("%v", err)
	}
	for _, d := range cfg.Diagnostics {
		msg.Warn("%s", d)
	}

	defaults, defaultsFile, err := project.LoadDefaults(root)
	if err != nil {
		msg.Fatal("failed to load defaults: %v", err)
	}
	if defaultsFile != "" {
		msg.Info("using defaults from %s", defaultsFile)
	}

	manifest := cmake.Generate(cfg, defaults)
	res, err := cmake.WriteManifest(root, manifest)
	if err != nil {
		msg.Fatal("%v", err)
	}
	switch res.Status {
	case cmake.Created:
		msg.Created("file", cmake.ManifestFilename)
	case cmake.Updated:
		msg.Warn("overwriting existing %s", cmake.ManifestFilename)
		added, removed := msg.Diff(&msg.IndentWriter{Indent: "    ", W: msg.Output}, res.Previous, manifest)
		msg.Info("updated %s (+%d -%d lines)", cmake.ManifestFilename, added, removed)
	case cmake.Unchanged:
		msg.Info("%s is up to date", cmake.ManifestFilename)
	}

	report, err := scaffold.Run(root, cfg, defaults)
	if err != nil {
		msg.Fatal("%v", err)
	}
	if cfg.InitGit {
		if err := scaffold.InitGit(root, cfg, defaults, report); err != nil {
			msg.Fatal("%v", err)
		}
	}
	for _, dir := range report.Dirs {
		msg.Created("directory", dir)
	}
	for _, file := range report.Files {
		msg.Created("file", file)
	}

	sources, err := scaffold.Sources(root, cfg, defaults)
	if err != nil {
		msg.Warn("could not list sources: %v", err)
		return
	}
	msg.Info("%d source file(s) will be picked up by GLOB_RECURSE", len(sources))
}

var rootCmd = &cobra.Command{
	Use:                "cstart [options]",
	Short:              "Generate a CMakeLists.txt and a source tree for a C/C++ project",
	Long:               helpPage,
	Args:               cobra.ArbitraryArgs,
	DisableFlagParsing: true,
	SilenceUsage:       true,
	Run:                doGenerate,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
