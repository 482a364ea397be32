package cmake

import (
	"strings"

	"github.com/qobs-build/cstart/internal/project"
)

const outputDirs = `set (CMAKE_ARCHIVE_OUTPUT_DIRECTORY "${FullOutputDir}/Static Libraries")
set (CMAKE_LIBRARY_OUTPUT_DIRECTORY "${FullOutputDir}")
set (CMAKE_RUNTIME_OUTPUT_DIRECTORY "${FullOutputDir}")

`

const copyResources = `add_custom_target(
    CopyResources ALL
    COMMAND ${CMAKE_COMMAND} -E copy_directory
    ${ResourcePath}
    ${FullOutputDir}/Debug
    COMMAND ${CMAKE_COMMAND} -E copy_directory
    ${ResourcePath}
    ${FullOutputDir}/Release
    COMMAND ${CMAKE_COMMAND} -E copy_directory
    ${ResourcePath}
    ${FullOutputDir}
    COMMENT "Copying resources to binary output folder"
)
add_dependencies("${PROJECT_NAME}" CopyResources)
`

const (
	globC   = `file (GLOB_RECURSE Sources CONFIGURE_DEPENDS "${SrcPath}/*.c")`
	globCXX = `file (GLOB_RECURSE Sources CONFIGURE_DEPENDS "${SrcPath}/*.cpp" "${SrcPath}/*.c")`
)

// Directory names below the source root
const (
	SourceFiles   = "Source Files"
	HeaderFiles   = "Header Files"
	ResourceFiles = "Resource Files"
)

// envPrefix marks an include or link directory that names an environment variable
const envPrefix = "+"

// DirEntry renders an include/link directory: "+VAR" becomes $ENV{VAR},
// anything else a quoted path
func DirEntry(entry string) string {
	if v, ok := strings.CutPrefix(entry, envPrefix); ok {
		return "$ENV{" + v + "}"
	}
	return quote(entry)
}

func quote(s string) string { return `"` + s + `"` }

// Generate renders CMakeLists.txt for cfg. Options missing from cfg take their value from d.
func Generate(cfg *project.Config, d project.Defaults) string {
	var sb strings.Builder
	isC := cfg.IsC(d)
	copyRes := cfg.CopyRes(d)

	// version
	version := d.Version
	if cfg.Has(project.FieldVersion) {
		version = cfg.CMakeVersion
	}
	writeln(&sb, "cmake_minimum_required(VERSION ", version, ")")

	// project
	name := quote(d.Name)
	if cfg.Has(project.FieldName) {
		name = cfg.Name
	}
	write(&sb, "project(", name, " VERSION 0.1.0 LANGUAGES C")
	if !isC {
		write(&sb, " CXX")
	}
	writeln(&sb, ")")
	writeln(&sb)

	// output
	writeln(&sb, `set (FullOutputDir "${CMAKE_SOURCE_DIR}/`, cfg.OutputRoot(d), `")`)
	write(&sb, outputDirs)

	// sources
	src := cfg.SourceRoot(d)
	writeln(&sb, `set (SrcPath "${CMAKE_SOURCE_DIR}/`, src, "/", SourceFiles, `")`)
	writeln(&sb, `set (HeaderPath "${CMAKE_SOURCE_DIR}/`, src, "/", HeaderFiles, `")`)
	if copyRes {
		writeln(&sb, `set (ResourcePath "${CMAKE_SOURCE_DIR}/`, src, "/", ResourceFiles, `")`)
	}
	if isC {
		writeln(&sb, globC)
	} else {
		writeln(&sb, globCXX)
	}
	writeln(&sb)

	// include/link directories
	if cfg.Has(project.FieldIncludeDirs) {
		write(&sb, "include_directories(${HeaderPath} ")
		writeList(&sb, cfg.IncludeDirs, DirEntry)
		writeln(&sb, ")")
	} else {
		writeln(&sb, "include_directories(${HeaderPath})")
		writeln(&sb)
	}
	if cfg.Has(project.FieldLinkDirs) {
		write(&sb, "link_directories(")
		writeList(&sb, cfg.LinkDirs, DirEntry)
		writeln(&sb, ")")
	}
	if cfg.Has(project.FieldIncludeDirs) || cfg.Has(project.FieldLinkDirs) {
		writeln(&sb)
	}

	// libraries
	if cfg.Has(project.FieldLibraries) {
		write(&sb, "link_libraries(")
		writeList(&sb, cfg.Libraries, quote)
		writeln(&sb, ")")
		writeln(&sb)
	}

	// executable
	writeln(&sb, "add_executable(${PROJECT_NAME} ${Sources})")
	if !isC {
		writeln(&sb, "target_compile_features(${PROJECT_NAME} PUBLIC cxx_std_17)")
	}
	writeln(&sb)

	if copyRes {
		write(&sb, copyResources)
	}

	return sb.String()
}
