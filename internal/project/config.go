package project

// Language selects the LANGUAGES of the generated project
type Language int

const (
	LanguageCXX Language = iota
	LanguageC
)

// ParseLanguage maps a --language value to a Language. Only "c" selects C.
func ParseLanguage(s string) Language {
	if s == "c" {
		return LanguageC
	}
	return LanguageCXX
}

func (l Language) String() string {
	if l == LanguageC {
		return "c"
	}
	return "c++"
}

// Field marks which options were given on the command line
type Field uint16

const (
	FieldName Field = 1 << iota
	FieldVersion
	FieldOutputDir
	FieldSourceDir
	FieldLibraries
	FieldCopyRes
	FieldIncludeDirs
	FieldLinkDirs
	FieldLanguage
	FieldGit
)

// Config is the result of parsing the command line. String fields only carry
// meaning when the matching Field is set, see Has.
type Config struct {
	Name          string
	CMakeVersion  string
	OutputDir     string
	SourceDir     string
	Language      Language
	Libraries     []string
	IncludeDirs   []string
	LinkDirs      []string
	CopyResources bool
	InitGit       bool

	// Diagnostics holds human readable notes about tokens the parser skipped
	Diagnostics []string

	provided Field
}

func (c *Config) Has(f Field) bool { return c.provided&f != 0 }
func (c *Config) Mark(f Field)     { c.provided |= f }

// Lang returns the language from the command line, falling back to d
func (c *Config) Lang(d Defaults) Language {
	if c.Has(FieldLanguage) {
		return c.Language
	}
	return d.Lang()
}

// IsC reports whether the project is plain C
func (c *Config) IsC(d Defaults) bool { return c.Lang(d) == LanguageC }

// CopyRes reports whether the resource copy step is enabled
func (c *Config) CopyRes(d Defaults) bool {
	if c.Has(FieldCopyRes) {
		return c.CopyResources
	}
	return d.CopyRes
}

// SourceRoot returns the directory holding Source Files and Header Files
func (c *Config) SourceRoot(d Defaults) string {
	if c.Has(FieldSourceDir) {
		return c.SourceDir
	}
	return d.SourceDir
}

// OutputRoot returns the build output directory relative to the project root
func (c *Config) OutputRoot(d Defaults) string {
	if c.Has(FieldOutputDir) {
		return c.OutputDir
	}
	return d.OutputDir
}
