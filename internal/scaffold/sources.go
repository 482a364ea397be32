package scaffold

import (
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/qobs-build/cstart/internal/cmake"
	"github.com/qobs-build/cstart/internal/project"
)

// globPattern mirrors the GLOB_RECURSE expression of the generated manifest
func globPattern(lang project.Language) string {
	if lang == project.LanguageC {
		return "**/*.c"
	}
	return "**/*.{cpp,c}"
}

// Sources returns the files below Source Files that the manifest will compile,
// relative to root
func Sources(root string, cfg *project.Config, d project.Defaults) ([]string, error) {
	base := filepath.Join(cfg.SourceRoot(d), cmake.SourceFiles)
	fsys := os.DirFS(filepath.Join(root, base))

	matches, err := doublestar.Glob(fsys, globPattern(cfg.Lang(d)), doublestar.WithFilesOnly())
	if err != nil {
		return nil, err
	}

	files := make([]string, len(matches))
	for i, m := range matches {
		files[i] = filepath.Join(base, filepath.FromSlash(m))
	}
	return files, nil
}
