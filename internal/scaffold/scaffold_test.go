package scaffold

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/qobs-build/cstart/internal/args"
	"github.com/qobs-build/cstart/internal/project"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, tokens ...string) *project.Config {
	t.Helper()
	cfg, err := args.Parse(tokens)
	require.NoError(t, err)
	return cfg
}

func readFile(t *testing.T, elem ...string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(elem...))
	require.NoError(t, err)
	return string(data)
}

func TestRun_Defaults(t *testing.T) {
	root := t.TempDir()
	report, err := Run(root, parse(t), project.BuiltinDefaults)
	require.NoError(t, err)

	assert.Equal(t, []string{
		"src",
		filepath.Join("src", "Source Files"),
		filepath.Join("src", "Header Files"),
	}, report.Dirs)
	assert.Equal(t, []string{filepath.Join("src", "Source Files", "main.cpp")}, report.Files)

	assert.Equal(t, mainCXX, readFile(t, root, "src", "Source Files", "main.cpp"))
	assert.NoDirExists(t, filepath.Join(root, "src", "Resource Files"))
	assert.NoFileExists(t, filepath.Join(root, "src", "Source Files", "main.c"))
}

func TestRun_CWithResources(t *testing.T) {
	root := t.TempDir()
	report, err := Run(root, parse(t, "--language", "c", "--copy-res", "-s", "code"), project.BuiltinDefaults)
	require.NoError(t, err)

	assert.Len(t, report.Dirs, 4)
	assert.DirExists(t, filepath.Join(root, "code", "Resource Files"))
	assert.DirExists(t, filepath.Join(root, "code", "Header Files"))
	assert.Equal(t, mainC, readFile(t, root, "code", "Source Files", "main.c"))
	assert.NoDirExists(t, filepath.Join(root, "src"))
}

func TestRun_Idempotent(t *testing.T) {
	root := t.TempDir()
	cfg := parse(t, "--copy-res")

	_, err := Run(root, cfg, project.BuiltinDefaults)
	require.NoError(t, err)

	mainPath := filepath.Join(root, "src", "Source Files", "main.cpp")
	require.NoError(t, os.WriteFile(mainPath, []byte("int main() { return 42; }\n"), 0o644))

	report, err := Run(root, cfg, project.BuiltinDefaults)
	require.NoError(t, err)
	assert.Empty(t, report.Dirs)
	assert.Empty(t, report.Files)
	assert.Equal(t, "int main() { return 42; }\n", readFile(t, mainPath))
}

func TestRun_ExistingSourceRoot(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "src", "Header Files"), 0o755))

	report, err := Run(root, parse(t), project.BuiltinDefaults)
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join("src", "Source Files")}, report.Dirs)
}

func TestRun_SourceRootIsFile(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "src"), nil, 0o644))

	_, err := Run(root, parse(t), project.BuiltinDefaults)
	assert.Error(t, err)
}

func TestSources(t *testing.T) {
	root := t.TempDir()
	cfg := parse(t)
	_, err := Run(root, cfg, project.BuiltinDefaults)
	require.NoError(t, err)

	nested := filepath.Join(root, "src", "Source Files", "engine")
	require.NoError(t, os.MkdirAll(nested, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(nested, "render.c"), nil, 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(nested, "notes.txt"), nil, 0o644))

	files, err := Sources(root, cfg, project.BuiltinDefaults)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{
		filepath.Join("src", "Source Files", "main.cpp"),
		filepath.Join("src", "Source Files", "engine", "render.c"),
	}, files)

	files, err = Sources(root, parse(t, "--language", "c"), project.BuiltinDefaults)
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join("src", "Source Files", "engine", "render.c")}, files)
}

func TestInitGit(t *testing.T) {
	root := t.TempDir()
	cfg := parse(t, "--git", "-o", "out")
	report := new(Report)

	require.NoError(t, InitGit(root, cfg, project.BuiltinDefaults, report))
	assert.DirExists(t, filepath.Join(root, ".git"))
	assert.Equal(t, []string{".git"}, report.Dirs)
	assert.Equal(t, []string{".gitignore"}, report.Files)
	assert.Equal(t, "build/\nout/\n", readFile(t, root, ".gitignore"))

	report = new(Report)
	require.NoError(t, InitGit(root, cfg, project.BuiltinDefaults, report))
	assert.Empty(t, report.Dirs)
	assert.Empty(t, report.Files)
}
