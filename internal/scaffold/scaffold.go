// Package scaffold creates the source tree a generated CMakeLists.txt expects.
// Nothing that already exists is touched.
package scaffold

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/qobs-build/cstart/internal/cmake"
	"github.com/qobs-build/cstart/internal/project"
)

const mainC = `#include <stdio.h>

int main() {
    printf("Hello, world!\n");
    return 0;
}
`

const mainCXX = `#include <iostream>

int main() {
    std::cout << "Hello, world!\n";
    return 0;
}
`

// Report lists the paths created by Run, relative to its root
type Report struct {
	Dirs  []string
	Files []string
}

func exists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	return false, err
}

// mkdir creates root/rel unless it exists and returns whether it did
func mkdir(root, rel string) (bool, error) {
	path := filepath.Join(root, rel)
	ok, err := exists(path)
	if err != nil || ok {
		return false, err
	}
	if err := os.MkdirAll(path, 0o755); err != nil {
		return false, fmt.Errorf("mkdir %s: %w", path, err)
	}
	return true, nil
}

// writefile writes content to root/rel unless it exists and returns whether it did
func writefile(content, root, rel string) (bool, error) {
	path := filepath.Join(root, rel)
	ok, err := exists(path)
	if err != nil || ok {
		return false, err
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return false, fmt.Errorf("create file %s: %w", path, err)
	}
	return true, nil
}

// MainFile returns the placeholder file name and its content for a language
func MainFile(lang project.Language) (string, string) {
	if lang == project.LanguageC {
		return "main.c", mainC
	}
	return "main.cpp", mainCXX
}

// Dirs returns the directories the manifest refers to, relative to the project root
func Dirs(cfg *project.Config, d project.Defaults) []string {
	src := cfg.SourceRoot(d)
	dirs := []string{
		src,
		filepath.Join(src, cmake.SourceFiles),
		filepath.Join(src, cmake.HeaderFiles),
	}
	if cfg.CopyRes(d) {
		dirs = append(dirs, filepath.Join(src, cmake.ResourceFiles))
	}
	return dirs
}

// Run creates the source directories and the placeholder entry point under root
func Run(root string, cfg *project.Config, d project.Defaults) (*Report, error) {
	report := new(Report)

	for _, dir := range Dirs(cfg, d) {
		created, err := mkdir(root, dir)
		if err != nil {
			return report, err
		}
		if created {
			report.Dirs = append(report.Dirs, dir)
		}
	}

	name, content := MainFile(cfg.Lang(d))
	rel := filepath.Join(cfg.SourceRoot(d), cmake.SourceFiles, name)
	created, err := writefile(content, root, rel)
	if err != nil {
		return report, err
	}
	if created {
		report.Files = append(report.Files, rel)
	}

	return report, nil
}
