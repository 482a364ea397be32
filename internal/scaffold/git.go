package scaffold

import (
	"errors"
	"fmt"
	"path"

	"github.com/go-git/go-git/v6"
	"github.com/qobs-build/cstart/internal/project"
)

const gitignoreFilename = ".gitignore"

func gitignore(outputDir string) string {
	return "build/\n" + path.Clean(outputDir) + "/\n"
}

// InitGit makes root a git repository if it is not one yet and writes a
// .gitignore for the build output if none exists. Created paths are added to report.
func InitGit(root string, cfg *project.Config, d project.Defaults, report *Report) error {
	_, err := git.PlainOpen(root)
	switch {
	case errors.Is(err, git.ErrRepositoryNotExists):
		if _, err := git.PlainInit(root, false); err != nil {
			return fmt.Errorf("git init %s: %w", root, err)
		}
		report.Dirs = append(report.Dirs, ".git")
	case err != nil:
		return fmt.Errorf("open git repository %s: %w", root, err)
	}

	created, err := writefile(gitignore(cfg.OutputRoot(d)), root, gitignoreFilename)
	if err != nil {
		return err
	}
	if created {
		report.Files = append(report.Files, gitignoreFilename)
	}
	return nil
}
