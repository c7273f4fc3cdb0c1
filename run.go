package spritelint

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
)

var separator = strings.Repeat("-", 70)

// RepoRoot returns the absolute repository root for a program file: the parent
// of the directory that contains it.
func RepoRoot(program string) (string, error) {
	return filepath.Abs(filepath.Join(filepath.Dir(program), ".."))
}

// DefaultRepoRoot returns RepoRoot for the running executable.
func DefaultRepoRoot() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	return RepoRoot(exe)
}

// Run checks every file in files, found under spriteRoot, and writes the
// report to w. It returns true only if every file exists and passes. An error
// means a sheet could not be decoded and the run was abandoned part way.
func (v *Validator) Run(w io.Writer, files []string, repoRoot, spriteRoot string) (bool, error) {
	fmt.Fprintf(w, "Repo root: %s\n", repoRoot)
	fmt.Fprintf(w, "Sprite root: %s\n", spriteRoot)
	fmt.Fprintln(w, separator)

	return v.report(w, files, spriteRoot)
}

// CheckFiles is Run without the header, for arbitrary paths. Each line is
// labelled with the path as given.
func (v *Validator) CheckFiles(w io.Writer, paths []string) (bool, error) {
	return v.report(w, paths, "")
}

func (v *Validator) report(w io.Writer, files []string, dir string) (bool, error) {
	pass := true
	for _, file := range files {
		path := filepath.Join(dir, file)

		if _, err := os.Stat(path); err != nil {
			v.logger.Debug("sheet not found", zap.String("path", path), zap.Error(err))
			fmt.Fprintln(w, missing().Line(file))
			pass = false
			continue
		}

		r, err := v.Check(path)
		if err != nil {
			return false, err
		}

		fmt.Fprintln(w, r.Line(file))
		if !r.Passed() {
			pass = false
		}
	}

	v.logger.Info("validation finished", zap.Int("files", len(files)), zap.Bool("passed", pass))

	return pass, nil
}
