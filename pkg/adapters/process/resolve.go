package process

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
)

// defaultPathExt mirrors the cmd.exe default when PATHEXT is unset.
const defaultPathExt = ".COM;.EXE;.BAT;.CMD"

// Resolve finds the executable for name.
// Candidates in dir win over PATH, matching how a shell treats the current directory.
func Resolve(name, dir string) (string, error) {
	for _, candidate := range candidates(name) {
		path := filepath.Join(dir, candidate)
		if isFile(path) {
			abs, err := filepath.Abs(path)
			if err != nil {
				return "", err
			}
			return abs, nil
		}
	}

	path, err := exec.LookPath(name)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	return path, nil
}

// candidates lists the file names that may implement a bare command name.
func candidates(name string) []string {
	if runtime.GOOS != "windows" {
		return []string{name, name + ".sh"}
	}

	exts := os.Getenv("PATHEXT")
	if exts == "" {
		exts = defaultPathExt
	}

	var out []string
	if filepath.Ext(name) != "" {
		out = append(out, name)
	}
	for _, ext := range strings.Split(exts, ";") {
		if ext = strings.TrimSpace(ext); ext != "" {
			out = append(out, name+strings.ToLower(ext))
		}
	}
	return out
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
