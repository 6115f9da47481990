package harness

import (
	"fmt"
	"os"
)

// PreconditionError reports a missing directory or executable. Nothing
// has been run when it is returned.
type PreconditionError struct {
	Msg string
}

func (e *PreconditionError) Error() string {
	return e.Msg
}

// Dir is a directory that must exist before a run. Name is what the
// error message shows, Path is what gets checked.
type Dir struct {
	Name string
	Path string
}

// Preflight checks the directories in order, then the compile executable
func Preflight(dirs []Dir, compilePath string) error {
	for _, d := range dirs {
		info, err := os.Stat(d.Path)
		if err != nil || !info.IsDir() {
			return &PreconditionError{Msg: fmt.Sprintf("%s directory not found", d.Name)}
		}
	}

	info, err := os.Stat(compilePath)
	if err != nil || !info.Mode().IsRegular() || info.Mode().Perm()&0111 == 0 {
		return &PreconditionError{Msg: "'compile' executable not found or not executable"}
	}
	return nil
}
