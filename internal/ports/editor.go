package ports

import "os/exec"

// EditorOpener opens files in an external editor.
type EditorOpener interface {
	// OpenFile opens the file in the user's preferred editor,
	// resolved from $EDITOR with common fallbacks.
	OpenFile(path string) error

	// Command returns the exec.Cmd that would open the file,
	// without running it.
	Command(path string) (*exec.Cmd, error)
}
