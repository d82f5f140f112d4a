package editor

import (
	"fmt"
	"os"
	"os/exec"

	"diarist/internal/ports"
)

// Opener implements ports.EditorOpener using $EDITOR with fallbacks.
type Opener struct{}

var _ ports.EditorOpener = (*Opener)(nil)

// NewOpener creates an editor opener.
func NewOpener() *Opener {
	return &Opener{}
}

// OpenFile opens the file in the user's preferred editor and waits
// for the editor to exit.
func (o *Opener) OpenFile(path string) error {
	cmd, err := o.Command(path)
	if err != nil {
		return err
	}
	return cmd.Run()
}

// Command returns the exec.Cmd that would open the file, wired to
// the current terminal.
func (o *Opener) Command(path string) (*exec.Cmd, error) {
	editor := findEditor()
	if editor == "" {
		return nil, fmt.Errorf("no editor found: set $EDITOR environment variable")
	}

	cmd := exec.Command(editor, path)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd, nil
}

// findEditor resolves the editor: $EDITOR, then $VISUAL, then common
// editors on PATH.
func findEditor() string {
	if editor := os.Getenv("EDITOR"); editor != "" {
		return editor
	}
	if visual := os.Getenv("VISUAL"); visual != "" {
		return visual
	}
	for _, editor := range []string{"nvim", "vim", "vi", "nano", "code"} {
		if path, err := exec.LookPath(editor); err == nil {
			return path
		}
	}
	return ""
}
