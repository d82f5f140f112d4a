package obsidian

import (
	"fmt"
	"net/url"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"diarist/internal/ports"
)

// Opener implements ports.ObsidianOpener through the obsidian:// URI
// scheme. Obsidian resolves vaults by their directory name.
type Opener struct {
	vaultPath string
	vaultName string
}

var _ ports.ObsidianOpener = (*Opener)(nil)

// NewOpener creates an opener for the vault at vaultPath.
func NewOpener(vaultPath string) *Opener {
	return &Opener{
		vaultPath: vaultPath,
		vaultName: filepath.Base(vaultPath),
	}
}

// OpenFile opens the file in Obsidian.
func (o *Opener) OpenFile(path string) error {
	uri, err := o.BuildURI(path)
	if err != nil {
		return err
	}
	return openURI(uri)
}

// BuildURI constructs the obsidian://open URI for a file path inside
// the vault.
func (o *Opener) BuildURI(path string) (string, error) {
	rel, err := filepath.Rel(o.vaultPath, path)
	if err != nil {
		return "", fmt.Errorf("resolving vault-relative path: %w", err)
	}
	if strings.HasPrefix(rel, "..") {
		return "", fmt.Errorf("file is outside the vault: %s", path)
	}

	// Obsidian expects forward slashes regardless of platform.
	rel = filepath.ToSlash(rel)

	return fmt.Sprintf("obsidian://open?vault=%s&file=%s",
		url.QueryEscape(o.vaultName),
		url.QueryEscape(rel),
	), nil
}

func openURI(uri string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", uri)
	case "linux":
		cmd = exec.Command("xdg-open", uri)
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", "", uri)
	default:
		return fmt.Errorf("unsupported operating system: %s", runtime.GOOS)
	}
	return cmd.Run()
}
