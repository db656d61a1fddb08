package artifact

import (
	"fmt"
	"os/exec"
	"runtime"
)

// viewerCommand returns the platform command that opens a file with its
// default application.
func viewerCommand(path string) *exec.Cmd {
	switch runtime.GOOS {
	case "darwin":
		return exec.Command("open", path)
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", path)
	default:
		return exec.Command("xdg-open", path)
	}
}

// launchViewer is swapped out in tests to avoid spawning real processes.
var launchViewer = func(path string) error {
	return viewerCommand(path).Start()
}

// OpenViewer opens a stored artifact with the OS default application. It
// fails with ErrNotFound before issuing any OS call when the artifact is
// absent. The viewer process is started detached; its success is not awaited.
func (s *Store) OpenViewer(name string) error {
	if err := ValidName(name); err != nil {
		return err
	}
	if !s.Exists(name) {
		return fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	if err := launchViewer(s.Path(name)); err != nil {
		return fmt.Errorf("artifact: opening viewer for %s: %w", name, err)
	}
	return nil
}
