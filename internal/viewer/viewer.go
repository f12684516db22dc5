// Package viewer opens a PDF in the user's preferred reader.
package viewer

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"
)

// Open launches the configured PDF reader on the file and returns without
// waiting for the viewer to exit. reader "" or "system" uses the platform
// default opener.
func Open(path, reader string) error {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("file does not exist: %s", path)
		}
		return fmt.Errorf("checking file: %w", err)
	}

	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = darwinCommand(path, reader)
	case "linux":
		cmd = linuxCommand(path, reader)
	default:
		return fmt.Errorf("unsupported platform: %s", runtime.GOOS)
	}

	return cmd.Start()
}

func darwinCommand(path, reader string) *exec.Cmd {
	switch reader {
	case "skim":
		return exec.Command("open", "-a", "Skim", path)
	case "preview":
		return exec.Command("open", "-a", "Preview", path)
	default: // "system"
		return exec.Command("open", path)
	}
}

func linuxCommand(path, reader string) *exec.Cmd {
	switch reader {
	case "zathura":
		return exec.Command("zathura", path)
	case "evince":
		return exec.Command("evince", path)
	case "okular":
		return exec.Command("okular", path)
	default: // "system"
		return exec.Command("xdg-open", path)
	}
}
