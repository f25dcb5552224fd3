package tmux

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// CaptureLines bounds how much scrollback ActivePaneContents reads.
const CaptureLines = 200

// ErrNoActivePane is returned when tmux reports no active pane.
var ErrNoActivePane = errors.New("no active pane")

// ActivePaneID returns the id of the pane the popup was opened over. When
// $TMUX_PANE is set it is used as the display-message target.
func ActivePaneID(socketPath string) (string, error) {
	args := append(baseArgs(socketPath), "display-message", "-p")
	if target := strings.TrimSpace(os.Getenv("TMUX_PANE")); target != "" {
		args = append(args, "-t", target)
	}
	args = append(args, "#{pane_id}")
	output, err := runExecCommand("tmux", args...).Output()
	if err != nil {
		return "", fmt.Errorf("display-message: %w", err)
	}
	id := strings.TrimSpace(string(output))
	if id == "" {
		return "", ErrNoActivePane
	}
	return id, nil
}

// CapturePane returns the joined visible text of a pane plus up to
// CaptureLines lines of scrollback.
func CapturePane(socketPath, pane string) (string, error) {
	target := strings.TrimSpace(pane)
	if target == "" {
		return "", fmt.Errorf("pane target required")
	}
	args := append(baseArgs(socketPath), "capture-pane", "-p", "-J", "-S", fmt.Sprintf("-%d", CaptureLines), "-t", target)
	output, err := runExecCommand("tmux", args...).Output()
	if err != nil {
		return "", fmt.Errorf("capture-pane %s: %w", target, err)
	}
	return normaliseNewlines(string(output)), nil
}

// ActivePaneContents captures the active pane.
func ActivePaneContents(socketPath string) (string, error) {
	id, err := ActivePaneID(socketPath)
	if err != nil {
		return "", err
	}
	return CapturePane(socketPath, id)
}

func normaliseNewlines(text string) string {
	normalised := strings.ReplaceAll(text, "\r\n", "\n")
	normalised = strings.ReplaceAll(normalised, "\r", "\n")
	return strings.TrimRight(normalised, "\n")
}
