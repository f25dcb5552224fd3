package tmux

import "fmt"

// ShowBuffer returns the contents of the most recent paste buffer.
func ShowBuffer(socketPath string) (string, error) {
	args := append(baseArgs(socketPath), "show-buffer")
	output, err := runExecCommand("tmux", args...).Output()
	if err != nil {
		return "", fmt.Errorf("show-buffer: %w", err)
	}
	return normaliseNewlines(string(output)), nil
}
