package checkpoint

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Checkpoints make a long batch run restartable at row granularity. The
// file holds a single integer: the highest 1-based row index already
// processed. A crash mid-row re-processes that row on restart, so the
// pipeline is at-least-once, not exactly-once.

// Read returns the last processed row index, or 0 when no checkpoint
// file exists yet.
func Read(path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to read checkpoint %s: %w", path, err)
	}

	value, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		return 0, fmt.Errorf("malformed checkpoint %s: %w", path, err)
	}
	return value, nil
}

// Write persists the given row index, overwriting any prior value.
func Write(path string, row int) error {
	if err := os.WriteFile(path, []byte(strconv.Itoa(row)), 0o644); err != nil {
		return fmt.Errorf("failed to write checkpoint %s: %w", path, err)
	}
	return nil
}
