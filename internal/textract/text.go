package textract

import (
	"fmt"
	"os"
)

// fromTextFile reads a plain-text document verbatim.
func fromTextFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read file: %w", err)
	}
	return string(data), nil
}
