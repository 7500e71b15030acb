package mmpose

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// LoadLabels reads the text drawn on bounding box label tags from the
// given file, one label per line.  Blank lines are skipped so class
// lists with spacing between groups load cleanly.
func LoadLabels(file string) ([]string, error) {

	f, err := os.Open(file)

	if err != nil {
		return nil, fmt.Errorf("error opening file: %w", err)
	}

	defer f.Close()

	scanner := bufio.NewScanner(f)

	var labels []string

	// read and trim each line
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		if line == "" {
			continue
		}

		labels = append(labels, line)
	}

	// check for errors during scanning
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading file: %w", err)
	}

	return labels, nil
}
