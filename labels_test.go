package mmpose

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadLabels(t *testing.T) {

	file := filepath.Join(t.TempDir(), "labels.txt")

	// blank lines are skipped, surrounding whitespace is trimmed
	err := os.WriteFile(file, []byte("person\ncat\n\n  dog \n\n"), 0644)

	if err != nil {
		t.Fatalf("error writing test file: %v", err)
	}

	labels, err := LoadLabels(file)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"person", "cat", "dog"}

	if len(labels) != len(want) {
		t.Fatalf("got %d labels, want %d", len(labels), len(want))
	}

	for i, label := range want {
		if labels[i] != label {
			t.Errorf("label %d: got %q, want %q", i, labels[i], label)
		}
	}
}

func TestLoadLabelsMissingFile(t *testing.T) {

	_, err := LoadLabels("no-such-file.txt")

	if err == nil {
		t.Error("expected error for missing labels file")
	}
}
