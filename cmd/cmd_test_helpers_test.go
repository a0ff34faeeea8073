package cmd

import (
	"os"
	"path/filepath"
	"testing"
)

const fourPeopleSpec = `
people: [A, B, C, D]
num-groups: 2
`

// writeSpecFile writes content to name in a temp dir and returns its path.
func writeSpecFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}
