// Package testutil holds shared test helpers.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// AssertGolden compares output against the named file under the package's
// testdata directory. Run the tests with UPDATE_GOLDEN set to rewrite the
// expectations from current output.
func AssertGolden(t *testing.T, goldenName, output string) {
	t.Helper()
	path := filepath.Join("testdata", goldenName)
	if os.Getenv("UPDATE_GOLDEN") != "" {
		if err := os.WriteFile(path, []byte(output), 0o644); err != nil {
			t.Fatalf("failed to update golden: %v", err)
		}
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read golden %s: %v", goldenName, err)
	}
	if string(data) != output {
		t.Fatalf("output mismatch for %s\nexpected:\n%s\nactual:\n%s", goldenName, string(data), output)
	}
}
