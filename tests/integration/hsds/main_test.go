//go:build integration
// +build integration

package hsds

import (
	"os"
	"testing"
)

// TestMain is the entry point for HSDS integration tests. The tests
// start a real HSDS container via testcontainers, so Docker must be
// available.
func TestMain(m *testing.M) {
	os.Exit(m.Run())
}
