package builder_test

import (
	"testing"

	"go.uber.org/goleak"
)

// TestMain runs goleak verification for all tests in the package.
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}
