package styles

import "testing"

// EmbeddedForTest exposes the embedded theme to the external test package.
func EmbeddedForTest(t *testing.T) []byte {
	t.Helper()
	return embeddedStyles
}
