package arrident_test

import (
	"testing"

	"github.com/arr-tools/arrident"
)

func TestDeriveKey_Deterministic(t *testing.T) {
	t.Parallel()

	a := arrident.DeriveKey("http://localhost:8686", "lidarr-e2e", "matrix-a")
	b := arrident.DeriveKey("http://localhost:8686", "lidarr-e2e", "matrix-a")

	if a != b {
		t.Errorf("DeriveKey not deterministic: %q vs %q", a, b)
	}
	if len(a) != 16 {
		t.Errorf("DeriveKey length = %d, want 16", len(a))
	}
}

func TestDeriveKey_SaltIsCaseInsensitive(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		saltA, saltB string
	}{
		"upper vs lower": {saltA: "MATRIX-A", saltB: "matrix-a"},
		"mixed case":     {saltA: "Matrix-A", saltB: "mAtRiX-a"},
		"both empty":     {saltA: "", saltB: ""},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			a := arrident.DeriveKey("http://localhost:8686", "lidarr-e2e", tc.saltA)
			b := arrident.DeriveKey("http://localhost:8686", "lidarr-e2e", tc.saltB)
			if a != b {
				t.Errorf("keys differ for salts %q and %q: %q vs %q", tc.saltA, tc.saltB, a, b)
			}
		})
	}
}

func TestDeriveKey_DistinctInputsProduceDistinctKeys(t *testing.T) {
	t.Parallel()

	base := arrident.DeriveKey("http://localhost:8686", "lidarr-e2e", "matrix-a")

	tests := map[string]string{
		"different url":        arrident.DeriveKey("http://localhost:8687", "lidarr-e2e", "matrix-a"),
		"different identifier": arrident.DeriveKey("http://localhost:8686", "lidarr-e2e-2", "matrix-a"),
		"different salt":       arrident.DeriveKey("http://localhost:8686", "lidarr-e2e", "matrix-b"),
		"empty salt":           arrident.DeriveKey("http://localhost:8686", "lidarr-e2e", ""),
	}

	for name, got := range tests {
		if got == base {
			t.Errorf("%s: key %q collides with base key", name, got)
		}
	}
}

// Field boundaries must participate in the hash: moving a character between
// the URL and the identifier must change the key.
func TestDeriveKey_FieldBoundariesMatter(t *testing.T) {
	t.Parallel()

	a := arrident.DeriveKey("http://host/ab", "c", "")
	b := arrident.DeriveKey("http://host/a", "bc", "")
	if a == b {
		t.Error("keys collide across field boundaries")
	}
}

func TestDeriveKey_PanicsOnMissingRequiredArgs(t *testing.T) {
	t.Parallel()
	runPanicTests(t, []panicTestCase{
		{
			name:     "empty url",
			panics:   true,
			panicMsg: "arrident: target URL must not be empty",
			fn:       func() { arrident.DeriveKey("", "lidarr-e2e", "") },
		},
		{
			name:     "empty identifier",
			panics:   true,
			panicMsg: "arrident: target identifier must not be empty",
			fn:       func() { arrident.DeriveKey("http://localhost:8686", "", "") },
		},
		{name: "empty salt is allowed", fn: func() { arrident.DeriveKey("http://localhost:8686", "lidarr-e2e", "") }},
	})
}
