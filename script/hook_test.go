package script

import "testing"

const testHook = `
overrides := func(tick) {
	enabled := 1
	if tick % 4 < 2 {
		enabled = 0
	}
	return {
		"pulse-tile": {
			enabled: enabled,
			fps: 12
		}
	}
}
`

func TestHookOverrides(t *testing.T) {
	hook, err := Compile([]byte(testHook))
	if err != nil {
		t.Fatalf("compile: %v", err)
	}

	cases := []struct {
		tick        int
		wantEnabled int64
	}{
		{0, 0},
		{1, 0},
		{2, 1},
		{3, 1},
		{4, 0},
	}

	for _, c := range cases {
		out, err := hook.Overrides(c.tick)
		if err != nil {
			t.Fatalf("overrides(%d): %v", c.tick, err)
		}
		props, ok := out["pulse-tile"]
		if !ok {
			t.Fatalf("overrides(%d): missing class entry: %v", c.tick, out)
		}
		if got := props["enabled"]; got != c.wantEnabled {
			t.Fatalf("overrides(%d): enabled = %v, want %d", c.tick, got, c.wantEnabled)
		}
		if got := props["fps"]; got != int64(12) {
			t.Fatalf("overrides(%d): fps = %v, want 12", c.tick, got)
		}
	}
}

func TestHookCompileError(t *testing.T) {
	if _, err := Compile([]byte("overrides := func(")); err == nil {
		t.Fatalf("expected compile error")
	}
}

func TestHookRejectsNonMapOverrides(t *testing.T) {
	hook, err := Compile([]byte(`overrides := func(tick) { return { "c": 5 } }`))
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	if _, err := hook.Overrides(0); err == nil {
		t.Fatalf("expected error for non-map class overrides")
	}
}
