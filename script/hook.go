// Package script runs a tengo hook that can override style properties
// per tick, letting a sheet author animate the enable flag or frame
// rate without touching Go code.
package script

import (
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
)

// The hook script defines overrides(tick) returning a map of class
// name to property overrides. The dispatch glue feeds the tick in and
// the result out through globals.
const hookDispatchScript = `
__out = overrides(__tick)
`

// Hook is a compiled style-override script.
type Hook struct {
	compiled *tengo.Compiled
}

func Compile(src []byte) (*Hook, error) {
	full := string(src) + "\n" + hookDispatchScript
	s := tengo.NewScript([]byte(full))
	if err := s.Add("__tick", 0); err != nil {
		return nil, fmt.Errorf("script: add tick global: %w", err)
	}
	if err := s.Add("__out", map[string]any{}); err != nil {
		return nil, fmt.Errorf("script: add out global: %w", err)
	}
	s.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := s.Compile()
	if err != nil {
		return nil, fmt.Errorf("script: compile hook: %w", err)
	}
	return &Hook{compiled: compiled}, nil
}

// Overrides evaluates the hook for one tick. The result maps class
// names to property overrides to apply on top of the computed style.
func (h *Hook) Overrides(tick int) (map[string]map[string]any, error) {
	if err := h.compiled.Set("__tick", tick); err != nil {
		return nil, fmt.Errorf("script: set tick: %w", err)
	}
	if err := h.compiled.Run(); err != nil {
		return nil, fmt.Errorf("script: run hook: %w", err)
	}

	raw := h.compiled.Get("__out").Map()
	out := make(map[string]map[string]any, len(raw))
	for class, v := range raw {
		props, ok := v.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("script: overrides for %q are not a map", class)
		}
		out[class] = props
	}
	return out, nil
}
