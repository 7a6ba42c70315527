package style

import "math"

// Computed is the merged custom-property view for one element: class
// properties from the sheet with later classes winning, plus a mutable
// override layer fed by script hooks or the host app.
type Computed struct {
	props     map[string]any
	overrides map[string]any
}

// Computed merges the given classes into a property view. Unknown
// class names are skipped.
func (s *Sheet) Computed(classes ...string) *Computed {
	props := make(map[string]any)
	for _, name := range classes {
		cl, ok := s.Classes[name]
		if !ok {
			continue
		}
		for k, v := range cl.Props {
			props[k] = v
		}
	}
	return &Computed{props: props}
}

// SetOverride shadows a sheet property until ClearOverrides.
func (c *Computed) SetOverride(name string, value any) {
	if c.overrides == nil {
		c.overrides = make(map[string]any)
	}
	c.overrides[name] = value
}

func (c *Computed) ClearOverrides() {
	c.overrides = nil
}

func (c *Computed) lookup(name string) (any, bool) {
	if v, ok := c.overrides[name]; ok {
		return v, true
	}
	v, ok := c.props[name]
	return v, ok
}

// GetString returns the named property when present and string-typed.
func (c *Computed) GetString(name string) (string, bool) {
	v, ok := c.lookup(name)
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// GetInt returns the named property when present and integral. YAML
// and tengo both hand back widened numeric types, so the usual int
// kinds are coerced; fractional floats report absent.
func (c *Computed) GetInt(name string) (int, bool) {
	v, ok := c.lookup(name)
	if !ok {
		return 0, false
	}
	switch n := v.(type) {
	case int:
		return n, true
	case int32:
		return int(n), true
	case int64:
		return int(n), true
	case uint64:
		return int(n), true
	case float64:
		if n == math.Trunc(n) {
			return int(n), true
		}
	}
	return 0, false
}
