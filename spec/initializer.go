package spec

import "fmt"

// Registrar adds cases to a spec.
type Registrar func(*Spec)

// Register applies a heterogeneous set of registration entries to s in
// order. Each entry is either a Registrar (or a bare func(*Spec)) or a
// slice of further entries, which is flattened recursively. Anything
// else is an error.
func Register(s *Spec, entries ...any) error {
	for _, e := range entries {
		switch v := e.(type) {
		case Registrar:
			v(s)
		case func(*Spec):
			v(s)
		case []Registrar:
			for _, r := range v {
				r(s)
			}
		case []func(*Spec):
			for _, r := range v {
				r(s)
			}
		case []any:
			if err := Register(s, v...); err != nil {
				return err
			}
		default:
			return fmt.Errorf("spec: register entry must be a registrar or a slice of registrars, got %T", e)
		}
	}
	return nil
}
