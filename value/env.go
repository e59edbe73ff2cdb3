package value

import "fmt"

// Env is a lexically-scoped map from name to Value with an optional
// parent, grounded directly in original_source/graftlib/env.py.
//
// Open question (spec.md section 9) decided: Get on a miss inserts
// Number(0) into the *current* scope as a side effect ("default-to-
// zero" auto-vivification), matching env.py's
// `self.items[name] = NumberValue(0.0)`. Any name a program reads
// before writing it therefore reads as 0.
type Env struct {
	parent *Env
	items  map[string]Value
}

// NewEnv creates a root scope with no parent.
func NewEnv() *Env {
	return &Env{items: map[string]Value{}}
}

// MakeChild creates a new scope whose parent is e. Used for function
// invocation (spec.md section 4.3) and for the program scope under
// cell's built-ins; forking uses Clone instead.
func (e *Env) MakeChild() *Env {
	return &Env{parent: e, items: map[string]Value{}}
}

// Get walks the parent chain for name. On a miss anywhere in the
// chain, it vivifies Number(0) in e (the scope Get was called on, not
// the scope where the miss bottomed out) and returns it.
func (e *Env) Get(name string) Value {
	for env := e; env != nil; env = env.parent {
		if v, ok := env.items[name]; ok {
			return v
		}
	}
	e.items[name] = Number(0)
	return e.items[name]
}

// Has reports whether name is bound anywhere in the chain, without
// the auto-vivification side effect of Get.
func (e *Env) Has(name string) bool {
	for env := e; env != nil; env = env.parent {
		if _, ok := env.items[name]; ok {
			return true
		}
	}
	return false
}

// HasLocal reports whether name is bound in e itself, ignoring
// ancestors. Backs cell's "not allowed to re-assign" check
// (eval_cell.py: `if var_name in env.local_items()`).
func (e *Env) HasLocal(name string) bool {
	_, ok := e.items[name]
	return ok
}

// Set writes name into e's own scope, shadowing any ancestor binding.
func (e *Env) Set(name string, v Value) {
	e.items[name] = v
}

// SetNew writes name into e's own scope, failing if e already has a
// local binding for it: the same single-assignment rule that cell's
// Assignment evaluation applies through HasLocal and Set
// (eval_cell.py's AssignmentTree handling).
func (e *Env) SetNew(name string, v Value) error {
	if e.HasLocal(name) {
		return fmt.Errorf("value: %q is already assigned in this scope", name)
	}
	e.items[name] = v
	return nil
}

// Clone deep-copies the entire chain: e and every ancestor get fresh,
// independent item maps. Used when a running program forks (spec.md
// section 4.4, "Fork semantics": "env is deep-cloned").
func (e *Env) Clone() *Env {
	if e == nil {
		return nil
	}
	clone := &Env{parent: e.parent.Clone(), items: make(map[string]Value, len(e.items))}
	for k, v := range e.items {
		clone.items[k] = v
	}
	return clone
}
