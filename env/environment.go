/*
File    : lumen/env/environment.go
Author  : Arjun Kumar
*/

// Package env implements the environment chain: a singly linked list of
// lexical scope frames supporting plain `var` declarations, with no
// const/let distinction, no type tracking, and no closure capture.
package env

import "github.com/arjunvk/lumen/value"

// Environment is one scope frame: a name-to-value mapping plus an
// optional link to the enclosing frame. A nil Enclosing marks the
// global frame.
type Environment struct {
	values    map[string]value.Value
	Enclosing *Environment
}

// New creates a frame enclosed by enclosing, or a fresh global frame
// when enclosing is nil.
func New(enclosing *Environment) *Environment {
	return &Environment{values: make(map[string]value.Value), Enclosing: enclosing}
}

// Define binds name to v in this frame only. Redefinition in the same
// frame silently overwrites the prior binding.
func (e *Environment) Define(name string, v value.Value) {
	e.values[name] = v
}

// Get resolves name by walking outward from this frame. ok is false if
// no frame in the chain defines name.
func (e *Environment) Get(name string) (value.Value, bool) {
	if v, ok := e.values[name]; ok {
		return v, true
	}
	if e.Enclosing != nil {
		return e.Enclosing.Get(name)
	}
	return nil, false
}

// Assign mutates the first binding for name found by walking outward
// from this frame, leaving every other frame untouched. ok is false if
// no frame defines name — assignment never creates a new binding.
func (e *Environment) Assign(name string, v value.Value) bool {
	if _, ok := e.values[name]; ok {
		e.values[name] = v
		return true
	}
	if e.Enclosing != nil {
		return e.Enclosing.Assign(name, v)
	}
	return false
}
