// Copyright (c) matt-FFFFFF 2025. All rights reserved.
// SPDX-License-Identifier: MIT

package manifest

import (
	"errors"
	"fmt"
	"maps"
	"slices"
)

// ErrScriptNotFound is matched by NotFoundError.
var ErrScriptNotFound = errors.New("script not found")

// NotFoundError is returned by ScriptTable.Resolve when the requested name is not declared.
type NotFoundError struct {
	Name string
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("script %q not found", e.Name)
}

// Unwrap returns ErrScriptNotFound so callers can use errors.Is.
func (e *NotFoundError) Unwrap() error { return ErrScriptNotFound }

// ScriptTable maps script names to their shell command bodies. It is read-only.
type ScriptTable struct {
	scripts map[string]string
	section string
}

// NewScriptTable creates a ScriptTable from a copy of scripts.
func NewScriptTable(scripts map[string]string) ScriptTable {
	if scripts == nil {
		scripts = map[string]string{}
	}

	return ScriptTable{scripts: maps.Clone(scripts)}
}

// Resolve returns the body of the named script, unchanged.
func (t ScriptTable) Resolve(name string) (string, error) {
	body, ok := t.scripts[name]
	if !ok {
		return "", &NotFoundError{Name: name}
	}

	return body, nil
}

// Names returns every declared script name in sorted order.
func (t ScriptTable) Names() []string {
	return slices.Sorted(maps.Keys(t.scripts))
}

// Len returns the number of declared scripts.
func (t ScriptTable) Len() int {
	return len(t.scripts)
}

// Section returns the top-level table the scripts were read from, empty if the table
// was not loaded from a manifest.
func (t ScriptTable) Section() string {
	return t.section
}
