package scene

import "fmt"

// VarList is a table of named values shared between states, such as the
// score or the current level, that must survive a state change.
type VarList struct {
	vars map[string]any
}

// NewVarList creates an empty table.
func NewVarList() *VarList {
	return &VarList{vars: make(map[string]any)}
}

// Create defines a new variable.
func (v *VarList) Create(name string, value any) error {
	if _, ok := v.vars[name]; ok {
		return fmt.Errorf("create %q: %w", name, ErrVarExists)
	}
	v.vars[name] = value
	return nil
}

// Delete removes a variable. Deleting an undefined name does nothing.
func (v *VarList) Delete(name string) {
	delete(v.vars, name)
}

// Get returns the value of a variable.
func (v *VarList) Get(name string) (any, error) {
	value, ok := v.vars[name]
	if !ok {
		return nil, fmt.Errorf("get %q: %w", name, ErrVarNotFound)
	}
	return value, nil
}

// Set assigns a variable, creating it if needed.
func (v *VarList) Set(name string, value any) {
	v.vars[name] = value
}

// Clear removes every variable.
func (v *VarList) Clear() {
	clear(v.vars)
}

// Len returns the number of variables.
func (v *VarList) Len() int { return len(v.vars) }
