package scene

import "errors"

var (
	// ErrEntityNotFound is returned when no entity has the requested name.
	ErrEntityNotFound = errors.New("entity not found")
	// ErrIndexOutOfRange is returned for an entity index outside the stage.
	ErrIndexOutOfRange = errors.New("entity index out of range")
	// ErrStateNotFound is returned when changing to an unregistered state.
	ErrStateNotFound = errors.New("state not found")
	// ErrVarExists is returned when creating a variable that already exists.
	ErrVarExists = errors.New("variable already exists")
	// ErrVarNotFound is returned when reading an undefined variable.
	ErrVarNotFound = errors.New("variable not found")
)
