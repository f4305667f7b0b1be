package hints

import (
	"errors"
	"fmt"
)

var (
	ErrCannotExitMainScope = errors.New("cannot exit main scope")
	ErrVariableNotInScope  = errors.New("variable not in scope")
)

// ExecutionScopes is the VM's stack of hint-local variable scopes. It is
// part of every hint's signature; none of the hints in this package touch
// it, but hosts composing larger hint sets share one instance across all
// callbacks of a run.
type ExecutionScopes struct {
	data []map[string]any
}

func NewExecutionScopes() *ExecutionScopes {
	return &ExecutionScopes{data: []map[string]any{{}}}
}

// EnterScope pushes a new scope initialised with vars.
func (s *ExecutionScopes) EnterScope(vars map[string]any) {
	if vars == nil {
		vars = map[string]any{}
	}
	s.data = append(s.data, vars)
}

// ExitScope pops the current scope. The main scope cannot be exited.
func (s *ExecutionScopes) ExitScope() error {
	if len(s.data) <= 1 {
		return ErrCannotExitMainScope
	}
	s.data = s.data[:len(s.data)-1]
	return nil
}

// Get looks name up in the current scope only.
func (s *ExecutionScopes) Get(name string) (any, error) {
	v, ok := s.data[len(s.data)-1][name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrVariableNotInScope, name)
	}
	return v, nil
}

// Assign sets name in the current scope.
func (s *ExecutionScopes) Assign(name string, v any) {
	s.data[len(s.data)-1][name] = v
}
