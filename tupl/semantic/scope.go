// File: scope.go
// Title: Function Parameter Scopes
// Description: Stack of parameter frames, one per function definition
//              currently being visited.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-14
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-14 v0.1.0: Initial implementation

package semantic

import "github.com/hashicorp/go-set/v2"

type frame struct {
	params *set.Set[string]
}

type scopeStack struct {
	frames []frame
}

func (s *scopeStack) push(params []string) {
	s.frames = append(s.frames, frame{params: set.From(params)})
}

func (s *scopeStack) pop() {
	if len(s.frames) > 0 {
		s.frames = s.frames[:len(s.frames)-1]
	}
}

// visible reports whether name is a parameter of any function on the stack
func (s *scopeStack) visible(name string) bool {
	for i := len(s.frames) - 1; i >= 0; i-- {
		if s.frames[i].params.Contains(name) {
			return true
		}
	}
	return false
}

func (s *scopeStack) depth() int {
	return len(s.frames)
}
