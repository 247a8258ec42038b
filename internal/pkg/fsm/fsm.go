// Package fsm holds transition tables for closed status enumerations.
package fsm

import (
	"preloved-market/internal/pkg/errs"
)

type Table[S comparable] struct {
	name  string
	edges map[S]map[S]struct{}
}

func New[S comparable](name string, edges map[S][]S) *Table[S] {
	t := &Table[S]{
		name:  name,
		edges: make(map[S]map[S]struct{}, len(edges)),
	}
	for from, tos := range edges {
		set := make(map[S]struct{}, len(tos))
		for _, to := range tos {
			set[to] = struct{}{}
		}
		t.edges[from] = set
	}
	return t
}

func (t *Table[S]) Allows(from, to S) bool {
	set, ok := t.edges[from]
	if !ok {
		return false
	}
	_, ok = set[to]
	return ok
}

// Check rejects any transition not listed in the table, including self-loops.
func (t *Table[S]) Check(from, to S) error {
	if t.Allows(from, to) {
		return nil
	}
	return errs.WithDetailf(errs.ErrInvalidTransition, "%s: %v -> %v", t.name, from, to)
}

func (t *Table[S]) IsTerminal(s S) bool {
	return len(t.edges[s]) == 0
}
