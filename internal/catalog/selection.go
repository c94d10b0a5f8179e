// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog

// # Filter State

// State is everything the client needs to reproduce a view: the free-text
// query, the applied and staged facet selections, whether the facet selector
// is open, and the requested page.
//
// Invariant: when Open is false, Staged equals Applied.
type State struct {
	Query   string   `json:"query"`
	Applied FacetSet `json:"applied"`
	Staged  FacetSet `json:"staged"`
	Open    bool     `json:"open"`
	Page    int      `json:"page"`
}

// NewState returns the state of a fresh page load.
func NewState() State {
	return State{
		Applied: FacetSet{},
		Staged:  FacetSet{},
		Page:    1,
	}
}

// Normalize restores the invariants of a state received from outside.
func (s State) Normalize() State {
	s.Applied = s.Applied.Clone()
	if s.Open {
		s.Staged = s.Staged.Clone()
	} else {
		s.Staged = s.Applied.Clone()
	}
	if s.Page < 1 {
		s.Page = 1
	}
	return s
}

// # Intents

// IntentType names a user interaction.
type IntentType string

const (
	// IntentSetQuery replaces the free-text query and returns to page 1.
	IntentSetQuery IntentType = "setQuery"

	// IntentOpen opens the facet selector.
	IntentOpen IntentType = "open"

	// IntentToggleSelector opens a closed selector or cancels an open one.
	IntentToggleSelector IntentType = "toggleSelector"

	// IntentToggleFacet checks or unchecks one staged facet.
	IntentToggleFacet IntentType = "toggleFacet"

	// IntentApply commits the staged facets and closes the selector.
	IntentApply IntentType = "applyFacets"

	// IntentCancel discards staged changes and closes the selector
	// (outside click, Escape).
	IntentCancel IntentType = "cancel"

	// IntentReset clears the staged facets without closing or applying.
	IntentReset IntentType = "reset"

	// IntentGoToPage navigates to another page.
	IntentGoToPage IntentType = "goToPage"

	// IntentClear drops the query and every facet selection.
	IntentClear IntentType = "clear"
)

// IntentTypes lists every recognised [IntentType].
var IntentTypes = []IntentType{
	IntentSetQuery,
	IntentOpen,
	IntentToggleSelector,
	IntentToggleFacet,
	IntentApply,
	IntentCancel,
	IntentReset,
	IntentGoToPage,
	IntentClear,
}

// Intent is one discrete UI event. Only the fields relevant to Type are read.
type Intent struct {
	Type    IntentType `json:"type"`
	Query   string     `json:"query,omitempty"`
	Facet   string     `json:"facet,omitempty"`
	Checked bool       `json:"checked,omitempty"`
	Page    int        `json:"page,omitempty"`
}

// Reduce applies intent to state and returns the new state.
//
// The input state is never modified. Intents that make no sense in the
// current selector state (toggling a facet while closed, applying a closed
// selector) leave the state unchanged.
func Reduce(state State, intent Intent) State {
	next := state.Normalize()

	switch intent.Type {
	case IntentSetQuery:
		next.Query = intent.Query
		next.Page = 1

	case IntentOpen:
		next.Open = true

	case IntentToggleSelector:
		if next.Open {
			return cancel(next)
		}
		next.Open = true

	case IntentToggleFacet:
		if next.Open {
			next.Staged = next.Staged.With(intent.Facet, intent.Checked)
		}

	case IntentApply:
		if next.Open {
			next.Applied = next.Staged.Clone()
			next.Open = false
			next.Page = 1
		}

	case IntentCancel:
		return cancel(next)

	case IntentReset:
		if next.Open {
			next.Staged = FacetSet{}
		}

	case IntentGoToPage:
		next.Page = max(1, intent.Page)

	case IntentClear:
		next.Query = ""
		next.Applied = FacetSet{}
		next.Staged = FacetSet{}
		next.Page = 1
	}

	return next
}

func cancel(state State) State {
	state.Staged = state.Applied.Clone()
	state.Open = false
	return state
}
