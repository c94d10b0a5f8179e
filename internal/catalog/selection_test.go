// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/showcase/internal/catalog"
)

func reduce(state catalog.State, intents ...catalog.Intent) catalog.State {
	for _, intent := range intents {
		state = catalog.Reduce(state, intent)
	}
	return state
}

var (
	open   = catalog.Intent{Type: catalog.IntentOpen}
	apply  = catalog.Intent{Type: catalog.IntentApply}
	cancel = catalog.Intent{Type: catalog.IntentCancel}
	reset  = catalog.Intent{Type: catalog.IntentReset}
)

func check(facet string) catalog.Intent {
	return catalog.Intent{Type: catalog.IntentToggleFacet, Facet: facet, Checked: true}
}

func uncheck(facet string) catalog.Intent {
	return catalog.Intent{Type: catalog.IntentToggleFacet, Facet: facet, Checked: false}
}

/*
TestSelection_ApplyCommitsStaged walks open → toggle → apply.
*/
func TestSelection_ApplyCommitsStaged(t *testing.T) {
	state := reduce(catalog.NewState(), open, check("go"), check("sql"))

	assert.True(t, state.Open)
	assert.Empty(t, state.Applied)
	assert.True(t, state.Staged.Equal(catalog.NewFacetSet("go", "sql")))

	state = reduce(state, catalog.Intent{Type: catalog.IntentGoToPage, Page: 4}, apply)

	assert.False(t, state.Open)
	assert.Equal(t, 1, state.Page)
	assert.True(t, state.Applied.Equal(catalog.NewFacetSet("go", "sql")))
	assert.True(t, state.Staged.Equal(state.Applied))
}

/*
TestSelection_CancelRestoresApplied discards toggles made while open.
*/
func TestSelection_CancelRestoresApplied(t *testing.T) {
	applied := reduce(catalog.NewState(), open, check("go"), apply)
	applied.Page = 3

	for _, closeIntent := range []catalog.Intent{cancel, {Type: catalog.IntentToggleSelector}} {
		state := reduce(applied, open, uncheck("go"), check("rust"), closeIntent)

		assert.False(t, state.Open)
		assert.True(t, state.Applied.Equal(catalog.NewFacetSet("go")))
		assert.True(t, state.Staged.Equal(catalog.NewFacetSet("go")))
		assert.Equal(t, 3, state.Page, "cancel does not re-filter")
	}
}

func TestSelection_ResetClearsStagedOnly(t *testing.T) {
	state := reduce(catalog.NewState(), open, check("go"), apply, open, reset)

	assert.True(t, state.Open, "reset keeps the selector open")
	assert.Empty(t, state.Staged)
	assert.True(t, state.Applied.Equal(catalog.NewFacetSet("go")))

	state = reduce(state, apply)
	assert.Empty(t, state.Applied)
}

func TestSelection_ClosedIgnoresToggles(t *testing.T) {
	state := reduce(catalog.NewState(), check("go"), reset, apply)

	assert.False(t, state.Open)
	assert.Empty(t, state.Applied)
	assert.Empty(t, state.Staged)
}

func TestSelection_InputIsNotMutated(t *testing.T) {
	before := reduce(catalog.NewState(), open, check("go"))
	snapshot := before.Staged.Clone()

	_ = catalog.Reduce(before, check("sql"))
	_ = catalog.Reduce(before, reset)
	_ = catalog.Reduce(before, apply)

	assert.True(t, before.Staged.Equal(snapshot))
	assert.Empty(t, before.Applied)
	assert.True(t, before.Open)
}

func TestSelection_QueryAndPage(t *testing.T) {
	state := reduce(catalog.NewState(),
		catalog.Intent{Type: catalog.IntentGoToPage, Page: 5},
	)
	assert.Equal(t, 5, state.Page)

	state = reduce(state, catalog.Intent{Type: catalog.IntentSetQuery, Query: "redis"})
	assert.Equal(t, "redis", state.Query)
	assert.Equal(t, 1, state.Page)

	state = reduce(state, catalog.Intent{Type: catalog.IntentGoToPage, Page: -2})
	assert.Equal(t, 1, state.Page)
}

func TestSelection_Clear(t *testing.T) {
	state := reduce(catalog.NewState(),
		open, check("go"), apply,
		catalog.Intent{Type: catalog.IntentSetQuery, Query: "cache"},
		catalog.Intent{Type: catalog.IntentGoToPage, Page: 2},
		catalog.Intent{Type: catalog.IntentClear},
	)

	assert.Empty(t, state.Query)
	assert.Empty(t, state.Applied)
	assert.Empty(t, state.Staged)
	assert.Equal(t, 1, state.Page)
}

/*
TestState_NormalizeEnforcesInvariant repairs a closed state whose staged set
drifted from the applied one.
*/
func TestState_NormalizeEnforcesInvariant(t *testing.T) {
	drifted := catalog.State{
		Applied: catalog.NewFacetSet("go"),
		Staged:  catalog.NewFacetSet("rust"),
		Page:    0,
	}

	normalized := drifted.Normalize()
	assert.True(t, normalized.Staged.Equal(catalog.NewFacetSet("go")))
	assert.Equal(t, 1, normalized.Page)

	unknown := catalog.Reduce(drifted, catalog.Intent{Type: "bogus"})
	assert.True(t, unknown.Staged.Equal(unknown.Applied))
}
