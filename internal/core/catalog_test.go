package core

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"upgrade-editor/internal/types"
)

func TestBuildCatalogDeduplicatesInModuleOrder(t *testing.T) {
	f := newFixture(t)
	catalog := BuildCatalog(f.part, NewNameSet(), NewNameSet(), f.handler)
	want := []types.CatalogUpgrade{
		{Name: "A", Modules: []int{0, 1}},
		{Name: "B", Modules: []int{0, 2}},
		{Name: "C", Modules: []int{1}},
	}
	if diff := cmp.Diff(want, catalog); diff != "" {
		t.Fatalf("unexpected catalog (-want +got):\n%s", diff)
	}
}

func TestBuildCatalogSkipsIgnored(t *testing.T) {
	f := newFixture(t)
	catalog := BuildCatalog(f.part, NewNameSet("A", "C"), NewNameSet(), f.handler)
	assert.Equal(t, []string{"B"}, catalogNames(catalog).Names())
}

func TestBuildCatalogShowsLockedOnlyWhenDisabled(t *testing.T) {
	f := newFixture(t)
	hidden := BuildCatalog(f.part, NewNameSet(), NewNameSet(), f.handler)
	assert.False(t, catalogNames(hidden).Has("D"))

	shown := BuildCatalog(f.part, NewNameSet(), NewNameSet("D"), f.handler)
	assert.True(t, catalogNames(shown).Has("D"))
}

func TestBuildCatalogIgnoreBeatsDisabled(t *testing.T) {
	f := newFixture(t)
	catalog := BuildCatalog(f.part, NewNameSet("B"), NewNameSet("B"), f.handler)
	assert.False(t, catalogNames(catalog).Has("B"))
}

func TestBuildCatalogWithoutPart(t *testing.T) {
	f := newFixture(t)
	assert.Empty(t, BuildCatalog(nil, NewNameSet(), NewNameSet(), f.handler))
}
