package core

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"upgrade-editor/internal/types"
)

func TestParseLine(t *testing.T) {
	tests := []struct {
		name string
		line string
		want []string
	}{
		{name: "empty", line: "", want: nil},
		{name: "sentinel", line: "None", want: nil},
		{name: "single", line: "A", want: []string{"A"}},
		{name: "ordered", line: "B,A,C", want: []string{"B", "A", "C"}},
		{name: "empty tokens dropped", line: ",A,,B,", want: []string{"A", "B"}},
		{name: "duplicates keep first", line: "A,B,A", want: []string{"A", "B"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseLine(tt.line, types.ListSeparator)
			if diff := cmp.Diff(tt.want, got.Names()); diff != "" {
				t.Fatalf("unexpected names (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSerializeLineEmptyIsSentinel(t *testing.T) {
	assert.Equal(t, "None", SerializeLine(NewNameSet(), types.ListSeparator))
	assert.Equal(t, "None", SerializeLine(NameSet{}, types.ListSeparator))
}

func TestLineRoundTrip(t *testing.T) {
	for _, line := range []string{"A", "A,B", "engine-mk2,tank.xl,None2", "Z,Y,X"} {
		got := SerializeLine(ParseLine(line, types.ListSeparator), types.ListSeparator)
		assert.Equal(t, line, got)
	}
}

func TestSetRoundTrip(t *testing.T) {
	set := NewNameSet("C", "A", "B")
	parsed := ParseLine(SerializeLine(set, types.ListSeparator), types.ListSeparator)
	if diff := cmp.Diff(set.Names(), parsed.Names()); diff != "" {
		t.Fatalf("round trip changed set (-want +got):\n%s", diff)
	}
}

func TestNameSetMutations(t *testing.T) {
	set := NewNameSet("A", "B", "C")
	assert.False(t, set.Add("A"))
	assert.False(t, set.Add(""))
	assert.True(t, set.Remove("B"))
	assert.False(t, set.Remove("B"))
	assert.Equal(t, []string{"A", "C"}, set.Names())

	set.Retain(func(name string) bool { return name != "A" })
	assert.Equal(t, []string{"C"}, set.Names())
	assert.True(t, set.Has("C"))

	set.Clear()
	assert.Equal(t, 0, set.Len())
	assert.True(t, set.Add("D"))
}

func TestZeroValueNameSetIsUsable(t *testing.T) {
	var set NameSet
	assert.False(t, set.Has("A"))
	assert.True(t, set.Add("A"))
	assert.Equal(t, 1, set.Len())
}
