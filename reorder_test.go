package dnd

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveReorder(t *testing.T) {
	tests := []struct {
		name      string
		source    int
		target    int
		placement Placement
		want      int
	}{
		{"target after source, before boundary", 1, 3, Before, 2},
		{"target before source, after boundary", 3, 1, After, 2},
		{"target after source, after boundary", 1, 3, After, 3},
		{"target before source, before boundary", 3, 1, Before, 1},
		{"own position is a no-op", 2, 2, Before, 2},
		{"move to front", 3, 0, Before, 0},
		{"move to back", 0, 3, After, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveReorder(tt.source, tt.target, tt.placement))
		})
	}
}

func TestApplyReorderBoundaries(t *testing.T) {
	s := []string{"a", "b", "c", "d"}
	ApplyReorder(s, 0, 3)
	assert.Equal(t, []string{"b", "c", "d", "a"}, s)

	s = []string{"a", "b", "c", "d"}
	ApplyReorder(s, 3, 0)
	assert.Equal(t, []string{"d", "a", "b", "c"}, s)
}

func TestReorderNoop(t *testing.T) {
	s := []string{"a", "b", "c", "d"}
	m := NewMove(2, ReorderTarget[int]{Index: 2, Placement: Before})

	require.Equal(t, 2, ResolveReorder(m.Payload, m.Target.Index, m.Target.Placement))
	Reorder(s, m)
	assert.Equal(t, []string{"a", "b", "c", "d"}, s, "moving onto its own boundary must not mutate")

	// Applying the same resolved move again stays a no-op.
	Reorder(s, m)
	assert.Equal(t, []string{"a", "b", "c", "d"}, s)
}

// TestReorderIsSingleRotation checks that every valid move is equivalent to
// remove-then-insert: a permutation that shifts the spanned range by one and
// preserves every other relative order.
func TestReorderIsSingleRotation(t *testing.T) {
	base := []int{10, 11, 12, 13, 14, 15}

	for i := range base {
		for j := range base {
			for _, placement := range []Placement{Before, After} {
				s := slices.Clone(base)
				Reorder(s, NewMove(i, ReorderTarget[int]{Index: j, Placement: placement}))

				final := ResolveReorder(i, j, placement)
				want := slices.Clone(base)
				moved := want[i]
				want = slices.Delete(want, i, i+1)
				want = slices.Insert(want, final, moved)

				require.Equal(t, want, s, "i=%d j=%d %s", i, j, placement)
				require.Equal(t, moved, s[final], "element lands at its final index")
			}
		}
	}
}

func TestMoveAcrossInsert(t *testing.T) {
	src := []string{"akesi", "soweli", "kala"}
	dst := []string{"dog", "fish"}

	src, dst = MoveAcross(src, dst, 1, 1, Before)
	assert.Equal(t, []string{"akesi", "kala"}, src)
	assert.Equal(t, []string{"dog", "soweli", "fish"}, dst)

	src, dst = MoveAcross(src, dst, 0, 2, After)
	assert.Equal(t, []string{"kala"}, src)
	assert.Equal(t, []string{"dog", "soweli", "fish", "akesi"}, dst)
}

func TestMoveAcrossAppendAndEmptySource(t *testing.T) {
	// Moving the only element of a container to the end of another must
	// append and leave the source empty without panicking.
	src := []string{"snek"}
	dst := []string{"doggo", "fishy"}

	src, dst = MoveAcross(src, dst, 0, -1, Before)
	assert.Empty(t, src)
	assert.Equal(t, []string{"doggo", "fishy", "snek"}, dst)

	// Appending into an empty destination works the same way.
	var empty []string
	dst, empty = MoveAcross(dst, empty, 2, -1, After)
	assert.Equal(t, []string{"doggo", "fishy"}, dst)
	assert.Equal(t, []string{"snek"}, empty)
}

func TestRotateHelpers(t *testing.T) {
	s := []int{1, 2, 3, 4}
	rotateLeft(s)
	assert.Equal(t, []int{2, 3, 4, 1}, s)
	rotateRight(s)
	assert.Equal(t, []int{1, 2, 3, 4}, s)

	single := []int{1}
	rotateLeft(single)
	rotateRight(single)
	assert.Equal(t, []int{1}, single)
}
