package ruler_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/golomb/ruler"
)

// TestNew_Validation verifies that New fails fast on non-positive and
// non-ascending marks with the matching sentinels.
func TestNew_Validation(t *testing.T) {
	_, err := ruler.New(0, 3)
	assert.ErrorIs(t, err, ruler.ErrMarkNotPositive, "mark 0 is the implicit origin and must be rejected")

	_, err = ruler.New(-4)
	assert.ErrorIs(t, err, ruler.ErrMarkNotPositive, "negative marks must be rejected")

	_, err = ruler.New(3, 1)
	assert.ErrorIs(t, err, ruler.ErrMarksNotAscending, "descending marks must be rejected")

	_, err = ruler.New(1, 1)
	assert.ErrorIs(t, err, ruler.ErrMarksNotAscending, "duplicate marks must be rejected")
}

// TestRuler_OrderAndLength checks the derived attributes of empty and
// non-empty rulers, counting the implicit 0 as a mark.
func TestRuler_OrderAndLength(t *testing.T) {
	empty, err := ruler.New()
	require.NoError(t, err)
	assert.Equal(t, 1, empty.Order(), "empty ruler has only the implicit 0")
	assert.Equal(t, ruler.Mark(0), empty.Length(), "empty ruler has length 0")

	r, err := ruler.New(1, 3, 7)
	require.NoError(t, err)
	assert.Equal(t, 4, r.Order(), "[0,1,3,7] has four marks")
	assert.Equal(t, ruler.Mark(7), r.Length(), "length is the final mark")
}

// TestRuler_String renders rulers with the implicit leading 0.
func TestRuler_String(t *testing.T) {
	empty, _ := ruler.New()
	assert.Equal(t, "[0]", empty.String())

	r, err := ruler.New(1, 3, 7)
	require.NoError(t, err)
	assert.Equal(t, "[0, 1, 3, 7]", r.String())
}

// TestRuler_MarksIsACopy ensures mutating the returned slice leaves the
// ruler untouched.
func TestRuler_MarksIsACopy(t *testing.T) {
	r, err := ruler.New(2, 5)
	require.NoError(t, err)

	marks := r.Marks()
	marks[0] = 99
	assert.Equal(t, []ruler.Mark{2, 5}, r.Marks(), "Ruler must stay immutable")
}

// TestRuler_Equal verifies structural equality.
func TestRuler_Equal(t *testing.T) {
	a, _ := ruler.New(1, 3)
	b, _ := ruler.New(1, 3)
	c, _ := ruler.New(1, 4)

	assert.True(t, a.Equal(b), "same marks compare equal")
	assert.False(t, a.Equal(c), "different marks compare unequal")
	assert.False(t, a.Equal(ruler.Ruler{}), "different orders compare unequal")
}

// TestIsGolomb runs the full verifier over the canonical scenarios:
// [0,1,2] repeats distance 1, [0,1,3,7] is a textbook Golomb ruler.
func TestIsGolomb(t *testing.T) {
	cases := []struct {
		name  string
		marks []ruler.Mark
		want  bool
	}{
		{name: "empty ruler is trivially golomb", marks: nil, want: true},
		{name: "single mark is trivially golomb", marks: []ruler.Mark{5}, want: true},
		{name: "[0,1,2] repeats distance 1", marks: []ruler.Mark{1, 2}, want: false},
		{name: "[0,1,3,7] is golomb", marks: []ruler.Mark{1, 3, 7}, want: true},
		{name: "[0,2,3] is golomb", marks: []ruler.Mark{2, 3}, want: true},
		{name: "[0,1,3,5] repeats distance 2", marks: []ruler.Mark{1, 3, 5}, want: false},
		{name: "[0,1,3,7,12] is golomb (optimal order 5)", marks: []ruler.Mark{1, 3, 7, 12}, want: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r, err := ruler.New(tc.marks...)
			require.NoError(t, err)
			assert.Equal(t, tc.want, r.IsGolomb())
			assert.Equal(t, tc.want, ruler.IsGolombSequence(tc.marks), "free-function verifier must agree")
		})
	}
}

// TestIsGolomb_SoundAgainstDistances cross-checks the verifier verdict
// against the diagnostic Distances records: a ruler is Golomb exactly
// when its distance multiset has no duplicates.
func TestIsGolomb_SoundAgainstDistances(t *testing.T) {
	for id := uint64(0); id < 512; id++ {
		r := ruler.FromID(id)

		seen := make(map[ruler.Mark]int)
		duplicate := false
		for _, d := range r.Distances() {
			seen[d.Dist]++
			if seen[d.Dist] > 1 {
				duplicate = true
			}
		}

		assert.Equal(t, !duplicate, r.IsGolomb(), "verdict mismatch for %s (id %d)", r, id)
	}
}

// TestIsGolombDepth1 pins the depth-1 partial check on the original
// unit ids: id 10 decodes to [0,2,4] (gap 2 collides with mark 2),
// id 9 decodes to [0,1,4] (gap 3 misses every mark).
func TestIsGolombDepth1(t *testing.T) {
	assert.False(t, ruler.FromID(10).IsGolombDepth1(), "[0,2,4]: |4-2| = 2 is already a mark")
	assert.True(t, ruler.FromID(9).IsGolombDepth1(), "[0,1,4]: |4-1| = 3 is not a mark")

	empty, _ := ruler.New()
	assert.True(t, empty.IsGolombDepth1(), "degenerate rulers pass trivially")
	one, _ := ruler.New(4)
	assert.True(t, one.IsGolombDepth1(), "single-mark rulers pass trivially")
}

// TestIsGolombDepth1_NecessaryCondition: every true Golomb ruler must
// pass the partial check (it is necessary, not sufficient).
func TestIsGolombDepth1_NecessaryCondition(t *testing.T) {
	for id := uint64(0); id < 2048; id++ {
		r := ruler.FromID(id)
		if r.IsGolomb() {
			assert.True(t, r.IsGolombDepth1(), "golomb ruler %s failed the depth-1 check", r)
		}
	}
}

// TestDistances verifies the n·(n+1)/2 triples, implicit-0 pairs
// included, in anchor order.
func TestDistances(t *testing.T) {
	r, err := ruler.New(1, 3)
	require.NoError(t, err)

	want := []ruler.Distance{
		{Left: 0, Right: 1, Dist: 1},
		{Left: 1, Right: 3, Dist: 2},
		{Left: 0, Right: 3, Dist: 3},
	}
	assert.Equal(t, want, r.Distances())

	big, err := ruler.New(1, 3, 7, 12)
	require.NoError(t, err)
	assert.Len(t, big.Distances(), 10, "4 marks yield 4·5/2 distances")
}
