package accordion

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// openCount counts the entries a selection reports as open in a list of n.
func openCount(s Selection, n int) int {
	count := 0
	for i := 0; i < n; i++ {
		if s.IsOpen(i) {
			count++
		}
	}
	return count
}

func TestInitialSelection(t *testing.T) {
	s := Initial()

	i, ok := s.Index()
	require.True(t, ok, "first entry should be open on mount")
	assert.Equal(t, 0, i)
	assert.True(t, s.IsOpen(0))
	assert.False(t, s.IsClosed())
}

func TestZeroValueIsClosed(t *testing.T) {
	var s Selection
	assert.True(t, s.IsClosed())
	assert.Equal(t, Closed(), s)
}

func TestToggle(t *testing.T) {
	t.Run("same index twice closes", func(t *testing.T) {
		for i := 0; i < 4; i++ {
			s := Closed().Toggle(i).Toggle(i)
			assert.True(t, s.IsClosed(), "toggle(%d) twice should close", i)
		}
	})

	t.Run("different index moves the open entry", func(t *testing.T) {
		s := Closed().Toggle(1).Toggle(3)
		assert.Equal(t, OpenAt(3), s)
		assert.False(t, s.IsOpen(1), "previous entry should be implicitly closed")
	})

	t.Run("toggle from closed opens", func(t *testing.T) {
		assert.Equal(t, OpenAt(2), Closed().Toggle(2))
	})

	t.Run("four entry scenario", func(t *testing.T) {
		s := Initial()
		require.Equal(t, OpenAt(0), s)

		s = s.Toggle(2)
		assert.Equal(t, OpenAt(2), s)

		s = s.Toggle(2)
		assert.Equal(t, Closed(), s)

		s = s.Toggle(0)
		assert.Equal(t, OpenAt(0), s)
	})
}

func TestToggle_ExclusivityHoldsForRandomSequences(t *testing.T) {
	const n = 6
	rng := rand.New(rand.NewSource(42))

	for run := 0; run < 200; run++ {
		s := Initial()
		for step := 0; step < 50; step++ {
			i := rng.Intn(n)
			prev := s
			s = Reduce(s, Action{Index: i})

			require.LessOrEqual(t, openCount(s, n), 1, "run %d step %d: more than one entry open", run, step)
			if prev.IsOpen(i) {
				require.True(t, s.IsClosed(), "run %d step %d: toggling the open entry should close it", run, step)
			} else {
				require.True(t, s.IsOpen(i), "run %d step %d: toggled entry should be open", run, step)
			}
		}
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want Selection
	}{
		{name: "none", raw: "none", want: Closed()},
		{name: "empty", raw: "", want: Closed()},
		{name: "first", raw: "0", want: OpenAt(0)},
		{name: "last", raw: "3", want: OpenAt(3)},
		{name: "padded", raw: " 2 ", want: OpenAt(2)},
		{name: "negative", raw: "-1", want: Closed()},
		{name: "past the end", raw: "7", want: Closed()},
		{name: "garbage", raw: "x", want: Closed()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Parse(tt.raw, 4))
		})
	}
}

func TestStringRoundTrip(t *testing.T) {
	assert.Equal(t, "none", Closed().String())
	assert.Equal(t, "2", OpenAt(2).String())

	for _, s := range []Selection{Closed(), OpenAt(0), OpenAt(3)} {
		assert.Equal(t, s, Parse(s.String(), 4))
	}
}

func TestParseIndex(t *testing.T) {
	i, ok := ParseIndex("1", 4)
	assert.True(t, ok)
	assert.Equal(t, 1, i)

	_, ok = ParseIndex("4", 4)
	assert.False(t, ok)

	_, ok = ParseIndex("", 4)
	assert.False(t, ok)
}
