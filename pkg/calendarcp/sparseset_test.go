package calendarcp

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScratchSetInsertRemove(t *testing.T) {
	s := NewScratchSet(5, 9)
	require.Equal(t, 5, s.Size())
	for _, v := range []int{5, 6, 7, 8, 9} {
		require.True(t, s.Contains(v))
	}

	s.Remove(7)
	require.False(t, s.Contains(7))
	require.Equal(t, 4, s.Size())

	s.Insert(7)
	require.True(t, s.Contains(7))
	require.Equal(t, 5, s.Size())

	s.Clear()
	require.Equal(t, 0, s.Size())
	require.False(t, s.Contains(5))

	s.Insert(8)
	require.True(t, s.Contains(8))
	require.Equal(t, 1, s.Size())
}

func TestScratchSetSort(t *testing.T) {
	s := NewScratchSet(0, 4)
	s.Clear()
	for _, v := range []int{3, 1, 4} {
		s.Insert(v)
	}
	s.Sort(func(a, b int) bool { return a < b })
	got := make([]int, s.Size())
	for i := range got {
		got[i] = s.At(i)
	}
	require.Equal(t, []int{1, 3, 4}, got)
}

type plainTint struct{ v int }

func (p *plainTint) Get() int  { return p.v }
func (p *plainTint) Set(v int) { p.v = v }

func TestReversibleSetRemoveAndBind(t *testing.T) {
	size := &plainTint{v: 5}
	s := NewReversibleSet(0, 4, size)
	require.Equal(t, 5, s.Size())

	s.Remove(2)
	require.False(t, s.Contains(2))
	require.Equal(t, 4, s.Size())

	s.Bind(3)
	require.Equal(t, 1, s.Size())
	require.True(t, s.Contains(3))

	s.Bind(2)
	require.Equal(t, 0, s.Size())
}
