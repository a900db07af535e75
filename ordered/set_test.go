package ordered

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInsertFull(t *testing.T) {
	t.Parallel()
	s := New[string]()
	i, inserted := s.InsertFull("a")
	require.Equal(t, 0, i)
	require.True(t, inserted)

	i, inserted = s.InsertFull("b")
	require.Equal(t, 1, i)
	require.True(t, inserted)

	i, inserted = s.InsertFull("a")
	require.Equal(t, 0, i)
	require.False(t, inserted)
	require.Equal(t, 2, s.Len())
}

func TestGet(t *testing.T) {
	t.Parallel()
	s := Collect("x", "y")
	v, ok := s.Get("y")
	require.True(t, ok)
	require.Equal(t, "y", v)

	i, v, ok := s.GetFull("y")
	require.True(t, ok)
	require.Equal(t, 1, i)
	require.Equal(t, "y", v)

	_, ok = s.Get("z")
	require.False(t, ok)
	require.True(t, s.Contains("x"))
	require.False(t, s.Contains("z"))
}

func TestPositionalAccess(t *testing.T) {
	t.Parallel()
	s := Collect(10, 20, 30)
	v, ok := s.GetIndex(2)
	require.True(t, ok)
	require.Equal(t, 30, v)

	_, ok = s.GetIndex(3)
	require.False(t, ok)
	_, ok = s.GetIndex(-1)
	require.False(t, ok)

	require.Equal(t, 10, s.At(0))
	require.Panics(t, func() { s.At(3) })
}

func TestRemovePreservesOrder(t *testing.T) {
	t.Parallel()
	s := Collect("a", "b", "c", "d")
	require.True(t, s.Remove("b"))
	require.False(t, s.Remove("b"))
	require.Equal(t, []string{"a", "c", "d"}, s.Items())

	// positions are reassigned after removal
	i, _, ok := s.GetFull("d")
	require.True(t, ok)
	require.Equal(t, 2, i)

	// and new insertions continue from the new end
	i, inserted := s.InsertFull("e")
	require.True(t, inserted)
	require.Equal(t, 3, i)
}

func TestAll(t *testing.T) {
	t.Parallel()
	s := Collect(3, 1, 2)
	var indices []int
	var values []int
	for i, v := range s.All() {
		indices = append(indices, i)
		values = append(values, v)
	}
	require.Equal(t, []int{0, 1, 2}, indices)
	require.Equal(t, []int{3, 1, 2}, values)
}

func TestItemsIsACopy(t *testing.T) {
	t.Parallel()
	s := Collect("a")
	items := s.Items()
	items[0] = "mutated"
	v, ok := s.Get("a")
	require.True(t, ok)
	require.Equal(t, "a", v)
}

func TestEqual(t *testing.T) {
	t.Parallel()
	a := Collect(1, 2, 3)
	require.True(t, a.Equal(Collect(1, 2, 3)))
	require.False(t, a.Equal(Collect(3, 2, 1)), "order matters")
	require.False(t, a.Equal(Collect(1, 2)))
	require.False(t, a.Equal(nil))
}

func TestClone(t *testing.T) {
	t.Parallel()
	s := Collect("a", "b")
	c := s.Clone()
	require.True(t, s.Equal(c))
	c.Insert("c")
	require.Equal(t, 2, s.Len())
	require.Equal(t, 3, c.Len())
}

func TestJSON(t *testing.T) {
	t.Parallel()
	s := Collect("c", "a", "b")
	data, err := json.Marshal(s)
	require.NoError(t, err)
	require.Equal(t, `["c","a","b"]`, string(data))

	restored := New[string]()
	require.NoError(t, json.Unmarshal(data, restored))
	require.True(t, s.Equal(restored))
}

func TestJSONCollapsesDuplicates(t *testing.T) {
	t.Parallel()
	s := New[string]()
	require.NoError(t, json.Unmarshal([]byte(`["a","b","a"]`), s))
	require.Equal(t, []string{"a", "b"}, s.Items())
}

func TestJSONEmpty(t *testing.T) {
	t.Parallel()
	data, err := json.Marshal(New[string]())
	require.NoError(t, err)
	require.Equal(t, `[]`, string(data))
}

func TestUnmarshalWithoutHasher(t *testing.T) {
	t.Parallel()
	var s Set[string]
	require.Error(t, s.UnmarshalJSON([]byte(`["a"]`)))
}

type mod2Hasher struct{}

func (mod2Hasher) Hash(v int) uint64   { return uint64(v % 2) }
func (mod2Hasher) Equal(a, b int) bool { return a == b }

func TestBucketCollisions(t *testing.T) {
	t.Parallel()
	s := NewWithHasher[int](mod2Hasher{})
	for i := 0; i < 100; i++ {
		s.Insert(i)
	}
	require.Equal(t, 100, s.Len())
	for i := 0; i < 100; i++ {
		j, _, ok := s.GetFull(i)
		require.True(t, ok)
		require.Equal(t, i, j)
	}
	require.True(t, s.Remove(50))
	require.False(t, s.Contains(50))
	require.Equal(t, 99, s.Len())
}
