package deterministicmap

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDelete(t *testing.T) {
	m := New[string, string]()
	m.Set("a", "b")
	require.Equal(t, 1, m.Len())
	m.Delete("a")
	require.Equal(t, 0, m.Len())
	m.Delete("a") // noop
	require.Equal(t, 0, m.Len())
}

func TestSetOverwritePreservesOrder(t *testing.T) {
	m := New[string, int]()
	m.Set("transfer", 1)
	m.Set("icahost", 2)
	m.Set("transfer", 3)

	require.Equal(t, []int{3, 2}, m.Values())
}

func TestDeleteSwapsLast(t *testing.T) {
	m := New[string, int]()
	m.Set("a", 1)
	m.Set("b", 2)
	m.Set("c", 3)

	m.Delete("a")
	require.Equal(t, []int{3, 2}, m.Values())
}

func TestHas(t *testing.T) {
	m := New[string, int]()
	require.False(t, m.Has("port"))
	m.Set("port", 1)
	require.True(t, m.Has("port"))
}

func TestRangeBreak(t *testing.T) {
	m := FromMap(map[string]int{"a": 1, "b": 2, "c": 3})

	var seen []string
	err := m.Range(func(k string, v int) error {
		seen = append(seen, k)
		if k == "b" {
			return ErrBreak
		}
		return nil
	})
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b"}, seen)
}
