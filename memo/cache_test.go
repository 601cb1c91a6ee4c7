package memo

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetSet(t *testing.T) {
	c := New(1024 * 1024)

	_, found := c.Get("apple", "purple")
	require.False(t, found)

	c.Set("apple", "purple", "ple")

	match, found := c.Get("apple", "purple")
	require.True(t, found)
	require.Equal(t, "ple", match)

	_, found = c.Get("purple", "apple")
	require.False(t, found)
}

func TestEmptyMatch(t *testing.T) {
	c := New(1024 * 1024)
	c.Set("abc", "xyz", "")

	match, found := c.Get("abc", "xyz")
	require.True(t, found)
	require.Equal(t, "", match)
}

func TestOversizedEntriesAreSkipped(t *testing.T) {
	c := New(1024 * 1024)
	big := strings.Repeat("a", 70*1024)

	c.Set(big, big, big)

	_, found := c.Get(big, big)
	require.False(t, found)
}

func TestReset(t *testing.T) {
	c := New(1024 * 1024)
	c.Set("a", "a", "a")
	c.Reset()

	_, found := c.Get("a", "a")
	require.False(t, found)
}

func TestDecode(t *testing.T) {
	a, b, match, ok := decode(encode("first", "", "x"))
	require.True(t, ok)
	require.Equal(t, []string{"first", "", "x"}, []string{a, b, match})

	_, _, _, ok = decode([]byte{0x05, 0x01, 'a'})
	require.False(t, ok)
}

func TestDisabled(t *testing.T) {
	c := New(0)
	require.Nil(t, c)

	c.Set("a", "a", "a")
	_, found := c.Get("a", "a")
	require.False(t, found)
	c.Reset()
}
