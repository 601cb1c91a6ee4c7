package output

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewResultCountsRunes(t *testing.T) {
	require.Equal(t, Result{
		FirstLength:  5,
		SecondLength: 6,
		Match:        "wö",
		Length:       2,
	}, NewResult("hälló", "wörlds", "wö"))
}

func TestWriters(t *testing.T) {
	r := NewResult("apple", "purple", "ple")

	text := &bytes.Buffer{}
	require.NoError(t, NewWriter(text, false).Write(r))
	require.Equal(t, "3\tple\n", text.String())

	js := &bytes.Buffer{}
	require.NoError(t, NewWriter(js, true).Write(r))
	require.JSONEq(t, `{"first_length":5,"second_length":6,"match":"ple","length":3}`, js.String())
}
