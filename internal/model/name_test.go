package model

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseField(t *testing.T) {
	for _, f := range Fields {
		got, err := ParseField(f.String())
		require.NoError(t, err)
		require.Equal(t, f, got)
	}
	_, err := ParseField("middle")
	require.ErrorContains(t, err, `unknown field "middle"`)
	require.Equal(t, "Field(7)", Field(7).String())
}

func TestTouched(t *testing.T) {
	var tc Touched
	require.False(t, tc.Get(First))
	tc.Set(Last)
	require.True(t, tc.Get(Last))
	require.False(t, tc.Get(First))
	tc.Set(First)
	require.Equal(t, Touched{First: true, Last: true}, tc)
}
