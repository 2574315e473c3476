package ui

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSetTheme(t *testing.T) {
	t.Cleanup(func() { SetTheme("classic") })

	SetTheme("NEON")
	require.Equal(t, "neon", Current().Name)
	SetTheme("mono")
	require.Equal(t, "x", Current().SymFail)
	SetTheme("whatever")
	require.Equal(t, "classic", Current().Name)
}

func TestOKFail(t *testing.T) {
	t.Cleanup(func() { SetTheme("classic") })
	SetTheme("mono")

	var buf bytes.Buffer
	OK(&buf, "Full Name: John Doe")
	Fail(&buf, "first: This field is required")
	require.Contains(t, buf.String(), "ok Full Name: John Doe")
	require.Contains(t, buf.String(), "x first: This field is required")
}
