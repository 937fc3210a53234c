package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want CommandMsg
	}{
		{"trash", CommandMsg{Name: CmdTrash}},
		{"  Pinned ", CommandMsg{Name: CmdPinned}},
		{"search milk and eggs", CommandMsg{Name: CmdSearch, Arg: "milk and eggs"}},
		{"theme dark", CommandMsg{Name: CmdTheme, Arg: "dark"}},
		{"q", CommandMsg{Name: CmdQuit}},
		{"add", CommandMsg{Name: CmdNew}},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Parse(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseErrors(t *testing.T) {
	_, err := Parse("   ")
	assert.Error(t, err)

	_, err = Parse("frobnicate now")
	assert.ErrorContains(t, err, "frobnicate")
}
