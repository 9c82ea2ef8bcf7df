package prompt

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChoose(t *testing.T) {
	cases := []struct {
		name    string
		input   string
		want    int
		wantErr error
	}{
		{name: "first", input: "1\n", want: 0},
		{name: "last with spaces", input: "  3 \n", want: 2},
		{name: "no trailing newline", input: "2", want: 1},
		{name: "quit", input: "q\n", wantErr: ErrCancelled},
		{name: "quit upper", input: "Q\n", wantErr: ErrCancelled},
		{name: "eof", input: "", wantErr: ErrCancelled},
		{name: "zero", input: "0\n", wantErr: ErrOutOfRange},
		{name: "too large", input: "4\n", wantErr: ErrOutOfRange},
		{name: "word", input: "latest\n", wantErr: ErrNotANumber},
		{name: "empty line", input: "\n", wantErr: ErrNotANumber},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var out bytes.Buffer
			got, err := Choose(strings.NewReader(tc.input), &out, 3)
			assert.Contains(t, out.String(), "(or 'q' to quit)")
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestInvalidSelectionFamily(t *testing.T) {
	_, err := Parse("abc", 2)
	assert.ErrorIs(t, err, ErrInvalidSelection)
	_, err = Parse("9", 2)
	assert.ErrorIs(t, err, ErrInvalidSelection)
	assert.Contains(t, err.Error(), "9 not in 1-2")

	_, err = Parse("q", 2)
	assert.NotErrorIs(t, err, ErrInvalidSelection)
}
