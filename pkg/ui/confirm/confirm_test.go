package confirm

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfirmOverwrite(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"yes", "y\n", true},
		{"yes_word", "YES\n", true},
		{"padded", "  y  \n", true},
		{"no", "n\n", false},
		{"empty_defaults_to_no", "\n", false},
		{"eof_defaults_to_no", "", false},
		{"eof_after_answer", "yes", true},
		{"other", "maybe\n", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out strings.Builder
			p := NewWithIO(strings.NewReader(tt.input), &out)

			got, err := p.ConfirmOverwrite("/out/Foo.html")
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, "File /out/Foo.html already exists. Overwrite it? [y/N]: ", out.String())
		})
	}
}

func TestConfirmReadsOneAnswerPerQuestion(t *testing.T) {
	var out strings.Builder
	p := NewWithIO(strings.NewReader("y\nn\n"), &out)

	first, err := p.Confirm("one?")
	require.NoError(t, err)
	second, err := p.Confirm("two?")
	require.NoError(t, err)

	assert.True(t, first)
	assert.False(t, second)
}
