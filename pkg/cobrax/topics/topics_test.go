package topics

import (
	"bytes"
	"testing"
	"testing/fstest"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"help/annotations.md":      {Data: []byte("# Annotations\n\nFlag comments.")},
		"help/option-annotate.txt": {Data: []byte("Sets the sentinel")},
		"help/notes.txxt":          {Data: []byte("ignored by default")},
		"help/image.png":           {Data: []byte{0x89}},
	}
}

func TestLoad(t *testing.T) {
	t.Run("default extensions", func(t *testing.T) {
		m, err := Load(testFS(), "help", Options{})
		require.NoError(t, err)
		assert.Equal(t, []string{"annotations", "option-annotate"}, m.Names())
	})

	t.Run("custom extensions", func(t *testing.T) {
		m, err := Load(testFS(), "help", Options{Extensions: []string{".txxt"}})
		require.NoError(t, err)
		assert.Equal(t, []string{"notes"}, m.Names())
	})

	t.Run("missing root", func(t *testing.T) {
		_, err := Load(testFS(), "nope", Options{})
		assert.Error(t, err)
	})
}

func TestGet(t *testing.T) {
	m, err := Load(testFS(), "help", Options{})
	require.NoError(t, err)

	tests := []struct {
		input  string
		want   string
		exists bool
	}{
		{"annotations", "annotations", true},
		{"option-annotate", "option-annotate", true},
		{"annotate", "option-annotate", true},
		{"--annotate", "option-annotate", true},
		{"-annotate", "option-annotate", true},
		{"nonexistent", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			topic, ok := m.Get(tt.input)
			assert.Equal(t, tt.exists, ok)
			if ok {
				assert.Equal(t, tt.want, topic.Name)
			}
		})
	}
}

func TestWriteList(t *testing.T) {
	m, err := Load(testFS(), "help", Options{})
	require.NoError(t, err)

	var out bytes.Buffer
	m.WriteList(&out, "hilite")

	assert.Contains(t, out.String(), "General topics:\n  annotations\n")
	assert.Contains(t, out.String(), "Option topics:\n  --annotate\n")
	assert.Contains(t, out.String(), "Use 'hilite help <topic>'")

	empty, err := Load(fstest.MapFS{"help/x.bin": {}}, "help", Options{})
	require.NoError(t, err)
	out.Reset()
	empty.WriteList(&out, "hilite")
	assert.Equal(t, "No help topics available.\n", out.String())
}

func TestInstall(t *testing.T) {
	m, err := Load(testFS(), "help", Options{})
	require.NoError(t, err)

	root := &cobra.Command{Use: "hilite", Run: func(*cobra.Command, []string) {}}
	// cobra only adds the help command to roots with subcommands
	root.AddCommand(&cobra.Command{Use: "version", Run: func(*cobra.Command, []string) {}})
	m.Install(root)

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"help", "--annotate"})
	require.NoError(t, root.Execute())
	assert.Equal(t, "Sets the sentinel", out.String())

	out.Reset()
	root.SetArgs([]string{"help", "topics"})
	require.NoError(t, root.Execute())
	assert.Contains(t, out.String(), "annotations")
}

func TestRenderers(t *testing.T) {
	assert.Equal(t, "# x", PlainRenderer{}.Render("# x", ".md"))

	g := &GlamourRenderer{Style: "notty", Width: 40}
	assert.Equal(t, "plain", g.Render("plain", ".txt"))
	assert.Contains(t, g.Render("# Title\n\nbody text", ".md"), "body text")
}
