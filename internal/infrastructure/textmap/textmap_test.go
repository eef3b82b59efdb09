package textmap

import (
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/gemrun/internal/domain/entity"
)

func TestParse(t *testing.T) {
	t.Run("emits one cell per character", func(t *testing.T) {
		m, err := Parse("tiny", strings.NewReader("1.X\n###\n"))

		require.NoError(t, err)
		assert.Equal(t, "tiny", m.Name)
		assert.Equal(t, 3, m.Width)
		assert.Equal(t, 2, m.Height)
		assert.Zero(t, m.TileWidth, "text levels carry no tile size")
		require.Len(t, m.Cells, 6)
		assert.Equal(t, entity.Cell{Col: 0, Row: 0, ID: "1"}, m.Cells[0])
		assert.Equal(t, entity.Cell{Col: 2, Row: 0, ID: "X"}, m.Cells[2])
		assert.Equal(t, entity.Cell{Col: 1, Row: 1, ID: "#"}, m.Cells[4])
	})

	t.Run("accepts CRLF line endings", func(t *testing.T) {
		m, err := Parse("crlf", strings.NewReader("1.X\r\n###\r\n"))

		require.NoError(t, err)
		assert.Equal(t, 3, m.Width)
	})

	t.Run("rejects ragged lines", func(t *testing.T) {
		_, err := Parse("ragged", strings.NewReader("1.X\n####\n"))

		assert.ErrorIs(t, err, ErrLineLength)
		assert.Contains(t, err.Error(), "line 2")
	})

	t.Run("rejects empty input", func(t *testing.T) {
		_, err := Parse("empty", strings.NewReader(""))

		assert.ErrorIs(t, err, ErrEmpty)
	})

	t.Run("rejects non-ASCII", func(t *testing.T) {
		_, err := Parse("utf8", strings.NewReader("1é\n"))

		assert.ErrorIs(t, err, ErrNonASCIIChar)
	})
}

func TestLoad(t *testing.T) {
	fsys := fstest.MapFS{
		"levels/3.txt": {Data: []byte("1X\n##\n")},
	}

	t.Run("names the map after the file", func(t *testing.T) {
		m, err := Load(fsys, "levels/3.txt")

		require.NoError(t, err)
		assert.Equal(t, "3", m.Name)
		assert.Len(t, m.Cells, 4)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(fsys, "levels/9.txt")

		assert.Error(t, err)
	})
}
