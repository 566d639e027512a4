package csvio

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/transform"
)

func TestNewReader(t *testing.T) {
	t.Run("rejects empty input", func(t *testing.T) {
		_, err := NewReader(strings.NewReader(""))
		assert.ErrorIs(t, err, ErrEmptyFile)
	})

	t.Run("rejects whitespace-only input", func(t *testing.T) {
		_, err := NewReader(strings.NewReader("  \n\t\n"))
		assert.ErrorIs(t, err, ErrEmptyFile)
	})

	t.Run("rejects BOM-only input", func(t *testing.T) {
		_, err := NewReaderFromBytes([]byte{0xEF, 0xBB, 0xBF})
		assert.ErrorIs(t, err, ErrEmptyFile)
	})

	t.Run("rejects undecodable bytes", func(t *testing.T) {
		_, err := NewReaderFromBytes([]byte{0x80, 0x81, 0xFE, 0xFF, 0x80})
		assert.ErrorIs(t, err, ErrInvalidEncoding)
	})

	t.Run("rejects invalid bytes inside otherwise valid Shift_JIS", func(t *testing.T) {
		sjis, _, err := transform.Bytes(japanese.ShiftJIS.NewEncoder(), []byte("名前,部署\n田中,営業部\n"))
		require.NoError(t, err)
		// 0x80 is unmapped in Shift_JIS, the decoder substitutes U+FFFD
		corrupted := append(sjis, 0x80, '\n')
		_, err = NewReaderFromBytes(corrupted)
		assert.ErrorIs(t, err, ErrInvalidEncoding)
	})

	t.Run("strips UTF-8 BOM", func(t *testing.T) {
		data := append([]byte{0xEF, 0xBB, 0xBF}, []byte("名前,部署\n田中,営業部\n")...)
		r, err := NewReaderFromBytes(data)
		require.NoError(t, err)
		require.NoError(t, r.ParseHeader())
		assert.Equal(t, []string{"名前", "部署"}, r.Headers())
	})

	t.Run("decodes Shift_JIS input", func(t *testing.T) {
		sjis, _, err := transform.Bytes(japanese.ShiftJIS.NewEncoder(), []byte("名前,部署\n田中,営業部\n"))
		require.NoError(t, err)
		r, err := NewReaderFromBytes(sjis)
		require.NoError(t, err)
		require.NoError(t, r.ParseHeader())

		row, err := r.ReadRow()
		require.NoError(t, err)
		assert.Equal(t, "田中", row.Get("名前"))
		assert.Equal(t, "営業部", row.Get("部署"))
	})
}

func TestParseHeader(t *testing.T) {
	t.Run("parses and indexes headers", func(t *testing.T) {
		r, err := NewReader(strings.NewReader("a,b,c\n1,2,3\n"))
		require.NoError(t, err)
		require.NoError(t, r.ParseHeader())

		assert.Equal(t, []string{"a", "b", "c"}, r.Headers())
		assert.True(t, r.HasHeader("b"))
		assert.False(t, r.HasHeader("d"))
	})

	t.Run("trims header whitespace", func(t *testing.T) {
		r, err := NewReader(strings.NewReader(" a , b \n1,2\n"))
		require.NoError(t, err)
		require.NoError(t, r.ParseHeader())
		assert.Equal(t, []string{"a", "b"}, r.Headers())
	})
}

func TestRequireHeaders(t *testing.T) {
	t.Run("passes when all present in any order", func(t *testing.T) {
		r, err := NewReader(strings.NewReader("c,a,b\n"))
		require.NoError(t, err)
		require.NoError(t, r.ParseHeader())
		assert.NoError(t, r.RequireHeaders([]string{"a", "b", "c"}))
	})

	t.Run("names every missing header", func(t *testing.T) {
		r, err := NewReader(strings.NewReader("a\n"))
		require.NoError(t, err)
		require.NoError(t, r.ParseHeader())

		err = r.RequireHeaders([]string{"a", "b", "c"})
		require.Error(t, err)
		var headerErr *HeaderError
		require.ErrorAs(t, err, &headerErr)
		assert.Equal(t, []string{"b", "c"}, headerErr.Missing)
	})
}

func TestReadRow(t *testing.T) {
	t.Run("maps values to headers with line numbers", func(t *testing.T) {
		r, err := NewReader(strings.NewReader("name,dept\nTanaka,Sales\nSuzuki,HR\n"))
		require.NoError(t, err)
		require.NoError(t, r.ParseHeader())

		row1, err := r.ReadRow()
		require.NoError(t, err)
		assert.Equal(t, 2, row1.LineNumber)
		assert.Equal(t, "Tanaka", row1.Get("name"))

		row2, err := r.ReadRow()
		require.NoError(t, err)
		assert.Equal(t, 3, row2.LineNumber)
		assert.Equal(t, "Suzuki", row2.Get("name"))

		_, err = r.ReadRow()
		assert.Equal(t, io.EOF, err)
	})

	t.Run("short row fills missing columns with empty strings", func(t *testing.T) {
		r, err := NewReader(strings.NewReader("a,b,c\n1,2\n"))
		require.NoError(t, err)
		require.NoError(t, r.ParseHeader())

		row, err := r.ReadRow()
		require.NoError(t, err)
		assert.Equal(t, "2", row.Get("b"))
		assert.Equal(t, "", row.Get("c"))
	})

	t.Run("handles quoted fields with embedded delimiters and newlines", func(t *testing.T) {
		input := "name,address\n\"Tanaka, Taro\",\"1-2-3 Chiyoda\nTokyo\"\n"
		r, err := NewReader(strings.NewReader(input))
		require.NoError(t, err)
		require.NoError(t, r.ParseHeader())

		row, err := r.ReadRow()
		require.NoError(t, err)
		assert.Equal(t, "Tanaka, Taro", row.Get("name"))
		assert.Equal(t, "1-2-3 Chiyoda\nTokyo", row.Get("address"))
	})

	t.Run("unterminated quote is a malformed file", func(t *testing.T) {
		r, err := NewReader(strings.NewReader("a,b\n\"broken,2\n"))
		require.NoError(t, err)
		require.NoError(t, r.ParseHeader())

		_, err = r.ReadRow()
		assert.ErrorIs(t, err, ErrMalformedCSV)
	})
}

func TestReadAll(t *testing.T) {
	t.Run("skips fully empty rows", func(t *testing.T) {
		r, err := NewReader(strings.NewReader("a,b\n1,2\n,\n3,4\n"))
		require.NoError(t, err)
		require.NoError(t, r.ParseHeader())

		rows, err := r.ReadAll()
		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, "1", rows[0].Get("a"))
		assert.Equal(t, "3", rows[1].Get("a"))
	})

	t.Run("malformed row fails the whole read", func(t *testing.T) {
		r, err := NewReader(strings.NewReader("a,b\n1,2\n\"bad\n"))
		require.NoError(t, err)
		require.NoError(t, r.ParseHeader())

		_, err = r.ReadAll()
		assert.ErrorIs(t, err, ErrMalformedCSV)
	})

	t.Run("header only yields zero rows", func(t *testing.T) {
		r, err := NewReader(strings.NewReader("a,b\n"))
		require.NoError(t, err)
		require.NoError(t, r.ParseHeader())

		rows, err := r.ReadAll()
		require.NoError(t, err)
		assert.Empty(t, rows)
	})
}
