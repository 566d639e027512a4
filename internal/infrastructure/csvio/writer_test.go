package csvio

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncode(t *testing.T) {
	t.Run("prefixes output with BOM", func(t *testing.T) {
		out, err := Encode([]string{"a", "b"}, nil)
		require.NoError(t, err)
		assert.True(t, bytes.HasPrefix(out, utf8BOM))
	})

	t.Run("quotes fields containing delimiters and newlines", func(t *testing.T) {
		out, err := Encode([]string{"name", "note"}, [][]string{
			{"Tanaka, Taro", "line1\nline2"},
		})
		require.NoError(t, err)
		assert.Contains(t, string(out), `"Tanaka, Taro"`)
		assert.Contains(t, string(out), "\"line1\nline2\"")
	})

	t.Run("escapes embedded quotes by doubling", func(t *testing.T) {
		out, err := Encode([]string{"note"}, [][]string{{`say "hi"`}})
		require.NoError(t, err)
		assert.Contains(t, string(out), `"say ""hi"""`)
	})
}

func TestWriterStreaming(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	require.NoError(t, w.WriteHeader([]string{"a", "b"}))
	require.NoError(t, w.WriteRow([]string{"1", "2"}))
	require.NoError(t, w.WriteRow([]string{"3", "4"}))
	require.NoError(t, w.Flush())

	out := buf.Bytes()
	assert.True(t, bytes.HasPrefix(out, utf8BOM))
	assert.Equal(t, "a,b\n1,2\n3,4\n", string(bytes.TrimPrefix(out, utf8BOM)))
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	headers := []string{"名前", "住所", "備考"}
	rows := [][]string{
		{"田中, 太郎", "東京都千代田区\n1-2-3", `引用 "注意"`},
		{"鈴木", "", "普通の行"},
		{"佐藤", "大阪", ","},
	}

	encoded, err := Encode(headers, rows)
	require.NoError(t, err)

	r, err := NewReaderFromBytes(encoded, WithTrimSpace(false))
	require.NoError(t, err)
	require.NoError(t, r.ParseHeader())
	assert.Equal(t, headers, r.Headers())

	decoded, err := r.ReadAll()
	require.NoError(t, err)
	require.Len(t, decoded, len(rows))
	for i, row := range decoded {
		for j, h := range headers {
			assert.Equal(t, rows[i][j], row.Get(h), "row %d column %s", i, h)
		}
	}
}
