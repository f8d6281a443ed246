package charset

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/korean"
)

func encodeEUCKR(t *testing.T, s string) []byte {
	t.Helper()
	b, err := korean.EUCKR.NewEncoder().Bytes([]byte(s))
	require.NoError(t, err)
	return b
}

func TestDefaultsOrder(t *testing.T) {
	candidates := Defaults()
	require.Len(t, candidates, 2)
	assert.Equal(t, NameUTF8, candidates[0].Name)
	assert.Equal(t, NameEUCKR, candidates[1].Name)
}

func TestUTF8Decode(t *testing.T) {
	tests := []struct {
		name      string
		input     []byte
		want      string
		wantErr   bool
		errOffset int
		errByte   byte
	}{
		{
			name:  "ascii",
			input: []byte("id,name\n1,kim\n"),
			want:  "id,name\n1,kim\n",
		},
		{
			name:  "hangul",
			input: []byte("이름,나이\n홍길동,30\n"),
			want:  "이름,나이\n홍길동,30\n",
		},
		{
			name:  "byte order mark is dropped",
			input: append([]byte{0xEF, 0xBB, 0xBF}, "a,b\n"...),
			want:  "a,b\n",
		},
		{
			name:  "empty",
			input: []byte{},
			want:  "",
		},
		{
			name:      "invalid continuation byte",
			input:     []byte{'a', ',', 0xC7, 0xD1},
			wantErr:   true,
			errOffset: 2,
			errByte:   0xC7,
		},
		{
			name:      "offset counts the byte order mark",
			input:     []byte{0xEF, 0xBB, 0xBF, 'x', 0xFF},
			wantErr:   true,
			errOffset: 4,
			errByte:   0xFF,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := UTF8.Decode(tt.input)
			if !tt.wantErr {
				require.NoError(t, err)
				assert.Equal(t, tt.want, got)
				return
			}

			var de *DecodeError
			require.ErrorAs(t, err, &de)
			assert.Equal(t, NameUTF8, de.Encoding)
			assert.Equal(t, tt.errOffset, de.Offset)
			assert.Equal(t, tt.errByte, de.Byte)
		})
	}
}

func TestEUCKRDecode(t *testing.T) {
	t.Run("legacy hangul", func(t *testing.T) {
		input := encodeEUCKR(t, "이름,지역\n홍길동,서울\n")

		// The same bytes must be rejected by UTF-8 for the fallback to matter.
		_, err := UTF8.Decode(input)
		require.True(t, IsDecodeError(err))

		got, err := EUCKR.Decode(input)
		require.NoError(t, err)
		assert.Equal(t, "이름,지역\n홍길동,서울\n", got)
	})

	t.Run("ascii passes through", func(t *testing.T) {
		got, err := EUCKR.Decode([]byte("a,b\n1,2\n"))
		require.NoError(t, err)
		assert.Equal(t, "a,b\n1,2\n", got)
	})

	tests := []struct {
		name   string
		input  []byte
		offset int
	}{
		{name: "lead byte 0xff", input: []byte{'a', 0xFF, 0xFF}, offset: 1},
		{name: "lone 0x80", input: []byte{'x', ',', 0x80}, offset: 2},
		{name: "truncated pair", input: append([]byte("ok,"), 0xB0), offset: 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := EUCKR.Decode(tt.input)

			var de *DecodeError
			require.ErrorAs(t, err, &de)
			assert.Equal(t, NameEUCKR, de.Encoding)
			assert.Equal(t, tt.offset, de.Offset)
			assert.Equal(t, tt.input[tt.offset], de.Byte)
		})
	}
}

func TestIsDecodeError(t *testing.T) {
	de := &DecodeError{Encoding: NameUTF8, Offset: 3, Byte: 0xFF}

	assert.True(t, IsDecodeError(de))
	assert.True(t, IsDecodeError(fmt.Errorf("wrapped: %w", de)))
	assert.False(t, IsDecodeError(errors.New("record on line 2: wrong number of fields")))
	assert.False(t, IsDecodeError(nil))
	assert.Equal(t, "utf-8: cannot decode byte 0xff at offset 3", de.Error())
}
