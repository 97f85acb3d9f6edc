package encoding

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestQuotedPrintableSafeBytes(t *testing.T) {
	for _, s := range []string{
		"!\"#$%&'()*+,-./0123456789:;<>?@ABCDEFGHIJKLMNO",
		"PQRSTUVWXYZ[\\]^_`abcdefghijklmnopqrstuvwxyz{|}~",
		"Now's the time for all folk to come to the aid of their country.",
	} {
		enc, err := EncodeQuotedPrintable([]byte(s))
		require.NoError(t, err)
		require.Equal(t, s, string(enc))

		dec, err := DecodeQuotedPrintable(enc)
		require.NoError(t, err)
		require.Equal(t, s, string(dec))
	}
}

func TestQuotedPrintableEscape(t *testing.T) {
	enc, err := EncodeQuotedPrintable([]byte("1+1 = 2"))
	require.NoError(t, err)
	require.Equal(t, "1+1 =3D 2", string(enc))

	dec, err := DecodeQuotedPrintable([]byte("=41=73=6B=20=4C=65=6F=21"))
	require.NoError(t, err)
	require.Equal(t, "Ask Leo!", string(dec))
}

func TestQuotedPrintableSoftBreaks(t *testing.T) {
	line := strings.Repeat("0123456789ABCDEF", 5)

	enc, err := EncodeQuotedPrintable([]byte(line))
	require.NoError(t, err)
	require.Equal(t, line[:75]+"=\r\n"+line[75:], string(enc))
	dec, err := DecodeQuotedPrintable(enc)
	require.NoError(t, err)
	require.Equal(t, line, string(dec))

	withEscape := line[:74] + "=ABCDEF"
	enc, err = EncodeQuotedPrintable([]byte(withEscape))
	require.NoError(t, err)
	require.Equal(t, line[:74]+"=\r\n=3DABCDEF", string(enc))
	dec, err = DecodeQuotedPrintable(enc)
	require.NoError(t, err)
	require.Equal(t, withEscape, string(dec))

	dec, err = DecodeQuotedPrintable([]byte("hello= \t\r\n world"))
	require.NoError(t, err)
	require.Equal(t, "hello world", string(dec))
}

func TestQuotedPrintableWrapBoundary(t *testing.T) {
	full := strings.Repeat("x", 75)
	enc, err := EncodeQuotedPrintable([]byte(full))
	require.NoError(t, err)
	require.Equal(t, full, string(enc))

	enc, err = EncodeQuotedPrintable([]byte(full + "y"))
	require.NoError(t, err)
	require.Equal(t, full+"=\r\ny", string(enc))
	dec, err := DecodeQuotedPrintable(enc)
	require.NoError(t, err)
	require.Equal(t, full+"y", string(dec))
}

func TestQuotedPrintableLineLength(t *testing.T) {
	in := []byte(strings.Repeat("\x00a\xff", 200))
	enc, err := EncodeQuotedPrintable(in)
	require.NoError(t, err)
	for _, l := range strings.Split(string(enc), "\r\n") {
		require.LessOrEqual(t, len(l), 76)
	}
	dec, err := DecodeQuotedPrintable(enc)
	require.NoError(t, err)
	require.Equal(t, in, dec)
}

func TestQuotedPrintableLineBreaks(t *testing.T) {
	for _, in := range []string{"hello\rworld", "hello\nworld", "hello\r\nworld"} {
		enc, err := EncodeQuotedPrintable([]byte(in))
		require.NoError(t, err)
		require.Equal(t, "hello\r\nworld", string(enc))

		dec, err := DecodeQuotedPrintable(enc)
		require.NoError(t, err)
		require.Equal(t, "hello\r\nworld", string(dec))
	}

	// a hard break restarts the column count
	in := strings.Repeat("x", 70) + "\n" + strings.Repeat("y", 70)
	enc, err := EncodeQuotedPrintable([]byte(in))
	require.NoError(t, err)
	require.Equal(t, strings.Repeat("x", 70)+"\r\n"+strings.Repeat("y", 70), string(enc))
}

func TestQuotedPrintableMalformed(t *testing.T) {
	for _, bad := range [][]byte{
		[]byte("=E@"),
		{127},
		[]byte("="),
		[]byte("=A"),
		[]byte("=WW"),
		[]byte("=3d"),
		[]byte("abc= x\r\n"),
		[]byte("abc=\r"),
	} {
		out, err := DecodeQuotedPrintable(bad)
		require.Error(t, err, "%q", bad)
		require.Nil(t, out)
	}
}
