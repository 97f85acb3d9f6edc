package encoding

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBase16(t *testing.T) {
	vectors := []struct{ in, out string }{
		{"", ""},
		{"f", "66"},
		{"fo", "666F"},
		{"foo", "666F6F"},
		{"foob", "666F6F62"},
		{"fooba", "666F6F6261"},
		{"foobar", "666F6F626172"},
	}
	for _, v := range vectors {
		enc, err := EncodeBase16([]byte(v.in))
		require.NoError(t, err)
		require.Equal(t, v.out, string(enc))

		dec, err := DecodeBase16([]byte(v.out))
		require.NoError(t, err)
		require.Equal(t, v.in, string(dec))
	}

	dec, err := DecodeBase16([]byte("deadBEEF"))
	require.NoError(t, err)
	require.Equal(t, []byte{0xDE, 0xAD, 0xBE, 0xEF}, dec)

	for _, bad := range []string{"6", "666", "6G", "66 6F", "zz"} {
		_, err := DecodeBase16([]byte(bad))
		require.Error(t, err, bad)
	}
}

func TestPercent(t *testing.T) {
	enc, err := EncodePercent([]byte("a b/c~d*e"))
	require.NoError(t, err)
	require.Equal(t, "a%20b%2Fc~d%2Ae", string(enc))

	for _, s := range []string{"%20", "%F0%90%80%80%F4%8F%BF%BD"} {
		dec, err := DecodePercent([]byte(s))
		require.NoError(t, err)
		enc, err := EncodePercent(dec)
		require.NoError(t, err)
		require.Equal(t, s, string(enc))
	}

	dec, err := DecodePercent([]byte("%e2%82%ac+x"))
	require.NoError(t, err)
	require.Equal(t, "€+x", string(dec))
}

func TestPercentMalformed(t *testing.T) {
	for _, bad := range []string{"%", "%A", "%xy", "%E@", "abc%", "abc%4"} {
		out, err := DecodePercent([]byte(bad))
		require.Error(t, err, bad)
		require.Nil(t, out)
		require.IsType(t, &CorruptInputError{}, err)
	}
}

func TestForm(t *testing.T) {
	dec, err := DecodeForm([]byte("two+words%0D%0A"))
	require.NoError(t, err)
	require.Equal(t, "two words\r\n", string(dec))

	enc, err := EncodeForm(dec)
	require.NoError(t, err)
	require.Equal(t, "two+words%0D%0A", string(enc))

	enc, err = EncodeForm([]byte("a*b~c"))
	require.NoError(t, err)
	require.Equal(t, "a*b%7Ec", string(enc))

	for _, s := range []string{"#", "X?Y"} {
		dec, err := DecodeForm([]byte(s))
		require.NoError(t, err)
		require.Equal(t, s, string(dec))
	}

	for _, bad := range []string{"%", "%A", "%xy"} {
		_, err := DecodeForm([]byte(bad))
		require.Error(t, err, bad)
	}
}

func TestEscapeNil(t *testing.T) {
	for _, f := range []func([]byte) ([]byte, error){
		EncodeBase16, DecodeBase16, EncodePercent, DecodePercent, EncodeForm, DecodeForm,
		EncodeQuotedPrintable, DecodeQuotedPrintable,
	} {
		out, err := f(nil)
		require.NoError(t, err)
		require.Nil(t, out)

		out, err = f([]byte{})
		require.NoError(t, err)
		require.NotNil(t, out)
		require.Empty(t, out)
	}
}
