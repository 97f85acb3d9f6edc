package alias

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/rbuck/txtcodec/pkg/codec"
)

func newRegistry(t *testing.T, aliases map[string]string) (*codec.Registry, *Provider) {
	t.Helper()
	r := codec.NewRegistry(codec.WithoutCache())
	p, err := New(r, aliases, nil)
	require.NoError(t, err)
	r.Register(p)
	return r, p
}

func TestProvider_ResolvesThroughRegistry(t *testing.T) {
	r, p := newRegistry(t, map[string]string{
		"b32":   "base32",
		"mime":  "quoted-printable",
		"ident": "B32",
	})

	c, err := r.ForName("B32")
	require.NoError(t, err)
	require.Equal(t, codec.Base32, c.Name())

	c, err = r.ForName("mime")
	require.NoError(t, err)
	require.Equal(t, codec.QuotedPrintable, c.Name())

	target, ok := p.Target("MIME")
	require.True(t, ok)
	require.Equal(t, "quoted-printable", target)
	require.Equal(t, []string{"b32", "ident", "mime"}, p.Names())

	// aliases of aliases need a second walk over the external providers,
	// which the registry refuses for nested lookups
	_, err = r.ForName("ident")
	require.ErrorIs(t, err, codec.ErrUnsupportedCodec)
}

func TestProvider_AliasOfAliasWithCache(t *testing.T) {
	aliases := map[string]string{
		"b32":   "base32",
		"ident": "b32",
	}
	for _, cached := range []bool{true, false} {
		var r *codec.Registry
		if cached {
			r = codec.NewRegistry()
			p, err := New(r, aliases, nil)
			require.NoError(t, err)
			r.Register(p)
		} else {
			r, _ = newRegistry(t, aliases)
		}

		c, err := r.ForName("b32")
		require.NoError(t, err, "cached=%v", cached)
		require.Equal(t, codec.Base32, c.Name())

		_, err = r.ForName("ident")
		require.ErrorIs(t, err, codec.ErrUnsupportedCodec, "cached=%v", cached)
	}
}

func TestProvider_SelfReferenceTerminates(t *testing.T) {
	r, _ := newRegistry(t, map[string]string{
		"loop":  "loop",
		"ping":  "pong",
		"pong":  "ping",
		"ghost": "base85",
	})
	for _, name := range []string{"loop", "ping", "pong", "ghost"} {
		_, err := r.Lookup(context.Background(), name)
		require.ErrorIs(t, err, codec.ErrUnsupportedCodec, name)
	}
}

func TestProvider_DoesNotShadowCatalog(t *testing.T) {
	r, _ := newRegistry(t, map[string]string{"b64": "base64"})
	cat := r.AvailableCodecs(context.Background())
	require.Equal(t, 8, cat.Len())
	require.False(t, cat.Contains("b64"))
}

func TestNew_Validates(t *testing.T) {
	r := codec.NewRegistry()

	_, err := New(r, map[string]string{"bad name": "base64"}, nil)
	require.ErrorIs(t, err, codec.ErrIllegalCodecName)

	_, err = New(r, map[string]string{"ok": "bad/target"}, nil)
	require.ErrorIs(t, err, codec.ErrIllegalCodecName)

	_, err = New(r, map[string]string{"Dup": "base64", "dup": "base32"}, nil)
	require.ErrorContains(t, err, "defined twice")
}
