package codec

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTableProvider_Aliases(t *testing.T) {
	p := Standard()
	ctx := context.Background()

	tests := map[string]string{
		"base16":                Base16,
		"Base16":                Base16,
		"HEX":                   Base16,
		"hexbinary":             Base16,
		"base64binary":          Base64,
		"Base64URLSafe":         Base64URL,
		"percent-encoded":       PercentEncoded,
		"WWW-Form-URLEncoded":   XWWWFormURLEncoded,
		"x-www-form-urlencoded": XWWWFormURLEncoded,
		"Quoted-Printable":      QuotedPrintable,
		"BASE32HEX":             Base32Hex,
	}
	for name, want := range tests {
		c := p.CodecForName(ctx, name)
		require.NotNil(t, c, name)
		require.Equal(t, want, c.Name(), name)
	}

	require.Nil(t, p.CodecForName(ctx, "rot13"))
	require.Nil(t, p.CodecForName(ctx, ""))

	require.Same(t, p.CodecForName(ctx, "hex"), p.CodecForName(ctx, "base16"))
}

func TestTableProvider_Codecs(t *testing.T) {
	names := []string{}
	for _, c := range Standard().Codecs(context.Background()) {
		names = append(names, c.Name())
	}
	require.Equal(t, []string{
		"base16", "base32", "base32hex", "base64", "base64url",
		"pct-encoded", "quoted-printable", "x-www-form-urlencoded",
	}, names)
}

func TestTableProvider_SingleInstantiation(t *testing.T) {
	var calls atomic.Int32
	release := make(chan struct{})
	p, err := NewTableProvider(nil, TableEntry{
		Name:    "slow",
		Aliases: []string{"sluggish"},
		Factory: func() (*Codec, error) {
			calls.Add(1)
			<-release
			return New("slow", []string{"sluggish"}, nil, nil)
		},
	})
	require.NoError(t, err)

	const workers = 32
	results := make([]*Codec, workers)
	var started, wg sync.WaitGroup
	started.Add(workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			name := "slow"
			if i%2 == 1 {
				name = "SLUGGISH"
			}
			started.Done()
			results[i] = p.CodecForName(context.Background(), name)
		}(i)
	}
	started.Wait()
	close(release)
	wg.Wait()

	require.Equal(t, int32(1), calls.Load())
	for _, c := range results {
		require.Same(t, results[0], c)
	}
}

func TestTableProvider_FactoryFailure(t *testing.T) {
	var calls atomic.Int32
	p, err := NewTableProvider(nil,
		TableEntry{Name: "flaky", Factory: func() (*Codec, error) {
			calls.Add(1)
			return nil, errors.New("no entropy")
		}},
		TableEntry{Name: "panicky", Factory: func() (*Codec, error) {
			panic("unreachable state")
		}},
		TableEntry{Name: "empty", Factory: func() (*Codec, error) {
			return nil, nil
		}},
		TableEntry{Name: "fine", Factory: func() (*Codec, error) {
			return New("fine", nil, nil, nil)
		}},
	)
	require.NoError(t, err)
	ctx := context.Background()

	require.Nil(t, p.CodecForName(ctx, "flaky"))
	require.Nil(t, p.CodecForName(ctx, "flaky"))
	require.Equal(t, int32(2), calls.Load())
	require.Nil(t, p.CodecForName(ctx, "panicky"))
	require.Nil(t, p.CodecForName(ctx, "empty"))

	codecs := p.Codecs(ctx)
	require.Len(t, codecs, 1)
	require.Equal(t, "fine", codecs[0].Name())
}

func TestNewTableProvider_Rejects(t *testing.T) {
	factory := func() (*Codec, error) { return nil, nil }

	_, err := NewTableProvider(nil, TableEntry{Name: "a"})
	require.Error(t, err)

	_, err = NewTableProvider(nil, TableEntry{Name: "a b", Factory: factory})
	require.ErrorIs(t, err, ErrIllegalCodecName)

	_, err = NewTableProvider(nil,
		TableEntry{Name: "a", Factory: factory},
		TableEntry{Name: "a", Factory: factory})
	require.Error(t, err)

	_, err = NewTableProvider(nil,
		TableEntry{Name: "a", Aliases: []string{"Shared"}, Factory: factory},
		TableEntry{Name: "b", Aliases: []string{"shared"}, Factory: factory})
	require.ErrorContains(t, err, "already used")
}
