package codec

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Provider resolves codec names to codecs and enumerates the codecs it
// knows. Implementations must be safe for concurrent use. CodecForName
// returns nil when the provider does not know the name.
type Provider interface {
	CodecForName(ctx context.Context, name string) *Codec
	Codecs(ctx context.Context) []*Codec
}

// ProviderFunc adapts a lookup function to the Provider interface. It
// enumerates no codecs.
type ProviderFunc func(ctx context.Context, name string) *Codec

func (f ProviderFunc) CodecForName(ctx context.Context, name string) *Codec {
	return f(ctx, name)
}

func (f ProviderFunc) Codecs(context.Context) []*Codec {
	return nil
}

// Factory creates the codec for one table entry.
type Factory func() (*Codec, error)

// TableEntry registers one codec with a TableProvider.
type TableEntry struct {
	Name    string
	Aliases []string
	Factory Factory
}

// TableProvider is a Provider driven by a fixed table. Codecs are created
// on first lookup and cached for the lifetime of the provider; concurrent
// first lookups of the same name share a single instantiation.
type TableProvider struct {
	logger *zap.Logger

	// lower-cased canonical names and aliases to canonical name
	aliases   map[string]string
	factories map[string]Factory
	names     []string

	mu        sync.RWMutex
	instances map[string]*Codec
	flight    singleflight.Group
}

// NewTableProvider builds a provider from entries. Every name and alias must
// obey the name grammar and must not collide, ignoring case, with another
// entry.
func NewTableProvider(logger *zap.Logger, entries ...TableEntry) (*TableProvider, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	p := &TableProvider{
		logger:    logger,
		aliases:   make(map[string]string),
		factories: make(map[string]Factory, len(entries)),
		instances: make(map[string]*Codec, len(entries)),
	}
	for _, e := range entries {
		if e.Factory == nil {
			return nil, fmt.Errorf("codec %q has no factory", e.Name)
		}
		if _, ok := p.factories[e.Name]; ok {
			return nil, fmt.Errorf("codec %q registered twice", e.Name)
		}
		p.factories[e.Name] = e.Factory
		p.names = append(p.names, e.Name)

		for _, n := range append([]string{e.Name}, e.Aliases...) {
			if err := CheckName(n); err != nil {
				return nil, err
			}
			key := strings.ToLower(n)
			if prev, ok := p.aliases[key]; ok && prev != e.Name {
				return nil, fmt.Errorf("name %q of codec %q already used by codec %q", n, e.Name, prev)
			}
			p.aliases[key] = e.Name
		}
	}
	slices.SortFunc(p.names, compareFold)
	return p, nil
}

// Canonical maps name, ignoring case, to the canonical name of the entry it
// belongs to.
func (p *TableProvider) Canonical(name string) (string, bool) {
	cn, ok := p.aliases[strings.ToLower(name)]
	return cn, ok
}

func (p *TableProvider) CodecForName(_ context.Context, name string) *Codec {
	cn, ok := p.Canonical(name)
	if !ok {
		return nil
	}
	if c := p.cached(cn); c != nil {
		return c
	}

	v, err, _ := p.flight.Do(cn, func() (any, error) {
		if c := p.cached(cn); c != nil {
			return c, nil
		}
		c, err := p.instantiate(cn)
		if err != nil {
			return nil, err
		}
		p.mu.Lock()
		p.instances[cn] = c
		p.mu.Unlock()
		p.logger.Debug("instantiated codec", zap.String("codec", cn))
		return c, nil
	})
	if err != nil {
		p.logger.Warn("codec instantiation failed", zap.String("codec", cn), zap.Error(err))
		return nil
	}
	return v.(*Codec)
}

func (p *TableProvider) cached(cn string) *Codec {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.instances[cn]
}

func (p *TableProvider) instantiate(cn string) (c *Codec, err error) {
	defer func() {
		if r := recover(); r != nil {
			c, err = nil, &MalfunctionError{Codec: cn, Op: "instantiate", Cause: r}
		}
	}()
	c, err = p.factories[cn]()
	if err == nil && c == nil {
		err = fmt.Errorf("factory for codec %q returned no codec", cn)
	}
	return c, err
}

// Codecs instantiates and returns every codec in the table, ordered by
// canonical name. Entries whose factory fails are left out.
func (p *TableProvider) Codecs(ctx context.Context) []*Codec {
	out := make([]*Codec, 0, len(p.names))
	for _, cn := range p.names {
		if c := p.CodecForName(ctx, cn); c != nil {
			out = append(out, c)
		}
	}
	return out
}
