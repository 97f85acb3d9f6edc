// Package alias provides a codec provider that adds extra names for
// existing codecs. Each alias is resolved back through a registry. The
// registry skips its external providers for such nested lookups, so a
// target must be a built-in codec name or alias; aliases of aliases do not
// resolve.
package alias

import (
	"context"
	"fmt"
	"maps"
	"slices"
	"strings"

	"go.uber.org/zap"

	"github.com/rbuck/txtcodec/pkg/codec"
)

// Resolver looks up codecs by name. *codec.Registry satisfies it.
type Resolver interface {
	Lookup(ctx context.Context, name string) (*codec.Codec, error)
}

type Provider struct {
	resolver Resolver
	logger   *zap.Logger
	// lower-cased alias to target name
	targets map[string]string
	names   []string
}

// New validates aliases and returns a provider resolving them through r.
func New(r Resolver, aliases map[string]string, logger *zap.Logger) (*Provider, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	p := &Provider{
		resolver: r,
		logger:   logger,
		targets:  make(map[string]string, len(aliases)),
	}
	for _, name := range slices.Sorted(maps.Keys(aliases)) {
		target := aliases[name]
		if err := codec.CheckName(name); err != nil {
			return nil, fmt.Errorf("alias: %w", err)
		}
		if err := codec.CheckName(target); err != nil {
			return nil, fmt.Errorf("target of alias %q: %w", name, err)
		}
		key := strings.ToLower(name)
		if _, dup := p.targets[key]; dup {
			return nil, fmt.Errorf("alias %q defined twice", name)
		}
		p.targets[key] = target
		p.names = append(p.names, name)
	}
	return p, nil
}

// Target returns the codec name an alias stands for.
func (p *Provider) Target(name string) (string, bool) {
	t, ok := p.targets[strings.ToLower(name)]
	return t, ok
}

func (p *Provider) CodecForName(ctx context.Context, name string) *codec.Codec {
	target, ok := p.Target(name)
	if !ok {
		return nil
	}
	c, err := p.resolver.Lookup(ctx, target)
	if err != nil {
		p.logger.Debug("alias target did not resolve",
			zap.String("alias", name), zap.String("target", target), zap.Error(err))
		return nil
	}
	return c
}

// Codecs returns nothing: aliases name codecs that other providers
// already enumerate.
func (p *Provider) Codecs(context.Context) []*codec.Codec {
	return nil
}

// Names returns the alias names in sorted order.
func (p *Provider) Names() []string {
	return slices.Clone(p.names)
}
