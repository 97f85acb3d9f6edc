package codec

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"go.uber.org/zap"
)

// resolvingKey marks a context as being inside a walk over the external
// providers of a registry. Nested lookups on the same registry skip the
// external providers.
type resolvingKey struct{}

type cacheEntry struct {
	name  string
	codec *Codec
}

// Registry resolves codec names. The built-in provider is consulted first,
// then every registered provider in registration order. The most recent
// successful lookup is remembered in a single-slot cache.
type Registry struct {
	logger   *zap.Logger
	builtin  Provider
	useCache bool

	last atomic.Pointer[cacheEntry]

	mu        sync.RWMutex
	providers []Provider
}

type Option func(*Registry)

// WithBuiltin replaces the built-in provider. The default is Standard().
func WithBuiltin(p Provider) Option {
	return func(r *Registry) {
		r.builtin = p
	}
}

// WithProviders registers external providers in the given order.
func WithProviders(ps ...Provider) Option {
	return func(r *Registry) {
		r.providers = append(r.providers, ps...)
	}
}

func WithLogger(l *zap.Logger) Option {
	return func(r *Registry) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithoutCache disables the single-slot lookup cache.
func WithoutCache() Option {
	return func(r *Registry) {
		r.useCache = false
	}
}

func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		logger:   zap.NewNop(),
		builtin:  Standard(),
		useCache: true,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Register appends an external provider. Providers registered earlier win
// when several know the same name.
func (r *Registry) Register(p Provider) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.providers = append(r.providers, p)
}

// Providers returns the external providers in registration order.
func (r *Registry) Providers() []Provider {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]Provider(nil), r.providers...)
}

// Lookup resolves name, ignoring case, to a codec. It returns an
// *IllegalNameError when name does not obey the name grammar and an
// *UnsupportedCodecError when no provider knows it.
func (r *Registry) Lookup(ctx context.Context, name string) (*Codec, error) {
	if name == "" {
		return nil, CheckName(name)
	}
	// Nested lookups do not see external providers, so they must not see
	// what those providers put in the cache either.
	useCache := r.useCache && !r.nested(ctx)
	if useCache {
		if e := r.last.Load(); e != nil && e.name == name {
			return e.codec, nil
		}
	}

	c := r.builtin.CodecForName(ctx, name)
	if c == nil {
		c = r.lookupExternal(ctx, name)
	}
	if c == nil {
		if err := CheckName(name); err != nil {
			return nil, err
		}
		r.logger.Debug("codec not found", zap.String("name", name))
		return nil, &UnsupportedCodecError{Name: name}
	}

	if useCache {
		r.last.Store(&cacheEntry{name: name, codec: c})
	}
	return c, nil
}

// nested reports whether ctx belongs to a walk over r's external providers.
func (r *Registry) nested(ctx context.Context) bool {
	owner, _ := ctx.Value(resolvingKey{}).(*Registry)
	return owner == r
}

func (r *Registry) lookupExternal(ctx context.Context, name string) *Codec {
	if r.nested(ctx) {
		r.logger.Debug("skipping external providers for nested lookup", zap.String("name", name))
		return nil
	}
	ctx = context.WithValue(ctx, resolvingKey{}, r)
	for _, p := range r.Providers() {
		if c := p.CodecForName(ctx, name); c != nil {
			r.logger.Debug("codec resolved by external provider",
				zap.String("name", name), zap.String("codec", c.Name()))
			return c
		}
	}
	return nil
}

// ForName is Lookup with a background context.
func (r *Registry) ForName(name string) (*Codec, error) {
	return r.Lookup(context.Background(), name)
}

// IsSupported reports whether name resolves to a codec. An ill-formed name
// is reported as an error rather than as false.
func (r *Registry) IsSupported(ctx context.Context, name string) (bool, error) {
	_, err := r.Lookup(ctx, name)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, ErrUnsupportedCodec):
		return false, nil
	default:
		return false, err
	}
}

// AvailableCodecs returns a snapshot of every codec known to the registry.
// Built-in codecs are added first; an external codec whose name collides,
// ignoring case, with one already present is skipped.
func (r *Registry) AvailableCodecs(ctx context.Context) *Catalog {
	cat := newCatalog()
	for _, c := range r.builtin.Codecs(ctx) {
		cat.add(c)
	}
	for _, p := range r.Providers() {
		for _, c := range p.Codecs(ctx) {
			if !cat.add(c) {
				r.logger.Debug("external codec shadowed", zap.String("codec", c.Name()))
			}
		}
	}
	cat.seal()
	return cat
}

var defaultRegistry = sync.OnceValue(func() *Registry {
	return NewRegistry()
})

// Default returns the process-wide registry used by the package-level
// functions.
func Default() *Registry {
	return defaultRegistry()
}

func ForName(name string) (*Codec, error) {
	return Default().ForName(name)
}

func IsSupported(name string) (bool, error) {
	return Default().IsSupported(context.Background(), name)
}

func AvailableCodecs() *Catalog {
	return Default().AvailableCodecs(context.Background())
}

func Register(p Provider) {
	Default().Register(p)
}
