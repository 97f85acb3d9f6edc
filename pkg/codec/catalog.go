package codec

import (
	"slices"
	"strings"
)

// Catalog is an immutable set of codecs keyed by canonical name, ignoring
// case, and ordered by name.
type Catalog struct {
	byName map[string]*Codec
	codecs []*Codec
}

func newCatalog() *Catalog {
	return &Catalog{byName: make(map[string]*Codec)}
}

// add keeps the first codec seen for a name.
func (c *Catalog) add(codec *Codec) bool {
	key := strings.ToLower(codec.Name())
	if _, ok := c.byName[key]; ok {
		return false
	}
	c.byName[key] = codec
	c.codecs = append(c.codecs, codec)
	return true
}

func (c *Catalog) seal() {
	slices.SortFunc(c.codecs, (*Codec).Compare)
}

func (c *Catalog) Len() int {
	return len(c.codecs)
}

// Names returns the canonical names in order.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.codecs))
	for i, codec := range c.codecs {
		names[i] = codec.Name()
	}
	return names
}

// Codecs returns the codecs in order.
func (c *Catalog) Codecs() []*Codec {
	return slices.Clone(c.codecs)
}

// Get looks up a codec by canonical name, ignoring case. Aliases are not
// considered.
func (c *Catalog) Get(name string) (*Codec, bool) {
	codec, ok := c.byName[strings.ToLower(name)]
	return codec, ok
}

func (c *Catalog) Contains(name string) bool {
	_, ok := c.Get(name)
	return ok
}
