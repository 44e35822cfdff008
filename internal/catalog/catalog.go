package catalog

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/samber/lo"
	"github.com/stoewer/go-strcase"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/nic1611/furnctl/internal/models"
	"github.com/nic1611/furnctl/pkg/furniture"
)

// Decorator wraps a factory when it is registered.
type Decorator func(v furniture.Variant, f furniture.Factory) furniture.Factory

type entry struct {
	variant furniture.Variant
	name    string // type name of the undecorated factory
	factory furniture.Factory
}

// Catalog maps variant names to factories, keeping registration order.
type Catalog struct {
	entries    []entry
	decorators []Decorator
}

type Option func(*Catalog)

// WithDecorator wraps every factory registered after the option is applied.
func WithDecorator(d Decorator) Option {
	return func(c *Catalog) {
		c.decorators = append(c.decorators, d)
	}
}

func New(opts ...Option) *Catalog {
	c := &Catalog{}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Default returns a catalog holding the built-in families.
func Default(opts ...Option) *Catalog {
	c := New(opts...)
	for _, v := range furniture.Variants() {
		f, _ := furniture.NewFactory(v)
		c.Register(v, f)
	}
	return c
}

// Register adds f under v, replacing any factory already registered for v.
func (c *Catalog) Register(v furniture.Variant, f furniture.Factory) {
	v = furniture.Variant(strcase.KebabCase(string(v)))
	e := entry{variant: v, name: typeName(f), factory: f}
	for _, d := range c.decorators {
		e.factory = d(v, e.factory)
	}

	if _, i, ok := lo.FindIndexOf(c.entries, func(e entry) bool { return e.variant == v }); ok {
		c.entries[i] = e
		return
	}
	c.entries = append(c.entries, e)
}

// Variants lists registered variants in registration order.
func (c *Catalog) Variants() []furniture.Variant {
	return lo.Map(c.entries, func(e entry, _ int) furniture.Variant { return e.variant })
}

// Lookup resolves name to a registered factory.
func (c *Catalog) Lookup(name string) (furniture.Factory, error) {
	e, err := c.find(name)
	if err != nil {
		return nil, err
	}
	return e.factory, nil
}

// Factories resolves every name, failing on the first unknown one.
func (c *Catalog) Factories(names ...string) ([]furniture.Factory, error) {
	factories := make([]furniture.Factory, 0, len(names))
	for _, name := range names {
		f, err := c.Lookup(name)
		if err != nil {
			return nil, err
		}
		factories = append(factories, f)
	}
	return factories, nil
}

// Describe builds a summary of the family registered under name.
func (c *Catalog) Describe(name string) (models.VariantDetail, error) {
	e, err := c.find(name)
	if err != nil {
		return models.VariantDetail{}, err
	}

	chair := e.factory.CreateChair()
	table := e.factory.CreateTable()
	return models.VariantDetail{
		Variant:       string(e.variant),
		Factory:       e.name,
		Chair:         productDetail("chair", chair, chair.Describe()),
		Table:         productDetail("table", table, table.Describe()),
		Collaboration: table.Collaborate(chair),
	}, nil
}

// DisplayName formats a variant for humans, e.g. "art-deco" becomes "Art Deco".
func DisplayName(v furniture.Variant) string {
	return cases.Title(language.English).String(strings.ReplaceAll(string(v), "-", " "))
}

func (c *Catalog) find(name string) (entry, error) {
	key := furniture.Variant(strcase.KebabCase(strings.TrimSpace(name)))
	if e, ok := lo.Find(c.entries, func(e entry) bool { return e.variant == key }); ok {
		return e, nil
	}

	v, err := furniture.ParseVariant(name)
	if err != nil {
		return entry{}, err
	}
	if e, ok := lo.Find(c.entries, func(e entry) bool { return e.variant == v }); ok {
		return e, nil
	}
	return entry{}, fmt.Errorf("%w: %q is not registered", furniture.ErrUnknownVariant, name)
}

func productDetail(kind string, product any, description string) models.ProductDetail {
	name := typeName(product)
	return models.ProductDetail{
		ID:          strcase.KebabCase(name),
		Kind:        kind,
		Type:        name,
		Description: description,
	}
}

func typeName(v any) string {
	t := reflect.TypeOf(v)
	if t == nil {
		return ""
	}
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}
