package furniture

import (
	"errors"
	"fmt"
	"strings"

	"github.com/stoewer/go-strcase"
)

// Variant names one family of products that are meant to be used together.
type Variant string

const (
	Modern    Variant = "modern"
	Victorian Variant = "victorian"
)

// ErrUnknownVariant is returned when a name does not resolve to a known family.
var ErrUnknownVariant = errors.New("unknown furniture variant")

// Variants returns the built-in families in declaration order.
func Variants() []Variant {
	return []Variant{Modern, Victorian}
}

// Chair is the first product of every family.
type Chair interface {
	Describe() string
}

// Table is the second product of every family. A table can work on its own
// or together with a chair.
type Table interface {
	Describe() string

	// Collaborate accepts any Chair, including one from another family.
	// Only chairs of the same variant are guaranteed to make sense.
	Collaborate(chair Chair) string
}

// Factory creates one chair and one table of a single variant.
type Factory interface {
	CreateChair() Chair
	CreateTable() Table
}

// Styled is implemented by every concrete product and factory in this
// package. It is kept out of Chair and Table so that callers can provide
// their own products without tagging them.
type Styled interface {
	Variant() Variant
}

// VariantOf reports the variant of v when v implements Styled.
func VariantOf(v any) (Variant, bool) {
	s, ok := v.(Styled)
	if !ok {
		return "", false
	}
	return s.Variant(), true
}

// ParseVariant resolves a user supplied name. Matching ignores case and
// accepts the concrete type names as well, so "Modern", "modern-table" and
// "VictorianFactory" all resolve.
func ParseVariant(name string) (Variant, error) {
	key := strcase.KebabCase(strings.TrimSpace(name))
	for _, suffix := range []string{"-factory", "-chair", "-table"} {
		key = strings.TrimSuffix(key, suffix)
	}
	for _, v := range Variants() {
		if key == string(v) {
			return v, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownVariant, name)
}

// NewFactory returns the concrete factory for v.
func NewFactory(v Variant) (Factory, error) {
	switch v {
	case Modern:
		return ModernFactory{}, nil
	case Victorian:
		return VictorianFactory{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownVariant, string(v))
	}
}
