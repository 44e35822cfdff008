package furniture

import "fmt"

// ModernFactory produces the modern family.
type ModernFactory struct{}

var _ Factory = ModernFactory{}

func (ModernFactory) CreateChair() Chair {
	return &ModernChair{}
}

func (ModernFactory) CreateTable() Table {
	return &ModernTable{}
}

func (ModernFactory) Variant() Variant { return Modern }

type ModernChair struct{}

func (*ModernChair) Describe() string {
	return "The result of the ModernChair."
}

func (*ModernChair) Variant() Variant { return Modern }

type ModernTable struct{}

// Describe keeps the historical output of the demo, typo included.
func (*ModernTable) Describe() string {
	return "The result of the ModerTable."
}

func (*ModernTable) Collaborate(chair Chair) string {
	return fmt.Sprintf("The result of the ModernTable collaborating with the (%s)", chair.Describe())
}

func (*ModernTable) Variant() Variant { return Modern }
