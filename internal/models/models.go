package models

// ProductDetail describes one product of a family
type ProductDetail struct {
	ID          string `json:"id" yaml:"id"`     // e.g., "modern-chair"
	Kind        string `json:"kind" yaml:"kind"` // "chair" or "table"
	Type        string `json:"type" yaml:"type"` // Go type name
	Description string `json:"description" yaml:"description"`
}

// VariantDetail describes a whole family as produced by one factory
type VariantDetail struct {
	Variant       string        `json:"variant" yaml:"variant"`
	Factory       string        `json:"factory" yaml:"factory"`
	Chair         ProductDetail `json:"chair" yaml:"chair"`
	Table         ProductDetail `json:"table" yaml:"table"`
	Collaboration string        `json:"collaboration" yaml:"collaboration"`
}

// DemoLine is one line of client output
type DemoLine struct {
	Variant string `json:"variant" yaml:"variant"`
	Kind    string `json:"kind" yaml:"kind"` // "describe" or "collaborate"
	Text    string `json:"text" yaml:"text"`
}

// CreationStat counts products created through an instrumented factory
type CreationStat struct {
	Variant string `json:"variant" yaml:"variant"`
	Product string `json:"product" yaml:"product"`
	Count   int64  `json:"count" yaml:"count"`
}
