package catalog

// Kind is the classification of a parsed catalog document.
type Kind int

const (
	// KindUnknown indicates a document matching neither recognized schema.
	// Unknown documents are counted and skipped, never treated as errors.
	KindUnknown Kind = iota
	// KindProduct indicates a product definition file.
	KindProduct
	// KindFilter indicates a filter keyword file.
	KindFilter
)

// String returns a human-readable representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindProduct:
		return "product"
	case KindFilter:
		return "filter"
	default:
		return "unknown"
	}
}

// productKeys are the top-level keys every product file must carry.
var productKeys = []string{"brand", "model", "full_name", "category", "pricing", "active"}

// pricingKeys are the keys required inside the "pricing" mapping.
var pricingKeys = []string{"buy_min", "buy_max", "sell_target"}

// Classify decides what a parsed YAML document represents.
//
// The product test is checked first: loose duck-typed structures could in
// principle satisfy both shapes, and a document matching both must classify
// as a product. Anything that is not a mapping is unknown.
func Classify(doc any) Kind {
	m, ok := doc.(map[string]any)
	if !ok {
		return KindUnknown
	}
	if isProductShape(m) {
		return KindProduct
	}
	if isFilterShape(m) {
		return KindFilter
	}
	return KindUnknown
}

// isProductShape reports whether the mapping carries every required
// product key and a pricing sub-mapping with every required pricing key.
// Only presence is tested here; value validation happens on decode.
func isProductShape(m map[string]any) bool {
	for _, k := range productKeys {
		if _, ok := m[k]; !ok {
			return false
		}
	}
	pricing, ok := m["pricing"].(map[string]any)
	if !ok {
		return false
	}
	for _, k := range pricingKeys {
		if _, ok := pricing[k]; !ok {
			return false
		}
	}
	return true
}

// isFilterShape reports whether the mapping has a sequence-valued
// "keywords" key.
func isFilterShape(m map[string]any) bool {
	keywords, ok := m["keywords"]
	if !ok {
		return false
	}
	_, ok = keywords.([]any)
	return ok
}
