package catalog

import (
	"testing"
)

// validProductDoc returns a parsed document satisfying the product shape.
func validProductDoc() map[string]any {
	return map[string]any{
		"brand":     "Canon",
		"model":     "EOS R5",
		"full_name": "Canon EOS R5 Mirrorless Camera",
		"category":  "mirrorless",
		"active":    true,
		"pricing": map[string]any{
			"buy_min":     1800.0,
			"buy_max":     2300.0,
			"sell_target": 2800.0,
		},
	}
}

func TestClassifyProduct(t *testing.T) {
	if kind := Classify(validProductDoc()); kind != KindProduct {
		t.Errorf("expected KindProduct, got %v", kind)
	}
}

func TestClassifyMissingTopLevelKey(t *testing.T) {
	for _, key := range []string{"brand", "model", "full_name", "category", "pricing", "active"} {
		doc := validProductDoc()
		delete(doc, key)
		if kind := Classify(doc); kind != KindUnknown {
			t.Errorf("missing %q: expected KindUnknown, got %v", key, kind)
		}
	}
}

func TestClassifyMissingPricingKey(t *testing.T) {
	for _, key := range []string{"buy_min", "buy_max", "sell_target"} {
		doc := validProductDoc()
		delete(doc["pricing"].(map[string]any), key)
		if kind := Classify(doc); kind != KindUnknown {
			t.Errorf("missing pricing.%q: expected KindUnknown, got %v", key, kind)
		}
	}
}

func TestClassifyPricingNotMapping(t *testing.T) {
	doc := validProductDoc()
	doc["pricing"] = "cheap"
	if kind := Classify(doc); kind != KindUnknown {
		t.Errorf("expected KindUnknown, got %v", kind)
	}
}

func TestClassifyFilter(t *testing.T) {
	doc := map[string]any{
		"description": "words that disqualify a listing",
		"keywords":    []any{"broken", "parts only"},
	}
	if kind := Classify(doc); kind != KindFilter {
		t.Errorf("expected KindFilter, got %v", kind)
	}
}

func TestClassifyFilterKeywordsNotSequence(t *testing.T) {
	doc := map[string]any{"keywords": "broken"}
	if kind := Classify(doc); kind != KindUnknown {
		t.Errorf("expected KindUnknown, got %v", kind)
	}
}

// A document satisfying both shapes must classify as a product: the
// product test takes precedence.
func TestClassifyPrecedence(t *testing.T) {
	doc := validProductDoc()
	doc["keywords"] = []any{"telephoto"}
	if kind := Classify(doc); kind != KindProduct {
		t.Errorf("expected KindProduct, got %v", kind)
	}
	// Break the product shape and the same document becomes a filter.
	delete(doc, "brand")
	if kind := Classify(doc); kind != KindFilter {
		t.Errorf("expected KindFilter after removing brand, got %v", kind)
	}
}

func TestClassifyNonMapping(t *testing.T) {
	for name, doc := range map[string]any{
		"nil":      nil,
		"scalar":   "just a string",
		"sequence": []any{"a", "b"},
	} {
		if kind := Classify(doc); kind != KindUnknown {
			t.Errorf("%s: expected KindUnknown, got %v", name, kind)
		}
	}
}

func TestClassifyEmptyMapping(t *testing.T) {
	if kind := Classify(map[string]any{}); kind != KindUnknown {
		t.Errorf("expected KindUnknown, got %v", kind)
	}
}
