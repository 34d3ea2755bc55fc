package catalog

import (
	"testing"
)

const sampleProductYAML = `
brand: Canon
model: EOS R5
full_name: Canon EOS R5 Mirrorless Camera
category: mirrorless
active: true
pricing:
  buy_min: 1800
  buy_max: 2300
  sell_target: 2800
aliases:
  - R5
  - Canon R5
fuzzy_patterns:
  - "eos*r5"
`

func TestParseProduct(t *testing.T) {
	p, err := ParseProduct([]byte(sampleProductYAML))
	if err != nil {
		t.Fatalf("ParseProduct failed: %v", err)
	}
	if p.Brand != "Canon" || p.Model != "EOS R5" {
		t.Errorf("unexpected identity: %q %q", p.Brand, p.Model)
	}
	if p.FullName != "Canon EOS R5 Mirrorless Camera" {
		t.Errorf("unexpected full_name: %q", p.FullName)
	}
	if p.Pricing.BuyMin != 1800 || p.Pricing.BuyMax != 2300 || p.Pricing.SellTarget != 2800 {
		t.Errorf("unexpected pricing: %+v", p.Pricing)
	}
	if !p.Active {
		t.Error("expected active product")
	}
	if len(p.Aliases) != 2 {
		t.Errorf("expected 2 aliases, got %v", p.Aliases)
	}
	if len(p.FuzzyPatterns) != 1 {
		t.Errorf("expected 1 fuzzy pattern, got %v", p.FuzzyPatterns)
	}
}

func TestParseProductMissingIdentity(t *testing.T) {
	data := []byte(`
brand: ""
model: EOS R5
full_name: x
category: mirrorless
active: true
pricing: {buy_min: 1, buy_max: 2, sell_target: 3}
`)
	if _, err := ParseProduct(data); err == nil {
		t.Error("expected error for empty brand")
	}
}

func TestParseProductMalformed(t *testing.T) {
	if _, err := ParseProduct([]byte("brand: [unclosed")); err == nil {
		t.Error("expected error for malformed YAML")
	}
}
