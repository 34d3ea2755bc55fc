package catalog

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// ProductFile represents a single product definition stored as YAML.
//
// Identity is the (brand, model) pair, compared as exact strings with no
// normalization. Aliases and fuzzy patterns are owned child collections:
// the database rows are replaced wholesale on every sync, so an empty or
// absent list means "no aliases", not "unchanged".
type ProductFile struct {
	Brand    string  `yaml:"brand"`
	Model    string  `yaml:"model"`
	FullName string  `yaml:"full_name"`
	Category string  `yaml:"category"`
	Pricing  Pricing `yaml:"pricing"`
	Active   bool    `yaml:"active"`

	Aliases       []string `yaml:"aliases"`
	FuzzyPatterns []string `yaml:"fuzzy_patterns"`
}

// Pricing holds the buy range and sell target for a product.
type Pricing struct {
	BuyMin     float64 `yaml:"buy_min"`
	BuyMax     float64 `yaml:"buy_max"`
	SellTarget float64 `yaml:"sell_target"`
}

// Validate checks that the product carries a usable identity.
// Non-identity fields are stored as-is; this layer imposes no further
// constraints on them.
func (p *ProductFile) Validate() error {
	if p.Brand == "" {
		return fmt.Errorf("brand is required")
	}
	if p.Model == "" {
		return fmt.Errorf("model is required")
	}
	return nil
}

// ParseProduct decodes raw YAML into a validated ProductFile.
// The caller is expected to have already classified the document as a
// product; decode or validation failures are record-level errors.
func ParseProduct(data []byte) (*ProductFile, error) {
	var p ProductFile
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("failed to decode product: %w", err)
	}
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("invalid product: %w", err)
	}
	return &p, nil
}
