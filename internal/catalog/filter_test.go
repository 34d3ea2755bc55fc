package catalog

import (
	"path/filepath"
	"testing"
)

func TestFilterTypeFromPath(t *testing.T) {
	tests := []struct {
		name string
		path string
		want FilterType
		ok   bool
	}{
		{"filename reject", "Products/Cameras/Matching/filters_reject.yml", FilterReject, true},
		{"filename boost", "Products/Cameras/Matching/filters_boost.yml", FilterBoost, true},
		{"ancestor dir reject", "Products/Reject/common.yml", FilterReject, true},
		{"ancestor dir boost", "Products/Boost/common.yml", FilterBoost, true},
		{"case insensitive", "Products/REJECT/Filters.YML", FilterReject, true},
		{"reject wins over boost", "Products/boost/filters_reject.yml", FilterReject, true},
		{"boost dir, reject file", "Products/reject/filters_boost.yml", FilterReject, true},
		{"neither", "Products/Cameras/Matching/filters_misc.yml", "", false},
		{"substring inside word", "Products/rejected_items/f.yml", FilterReject, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := FilterTypeFromPath(filepath.FromSlash(tt.path))
			if ok != tt.ok || got != tt.want {
				t.Errorf("FilterTypeFromPath(%q) = (%q, %v), want (%q, %v)",
					tt.path, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestParseFilter(t *testing.T) {
	data := []byte(`
description: legacy mounts we pay extra for
keywords:
  - telephoto
  - L-series
`)
	f, err := ParseFilter(data)
	if err != nil {
		t.Fatalf("ParseFilter failed: %v", err)
	}
	if f.Description != "legacy mounts we pay extra for" {
		t.Errorf("unexpected description: %q", f.Description)
	}
	if len(f.Keywords) != 2 || f.Keywords[0] != "telephoto" || f.Keywords[1] != "L-series" {
		t.Errorf("unexpected keywords: %v", f.Keywords)
	}
}

func TestParseFilterMalformed(t *testing.T) {
	if _, err := ParseFilter([]byte("keywords: [unclosed")); err == nil {
		t.Error("expected error for malformed YAML")
	}
}
