package catalog

import (
	"fmt"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// FilterType distinguishes keyword filters that boost a match from
// keywords that reject one.
type FilterType string

const (
	// FilterReject marks keywords that disqualify a listing.
	FilterReject FilterType = "reject"
	// FilterBoost marks keywords that raise a listing's match score.
	FilterBoost FilterType = "boost"
)

// FilterFile represents a filter keyword list stored as YAML.
//
// The description is declared once per file and applies to every keyword
// in it. The filter type is not part of the document; it is inferred from
// the file path.
type FilterFile struct {
	Description string   `yaml:"description"`
	Keywords    []string `yaml:"keywords"`
}

// ParseFilter decodes raw YAML into a FilterFile.
func ParseFilter(data []byte) (*FilterFile, error) {
	var f FilterFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to decode filter: %w", err)
	}
	return &f, nil
}

// FilterTypeFromPath infers the filter type from a file path.
//
// The file name and the names of all ancestor directories are searched
// case-insensitively for the literal substrings "reject" and "boost";
// "reject" wins when both appear. A path segment cannot span a separator,
// so searching the slash-normalized path is equivalent to searching each
// segment. Returns ok=false when neither substring appears; such files
// are skipped by the orchestrator since a filter without a type is useless.
func FilterTypeFromPath(path string) (FilterType, bool) {
	p := strings.ToLower(filepath.ToSlash(path))
	if strings.Contains(p, "reject") {
		return FilterReject, true
	}
	if strings.Contains(p, "boost") {
		return FilterBoost, true
	}
	return "", false
}
