// Package catalog defines the YAML file schemas for the product catalog
// and the structural classification of parsed documents.
//
// Two file kinds live side by side under the catalog root, distinguished
// purely by shape, never by location:
//
//	Products/Cameras/Canon/r5.yml            → ProductFile
//	Products/Cameras/Matching/filters_*.yml  → FilterFile
//
// Classification is order-sensitive: the product test runs before the
// filter test, so a document satisfying both shapes is a product. Filter
// files carry no type field of their own; the type (boost or reject) is
// inferred from the file path, see FilterTypeFromPath.
package catalog
