// Package spdx provides the SPDX 2.x document model used by spdxgraph and
// decoding of SPDX JSON and YAML documents.
//
// # Model
//
// A [Document] holds two ordered collections: packages and relationships.
// Only the fields needed to label and connect packages are decoded:
//
//   - SPDXID, name, versionInfo and packageFileName of every package
//   - externalRefs with their referenceType and referenceLocator
//   - spdxElementId, relationshipType and relatedSpdxElement of every relationship
//
// Absent optional fields decode to empty strings and are treated as "not
// present". Malformed records are not validated separately.
//
// # Decoding
//
// Use [ReadFile] to decode a file (format detected from the extension) or
// [Read] to decode from any io.Reader with an explicit [Format]:
//
//	doc, err := spdx.ReadFile("sbom.spdx.json", spdx.FormatAuto)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Known packages
//
// Relationships whose subject or object is not a package of the document
// (files, snippets, the document itself, external documents) carry no
// information for a package graph. [Document.KnownRelationships] drops them.
package spdx
