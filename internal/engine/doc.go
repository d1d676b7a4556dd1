// Package engine materializes project trees from template directories.
//
// A template is a directory carrying a template.json variables manifest
// plus payload files. Generate renders every payload file's content and
// path through text/template with the caller's resolved variable mapping.
// The manifest declares each variable with its engine-native default
// (lowest-precedence value) and is validated against an embedded JSON
// Schema before use.
package engine
