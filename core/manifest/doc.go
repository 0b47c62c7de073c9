// Package manifest loads the desired label set.
//
// A manifest is a list of labels, each with a name, a hex color and an optional
// description:
//
//	[
//	  {"name": "bug", "color": "#d73a4a", "description": "Something isn't working"},
//	  {"name": "wontfix", "color": "ffffff"}
//	]
//
// JSON is the default format. Files ending in .yml or .yaml are parsed as YAML
// with the same field names.
//
// Manifests are validated on load. Empty names, malformed colors and names that
// collide case-insensitively are rejected with a *reconcile.ConfigurationError.
package manifest
