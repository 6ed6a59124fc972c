// Package themes lets a go-theme manifest override storefront sections.
//
// A theme overrides a section by declaring a template under the key
// "sections.<Name>" and one of its components under "sections.<Name>.<Component>".
// Template paths are resolved against the theme directory and compiled with
// html/template.
package themes
