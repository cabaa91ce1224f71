// Package template defines the template rendering seam used by markup output
// renderers, with a pongo2 backed implementation in the gotemplate package.
package template
