// Package block parses the body of a `columns` fenced block into a typed
// configuration and an ordered list of column segments.
//
// Any line containing a colon is configuration; every other line is content.
// Content is split into columns on lines holding only `---`.
package block
