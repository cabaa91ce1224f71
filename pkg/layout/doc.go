// Package layout turns a parsed block configuration into a grid container
// description and one style record per column, then hands each column's
// markdown to a MarkdownRenderer.
//
// Column styles cascade from the block's own values, then list entries indexed
// by column, then the global settings, and finally stay unset. Padding is only
// filled in automatically when the column draws a border or a shadow.
package layout
