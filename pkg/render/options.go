package render

// RenderOptions describe per-block data renderers can use without changing the
// derived layout.
type RenderOptions struct {
	// SourcePath identifies the document the block came from. Renderers use
	// it to resolve relative links and embeds.
	SourcePath string
	// BlockIndex is the zero-based position of the block within its document.
	BlockIndex int
	// Width is the total number of terminal cells available to text
	// renderers. Zero lets the renderer pick.
	Width int
}
