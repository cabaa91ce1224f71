// Package processor finds fenced code blocks in a markdown document and hands
// each one to the handler registered for its language. The columns handler
// splits the block, composes its layout and renders it with an output
// renderer.
package processor
