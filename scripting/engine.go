package scripting

import (
	"context"
)

// Engine represents a scripting engine (e.g., JavaScript).
type Engine interface {
	// Execute executes a script in the context of the document.
	Execute(ctx context.Context, script string) (interface{}, error)

	// RegisterDocument registers the document object model with the engine.
	RegisterDocument(dom DocumentDOM) error
}

// DocumentDOM exposes a document tree to the scripting engine. It provides
// a safe, controlled API for scripts to read and edit the document.
type DocumentDOM interface {
	// NodeCount returns the number of descendants in the tree.
	NodeCount() int

	// PlainText returns the concatenated text content.
	PlainText() string

	// TextAt returns the content of the text node at path.
	TextAt(path []int) (string, error)

	// ReplaceTextAt replaces the content of the text node at path.
	ReplaceTextAt(path []int, content string) error

	// TextPaths lists the path of every text node in document order.
	TextPaths() [][]int
}
