package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Node is a single UI element: panel, label, button. Class may hold several space-separated
// classes ("mode-button active"); ID matches #id rules.
// When Fixed is true the owner positions the node and CSS left/top/width/height are ignored.
type Node struct {
	Type   string
	Class  string
	ID     string
	Bounds rl.Rectangle
	Text   string
	Fixed  bool
}

// NewNode creates a node with type and optional class, id, and text.
func NewNode(typ, class, id, text string) *Node {
	return &Node{
		Type:  typ,
		Class: class,
		ID:    id,
		Text:  text,
	}
}
