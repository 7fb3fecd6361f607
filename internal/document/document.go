// Package document defines the in-memory document tree produced by layout
// renderers. A tree is a pure data structure; serialization to bytes is the
// assembler's job.
package document

// Kind identifies the type of a tree node
type Kind string

// Node kinds
const (
	KindBox   Kind = "box"
	KindText  Kind = "text"
	KindImage Kind = "image"
)

// Section tags a node with its semantic role within the CV document.
// Tags let the assembler and tests locate sections without relying on
// visual structure.
type Section string

// Section tags
const (
	SectionHeader     Section = "header"
	SectionPhoto      Section = "photo"
	SectionSummary    Section = "summary"
	SectionExperience Section = "experience"
	SectionEducation  Section = "education"
	SectionSkills     Section = "skills"
	SectionLanguages  Section = "languages"
)

// Direction controls how a box lays out its children
type Direction string

// Box directions
const (
	Row    Direction = "row"
	Column Direction = "column"
)

// Insets holds per-side spacing in points
type Insets struct {
	Top    float64
	Right  float64
	Bottom float64
	Left   float64
}

// Uniform returns insets with the same value on every side
func Uniform(v float64) Insets {
	return Insets{Top: v, Right: v, Bottom: v, Left: v}
}

// IsZero reports whether all sides are zero
func (i Insets) IsZero() bool {
	return i.Top == 0 && i.Right == 0 && i.Bottom == 0 && i.Left == 0
}

// Border describes a single border edge
type Border struct {
	Width float64
	Color string
}

// Style holds the visual attributes of a node. Zero values mean "inherit or
// default"; the assembler only emits properties that are set.
type Style struct {
	FontSize      float64
	Bold          bool
	Italic        bool
	Color         string
	Background    string
	LineHeight    float64
	LetterSpacing float64
	Uppercase     bool
	TextAlign     string

	Direction Direction
	Wrap      bool
	Justify   string
	Align     string
	Gap       float64
	Grow      bool

	Padding      Insets
	Margin       Insets
	Border       Border
	BorderBottom Border
	BorderLeft   Border
	BorderRadius float64

	Width  float64
	Height float64

	// Absolute positioning (used by layouts that anchor the photo)
	Absolute bool
	Top      float64
	Right    float64
}

// Node is a single element of the document tree
type Node struct {
	Kind     Kind
	Tag      Section // optional semantic tag
	Text     string  // text content (KindText); carried unescaped
	Src      string  // image source URL (KindImage)
	Style    Style
	Children []*Node
}

// Tree is a complete document prior to serialization
type Tree struct {
	Title string
	Page  Style // page-level style (padding, base font size, colors)
	Root  *Node
}

// Box creates a container node
func Box(style Style, children ...*Node) *Node {
	return &Node{Kind: KindBox, Style: style, Children: children}
}

// Text creates a text node
func Text(text string, style Style) *Node {
	return &Node{Kind: KindText, Text: text, Style: style}
}

// Image creates an image node referencing an external URL
func Image(src string, style Style) *Node {
	return &Node{Kind: KindImage, Src: src, Style: style}
}

// Tagged returns the node with its semantic tag set
func (n *Node) Tagged(tag Section) *Node {
	n.Tag = tag
	return n
}

// Walk visits every node in depth-first order. Returning false from fn stops
// the walk.
func Walk(n *Node, fn func(*Node) bool) bool {
	if n == nil {
		return true
	}
	if !fn(n) {
		return false
	}
	for _, child := range n.Children {
		if !Walk(child, fn) {
			return false
		}
	}
	return true
}

// FindSection returns the first node tagged with the given section, or nil.
func (t *Tree) FindSection(tag Section) *Node {
	var found *Node
	Walk(t.Root, func(n *Node) bool {
		if n.Tag == tag {
			found = n
			return false
		}
		return true
	})
	return found
}

// Images returns every image node in the tree in document order.
func (t *Tree) Images() []*Node {
	var images []*Node
	Walk(t.Root, func(n *Node) bool {
		if n.Kind == KindImage {
			images = append(images, n)
		}
		return true
	})
	return images
}
