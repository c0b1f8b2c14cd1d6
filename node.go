package genskema

// Kind identifies a schema node kind. The full combinator set is modeled as a
// closed enumeration up front: kinds the engine does not implement are still
// declared so reaching one produces a defined unsupported_kind issue instead
// of a silent fallthrough.
type Kind int

const (
	KindString Kind = iota
	KindNumber
	KindBool
	KindArray
	KindInterface // required properties
	KindPartial   // optional properties
	KindExact     // wraps a struct node and rejects unknown keys
	KindRefinement

	// Declared but not implemented by Decode/Encode or arb.Generator.
	KindUnknown
	KindVoid
	KindNull
	KindKeyOf
	KindLiteral
	KindRecord
	KindTuple
	KindUnion
	KindIntersection
)

var kindNames = [...]string{
	KindString:       "string",
	KindNumber:       "number",
	KindBool:         "bool",
	KindArray:        "array",
	KindInterface:    "interface",
	KindPartial:      "partial",
	KindExact:        "exact",
	KindRefinement:   "refinement",
	KindUnknown:      "unknown",
	KindVoid:         "void",
	KindNull:         "null",
	KindKeyOf:        "keyof",
	KindLiteral:      "literal",
	KindRecord:       "record",
	KindTuple:        "tuple",
	KindUnion:        "union",
	KindIntersection: "intersection",
}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "invalid"
	}
	return kindNames[k]
}

// Supported reports whether Decode/Encode and the generator implement k.
func (k Kind) Supported() bool { return k >= KindString && k <= KindRefinement }

// Field maps a property name to its schema node. Field order is preserved as
// written; it matters only for readability of produced values.
type Field struct {
	Name string
	Node *Node
}

// F is a convenience constructor for Field.
func F(name string, n *Node) Field { return Field{Name: name, Node: n} }

// Node describes the shape of a value. Nodes are immutable after
// construction and safe to share across goroutines.
type Node struct {
	kind     Kind
	name     string // brand identity; empty for plain nodes
	elem     *Node  // array/record element
	fields   []Field
	inner    *Node // exact wrapper / refinement target
	pred     func(any) bool
	variants []*Node // tuple/union/intersection members (held, not interpreted)
	literal  any     // literal value (held, not interpreted)
}

// Kind returns the structural tag of the node.
func (n *Node) Kind() Kind { return n.kind }

// Name returns the brand identity, or "" for plain nodes.
func (n *Node) Name() string { return n.name }

// Elem returns the element node of an array or record node, else nil.
func (n *Node) Elem() *Node { return n.elem }

// Inner returns the wrapped node of an exact or refinement node, else nil.
func (n *Node) Inner() *Node { return n.inner }

// Predicate returns the refinement predicate, or nil.
func (n *Node) Predicate() func(any) bool { return n.pred }

// Fields exposes the field mapping of the three struct kinds, unwrapping one
// exact level. It is a partial function by design: every other kind yields a
// defined Issues error.
func (n *Node) Fields() ([]Field, error) {
	switch n.kind {
	case KindInterface, KindPartial:
		return n.fields, nil
	case KindExact:
		if n.inner != nil && (n.inner.kind == KindInterface || n.inner.kind == KindPartial) {
			return n.inner.fields, nil
		}
		return nil, Issues{{Path: "/", Code: CodeInvalidType, Message: "exact must wrap a struct node"}}
	default:
		return nil, Issues{{Path: "/", Code: CodeInvalidType, Message: "no field mapping on kind " + n.kind.String()}}
	}
}

// ---- constructors (supported kinds) ----

// String returns a string leaf node.
func String() *Node { return &Node{kind: KindString} }

// Number returns a number leaf node.
func Number() *Node { return &Node{kind: KindNumber} }

// Bool returns a bool leaf node.
func Bool() *Node { return &Node{kind: KindBool} }

// Array returns an array node over elem.
func Array(elem *Node) *Node { return &Node{kind: KindArray, elem: elem} }

// Interface returns a struct node whose fields are all required.
func Interface(fields ...Field) *Node { return &Node{kind: KindInterface, fields: fields} }

// Partial returns a struct node whose fields are all optional.
func Partial(fields ...Field) *Node { return &Node{kind: KindPartial, fields: fields} }

// Exact wraps a struct node; decoding rejects keys the inner node does not declare.
func Exact(inner *Node) *Node { return &Node{kind: KindExact, inner: inner} }

// Refine narrows inner by pred. Decoding fails when pred rejects the decoded
// value; generation retries a bounded number of times.
func Refine(inner *Node, pred func(any) bool) *Node {
	return &Node{kind: KindRefinement, inner: inner, pred: pred}
}

// Named returns a copy of inner carrying the brand identity name. Name-based
// dispatch takes precedence over the structural kind in both the decoder and
// the generator.
func Named(name string, inner *Node) *Node {
	c := *inner
	c.name = name
	return &c
}

// ---- constructors (declared, unsupported) ----

// Unknown returns the unsupported unknown node.
func Unknown() *Node { return &Node{kind: KindUnknown} }

// Void returns the unsupported void node.
func Void() *Node { return &Node{kind: KindVoid} }

// Null returns the unsupported null node.
func Null() *Node { return &Node{kind: KindNull} }

// KeyOf returns the unsupported keyof node over a struct node.
func KeyOf(inner *Node) *Node { return &Node{kind: KindKeyOf, inner: inner} }

// Literal returns the unsupported literal node holding v.
func Literal(v any) *Node { return &Node{kind: KindLiteral, literal: v} }

// Record returns the unsupported record node over elem.
func Record(elem *Node) *Node { return &Node{kind: KindRecord, elem: elem} }

// Tuple returns the unsupported tuple node over members.
func Tuple(members ...*Node) *Node { return &Node{kind: KindTuple, variants: members} }

// Union returns the unsupported union node over variants.
func Union(variants ...*Node) *Node { return &Node{kind: KindUnion, variants: variants} }

// Intersection returns the unsupported intersection node over members.
func Intersection(members ...*Node) *Node {
	return &Node{kind: KindIntersection, variants: members}
}
