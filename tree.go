package huffstream

import (
	"bytes"
	"fmt"
	"io"

	"github.com/chronos-tachyon/huffstream/minheap"
)

// NodeID addresses a node within a Tree.
type NodeID int32

// NoNode is the NodeID of a missing child or of the root of an empty Tree.
const NoNode = NodeID(-1)

// MaxNodes is the largest number of nodes a Tree over the byte alphabet can
// have: 256 leaves and 255 internal nodes.
const MaxNodes = 2*NumSymbols - 1

// Tree is a Huffman code tree stored as an arena of nodes.  Every node is
// either a leaf, holding a Symbol, or an internal node with exactly two
// children.  A Tree whose root is a leaf is a valid single-symbol tree.
//
// The zero value is an empty Tree.
//
type Tree struct {
	nodes []treeNode
	root  NodeID
}

type treeNode struct {
	weight uint64
	left   NodeID
	right  NodeID
	symbol Symbol

	// key breaks weight ties during construction.  For a leaf it is the
	// leaf's own symbol; for an internal node it is inherited from the
	// child that was removed from the heap first.
	key Symbol
}

// BuildTree constructs the Huffman tree for the given frequencies.
//
// Leaves are ordered by (frequency, symbol).  The two lightest nodes are
// repeatedly combined, the first one removed becoming the left child, until
// a single root remains.  The result depends only on ft.  If ft is empty,
// the result is an empty Tree.
//
func BuildTree(ft *FrequencyTable) Tree {
	numSymbols := ft.NumSymbols()
	if numSymbols == 0 {
		return Tree{root: NoNode}
	}

	t := Tree{
		nodes: make([]treeNode, 0, 2*numSymbols-1),
		root:  NoNode,
	}

	h := minheap.New[NodeID](t.compare)
	for symbol := 0; symbol < NumSymbols; symbol++ {
		if count := ft.Counts[symbol]; count != 0 {
			h.Add(t.addLeaf(Symbol(symbol), count))
		}
	}

	for h.Len() > 1 {
		a := h.RemoveMin()
		b := h.RemoveMin()
		h.Add(t.addInternal(a, b))
	}

	t.root = h.RemoveMin()
	return t
}

// compare orders nodes by (weight, key).  It reads t.nodes through the
// receiver pointer, so it stays valid while nodes are appended.
func (t *Tree) compare(a, b NodeID) int {
	na, nb := &t.nodes[a], &t.nodes[b]
	switch {
	case na.weight < nb.weight:
		return -1
	case na.weight > nb.weight:
		return 1
	}
	return int(na.key) - int(nb.key)
}

func (t *Tree) addLeaf(symbol Symbol, weight uint64) NodeID {
	id := NodeID(len(t.nodes))
	t.nodes = append(t.nodes, treeNode{
		weight: weight,
		left:   NoNode,
		right:  NoNode,
		symbol: symbol,
		key:    symbol,
	})
	return id
}

func (t *Tree) addInternal(left, right NodeID) NodeID {
	id := NodeID(len(t.nodes))
	l, r := t.nodes[left], t.nodes[right]
	t.nodes = append(t.nodes, treeNode{
		weight: l.weight + r.weight,
		left:   left,
		right:  right,
		symbol: l.symbol,
		key:    l.key,
	})
	return id
}

// Empty returns true iff the Tree has no nodes.
func (t *Tree) Empty() bool {
	return len(t.nodes) == 0
}

// Len returns the number of nodes in the Tree.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// Root returns the root node, or NoNode for an empty Tree.
func (t *Tree) Root() NodeID {
	if len(t.nodes) == 0 {
		return NoNode
	}
	return t.root
}

// IsLeaf returns true iff id has no children.
func (t *Tree) IsLeaf(id NodeID) bool {
	return t.nodes[id].left == NoNode
}

// Symbol returns the symbol of a leaf.
func (t *Tree) Symbol(id NodeID) Symbol {
	return t.nodes[id].symbol
}

// Left returns the left child of id, or NoNode for a leaf.
func (t *Tree) Left(id NodeID) NodeID {
	return t.nodes[id].left
}

// Right returns the right child of id, or NoNode for a leaf.
func (t *Tree) Right(id NodeID) NodeID {
	return t.nodes[id].right
}

// Weight returns the aggregate frequency of the subtree rooted at id.
// Trees parsed by ReadTree carry no weights, so this is 0 for them.
func (t *Tree) Weight(id NodeID) uint64 {
	return t.nodes[id].weight
}

// NumLeaves returns the number of leaves, i.e. the number of distinct
// symbols the Tree can encode.
func (t *Tree) NumLeaves() int {
	// A full binary tree with n leaves has 2n-1 nodes.
	return (len(t.nodes) + 1) / 2
}

// Dump writes a programmer-readable debugging dump of the Tree to the given
// writer, one line per node in preorder.
func (t *Tree) Dump(w io.Writer) (int64, error) {
	var buf bytes.Buffer
	buf.WriteString("Tree{\n")
	if !t.Empty() {
		t.dumpNode(&buf, t.root, 1)
	}
	buf.WriteString("}\n")
	return buf.WriteTo(w)
}

func (t *Tree) dumpNode(buf *bytes.Buffer, id NodeID, depth int) {
	for i := 0; i < depth; i++ {
		buf.WriteByte('\t')
	}
	n := &t.nodes[id]
	if n.left == NoNode {
		fmt.Fprintf(buf, "Leaf(%s) weight=%d\n", n.symbol, n.weight)
		return
	}
	fmt.Fprintf(buf, "Internal weight=%d\n", n.weight)
	t.dumpNode(buf, n.left, depth+1)
	t.dumpNode(buf, n.right, depth+1)
}

// String returns a brief description of this Tree.
func (t Tree) String() string {
	if t.Empty() {
		return "(empty Huffman tree)"
	}
	return fmt.Sprintf("(Huffman tree with %d symbols, %d nodes)", t.NumLeaves(), t.Len())
}

var _ fmt.Stringer = Tree{}
