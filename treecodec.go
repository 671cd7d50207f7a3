package huffstream

import (
	"io"

	"github.com/chronos-tachyon/assert"
	"github.com/pkg/errors"
)

// Tags of the serialized tree grammar.
const (
	TagInternal byte = 'I'
	TagLeaf     byte = 'L'
)

// WriteTree serializes t in preorder.  An internal node is written as
// TagInternal followed by its left and then its right subtree; a leaf is
// written as TagLeaf followed by its symbol as a raw byte.
//
// It panics if t is empty.
//
func WriteTree(w io.ByteWriter, t *Tree) error {
	assert.Assertf(!t.Empty(), "WriteTree: empty tree")
	return t.writeNode(w, t.root)
}

func (t *Tree) writeNode(w io.ByteWriter, id NodeID) error {
	n := &t.nodes[id]
	if n.left == NoNode {
		if err := w.WriteByte(TagLeaf); err != nil {
			return err
		}
		return w.WriteByte(byte(n.symbol))
	}
	if err := w.WriteByte(TagInternal); err != nil {
		return err
	}
	if err := t.writeNode(w, n.left); err != nil {
		return err
	}
	return t.writeNode(w, n.right)
}

// ReadTree parses a tree written by WriteTree.  It consumes exactly the
// bytes of the tree and nothing more, so r is left positioned at whatever
// follows it.
//
// Errors caused by the encoding itself, including truncation, match
// ErrMalformedTree under errors.Is.
//
func ReadTree(r io.ByteReader) (Tree, error) {
	tr := treeReader{
		r: r,
		t: Tree{nodes: make([]treeNode, 0, 64), root: NoNode},
	}
	root, err := tr.readNode(0)
	if err != nil {
		return Tree{root: NoNode}, err
	}
	tr.t.root = root
	return tr.t, nil
}

type treeReader struct {
	r      io.ByteReader
	t      Tree
	offset int64
	seen   [NumSymbols]bool
}

func (tr *treeReader) readByte(what string) (byte, error) {
	ch, err := tr.r.ReadByte()
	switch {
	case err == io.EOF || err == io.ErrUnexpectedEOF:
		return 0, errors.Wrapf(ErrMalformedTree, "unexpected EOF reading %s at tree offset %d", what, tr.offset)
	case err != nil:
		return 0, errors.Wrapf(err, "failed to read %s at tree offset %d", what, tr.offset)
	}
	tr.offset++
	return ch, nil
}

func (tr *treeReader) readNode(depth int) (NodeID, error) {
	tag, err := tr.readByte("tag")
	if err != nil {
		return NoNode, err
	}

	switch tag {
	case TagLeaf:
		ch, err := tr.readByte("leaf symbol")
		if err != nil {
			return NoNode, err
		}
		symbol := Symbol(ch)
		if tr.seen[symbol] {
			return NoNode, errors.Wrapf(ErrMalformedTree, "duplicate leaf for symbol %s at tree offset %d", symbol, tr.offset-1)
		}
		tr.seen[symbol] = true
		return tr.t.addLeaf(symbol, 0), nil

	case TagInternal:
		// The children of a node at depth MaxCodeSize would have codes
		// longer than any tree over 256 symbols can produce.
		if depth >= MaxCodeSize {
			return NoNode, errors.Wrapf(ErrMalformedTree, "tree deeper than %d levels at tree offset %d", MaxCodeSize, tr.offset-1)
		}
		left, err := tr.readNode(depth + 1)
		if err != nil {
			return NoNode, err
		}
		right, err := tr.readNode(depth + 1)
		if err != nil {
			return NoNode, err
		}
		return tr.t.addInternal(left, right), nil

	default:
		return NoNode, errors.Wrapf(ErrMalformedTree, "unknown tag %q at tree offset %d", tag, tr.offset-1)
	}
}
