package binarytree

import (
	"fmt"

	"github.com/algotrace/algotrace/trace"
)

// BuildFromPreIn reconstructs the unique binary tree whose preorder and
// inorder traversals are pre and in.
//
// Preconditions, checked before any node is built: equal lengths
// (ErrLengthMismatch), no duplicates within either sequence
// (ErrDuplicateValue, naming the value), and set equality between the two
// (ErrSequenceMismatch, naming the value). Node ids are allocated fresh per
// call, preorder-first.
func BuildFromPreIn(pre, in []int) (*Node, error) {
	if err := validatePair(pre, "preorder", in); err != nil {
		return nil, err
	}
	b := newTreeBuilder(in)
	return b.fromPreIn(pre, 0, len(in)-1)
}

// BuildFromPostIn reconstructs the unique binary tree whose postorder and
// inorder traversals are post and in. Preconditions as in BuildFromPreIn.
func BuildFromPostIn(post, in []int) (*Node, error) {
	if err := validatePair(post, "postorder", in); err != nil {
		return nil, err
	}
	b := newTreeBuilder(in)
	return b.fromPostIn(post, 0, len(in)-1)
}

// treeBuilder carries the inorder position index and the per-construction
// id allocator through the recursion.
type treeBuilder struct {
	pos map[int]int // value → index in the inorder sequence
	ids *trace.IDAlloc
}

func newTreeBuilder(in []int) *treeBuilder {
	pos := make(map[int]int, len(in))
	for i, v := range in {
		pos[v] = i
	}
	return &treeBuilder{pos: pos, ids: trace.NewIDAlloc()}
}

// fromPreIn builds the subtree for pre against the inorder window
// [inLo, inHi]. The window's root is pre[0]; its inorder index splits both
// sequences into left and right partitions.
func (b *treeBuilder) fromPreIn(pre []int, inLo, inHi int) (*Node, error) {
	if len(pre) == 0 || inLo > inHi {
		return nil, nil
	}
	rootVal := pre[0]
	k, err := b.rootIndex(rootVal, inLo, inHi)
	if err != nil {
		return nil, err
	}

	n := &Node{ID: b.ids.Next(), Value: rootVal}
	leftSize := k - inLo
	if n.Left, err = b.fromPreIn(pre[1:1+leftSize], inLo, k-1); err != nil {
		return nil, err
	}
	if n.Right, err = b.fromPreIn(pre[1+leftSize:], k+1, inHi); err != nil {
		return nil, err
	}
	return n, nil
}

// fromPostIn mirrors fromPreIn: the window's root is the last element of
// post, and the root is excluded from both partitions.
func (b *treeBuilder) fromPostIn(post []int, inLo, inHi int) (*Node, error) {
	if len(post) == 0 || inLo > inHi {
		return nil, nil
	}
	rootVal := post[len(post)-1]
	k, err := b.rootIndex(rootVal, inLo, inHi)
	if err != nil {
		return nil, err
	}

	n := &Node{ID: b.ids.Next(), Value: rootVal}
	leftSize := k - inLo
	if n.Left, err = b.fromPostIn(post[:leftSize], inLo, k-1); err != nil {
		return nil, err
	}
	if n.Right, err = b.fromPostIn(post[leftSize:len(post)-1], k+1, inHi); err != nil {
		return nil, err
	}
	return n, nil
}

// rootIndex looks up the root value's inorder index and defensively bounds
// it to the current window. Unreachable when the precondition checks passed,
// hence the dedicated sentinel rather than a panic.
func (b *treeBuilder) rootIndex(rootVal, inLo, inHi int) (int, error) {
	k, ok := b.pos[rootVal]
	if !ok || k < inLo || k > inHi {
		return 0, fmt.Errorf("%w: %d", ErrValueNotFound, rootVal)
	}
	return k, nil
}

// validatePair enforces the reconstruction preconditions for seq (named by
// seqName) against the inorder sequence.
func validatePair(seq []int, seqName string, in []int) error {
	if len(seq) != len(in) {
		return fmt.Errorf("%w: %s has %d values, inorder has %d",
			ErrLengthMismatch, seqName, len(seq), len(in))
	}
	seqSet, err := uniqueSet(seq, seqName)
	if err != nil {
		return err
	}
	inSet, err := uniqueSet(in, "inorder")
	if err != nil {
		return err
	}
	for v := range seqSet {
		if !inSet[v] {
			return fmt.Errorf("%w: %d appears in %s but not in inorder",
				ErrSequenceMismatch, v, seqName)
		}
	}
	for v := range inSet {
		if !seqSet[v] {
			return fmt.Errorf("%w: %d appears in inorder but not in %s",
				ErrSequenceMismatch, v, seqName)
		}
	}
	return nil
}

// uniqueSet builds the value set of seq, rejecting duplicates.
func uniqueSet(seq []int, seqName string) (map[int]bool, error) {
	set := make(map[int]bool, len(seq))
	for _, v := range seq {
		if set[v] {
			return nil, fmt.Errorf("%w: %d occurs twice in %s", ErrDuplicateValue, v, seqName)
		}
		set[v] = true
	}
	return set, nil
}
