package linked

// Nodes - Access to the link fields and values of list nodes identified by handles of type H.
// A memory list uses node pointers as handles, a disk list uses file addresses.
type Nodes[H comparable] interface {
	// None - Returns the handle meaning "no node"
	None() H
	// Next - Returns the handle of the node after node
	Next(node H) (H, error)
	// SetNext - Links node to next
	SetNext(node, next H) error
	// SetPrevious - Back links node to previous
	SetPrevious(node, previous H) error
	// Value - Returns the value held by node
	Value(node H) (float64, error)
}

// Sort - Sorts the list starting at head in ascending order by relinking its nodes, and returns the
// new head and tail. Ties keep their original relative order. On error both returned handles are none.
//
// The split and merge steps only follow and rewrite next links, previous links are rebuilt in a single
// pass once the list is in order.
func Sort[H comparable](nodes Nodes[H], head H) (newHead, newTail H, err error) {
	none := nodes.None()

	newHead, err = sortChain(nodes, head)
	if err != nil {
		return none, none, err
	}

	newTail, err = relinkPrevious(nodes, newHead)
	if err != nil {
		return none, none, err
	}

	return
}

// sortChain - Recursively sorts the next linked chain starting at head and returns its new head
func sortChain[H comparable](nodes Nodes[H], head H) (H, error) {
	none := nodes.None()
	if head == none {
		return head, nil
	}

	next, err := nodes.Next(head)
	if err != nil || next == none {
		return head, err
	}

	middle, err := Middle(nodes, head)
	if err != nil {
		return none, err
	}

	// Split after the middle node
	right, err := nodes.Next(middle)
	if err != nil {
		return none, err
	}
	if err = nodes.SetNext(middle, none); err != nil {
		return none, err
	}

	left, err := sortChain(nodes, head)
	if err != nil {
		return none, err
	}
	right, err = sortChain(nodes, right)
	if err != nil {
		return none, err
	}

	return Merge(nodes, left, right)
}

// Middle - Returns the node where a chain starting at head is split, found with a slow handle advancing
// one link for every two links the fast handle advances. For an even number of nodes the middle is the
// last node of the first half.
func Middle[H comparable](nodes Nodes[H], head H) (slow H, err error) {
	none := nodes.None()
	slow = head

	fast, err := nodes.Next(head)
	if err != nil {
		return
	}

	for fast != none {
		fast, err = nodes.Next(fast)
		if err != nil {
			return
		}

		if fast != none {
			fast, err = nodes.Next(fast)
			if err != nil {
				return
			}

			slow, err = nodes.Next(slow)
			if err != nil {
				return
			}
		}
	}

	return
}

// Merge - Merges two ascending next linked chains into one by repeatedly taking the smaller head.
// On equal values the left chain's node is taken first. Previous links are left untouched.
func Merge[H comparable](nodes Nodes[H], left, right H) (head H, err error) {
	none := nodes.None()
	if left == none {
		return right, nil
	}
	if right == none {
		return left, nil
	}

	leftValue, err := nodes.Value(left)
	if err != nil {
		return
	}
	rightValue, err := nodes.Value(right)
	if err != nil {
		return
	}

	tail := none
	for left != none && right != none {
		var taken H
		if leftValue <= rightValue {
			taken = left
			left, err = nodes.Next(left)
			if err == nil && left != none {
				leftValue, err = nodes.Value(left)
			}
		} else {
			taken = right
			right, err = nodes.Next(right)
			if err == nil && right != none {
				rightValue, err = nodes.Value(right)
			}
		}
		if err != nil {
			return none, err
		}

		if tail == none {
			head = taken
		} else if err = nodes.SetNext(tail, taken); err != nil {
			return none, err
		}
		tail = taken
	}

	// One chain is exhausted, hang the rest of the other one on the tail
	rest := left
	if rest == none {
		rest = right
	}
	err = nodes.SetNext(tail, rest)

	return
}

// relinkPrevious - Walks the chain from head rewriting every previous link and returns the tail
func relinkPrevious[H comparable](nodes Nodes[H], head H) (tail H, err error) {
	none := nodes.None()
	tail = none

	for node := head; node != none; {
		if err = nodes.SetPrevious(node, tail); err != nil {
			return
		}

		tail = node
		node, err = nodes.Next(node)
		if err != nil {
			return
		}
	}

	return
}
