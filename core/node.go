package core

// Node is an append-only element of the backward path tree built during a
// search. Each non-root node holds exactly one parent reference; the root
// holds none. Parents are never mutated after a child is created, so a Node
// is immutable once constructed and safe to share.
//
// Action holds the incoming action that produced State from Parent.State;
// at the root it is the zero value of A and carries no meaning.
type Node[S comparable, A comparable] struct {
	State    S
	Parent   *Node[S, A]
	Action   A
	PathCost float64
	Depth    int
}

// NewRoot returns the path root for state s: no parent, zero cost, depth 0.
func NewRoot[S comparable, A comparable](s S) *Node[S, A] {
	return &Node[S, A]{State: s}
}

// Child applies action a to n's state via p and returns the resulting child
// node with accumulated path cost and incremented depth.
//
// Complexity: O(cost of p.Result + p.StepCost).
func (n *Node[S, A]) Child(p Problem[S, A], a A) (*Node[S, A], error) {
	next, err := p.Result(n.State, a)
	if err != nil {
		return nil, err
	}

	return &Node[S, A]{
		State:    next,
		Parent:   n,
		Action:   a,
		PathCost: n.PathCost + p.StepCost(n.State, a, next),
		Depth:    n.Depth + 1,
	}, nil
}

// Expand generates one child per action valid in n's state, in the order
// enumerated by p.Actions.
//
// Complexity: O(b) children for branching factor b.
func (n *Node[S, A]) Expand(p Problem[S, A]) ([]*Node[S, A], error) {
	actions := p.Actions(n.State)
	children := make([]*Node[S, A], 0, len(actions))

	var (
		a     A
		child *Node[S, A]
		err   error
	)
	for _, a = range actions {
		child, err = n.Child(p, a)
		if err != nil {
			return nil, err
		}
		children = append(children, child)
	}

	return children, nil
}

// Path reconstructs the root-to-n node sequence by following parent links
// and reversing.
//
// Complexity: O(depth) time and space.
func (n *Node[S, A]) Path() []*Node[S, A] {
	// Walk backwards, collecting nodes.
	path := make([]*Node[S, A], 0, n.Depth+1)
	for cur := n; cur != nil; cur = cur.Parent {
		path = append(path, cur)
	}

	// Reverse in place to obtain root-first order.
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// Actions returns the action sequence along the root-to-n path. The root
// contributes no action, so the result has length n.Depth.
func (n *Node[S, A]) Actions() []A {
	path := n.Path()
	actions := make([]A, 0, len(path)-1)
	for _, node := range path[1:] {
		actions = append(actions, node.Action)
	}

	return actions
}
