package Trees

// LinkedError is the panic value of inserting an element that is already linked.
type LinkedError struct {
	Elem any
}

func (e LinkedError) Error() string {
	return "Trees: element is already linked"
}

// UnlinkedError is the panic value of unlinking an element that isn't linked.
type UnlinkedError struct {
	Elem any
}

func (e UnlinkedError) Error() string {
	return "Trees: element isn't linked"
}

// ForeignError is the panic value of unlinking an element through a tree that doesn't contain it.
type ForeignError struct {
	Elem any
}

func (e ForeignError) Error() string {
	return "Trees: element is linked into another tree"
}
