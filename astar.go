package navkit

// openItem is a node queued for expansion by an A* search.
type openItem[K comparable] struct {
	key K
	f   float64
	h   float64
	g   float64
	seq int
}

// openSet is a min-heap of openItems for container/heap. Lower f wins; equal
// f prefers the node closer to the goal, then the one queued first.
type openSet[K comparable] []openItem[K]

func (o openSet[K]) Len() int { return len(o) }

func (o openSet[K]) Less(i, j int) bool {
	if o[i].f != o[j].f {
		return o[i].f < o[j].f
	}
	if o[i].h != o[j].h {
		return o[i].h < o[j].h
	}
	return o[i].seq < o[j].seq
}

func (o openSet[K]) Swap(i, j int) { o[i], o[j] = o[j], o[i] }

func (o *openSet[K]) Push(x any) { *o = append(*o, x.(openItem[K])) }

func (o *openSet[K]) Pop() any {
	old := *o
	n := len(old)
	item := old[n-1]
	*o = old[:n-1]
	return item
}
