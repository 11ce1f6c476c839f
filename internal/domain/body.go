package domain

// body is a ring-buffer deque of cells, head first. It grows by doubling and
// never shrinks.
type body struct {
	cells []Coord
	start int
	n     int
}

func newBody(cells ...Coord) *body {
	size := 8
	for size < len(cells) {
		size *= 2
	}
	b := &body{cells: make([]Coord, size)}
	for _, c := range cells {
		b.pushBack(c)
	}
	return b
}

func (b *body) len() int {
	return b.n
}

func (b *body) at(i int) Coord {
	if i < 0 || i >= b.n {
		panic("snake body: index out of range")
	}
	return b.cells[(b.start+i)%len(b.cells)]
}

func (b *body) front() Coord {
	if b.n == 0 {
		panic("snake body: front of empty body")
	}
	return b.cells[b.start]
}

func (b *body) pushFront(c Coord) {
	b.grow()
	b.start = (b.start - 1 + len(b.cells)) % len(b.cells)
	b.cells[b.start] = c
	b.n++
}

func (b *body) pushBack(c Coord) {
	b.grow()
	b.cells[(b.start+b.n)%len(b.cells)] = c
	b.n++
}

func (b *body) popBack() Coord {
	if b.n == 0 {
		panic("snake body: pop from empty body")
	}
	b.n--
	return b.cells[(b.start+b.n)%len(b.cells)]
}

func (b *body) contains(c Coord) bool {
	for i := 0; i < b.n; i++ {
		if b.at(i).Equals(c) {
			return true
		}
	}
	return false
}

func (b *body) slice() []Coord {
	out := make([]Coord, b.n)
	for i := range out {
		out[i] = b.at(i)
	}
	return out
}

func (b *body) grow() {
	if b.n < len(b.cells) {
		return
	}
	cells := make([]Coord, len(b.cells)*2)
	for i := 0; i < b.n; i++ {
		cells[i] = b.at(i)
	}
	b.cells = cells
	b.start = 0
}
