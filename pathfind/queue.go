package pathfind

// Entry is one key/cell pair held by a MinQueue.
type Entry struct {
	Key  int
	Cell Cell
}

// MinQueue is a binary min-heap of cells ordered by an int key. Next to the
// heap array it keeps a cell-to-index mapping, updated on every swap, so
// Contains and PeekKey are O(1) and DecreaseKey finds its element without
// scanning. A cell may be queued at most once at any time.
type MinQueue struct {
	elements []Entry
	mapping  map[Cell]int
}

// NewMinQueue builds a queue from the given pairs. The input does not have to
// be ordered, the heap is established bottom-up from the last internal node.
// Cells must be distinct.
func NewMinQueue(pairs ...Entry) *MinQueue {
	q := &MinQueue{
		elements: make([]Entry, 0, len(pairs)),
		mapping:  make(map[Cell]int, len(pairs)),
	}
	for _, p := range pairs {
		q.elements = append(q.elements, p)
		q.mapping[p.Cell] = len(q.elements) - 1
	}
	for i := parent(len(q.elements) - 1); i >= 0; i-- {
		q.minHeapify(i)
	}
	return q
}

// Len returns the number of queued cells.
func (q *MinQueue) Len() int {
	return len(q.elements)
}

// Insert adds a new cell with the given key. The cell must not already be in
// the queue.
func (q *MinQueue) Insert(key int, c Cell) {
	q.elements = append(q.elements, Entry{Key: key, Cell: c})
	q.mapping[c] = len(q.elements) - 1
	q.siftUp(len(q.elements) - 1)
}

// ExtractMin removes and returns the cell with the smallest key.
func (q *MinQueue) ExtractMin() (Cell, error) {
	if len(q.elements) == 0 {
		return Cell{}, ErrEmptyQueue
	}
	smallest := q.elements[0]
	last := len(q.elements) - 1
	q.elements[0] = q.elements[last]
	q.elements = q.elements[:last]
	delete(q.mapping, smallest.Cell)
	if len(q.elements) > 0 {
		q.mapping[q.elements[0].Cell] = 0
		q.minHeapify(0)
	}
	return smallest.Cell, nil
}

// DecreaseKey lowers the key of a queued cell and restores the heap order.
// Equal keys are accepted, a greater key fails with ErrKeyIncrease and
// leaves the queue untouched.
func (q *MinQueue) DecreaseKey(c Cell, newKey int) error {
	i, ok := q.mapping[c]
	if !ok {
		return ErrUnknownCell
	}
	if newKey > q.elements[i].Key {
		return ErrKeyIncrease
	}
	q.elements[i].Key = newKey
	q.siftUp(i)
	return nil
}

// Contains reports whether the cell is currently queued.
func (q *MinQueue) Contains(c Cell) bool {
	_, ok := q.mapping[c]
	return ok
}

// PeekKey returns the current key of a queued cell.
func (q *MinQueue) PeekKey(c Cell) (int, error) {
	i, ok := q.mapping[c]
	if !ok {
		return 0, ErrUnknownCell
	}
	return q.elements[i].Key, nil
}

func leftChild(i int) int { return 2*i + 1 }

func rightChild(i int) int { return 2*i + 2 }

func parent(i int) int { return (i - 1) / 2 }

// siftUp bubbles the element at i toward the root while its parent's key is
// strictly greater. Equal keys do not swap, so ties keep their positions.
func (q *MinQueue) siftUp(i int) {
	for i > 0 && q.elements[parent(i)].Key > q.elements[i].Key {
		p := parent(i)
		q.elements[i], q.elements[p] = q.elements[p], q.elements[i]
		q.mapping[q.elements[i].Cell] = i
		q.mapping[q.elements[p].Cell] = p
		i = p
	}
}

// minHeapify sinks the element at i, picking the smaller child and preferring
// the left one on equal keys.
func (q *MinQueue) minHeapify(i int) {
	for {
		lc := leftChild(i)
		rc := rightChild(i)
		smallest := i
		if lc < len(q.elements) && q.elements[lc].Key < q.elements[smallest].Key {
			smallest = lc
		}
		if rc < len(q.elements) && q.elements[rc].Key < q.elements[smallest].Key {
			smallest = rc
		}
		if smallest == i {
			return
		}
		q.elements[i], q.elements[smallest] = q.elements[smallest], q.elements[i]
		q.mapping[q.elements[i].Cell] = i
		q.mapping[q.elements[smallest].Cell] = smallest
		i = smallest
	}
}
