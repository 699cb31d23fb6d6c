package pathfind

import "errors"

var (
	// ErrEmptyQueue is returned by ExtractMin on an empty queue. The engine
	// treats it as the exhausted-frontier signal, callers should never see it.
	ErrEmptyQueue = errors.New("pathfind: queue is empty")

	// ErrUnknownCell is returned when a queue operation names a cell that is
	// not currently queued.
	ErrUnknownCell = errors.New("pathfind: cell is not in the queue")

	// ErrKeyIncrease is returned by DecreaseKey when the new key is greater
	// than the current one. The queue is left unchanged.
	ErrKeyIncrease = errors.New("pathfind: new key must not be greater than current key")

	// ErrInvalidEndpoints is returned by Run when start or target is out of
	// bounds or not walkable.
	ErrInvalidEndpoints = errors.New("pathfind: invalid start or target")

	// ErrStepLimit is returned when a step limit set with WithStepLimit is
	// reached before the search finishes. Distinct from an unreachable
	// target, which is a normal result and not an error.
	ErrStepLimit = errors.New("pathfind: step limit reached")
)
