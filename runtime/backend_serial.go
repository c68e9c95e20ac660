package runtime

import "context"

// SerialBackend runs every phase on the calling goroutine. It is the
// reference implementation every other Backend is checked against and
// the default for small meshes where spinning up workers would cost more
// than it saves.
type SerialBackend struct{}

var _ Backend = SerialBackend{}

func (SerialBackend) ParallelFor(ctx context.Context, n int, f func(i int)) error {
	for i := 0; i < n; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		f(i)
	}
	return nil
}

func (SerialBackend) ParallelExclusiveScan(ctx context.Context, counts []uint64, out []uint64) (uint64, error) {
	if len(out) != len(counts) {
		return 0, ErrInvariantViolation
	}
	var running uint64
	for i, c := range counts {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		out[i] = running
		next := running + c
		if next < running {
			return 0, ErrOverflow
		}
		running = next
	}
	return running, nil
}

func (SerialBackend) Barrier(ctx context.Context) error {
	return ctx.Err()
}

func (SerialBackend) DeepCopy(dst, src []byte) {
	copy(dst, src)
}

func (SerialBackend) Workers() int { return 1 }
