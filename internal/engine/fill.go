package engine

import "sync"

// memory is the working arena: lanes*laneLength contiguous blocks,
// owned exclusively by one Derive call.
type memory struct {
	blocks     []Block
	lanes      uint32
	laneLength uint32
	segLength  uint32
}

func (m *memory) at(lane, index uint32) *Block {
	return &m.blocks[lane*m.laneLength+index]
}

// Derive runs the full Argon2 fill state machine and returns the
// requested number of output bytes. It allocates its own memory matrix,
// fills it pass-by-pass and slice-by-slice (lanes within a slice may run
// on up to ctx.Threads goroutines, synchronized at a barrier between
// slices), and squeezes the finalize XOR through H'.
func Derive(ctx *Context) []byte {
	h0 := initialHash(ctx)

	laneLength := ctx.Memory / ctx.Lanes
	m := &memory{
		blocks:     make([]Block, ctx.Memory),
		lanes:      ctx.Lanes,
		laneLength: laneLength,
		segLength:  laneLength / syncPoints,
	}

	for lane := uint32(0); lane < ctx.Lanes; lane++ {
		bootstrapLane(h0, lane, m.at(lane, 0), m.at(lane, 1))
	}

	fillMemory(m, ctx)

	out := finalize(m, ctx.OutLen)

	if ctx.ClearPassword {
		zero(ctx.Password)
	}
	if ctx.ClearSecret {
		zero(ctx.Secret)
	}

	return out
}

// zero overwrites every byte of b with zero using a plain store loop;
// it is a best-effort clear of the caller's buffer.
func zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

// fillMemory drives the (pass, slice, lane) loop. Every lane within a
// slice is independent — segment s+1 may read blocks segment s wrote in
// any lane, so the barrier between slices is mandatory; within a slice,
// lane order does not matter.
func fillMemory(m *memory, ctx *Context) {
	for pass := uint32(0); pass < ctx.Time; pass++ {
		for slice := uint32(0); slice < syncPoints; slice++ {
			runLanes(m, ctx, pass, slice)
		}
	}
}

// runLanes fills every lane's segment for one (pass, slice), bounding
// concurrency to ctx.Threads workers pulling lane indices off a shared
// channel, with a barrier at the end of the slice before the next one
// starts.
func runLanes(m *memory, ctx *Context, pass, slice uint32) {
	lanes := make(chan uint32, m.lanes)
	for lane := uint32(0); lane < m.lanes; lane++ {
		lanes <- lane
	}
	close(lanes)

	workers := ctx.Threads
	if workers > m.lanes {
		workers = m.lanes
	}

	var wg sync.WaitGroup
	for w := uint32(0); w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for lane := range lanes {
				fillSegment(m, ctx, pass, slice, lane)
			}
		}()
	}
	wg.Wait()
}

// fillSegment fills one lane's segment of one slice. Positions are
// written in strictly ascending order because each depends on the one
// before it; prev is always recomputed as (curr-1 mod laneLength)
// rather than carried as an incrementing cursor, since a cursor would
// need its own wraparound handling when curr itself wraps across the
// end of the lane.
func fillSegment(m *memory, ctx *Context, pass, slice, lane uint32) {
	start := uint32(0)
	if pass == 0 && slice == 0 {
		start = 2
	}

	var gen *addressGenerator
	if dataIndependent(ctx.Variant, pass, slice) {
		gen = newAddressGenerator(ctx.Variant, pass, lane, slice, ctx.Memory, ctx.Time)
	}

	segStart := slice * m.segLength
	for i := start; i < m.segLength; i++ {
		currIndex := segStart + i
		prevIndex := (currIndex + m.laneLength - 1) % m.laneLength

		curr := m.at(lane, currIndex)
		prev := m.at(lane, prevIndex)

		pos := position{pass: pass, lane: lane, slice: slice, index: i}
		j := pseudoRandomWord(ctx.Variant, pos, prev, gen, start)

		refLane, refIndex := indexAlpha(pos, j, m.segLength, m.laneLength, m.lanes)
		ref := m.at(refLane, refIndex)

		compress(prev, ref, curr, pass > 0)
	}
}

// finalize XORs the last block of every lane together and squeezes the
// result through H' to the requested output length.
func finalize(m *memory, outLen uint32) []byte {
	var f Block
	for lane := uint32(0); lane < m.lanes; lane++ {
		f.xor(m.at(lane, m.laneLength-1))
	}
	return hPrime(f.appendBytes(nil), outLen)
}
