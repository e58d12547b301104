package engine

// position locates one step of the fill state machine.
type position struct {
	pass  uint32
	lane  uint32
	slice uint32
	index uint32 // offset within the segment, i.e. within [0, segmentLength)
}

// addressGenerator produces the data-independent pseudo-random stream
// used by Argon2i and the first half of Argon2id's first pass. It
// regenerates its 128-word address block every addressesPerBlock
// positions.
type addressGenerator struct {
	input, address, zero Block
	counter              uint64
}

func newAddressGenerator(v Variant, pass, lane, slice, memoryBlocks, timeCost uint32) *addressGenerator {
	g := &addressGenerator{}
	g.input[0] = uint64(pass)
	g.input[1] = uint64(lane)
	g.input[2] = uint64(slice)
	g.input[3] = uint64(memoryBlocks)
	g.input[4] = uint64(timeCost)
	g.input[5] = uint64(v)
	return g
}

func (g *addressGenerator) refresh() {
	g.counter++
	g.input[6] = g.counter
	compress(&g.zero, &g.input, &g.address, false)
	compress(&g.zero, &g.address, &g.address, false)
}

func (g *addressGenerator) word(i uint32) uint64 {
	return g.address[i%addressesPerBlock]
}

// pseudoRandomWord returns J for position pos. For Argon2d, and for
// Argon2id past its data-independent window, J is the current segment's
// previous block's first word (data-dependent). Otherwise it is drawn
// from the address generator, which is refreshed every 128 positions
// including the segment's starting index.
func pseudoRandomWord(v Variant, pos position, prev *Block, gen *addressGenerator, start uint32) uint64 {
	if !dataIndependent(v, pos.pass, pos.slice) {
		return prev[0]
	}
	if pos.index == start || pos.index%addressesPerBlock == 0 {
		gen.refresh()
	}
	return gen.word(pos.index)
}

// indexAlpha computes the reference lane and in-lane index for J.
// segmentLength and laneLength are block counts; lanes is the total
// lane count.
//
// The reference-area-size arithmetic deliberately uses uint32 so that
// the "other lane, index 0" cases wrap exactly as the reference C
// implementation's unsigned subtraction does, rather than being
// "corrected" to a saturating form.
func indexAlpha(pos position, j uint64, segmentLength, laneLength, lanes uint32) (refLane, refIndex uint32) {
	refLane = uint32(j>>32) % lanes
	if pos.pass == 0 && pos.slice == 0 {
		refLane = pos.lane
	}
	sameLane := refLane == pos.lane

	var areaSize uint32
	switch {
	case pos.pass == 0 && pos.slice == 0:
		areaSize = pos.index - 1
	case pos.pass == 0 && sameLane:
		areaSize = pos.slice*segmentLength + pos.index - 1
	case pos.pass == 0:
		areaSize = pos.slice * segmentLength
		if pos.index == 0 {
			areaSize--
		}
	case sameLane:
		areaSize = laneLength - segmentLength + pos.index - 1
	default:
		areaSize = laneLength - segmentLength
		if pos.index == 0 {
			areaSize--
		}
	}

	x := uint64(uint32(j))
	x = (x * x) >> 32
	relative := uint64(areaSize) - 1 - ((uint64(areaSize) * x) >> 32)

	var startPosition uint32
	if pos.pass != 0 {
		if pos.slice != syncPoints-1 {
			startPosition = (pos.slice + 1) * segmentLength
		}
	}

	refIndex = (startPosition + uint32(relative)) % laneLength
	return refLane, refIndex
}
