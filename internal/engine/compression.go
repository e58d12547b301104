package engine

// fBlaMka mixes a, b using Argon2's variant of Blake2b's quarter round:
// the plain addition a+b is replaced by a+b+2*lo32(a)*lo32(b), which
// injects extra nonlinearity that Blake2b itself does not need since it
// also mixes in a message word.
func fBlaMka(x, y uint64) uint64 {
	lo := uint64(uint32(x)) * uint64(uint32(y))
	return x + y + 2*lo
}

func rotr64(x uint64, n uint) uint64 {
	return x>>n | x<<(64-n)
}

// quarterRound is Blake2b's G function with the message-word additions
// replaced by fBlaMka.
func quarterRound(a, b, c, d uint64) (uint64, uint64, uint64, uint64) {
	a = fBlaMka(a, b)
	d = rotr64(d^a, 32)
	c = fBlaMka(c, d)
	b = rotr64(b^c, 24)

	a = fBlaMka(a, b)
	d = rotr64(d^a, 16)
	c = fBlaMka(c, d)
	b = rotr64(b^c, 63)

	return a, b, c, d
}

// blakeRound applies one Blake2b round (column mixing, then diagonal
// mixing) to a 16-word group.
func blakeRound(v []uint64) {
	v[0], v[4], v[8], v[12] = quarterRound(v[0], v[4], v[8], v[12])
	v[1], v[5], v[9], v[13] = quarterRound(v[1], v[5], v[9], v[13])
	v[2], v[6], v[10], v[14] = quarterRound(v[2], v[6], v[10], v[14])
	v[3], v[7], v[11], v[15] = quarterRound(v[3], v[7], v[11], v[15])

	v[0], v[5], v[10], v[15] = quarterRound(v[0], v[5], v[10], v[15])
	v[1], v[6], v[11], v[12] = quarterRound(v[1], v[6], v[11], v[12])
	v[2], v[7], v[8], v[13] = quarterRound(v[2], v[7], v[8], v[13])
	v[3], v[4], v[9], v[14] = quarterRound(v[3], v[4], v[9], v[14])
}

// permute applies the Blake2-round-without-message permutation P to a
// full block: eight independent rounds over the 16-word column groups,
// then eight rounds over the rows formed from pairs of adjacent words.
func permute(r *Block) {
	for i := 0; i < QWordsPerBlock; i += 16 {
		blakeRound(r[i : i+16])
	}

	var row [16]uint64
	for i := 0; i < 8; i++ {
		for j := 0; j < 8; j++ {
			row[2*j] = r[2*i+16*j]
			row[2*j+1] = r[2*i+16*j+1]
		}
		blakeRound(row[:])
		for j := 0; j < 8; j++ {
			r[2*i+16*j] = row[2*j]
			r[2*i+16*j+1] = row[2*j+1]
		}
	}
}

// compress is Argon2's G (a.k.a. fill_block): it mixes prev and ref into
// curr. withXOR feeds the block's prior content back in, which every
// pass after the first requires.
func compress(prev, ref, curr *Block, withXOR bool) {
	var r Block
	r = *ref
	r.xor(prev)
	z := r

	permute(&r)

	r.xor(&z)
	if withXOR {
		r.xor(curr)
	}
	*curr = r
}
