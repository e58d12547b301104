// Package argon2 implements the Argon2 memory-hard password-hashing
// function defined by RFC 9106, covering all three variants — Argon2d
// (data-dependent), Argon2i (data-independent), and Argon2id (hybrid) —
// at version 0x13.
//
// Use HashID (or the Hash convenience wrapper) unless you have a
// specific reason to pick a different variant: Argon2id gives the best
// balance of side-channel resistance and brute-force cost for password
// storage.
//
//	encoded, err := argon2.Hash([]byte("correct horse battery staple"), salt)
//	if err != nil {
//		log.Fatal(err)
//	}
//	ok, err := argon2.Verify(encoded, []byte("correct horse battery staple"))
//
// Hashing is CPU- and memory-bound and has no I/O; every exported
// function here blocks until the derivation completes. There is no
// streaming password input and no cancellation — a derivation always
// runs to completion.
package argon2
