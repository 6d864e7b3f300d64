//-----------------------------------------------------------------------------

package crc

import "hash"

//-----------------------------------------------------------------------------

// This file adapts Engine to the standard library hash.Hash interface, the
// way both mbsulliv/crc16's Hash16 and npat-efault/crc16's Hash do for the
// fixed CRC-16 case; Hash here is generic over Engine's three widths
// instead of being duplicated per width.

// Hash extends hash.Hash with a typed Sum reader that avoids the byte-slice
// round trip Sum([]byte) forces on callers who just want the numeric CRC.
type Hash[T Uint] interface {
	hash.Hash
	SumValue() T
}

//--------------------------------------

type digest[T Uint] struct {
	engine *Engine[T]
}

//--------------------------------------

// Write adds more data to the running digest. It never returns an error.
func (aDigest *digest[T]) Write(aData []byte) (int, error) {
	aDigest.engine.Consume(aData)
	return len(aData), nil
}

//--------------------------------------

// Sum appends the current digest, most significant byte first, to aBuf and
// returns the resulting slice. It does not change the underlying digest
// state.
func (aDigest *digest[T]) Sum(aBuf []byte) []byte {
	vValue := aDigest.SumValue()
	vSize := aDigest.Size()
	for vByte := vSize - 1; vByte >= 0; vByte-- {
		aBuf = append(aBuf, byte(vValue>>uint(8*vByte)))
	}
	return aBuf
}

//--------------------------------------

// Reset resets the digest to its initial state.
func (aDigest *digest[T]) Reset() {
	aDigest.engine.Reset()
}

//--------------------------------------

// Size returns the number of bytes Sum will append.
func (aDigest *digest[T]) Size() int {
	return aDigest.engine.profile.Width / 8
}

//--------------------------------------

// BlockSize returns the hash's underlying block size.
func (aDigest *digest[T]) BlockSize() int {
	return 1
}

//--------------------------------------

// SumValue returns the CRC value accumulated so far.
func (aDigest *digest[T]) SumValue() T {
	return aDigest.engine.Digest()
}

//-----------------------------------------------------------------------------

// NewHash wraps aEngine in the standard library hash.Hash interface.
func NewHash[T Uint](aEngine *Engine[T]) Hash[T] {
	return &digest[T]{engine: aEngine}
}

//-----------------------------------------------------------------------------
