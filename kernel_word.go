//-----------------------------------------------------------------------------

package crc

//-----------------------------------------------------------------------------

// runWordKernel folds aData through aEngine in blocks of aWords 32-bit
// words each (slicing-by-4*aWords, widened by blockSize), falling back to
// the byte kernel for any input shorter than one block and for the tail
// left over after the last full block.
func runWordKernel[T Uint](aEngine *Engine[T], aData []byte, aWords int) {
	vBlockBytes := blockSize(aEngine.profile.Width, aWords)

	vPos := 0
	for vPos+vBlockBytes <= len(aData) {
		aEngine.register = foldBlock(aEngine, aData[vPos:vPos+vBlockBytes])
		vPos += vBlockBytes
	}

	if vPos < len(aData) {
		runByteKernel(aEngine, aData[vPos:])
	}
}

//--------------------------------------

// blockSize returns the block length, in bytes, a word kernel with aWords
// 32-bit words folds per step. It is widened to cover the full register
// width when aWords*4 bytes would be narrower than the register itself
// (this only matters for the 1-word kernel at width 64), so
// that every register byte always lands inside the block it is absorbed
// into.
func blockSize(aWidth, aWords int) int {
	vRegisterBytes := aWidth / 8
	vMinWords := (vRegisterBytes + 3) / 4
	if aWords < vMinWords {
		aWords = vMinWords
	}
	return aWords * 4
}

//--------------------------------------

// registerByte returns byte index aIndex of aEngine's current register,
// counted from the end of the register that is about to be folded next:
// from the low byte outward when ReflectIn is set (the register shifts
// right), from the high byte outward otherwise (the register shifts left).
func registerByte[T Uint](aEngine *Engine[T], aIndex int) byte {
	if aEngine.profile.ReflectIn {
		return byte(aEngine.register >> uint(8*aIndex))
	}
	return byte(aEngine.register >> uint(aEngine.profile.Width-8-8*aIndex))
}

//--------------------------------------

// foldBlock computes the register update for one full block of input bytes
// in a single pass, using table rows 0..len(aBlock)-1. It implements the
// slicing-by-N identity described in the package's table-builder: rows are
// assigned back-to-front, with the last byte of the block (closest to "now")
// at row 0 and the first byte of the block at row len(aBlock)-1. The current
// register's bytes are XORed into the first registerBytes positions of the
// block before the row lookups, exactly where the byte kernel would have
// combined them had the block been folded one byte at a time.
//
// This is the byte kernel's update, unrolled over the whole block and
// re-expressed with the table's zero-padding rows standing in for the
// serial shifts a byte-at-a-time fold would otherwise perform; it relies on
// the CRC register update being linear over GF(2), which is also what makes
// the table-row recurrence itself valid.
func foldBlock[T Uint](aEngine *Engine[T], aBlock []byte) T {
	vRegisterBytes := aEngine.profile.Width / 8
	vLen := len(aBlock)
	vTable := &aEngine.table

	var vNewReg T
	for vIndex := 0; vIndex < vLen; vIndex++ {
		vByte := aBlock[vIndex]
		if vIndex < vRegisterBytes {
			vByte ^= registerByte(aEngine, vIndex)
		}
		vRow := vLen - 1 - vIndex
		vNewReg ^= vTable[vRow][vByte]
	}
	return vNewReg
}

//-----------------------------------------------------------------------------
