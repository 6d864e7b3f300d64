//-----------------------------------------------------------------------------

package crc

//-----------------------------------------------------------------------------

// runByteKernel folds aData into aEngine's register one byte at a time. It
// is the ground-truth kernel: every word kernel's output must match it
// bit-for-bit, and every word kernel's tail (the few bytes left over once no
// full block remains) is finished off by this same function.
func runByteKernel[T Uint](aEngine *Engine[T], aData []byte) {
	vReg := aEngine.register
	vTable0 := &aEngine.table[0]

	if aEngine.profile.ReflectIn {
		for _, vByte := range aData {
			vReg = (vReg >> 8) ^ vTable0[byte(vReg)^vByte]
		}
	} else {
		vShift := uint(aEngine.profile.Width - 8)
		for _, vByte := range aData {
			vReg = (vReg << 8) ^ vTable0[byte(vReg>>vShift)^vByte]
		}
	}

	aEngine.register = vReg
}

//-----------------------------------------------------------------------------
