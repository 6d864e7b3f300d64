//-----------------------------------------------------------------------------

package crc

import (
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
)

//-----------------------------------------------------------------------------

// TestResetIdempotence checks property 5: after Reset, the digest of empty
// input equals Initial XOR XorOut, modulo the reflection rules in the
// digest formula.
func TestResetIdempotence(aT *testing.T) {
	Convey(funcName(), aT, func() {
		Convey(ProfileCRC32IEEE.Name, func() {
			vEngine := CRC32()
			vEngine.Consume([]byte("perturb the register first"))
			vEngine.Reset()

			vRegister := ProfileCRC32IEEE.Initial
			if ProfileCRC32IEEE.ReflectIn {
				vRegister = reverseBits(vRegister, 32)
			}
			vWant := vRegister
			if ProfileCRC32IEEE.ReflectOut != ProfileCRC32IEEE.ReflectIn {
				vWant = reverseBits(vWant, 32)
			}
			vWant ^= ProfileCRC32IEEE.XorOut

			So(vEngine.Digest(), ShouldEqual, vWant)
		})

		Convey(ProfileCRC16CCITTFalse.Name, func() {
			vEngine := CRC16CCITT()
			vEngine.Consume([]byte("perturb the register first"))
			vEngine.Reset()

			// CCITT-FALSE reflects neither direction, so reflection drops
			// out of the digest formula entirely.
			So(vEngine.Digest(), ShouldEqual, ProfileCRC16CCITTFalse.Initial^ProfileCRC16CCITTFalse.XorOut)
		})
	})
}

//--------------------------------------

// TestTuneNeutrality checks property 6: tuning never changes the digest a
// subsequent Consume+Digest pair would have produced on a fresh engine.
func TestTuneNeutrality(aT *testing.T) {
	Convey(funcName(), aT, func() {
		vData := randomBytes(7, 3000)

		vFresh := CRC32()
		vFresh.Consume(vData)
		vWant := vFresh.Digest()

		vTuned := CRC32()
		vTuned.tuneWithClock(256, 4, newFakeClock().withElapsed(
			5*time.Millisecond, 4*time.Millisecond, 3*time.Millisecond, 2*time.Millisecond, 1*time.Millisecond,
		))
		So(vTuned.ActiveKernel(), ShouldEqual, Word8Kernel)

		vTuned.Consume(vData)
		So(vTuned.Digest(), ShouldEqual, vWant)
	})
}

//-----------------------------------------------------------------------------
