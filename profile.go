//-----------------------------------------------------------------------------

package crc

import "math/bits"

//-----------------------------------------------------------------------------

// Uint constrains the register types a CRC engine can be instantiated over.
// The bit width of T doubles as the CRC's width W; this package only
// supports the three widths named in the spec, so T is never wider than the
// CRC it represents.
type Uint interface {
	uint16 | uint32 | uint64
}

// Kernel selects one of the five processing kernels an Engine can fold input
// through. All five kernels compute the same mathematical register update;
// they differ only in how many bytes they fold per inner-loop step.
type Kernel int

// The five kernels named in the spec. ByteKernel folds one byte per step;
// the word kernels fold 4, 8, 16 or 32 bytes per step via slicing-by-N
// table lookups (at width 64 the 1-word kernel folds 8, see blockSize).
const (
	ByteKernel Kernel = iota
	Word1Kernel
	Word2Kernel
	Word4Kernel
	Word8Kernel
)

//--------------------------------------

// String returns the short kernel name used in the spec ("byte", "1w", ...).
func (aKernel Kernel) String() string {
	switch aKernel {
	case ByteKernel:
		return "byte"
	case Word1Kernel:
		return "1w"
	case Word2Kernel:
		return "2w"
	case Word4Kernel:
		return "4w"
	case Word8Kernel:
		return "8w"
	default:
		return "unknown"
	}
}

// wordMultiplier returns the kernel's nominal word count (1, 2, 4 or 8),
// or 0 for ByteKernel.
func (aKernel Kernel) wordMultiplier() int {
	switch aKernel {
	case Word1Kernel:
		return 1
	case Word2Kernel:
		return 2
	case Word4Kernel:
		return 4
	case Word8Kernel:
		return 8
	default:
		return 0
	}
}

//-----------------------------------------------------------------------------

// Profile is an immutable description of a CRC variant: polynomial, initial
// register, output XOR mask, input/output reflection and a default kernel.
// Once constructed via NewProfile, a Profile's fields are never mutated by
// this package.
type Profile[T Uint] struct {
	// Name is a human-readable label, e.g. "CRC-32 (IEEE)". Informational only.
	Name string

	// Width is the register width in bits. Must equal the bit size of T.
	Width int

	// Polynomial is the generator polynomial in non-reflected representation,
	// high bit omitted.
	Polynomial T

	// Initial is the initial register value, non-reflected representation.
	Initial T

	// XorOut is XORed into the final digest.
	XorOut T

	// ReflectIn reflects each input byte before it is folded.
	ReflectIn bool

	// ReflectOut reflects the register before the final XOR.
	ReflectOut bool

	// DefaultKernel is the kernel an Engine uses until Tune or an explicit
	// ConsumeWith override selects a different one.
	DefaultKernel Kernel
}

//--------------------------------------

// String returns the profile's Name, or "<unnamed>" if it is empty.
func (aProfile Profile[T]) String() string {
	if aProfile.Name == "" {
		return "<unnamed>"
	}
	return aProfile.Name
}

//--------------------------------------

// bitSize returns the number of bits in T (16, 32 or 64).
func bitSize[T Uint]() int {
	var vZero T
	switch any(vZero).(type) {
	case uint16:
		return 16
	case uint32:
		return 32
	case uint64:
		return 64
	default:
		return 0
	}
}

//--------------------------------------

// allOnes returns the all-ones value of T, i.e. T's full-width mask.
func allOnes[T Uint]() T {
	return ^T(0)
}

//--------------------------------------

// NewProfile validates aWidth, aPoly, aInit and aXorOut and returns a Profile
// built from them. It fails with ErrUnsupportedWidth if aWidth does not
// match the bit size of T, and with ErrInvalidProfile if aPoly, aInit or
// aXorOut carries bits set above bit aWidth-1. Since aWidth must equal T's
// bit size, no value of type T can carry such bits, so the ErrInvalidProfile
// check never fires; it is retained for API parity with the spec.
func NewProfile[T Uint](aName string, aWidth int, aPoly, aInit, aXorOut T, aReflectIn, aReflectOut bool, aDefaultKernel Kernel) (Profile[T], error) {
	var vZero Profile[T]

	if aWidth != bitSize[T]() {
		return vZero, ErrUnsupportedWidth
	}

	vMask := allOnes[T]()
	if aWidth < bitSize[T]() {
		vMask = (T(1) << uint(aWidth)) - 1
	}
	if aPoly&^vMask != 0 || aInit&^vMask != 0 || aXorOut&^vMask != 0 {
		return vZero, ErrInvalidProfile
	}

	return Profile[T]{
		Name:          aName,
		Width:         aWidth,
		Polynomial:    aPoly,
		Initial:       aInit,
		XorOut:        aXorOut,
		ReflectIn:     aReflectIn,
		ReflectOut:    aReflectOut,
		DefaultKernel: aDefaultKernel,
	}, nil
}

//--------------------------------------

// mustProfile panics on error; used only by this package's own preset
// constructors, whose arguments are compile-time constants known to be
// valid.
func mustProfile[T Uint](aName string, aWidth int, aPoly, aInit, aXorOut T, aReflectIn, aReflectOut bool, aDefaultKernel Kernel) Profile[T] {
	vProfile, vErr := NewProfile(aName, aWidth, aPoly, aInit, aXorOut, aReflectIn, aReflectOut, aDefaultKernel)
	if vErr != nil {
		panic(vErr)
	}
	return vProfile
}

//-----------------------------------------------------------------------------

// reverseBits reverses the bit order of all of aValue's bits, i.e. T's full
// bit size. aWidth is not consulted; every caller passes a Profile Width,
// which always equals T's bit size.
func reverseBits[T Uint](aValue T, aWidth int) T {
	switch vTyped := any(aValue).(type) {
	case uint16:
		return T(bits.Reverse16(vTyped))
	case uint32:
		return T(bits.Reverse32(vTyped))
	case uint64:
		return T(bits.Reverse64(vTyped))
	default:
		_ = aWidth
		return aValue
	}
}

//-----------------------------------------------------------------------------
