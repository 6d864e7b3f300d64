//-----------------------------------------------------------------------------

package crc

//-----------------------------------------------------------------------------

// Engine is a stateful CRC calculator: a profile, its derived table, a
// running register, and the kernel currently used by Consume. An Engine is
// not safe for concurrent mutation; concurrent reads of Digest on an Engine
// that is not being mutated are safe, since Digest does not mutate the
// register.
type Engine[T Uint] struct {
	profile      Profile[T]
	table        Table[T]
	register     T
	activeKernel Kernel
}

//--------------------------------------

// NewEngine builds an Engine from aProfile: it validates aProfile, derives
// the acceleration table, and resets the register to its initial value.
func NewEngine[T Uint](aProfile Profile[T]) (*Engine[T], error) {
	if aProfile.Width != bitSize[T]() {
		return nil, ErrUnsupportedWidth
	}

	vEngine := &Engine[T]{
		profile:      aProfile,
		table:        BuildTable(aProfile),
		activeKernel: aProfile.DefaultKernel,
	}
	vEngine.Reset()
	return vEngine, nil
}

//--------------------------------------

// mustEngine panics on error; used only by this package's own preset
// constructors.
func mustEngine[T Uint](aProfile Profile[T]) *Engine[T] {
	vEngine, vErr := NewEngine(aProfile)
	if vErr != nil {
		panic(vErr)
	}
	return vEngine
}

//-----------------------------------------------------------------------------

// Profile returns the profile this Engine was constructed with.
func (aEngine *Engine[T]) Profile() Profile[T] {
	return aEngine.profile
}

// ActiveKernel returns the kernel subsequent Consume calls will use.
func (aEngine *Engine[T]) ActiveKernel() Kernel {
	return aEngine.activeKernel
}

// SetKernel overrides the kernel used by future Consume calls, without
// affecting the current register.
func (aEngine *Engine[T]) SetKernel(aKernel Kernel) {
	aEngine.activeKernel = aKernel
}

//--------------------------------------

// Reset sets the register back to its initial value: Initial, reflected
// first if ReflectIn is set.
func (aEngine *Engine[T]) Reset() {
	if aEngine.profile.ReflectIn {
		aEngine.register = reverseBits(aEngine.profile.Initial, aEngine.profile.Width)
	} else {
		aEngine.register = aEngine.profile.Initial
	}
}

//--------------------------------------

// Consume folds aData into the register using the active kernel. It is a
// no-op for empty input, and may be called any number of times; consecutive
// calls compose exactly as a single call over the concatenation of their
// inputs would.
func (aEngine *Engine[T]) Consume(aData []byte) {
	aEngine.ConsumeWith(aData, aEngine.activeKernel)
}

// ConsumeWith folds aData into the register using aKernel for this call
// only; it does not change the Engine's active kernel.
func (aEngine *Engine[T]) ConsumeWith(aData []byte, aKernel Kernel) {
	if len(aData) == 0 {
		return
	}

	vWords := aKernel.wordMultiplier()
	if vWords == 0 {
		runByteKernel(aEngine, aData)
		return
	}
	runWordKernel(aEngine, aData, vWords)
}

//--------------------------------------

// Digest returns the current CRC value: the register, reflected if
// ReflectOut and ReflectIn disagree, XORed with XorOut. It does not mutate
// the register, so it may be read repeatedly or interleaved with Consume
// calls from the same (single-threaded) caller.
func (aEngine *Engine[T]) Digest() T {
	vReg := aEngine.register
	if aEngine.profile.ReflectOut != aEngine.profile.ReflectIn {
		vReg = reverseBits(vReg, aEngine.profile.Width)
	}
	return vReg ^ aEngine.profile.XorOut
}

//-----------------------------------------------------------------------------
