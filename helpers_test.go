//-----------------------------------------------------------------------------

package crc

import (
	"path"
	"runtime"
	"time"
)

//-----------------------------------------------------------------------------

// funcName returns the function name of the calling function.
func funcName() string {
	vRet := "?"
	vPc, _, _, vOk := runtime.Caller(1)
	if vOk {
		vRet = path.Base(runtime.FuncForPC(vPc).Name())
	}
	return vRet
}

//-----------------------------------------------------------------------------

// fakeClock is a Clock whose Now() advances by the next entry in steps on
// every second call, i.e. once per start/end pair of readings (falling back
// to a constant step once steps is exhausted), so
// Tune's kernel "measurements" are fully deterministic in tests: callers can
// script exactly which kernel comes out fastest.
type fakeClock struct {
	current  time.Time
	steps    []time.Duration
	fallback time.Duration
	calls    int
}

func newFakeClock() *fakeClock {
	return &fakeClock{fallback: time.Millisecond}
}

// withElapsed scripts the elapsed time of the Nth Tune measurement (0 =
// ByteKernel, 1 = Word1Kernel, ...), in the order allKernels lists them.
func (aClock *fakeClock) withElapsed(aElapsed ...time.Duration) *fakeClock {
	aClock.steps = aElapsed
	return aClock
}

func (aClock *fakeClock) Now() time.Time {
	vStep := aClock.fallback
	vStepIndex := aClock.calls / 2
	if vStepIndex < len(aClock.steps) {
		vStep = aClock.steps[vStepIndex]
	}

	vIsEndOfPair := aClock.calls%2 == 1
	aClock.calls++

	if vIsEndOfPair {
		aClock.current = aClock.current.Add(vStep)
	}
	return aClock.current
}

//-----------------------------------------------------------------------------
