//-----------------------------------------------------------------------------

package crc

import "errors"

//-----------------------------------------------------------------------------

// ErrUnsupportedWidth is returned by NewProfile and NewEngine when the
// profile's Width does not match one of the three supported register sizes
// (16, 32 or 64), or does not match the bit size of the register type T the
// caller instantiated the generic engine with.
var ErrUnsupportedWidth = errors.New("crc: unsupported width")

// ErrInvalidProfile is returned by NewProfile when Polynomial, Initial or
// XorOut carries bits set above bit Width-1.
var ErrInvalidProfile = errors.New("crc: polynomial, initial or xor_out has bits set above width-1")

//-----------------------------------------------------------------------------
