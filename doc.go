//-----------------------------------------------------------------------------

// Package crc implements a generic, table-driven cyclic redundancy check
// engine. It supports arbitrary CRC parameterizations (polynomial, initial
// register, output XOR, input/output reflection) at register widths of 16,
// 32 and 64 bits, and exposes five processing kernels that trade table reach
// for throughput: a plain byte-at-a-time kernel and four slicing-by-N word
// kernels.
//
// More information about CRC parametrization can be found here -
// http://www.zlib.net/crc_v3.txt. A catalogue of named CRC algorithms and
// their parameters is at http://reveng.sourceforge.net/crc-catalogue/.
package crc

//-----------------------------------------------------------------------------
