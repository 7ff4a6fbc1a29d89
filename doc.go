/*
Package arrayvec provides a fixed-capacity vector backed by a single array.

Fixed capacity

A Vec stores up to a fixed number of elements. All storage is one backing
array, allocated at most once when the vector is created (or adopted from
the caller without any allocation) and never grown, shrunk or moved
afterwards. A logical length separates the live elements at the front from
the free slots behind them. Pushing and inserting fill free slots; popping,
truncating and draining vacate them again.

Go's built-in slices deliberately hide this kind of bookkeeping: append may
or may not reallocate, spare capacity is invisible, and removed elements
keep their backing memory alive until the slice itself goes away. For most
programs that is exactly right. Some workloads, however, want the opposite
trade: a hard upper bound that is part of the data structure's contract,
element memory whose address never changes, and an error, not a silent
reallocation, when the bound is hit. Parsers with bounded lookahead,
fixed-size sampling windows, free lists and embedded-style buffers are
typical clients.

Vec makes the bound explicit. Operations that may hit the capacity limit
come in two flavors: a Try form that reports failure as an error value
carrying the rejected element, and a plain form that treats overflow as a
programming error and panics. Everything else is ordinary, allocation-free
slice manipulation underneath.

Free slots hold the zero value of the element type. Every removing
operation zeroes the slots it vacates, so the vector never retains a hidden
reference to an element that was logically removed; removed means
collectible. The Check method verifies this discipline and is meant to run
in tests.

Draining

Drain removes a contiguous range of elements. It hands them out one at a
time, from either end, and closes the gap afterwards by sliding the
preserved tail of the vector down. This compaction runs exactly once, no
matter whether the caller consumed every element, abandoned the iteration
halfway, or left by way of a panic. The DrainSeq form wraps the protocol
into a range-over-func loop so the guarantee is structural rather than a
caller duty.

arrayvec focuses on workloads with a known bound. When capacity
requirements are open-ended, plain slices and append are the better tool.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package arrayvec

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}
