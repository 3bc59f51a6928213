/*
Package ordered implements the storage engine of ordered containers: sets,
multisets, maps and multimaps kept in key order by a red-black tree.

# Storage

A Storage holds one tree and its node arena. Storages have copy-on-write value
semantics: Copy is O(1) and shares the tree with the original. The first
mutating operation on a shared storage clones the tree, so that no other
owner can observe the mutation. Sharing ends when an owner calls Release, or
when the garbage collector finds an owner unreachable.

# Indices

Positions in a storage are handed out as Index values. An index does not keep
its element alive. Instead it remembers which slot of which arena it
denotes, and in which generation. Erasing the element, or cloning the tree
underneath the index, invalidates it, and any later use is detected and
reported as ErrStale. Stale positions never silently denote another element.

# Checked and Unchecked Operations

Operations taking indices or bounds come in up to three flavours:

  - the plain form validates its arguments and panics with a *Fault if they
    are unusable. Programmer errors surface immediately and deterministically.
  - the Try form validates and returns the failure as an error.
  - the Unchecked form skips validation for hot paths. Passing invalid
    positions to it is a programmer error with undefined results.

# Ranges

Bounds (Start, End, Lower, Upper, Find, Before, After, Advanced) describe
positions symbolically and are resolved only when a range is consumed.
A resolved range is valid if its lower position does not come after its upper
position.

# Concurrency

A storage is not safe for concurrent use. Distinct storages sharing a tree
may be read from different goroutines, but mutating a storage which is used
by other goroutines requires external synchronization.

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
package ordered

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}
