// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package spin

// SeqlockReader is the read side of a sequence-locked value: Load returns
// a snapshot together with the sequence number observed around it, so the
// caller can detect a writer racing the read by comparing seq before and
// after copying out value. A seqlock writer is out of scope for this
// module (see DESIGN.md); [code.hybscloud.com/spin/reclaim.Object]
// provides a readers-never-block alternative for the same epoch-style
// read-mostly workload.
//
// An odd seq means a write is in progress and value must be discarded.
type SeqlockReader[T any] interface {
	Load() (value T, seq uint64)
}
