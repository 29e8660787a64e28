// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package reclaim

import "errors"

// ErrTooManyThreads is returned by [Object.GetReader] and [Object.Reader]
// once the number of reader slots an Object has handed out (one per
// GetReader call, including the ones Reader makes for each new goroutine)
// would exceed the max-threads bound it was constructed with
// (see [WithMaxThreads]). Reader slots are never freed, so this is a
// hard, permanent limit for the lifetime of the Object.
var ErrTooManyThreads = errors.New("reclaim: exceeded maximum number of supported readers")

// ErrAllocationFailure is returned by [Object.UpdateFunc] when the
// caller-supplied constructor fails to produce a new value. The Object is
// left holding its previous value.
var ErrAllocationFailure = errors.New("reclaim: failed to construct replacement value")

// IsTooManyThreads reports whether err is or wraps [ErrTooManyThreads].
func IsTooManyThreads(err error) bool {
	return errors.Is(err, ErrTooManyThreads)
}

// IsAllocationFailure reports whether err is or wraps [ErrAllocationFailure].
func IsAllocationFailure(err error) bool {
	return errors.Is(err, ErrAllocationFailure)
}
