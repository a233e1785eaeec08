// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tododemo

import "github.com/pkg/errors"

var (
	errIndexMissing    = errors.New("tododemo: missing task index")
	errIndexNotANumber = errors.New("tododemo: task index is not a number")
	errIndexOutOfRange = errors.New("tododemo: task index out of range")
	errQuit            = errors.New("tododemo: quit requested")
)

// ErrQuit reports whether err is (or wraps) the quit sentinel.
func ErrQuit(err error) bool {
	return errors.Cause(err) == errQuit
}
