// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package tododemo

import (
	"fmt"
	"io"
)

// Print is the Effect that writes a line to the demo's output stream.
type Print struct {
	W    io.Writer
	Text string
}

// Action writes Text followed by a newline to W.
func (p Print) Action() {
	fmt.Fprintln(p.W, p.Text)
}
