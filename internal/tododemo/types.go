// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package tododemo is a small interactive TODO list built on top of the
// interceptor package: a stdin-reading bridge feeds raw input lines in as
// Input events, Input's handler parses the line into a command, and a
// runtime queue rewrite routes to the handler for that command.
package tododemo

// Task is a single TODO list entry.
type Task struct {
	Text string
	Done bool
}

// List is the ordered collection of tasks the demo keeps as its
// application state, shared across dispatches through a StateCell.
type List []Task
