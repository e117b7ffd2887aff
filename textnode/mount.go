// Copyright (c) 2026, Inkwell Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package textnode

import (
	"github.com/inkwell-ui/inkwell/math32"
	"github.com/inkwell-ui/inkwell/shaped"
)

// Registry resolves view identifiers at the mount boundary. A view
// missing from the registry is skipped from the descendant list, and a
// mount targeting a missing view is a no-op.
type Registry interface {

	// Has reports whether the view with the given identifier exists
	// in the current view registry.
	Has(id string) bool
}

// Mount is the immutable payload handed to the host mount receiver:
// the target node identifier, the laid-out text with placeholder
// metadata stripped, the content frame, and the ordered resolved
// descendant view identifiers. Ownership of the layout transfers with
// the payload.
type Mount struct {
	NodeID      string
	Layout      *shaped.Lines
	Frame       math32.Box2
	Descendants []string
}

// MountReceiver is the host UI-mounting mechanism receiving finished
// layouts.
type MountReceiver interface {

	// MountText attaches the finished text layout and its descendant
	// views to the host view tree.
	MountText(m Mount)
}

// Scheduler posts a one-shot work item to the rendering thread. The
// work item captures its inputs by ownership transfer, so no shared
// mutable state is touched concurrently; this is the single
// cross-thread handoff point in the engine.
type Scheduler func(work func())

// dispatchMount posts the mount payload to the receiver through the
// scheduler, or runs it synchronously when no scheduler is configured.
// The target-existence check runs inside the work item, at mount time.
func (nd *Node) dispatchMount(lns *shaped.Lines, frame math32.Box2, descendants []string) {
	if nd.Receiver == nil {
		return
	}
	m := Mount{NodeID: nd.id, Layout: lns, Frame: frame, Descendants: descendants}
	reg := nd.Registry
	recv := nd.Receiver
	work := func() {
		if reg != nil && !reg.Has(m.NodeID) {
			return
		}
		recv.MountText(m)
	}
	if nd.Schedule != nil {
		nd.Schedule(work)
		return
	}
	work()
}
