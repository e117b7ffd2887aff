// Copyright (c) 2026, Inkwell Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package textnode

import (
	"testing"

	"github.com/inkwell-ui/inkwell/flex"
	"github.com/inkwell-ui/inkwell/math32"
	"github.com/inkwell-ui/inkwell/shaped"
	"github.com/stretchr/testify/assert"
)

func unboundedSize() math32.Vector2 {
	return math32.Vec2(math32.Infinity, math32.Infinity)
}

// stubEmbed is a fixed-size embedded view recording its layout calls.
type stubEmbed struct {
	id       string
	size     math32.Vector2
	measures int
	frames   []EmbedFrame
}

func (se *stubEmbed) ID() string { return se.id }

func (se *stubEmbed) Measure(max math32.Vector2) math32.Vector2 {
	se.measures++
	return se.size
}

func (se *stubEmbed) Layout(f EmbedFrame) {
	se.frames = append(se.frames, f)
}

// stubRegistry resolves a fixed identifier set.
type stubRegistry map[string]bool

func (sr stubRegistry) Has(id string) bool { return sr[id] }

// stubReceiver records mounted payloads.
type stubReceiver struct {
	mounts []Mount
}

func (sr *stubReceiver) MountText(m Mount) {
	sr.mounts = append(sr.mounts, m)
}

// mountFrame measures the node unbounded and returns the content frame
// at the measured size.
func mountFrame(nd *Node) math32.Box2 {
	sz := nd.Measure(flex.Undefined, flex.Unbounded, flex.Undefined, flex.Unbounded)
	return math32.B2(0, 0, sz.Width, sz.Height)
}

func TestEmbeddedLayout(t *testing.T) {
	nd := NewNode("txt1", shaped.NewShaper())
	em := &stubEmbed{id: "img1", size: math32.Vec2(40, 30)}
	nd.AddText("a", nil)
	nd.AddEmbedded(em)
	nd.AddText("b", nil)

	frame := mountFrame(nd)
	assert.Greater(t, em.measures, 0, "embeds are measured during text build")

	nd.PerformMount(frame, math32.Vec2(5, 7))
	assert.Equal(t, 1, len(em.frames))
	f := em.frames[0]
	assert.Equal(t, DisplayFlow, f.Display)
	assert.InDelta(t, 40, f.Rect.Size().X, 0.001)
	assert.InDelta(t, 30, f.Rect.Size().Y, 0.001)
	assert.Greater(t, f.Rect.Min.X, float32(0), "placed after the leading text")
	// the absolute offset accumulates the parent origin
	assert.Equal(t, math32.Vec2(5, 7).Add(f.Rect.Min), f.AbsoluteOffset)
}

func TestEmbeddedBottomAlignment(t *testing.T) {
	nd := NewNode("txt1", shaped.NewShaper())
	em := &stubEmbed{id: "img1", size: math32.Vec2(40, 30)}
	nd.AddText("a", nil)
	nd.AddEmbedded(em)

	nd.PerformMount(mountFrame(nd), math32.Vector2{})
	f := em.frames[0]
	// the embed bottom sits at the baseline plus the descender depth
	assert.Less(t, f.Rect.Max.Y, f.Rect.Min.Y+31)
	assert.Greater(t, f.Rect.Max.Y, float32(20))
}

func TestMountDispatch(t *testing.T) {
	nd := NewNode("txt1", shaped.NewShaper())
	em := &stubEmbed{id: "img1", size: math32.Vec2(40, 30)}
	recv := &stubReceiver{}
	nd.Receiver = recv
	nd.Registry = stubRegistry{"txt1": true, "img1": true}
	nd.AddText("a", nil)
	nd.AddEmbedded(em)

	frame := mountFrame(nd)
	nd.PerformMount(frame, math32.Vector2{})

	assert.Equal(t, 1, len(recv.mounts))
	m := recv.mounts[0]
	assert.Equal(t, "txt1", m.NodeID)
	assert.Equal(t, frame, m.Frame)
	assert.Equal(t, []string{"img1"}, m.Descendants)
	assert.NotNil(t, m.Layout)
	// placeholder metadata is stripped before the handoff
	sps, _ := m.Layout.Source.Embeds()
	assert.Empty(t, sps)
}

func TestMountExclusiveLease(t *testing.T) {
	nd := NewNode("txt1", shaped.NewShaper())
	recv := &stubReceiver{}
	nd.Receiver = recv
	nd.AddText("hello", nil)

	frame := mountFrame(nd)
	assert.Equal(t, 1, nd.Cache().Len())
	nd.PerformMount(frame, math32.Vector2{})
	assert.Equal(t, 1, len(recv.mounts))
}

func TestMountSkippedWhenDirty(t *testing.T) {
	nd := NewNode("txt1", shaped.NewShaper())
	recv := &stubReceiver{}
	nd.Receiver = recv
	nd.AddText("hello", nil)

	frame := mountFrame(nd)
	nd.AddText(" changed", nil)
	nd.PerformMount(frame, math32.Vector2{})
	assert.Empty(t, recv.mounts, "a stale frame is never mounted")
}

func TestMountSkippedWhenUnregistered(t *testing.T) {
	nd := NewNode("txt1", shaped.NewShaper())
	recv := &stubReceiver{}
	nd.Receiver = recv
	nd.Registry = stubRegistry{}
	nd.AddText("hello", nil)

	nd.PerformMount(mountFrame(nd), math32.Vector2{})
	assert.Empty(t, recv.mounts, "a mount targeting a missing view is a no-op")
}

func TestMountScheduler(t *testing.T) {
	nd := NewNode("txt1", shaped.NewShaper())
	recv := &stubReceiver{}
	nd.Receiver = recv
	var pending func()
	nd.Schedule = func(work func()) { pending = work }
	nd.AddText("hello", nil)

	nd.PerformMount(mountFrame(nd), math32.Vector2{})
	assert.Empty(t, recv.mounts, "mounting waits for the scheduled work item")
	assert.NotNil(t, pending)
	pending()
	assert.Equal(t, 1, len(recv.mounts))
}

func TestTruncatedEmbedHidden(t *testing.T) {
	nd := NewNode("txt1", shaped.NewShaper())
	em := &stubEmbed{id: "img1", size: math32.Vec2(40, 30)}
	recv := &stubReceiver{}
	nd.Receiver = recv
	nd.SetMaxLines(1)
	nd.AddText("first\n", nil)
	nd.AddEmbedded(em)

	nd.PerformMount(mountFrame(nd), math32.Vector2{})
	// the embed falls on a truncated line: it still receives a frame,
	// but hidden and excluded from the descendant list
	assert.Equal(t, 1, len(em.frames))
	f := em.frames[0]
	assert.Equal(t, DisplayNone, f.Display)
	assert.InDelta(t, 40, f.Rect.Size().X, 0.001)
	assert.Equal(t, 1, len(recv.mounts))
	assert.Empty(t, recv.mounts[0].Descendants)
}

func TestLineMetrics(t *testing.T) {
	nd := NewNode("txt1", shaped.NewShaper())
	nd.AddText("ab\ncd", nil)
	var recs []LineRecord
	nd.OnTextLayout = func(lines []LineRecord) { recs = lines }

	nd.PerformMount(mountFrame(nd), math32.Vector2{})
	assert.Equal(t, 2, len(recs))
	assert.Equal(t, "ab\n", recs[0].Text)
	assert.Equal(t, "cd", recs[1].Text)
	assert.Equal(t, float32(0), recs[0].Y)
	assert.Greater(t, recs[1].Y, recs[0].Y)
	for _, lr := range recs {
		assert.Greater(t, lr.Width, float32(0))
		assert.Greater(t, lr.Height, float32(0))
		assert.Greater(t, lr.Ascender, float32(0))
		assert.Less(t, lr.Descender, float32(0))
		assert.Greater(t, lr.CapHeight, lr.XHeight)
	}
}

func TestLineMetricsSkipsTruncated(t *testing.T) {
	nd := NewNode("txt1", shaped.NewShaper())
	nd.SetMaxLines(1)
	nd.AddText("a\nb\nc", nil)
	var recs []LineRecord
	nd.OnTextLayout = func(lines []LineRecord) { recs = lines }

	nd.PerformMount(mountFrame(nd), math32.Vector2{})
	assert.Equal(t, 1, len(recs))
	assert.Equal(t, "a\n", recs[0].Text)
}
