package rtr_test

import (
	"testing"

	"github.com/rohanthewiz/assert"
	"github.com/rohanthewiz/rweb/v2/core/rtr"
)

func TestRouteTableOrder(t *testing.T) {
	rt := rtr.NewRouteTable[string]()
	rt.Put("GET", "/b", "b")
	rt.Put("GET", "/a", "a")
	rt.Put("POST", "/b", "post b")

	snap := rt.Snapshot()
	assert.Equal(t, 3, len(snap))
	assert.Equal(t, "b", snap[0])
	assert.Equal(t, "a", snap[1])
	assert.Equal(t, "post b", snap[2])
}

func TestRouteTableReplaceInPlace(t *testing.T) {
	rt := rtr.NewRouteTable[string]()
	rt.Put("GET", "/a", "first")
	rt.Put("GET", "/b", "b")
	rt.Put("GET", "/a", "second")

	snap := rt.Snapshot()
	assert.Equal(t, 2, rt.Len())
	assert.Equal(t, "second", snap[0])
}

func TestRouteTableSnapshotIsCopy(t *testing.T) {
	rt := rtr.NewRouteTable[string]()
	rt.Put("GET", "/a", "a")

	snap := rt.Snapshot()
	snap[0] = "changed"
	assert.Equal(t, "a", rt.Snapshot()[0])
}
