package linetui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContainerRender(t *testing.T) {
	c := NewContainer(newFixed("a", "b"), newFixed("c"))
	assert.Equal(t, []string{"a", "b", "c"}, c.Render(10))
	assert.Empty(t, NewContainer().Render(10))
}

func TestContainerChildren(t *testing.T) {
	a, b, x := newFixed("a"), newFixed("b"), newFixed("x")
	c := NewContainer(a, b)

	c.InsertBefore(x, b)
	assert.Equal(t, []Component{a, x, b}, c.Children())

	assert.True(t, c.RemoveChild(x))
	assert.False(t, c.RemoveChild(x))
	assert.Equal(t, []Component{a, b}, c.Children())

	c.InsertBefore(x, nil)
	assert.Equal(t, []Component{a, b, x}, c.Children(), "unknown anchor appends")

	children := c.Children()
	children[0] = nil
	assert.Equal(t, a, c.Children()[0], "Children returns a copy")

	c.Clear()
	assert.Empty(t, c.Children())
}

func TestContainerCommittedLineCount(t *testing.T) {
	done := newFixed("1", "2")
	done.committed = 2
	partial := newFixed("3", "4", "5")
	partial.committed = 1
	after := newFixed("6")
	after.committed = 1

	tests := []struct {
		name     string
		children []Component
		want     int
	}{
		{name: "stops at partially committed child", children: []Component{done, partial}, want: 2},
		{name: "later children not counted", children: []Component{done, partial, after}, want: 2},
		{name: "all committed", children: []Component{done, after}, want: 3},
		{name: "active first", children: []Component{newFixed("x"), done}, want: 0},
		{name: "nested container with active lines", children: []Component{done, NewContainer(after, partial)}, want: 2},
		{name: "nested committed", children: []Component{done, NewContainer(after)}, want: 3},
		{name: "empty", want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewContainer(tt.children...).CommittedLineCount(10))
		})
	}

	greedy := newFixed("a")
	greedy.committed = 4
	assert.Equal(t, 1, NewContainer(greedy).CommittedLineCount(10), "clamped to the rendered lines")
}

func TestContainerHandleInputFor(t *testing.T) {
	target := newFixed("t")
	other := newFixed("o")
	c := NewContainer(other, NewContainer(target))

	assert.True(t, c.Contains(target))
	assert.True(t, c.HandleInputFor(target, "x"))
	assert.Equal(t, []string{"x"}, target.inputs)
	assert.Empty(t, other.inputs)

	assert.False(t, c.HandleInputFor(newFixed("stranger"), "x"))
	assert.False(t, c.HandleInputFor(nil, "x"))
	assert.False(t, c.HandleInputFor(NewContainer(), "x"))
}
