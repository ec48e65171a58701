package linetui

// Container stacks its children vertically in insertion order.
type Container struct {
	children []Component
}

func NewContainer(children ...Component) *Container {
	return &Container{children: append([]Component(nil), children...)}
}

func (c *Container) AddChild(component Component) {
	c.children = append(c.children, component)
}

// RemoveChild removes the first occurrence of component. It reports whether
// the component was found.
func (c *Container) RemoveChild(component Component) bool {
	for i, child := range c.children {
		if child == component {
			c.children = append(c.children[:i], c.children[i+1:]...)
			return true
		}
	}
	return false
}

// InsertBefore inserts component directly above before. When before is not
// a child, component is appended.
func (c *Container) InsertBefore(component, before Component) {
	for i, child := range c.children {
		if child == before {
			c.children = append(c.children, nil)
			copy(c.children[i+1:], c.children[i:])
			c.children[i] = component
			return
		}
	}
	c.children = append(c.children, component)
}

func (c *Container) Clear() {
	c.children = nil
}

// Children returns a copy of the child list.
func (c *Container) Children() []Component {
	return append([]Component(nil), c.children...)
}

func (c *Container) Render(width int) []string {
	var lines []string
	for _, child := range c.children {
		lines = append(lines, child.Render(width)...)
	}
	return lines
}

// CommittedLineCount is the number of lines of the fully committed children
// at the front. The first child with any active line ends the count, along
// with its own committed prefix.
func (c *Container) CommittedLineCount(width int) int {
	total := 0
	for _, child := range c.children {
		rendered := len(child.Render(width))
		committed := min(max(committedCount(child, width), 0), rendered)
		if committed < rendered {
			break
		}
		total += committed
	}
	return total
}

func (c *Container) Invalidate() {
	for _, child := range c.children {
		child.Invalidate()
	}
}

// Contains reports whether target is a child or a descendant through nested
// containers.
func (c *Container) Contains(target Component) bool {
	for _, child := range c.children {
		if child == target {
			return true
		}
		if nested, ok := child.(*Container); ok && nested.Contains(target) {
			return true
		}
	}
	return false
}

// HandleInputFor delivers data to target when it belongs to this container
// and accepts input. It reports whether the input was delivered.
func (c *Container) HandleInputFor(target Component, data string) bool {
	if target == nil || !c.Contains(target) {
		return false
	}
	handler, ok := target.(InputHandler)
	if !ok {
		return false
	}
	handler.HandleInput(data)
	return true
}
