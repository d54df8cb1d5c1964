package dragarea

// Callbacks is an embeddable set of click handlers and a removal flag.
// Embedding a *Callbacks (or Callbacks in a pointer-receiver type) gives a
// drawable the DoubleClicker, MiddleClicker, RightClicker and Retainer
// capabilities without writing the methods by hand.
type Callbacks struct {
	DoubleClick func()
	MiddleClick func()
	RightClick  func()

	removed bool
}

func (c *Callbacks) OnDoubleClick() {
	if c.DoubleClick != nil {
		c.DoubleClick()
	}
}

func (c *Callbacks) OnMiddleClick() {
	if c.MiddleClick != nil {
		c.MiddleClick()
	}
}

func (c *Callbacks) OnRightClick() {
	if c.RightClick != nil {
		c.RightClick()
	}
}

// Remove marks the drawable for removal on the next render.
func (c *Callbacks) Remove() {
	c.removed = true
}

// Retain reports false once Remove has been called.
func (c *Callbacks) Retain() bool {
	return !c.removed
}
