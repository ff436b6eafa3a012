package shapes

// Texture is the consumed contract for textured drawing. Implementations
// own their sampling state and geometry; the canvas only decides where
// they land.
type Texture interface {
	// DrawSized renders the texture centered at (x, y), stretched to the
	// given extents, rotated clockwise by angle degrees and modulated by
	// alpha.
	DrawSized(c *Canvas, x, y, width, height, angle float32, alpha uint8) error
	// DrawScaled renders the texture centered at (x, y) at its natural
	// size multiplied by scale.
	DrawScaled(c *Canvas, x, y, scale, angle float32, alpha uint8) error
}

// TextureRect draws a texture stretched over a rectangle centered at
// (x, y).
func (c *Canvas) TextureRect(t Texture, x, y, width, height, angle float32, alpha uint8) error {
	if err := c.ready(); err != nil {
		return err
	}
	return t.DrawSized(c, x, y, width, height, angle, alpha)
}

// ScaledTextureRect draws a texture at its natural size times scale,
// centered at (x, y).
func (c *Canvas) ScaledTextureRect(t Texture, x, y, scale, angle float32, alpha uint8) error {
	if err := c.ready(); err != nil {
		return err
	}
	return t.DrawScaled(c, x, y, scale, angle, alpha)
}

// TextureRectLBWH draws a texture stretched over the rectangle with the
// given bottom-left corner and size.
func (c *Canvas) TextureRectLBWH(t Texture, left, bottom, width, height, angle float32, alpha uint8) error {
	if err := c.ready(); err != nil {
		return err
	}
	return t.DrawSized(c, left+width/2, bottom+height/2, width, height, angle, alpha)
}
