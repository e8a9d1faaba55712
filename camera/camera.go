// Package camera provides the 2D viewport mapping between the flow
// volume (chord units, y up) and the screen (pixels, y down).
package camera

// Camera controls the viewport into the flow volume. Zoom is measured
// in pixels per chord unit, so a unit-chord section spans Zoom pixels.
type Camera struct {
	// Position is the camera center in world coordinates
	X, Y float32

	// Zoom in pixels per world unit
	Zoom float32

	// Viewport dimensions (screen size)
	ViewportW, ViewportH float32

	// Zoom constraints
	MinZoom, MaxZoom float32
}

// New creates a camera centered on the origin, zoomed so the whole
// x-extent of the volume fits the viewport.
func New(viewportW, viewportH, volumeW float32) *Camera {
	zoom := viewportW / volumeW
	return &Camera{
		X:         0,
		Y:         0,
		Zoom:      zoom,
		ViewportW: viewportW,
		ViewportH: viewportH,
		MinZoom:   zoom * 0.5,
		MaxZoom:   zoom * 12,
	}
}

// WorldToScreen converts world coordinates to screen coordinates.
// World y points up; screen y points down.
func (c *Camera) WorldToScreen(wx, wy float32) (sx, sy float32) {
	sx = c.ViewportW/2 + (wx-c.X)*c.Zoom
	sy = c.ViewportH/2 - (wy-c.Y)*c.Zoom
	return sx, sy
}

// ScreenToWorld converts screen coordinates to world coordinates.
func (c *Camera) ScreenToWorld(sx, sy float32) (wx, wy float32) {
	wx = c.X + (sx-c.ViewportW/2)/c.Zoom
	wy = c.Y - (sy-c.ViewportH/2)/c.Zoom
	return wx, wy
}

// ScaleToPixels converts a world-space length to pixels.
func (c *Camera) ScaleToPixels(l float32) float32 {
	return l * c.Zoom
}

// IsVisible reports whether a circle at (wx, wy) with the given
// world-space radius could appear on screen (conservative, for culling).
func (c *Camera) IsVisible(wx, wy, radius float32) bool {
	halfW := c.ViewportW/(2*c.Zoom) + radius
	halfH := c.ViewportH/(2*c.Zoom) + radius
	return absf(wx-c.X) <= halfW && absf(wy-c.Y) <= halfH
}

// Pan moves the camera by the given delta in screen pixels.
func (c *Camera) Pan(dx, dy float32) {
	c.X += dx / c.Zoom
	c.Y -= dy / c.Zoom
}

// SetZoom sets the zoom level, clamped to min/max.
func (c *Camera) SetZoom(zoom float32) {
	c.Zoom = clamp(zoom, c.MinZoom, c.MaxZoom)
}

// ZoomBy multiplies the current zoom by the given factor.
func (c *Camera) ZoomBy(factor float32) {
	c.SetZoom(c.Zoom * factor)
}

// Reset returns the camera to the default position and zoom.
func (c *Camera) Reset(volumeW float32) {
	c.X = 0
	c.Y = 0
	c.Zoom = c.ViewportW / volumeW
}

// absf returns the absolute value of a float32.
func absf(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

// clamp restricts a value to a range.
func clamp(x, min, max float32) float32 {
	if x < min {
		return min
	}
	if x > max {
		return max
	}
	return x
}
