package render

import "math"

// Camera maps the XZ ground plane to the screen, top down. Zoom is in
// pixels per world unit.
type Camera struct {
	X, Z    float64 // camera center, world coords
	Zoom    float64
	MinZoom float64
	MaxZoom float64
	ScreenW int
	ScreenH int

	// Arena bounds for clamping
	MapW float64
	MapD float64
}

// NewCamera creates a camera with default settings
func NewCamera(screenW, screenH int) *Camera {
	return &Camera{
		Zoom:    8,
		MinZoom: 4,
		MaxZoom: 24,
		ScreenW: screenW,
		ScreenH: screenH,
	}
}

// SetArenaBounds sets the world size for camera clamping
func (c *Camera) SetArenaBounds(w, d float64) {
	c.MapW = w
	c.MapD = d
}

// CenterOn centers the camera on a world position
func (c *Camera) CenterOn(wx, wz float64) {
	c.X = wx
	c.Z = wz
	c.clamp()
}

// SetZoom sets zoom level with clamping
func (c *Camera) SetZoom(z float64) {
	c.Zoom = math.Max(c.MinZoom, math.Min(c.MaxZoom, z))
	c.clamp()
}

// WorldToScreen converts a ground-plane position to screen pixels
func (c *Camera) WorldToScreen(wx, wz float64) (float64, float64) {
	sx := (wx-c.X)*c.Zoom + float64(c.ScreenW)/2
	sy := (wz-c.Z)*c.Zoom + float64(c.ScreenH)/2
	return sx, sy
}

// ScreenToWorld converts screen pixels to a ground-plane position
func (c *Camera) ScreenToWorld(sx, sy int) (float64, float64) {
	wx := (float64(sx)-float64(c.ScreenW)/2)/c.Zoom + c.X
	wz := (float64(sy)-float64(c.ScreenH)/2)/c.Zoom + c.Z
	return wx, wz
}

func (c *Camera) clamp() {
	if c.MapW <= 0 || c.MapD <= 0 {
		return
	}
	halfW := float64(c.ScreenW) / 2 / c.Zoom
	halfD := float64(c.ScreenH) / 2 / c.Zoom
	if halfW*2 >= c.MapW {
		c.X = c.MapW / 2
	} else {
		c.X = math.Max(halfW, math.Min(c.MapW-halfW, c.X))
	}
	if halfD*2 >= c.MapD {
		c.Z = c.MapD / 2
	} else {
		c.Z = math.Max(halfD, math.Min(c.MapD-halfD, c.Z))
	}
}
