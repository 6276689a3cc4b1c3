package geometry

// OverlayRegion is one of the six semantic slots an overlay window can
// occupy on a display. Regions are slots, not shapes: a region is what
// an overlay represents, not a description of its current bounds.
type OverlayRegion int

const (
	RegionFullScreen OverlayRegion = iota
	RegionTop
	RegionBottom
	RegionLeft
	RegionRight
	RegionCenter
)

// Regions lists every region in a stable, deterministic order. The
// renderer's window pool and the calculator's per-display slot array are
// both indexed by this order.
var Regions = [6]OverlayRegion{
	RegionFullScreen, RegionTop, RegionBottom, RegionLeft, RegionRight, RegionCenter,
}

// String returns the region's name, used in log fields.
func (r OverlayRegion) String() string {
	switch r {
	case RegionFullScreen:
		return "FullScreen"
	case RegionTop:
		return "Top"
	case RegionBottom:
		return "Bottom"
	case RegionLeft:
		return "Left"
	case RegionRight:
		return "Right"
	case RegionCenter:
		return "Center"
	default:
		return "Unknown"
	}
}
