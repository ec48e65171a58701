package linetui

type OverlayAnchor string

const (
	AnchorCenter       OverlayAnchor = "center"
	AnchorTopLeft      OverlayAnchor = "top-left"
	AnchorTopRight     OverlayAnchor = "top-right"
	AnchorBottomLeft   OverlayAnchor = "bottom-left"
	AnchorBottomRight  OverlayAnchor = "bottom-right"
	AnchorTopCenter    OverlayAnchor = "top-center"
	AnchorBottomCenter OverlayAnchor = "bottom-center"
	AnchorLeftCenter   OverlayAnchor = "left-center"
	AnchorRightCenter  OverlayAnchor = "right-center"
)

// bottomMargin is the number of blank rows kept below bottom-anchored overlays.
const bottomMargin = 2

// Margin reserves space around the area an overlay may occupy.
type Margin struct {
	Top, Right, Bottom, Left int
}

// OverlayOptions controls where an overlay is placed over the active region.
type OverlayOptions struct {
	Anchor OverlayAnchor

	// OffsetX and OffsetY shift the anchored position. For AnchorTopLeft
	// they are the absolute column and row.
	OffsetX int
	OffsetY int

	// Width is the overlay width in columns; zero means min(80, available).
	// WidthPercent, when positive, takes precedence and is relative to the
	// terminal width.
	Width        int
	WidthPercent float64
	MinWidth     int

	// MaxHeight caps the number of overlay rows; zero means unlimited.
	MaxHeight int

	Margin Margin
}

type overlayLayout struct {
	row, col int
	width    int
}

// resolveWidth computes the column width the overlay is rendered at.
func (o OverlayOptions) resolveWidth(termWidth int) int {
	m := o.Margin
	avail := max(1, termWidth-max(0, m.Left)-max(0, m.Right))
	width := o.Width
	if o.WidthPercent > 0 {
		width = int(float64(termWidth) * o.WidthPercent / 100)
	}
	if width <= 0 {
		width = min(80, avail)
	}
	if o.MinWidth > 0 {
		width = max(width, o.MinWidth)
	}
	return max(1, min(width, avail))
}

// resolve positions an overlay of the given size against a region of
// regionHeight lines and termWidth columns. Rows are relative to the top of
// the region.
func (o OverlayOptions) resolve(width, height, termWidth, regionHeight int) overlayLayout {
	m := Margin{Top: max(0, o.Margin.Top), Right: max(0, o.Margin.Right), Bottom: max(0, o.Margin.Bottom), Left: max(0, o.Margin.Left)}
	availWidth := max(1, termWidth-m.Left-m.Right)
	availHeight := max(0, regionHeight-m.Top-m.Bottom)

	anchor := o.Anchor
	if anchor == "" {
		anchor = AnchorCenter
	}

	var row, col int
	switch anchor {
	case AnchorTopLeft, AnchorTopCenter, AnchorTopRight:
		row = m.Top
	case AnchorBottomLeft, AnchorBottomCenter, AnchorBottomRight:
		row = m.Top + max(0, availHeight-height-bottomMargin)
	default:
		row = m.Top + max(0, availHeight-height)/2
	}
	switch anchor {
	case AnchorTopLeft, AnchorBottomLeft, AnchorLeftCenter:
		col = m.Left
	case AnchorTopRight, AnchorBottomRight, AnchorRightCenter:
		col = m.Left + max(0, availWidth-width)
	default:
		col = m.Left + max(0, availWidth-width)/2
	}

	row += o.OffsetY
	col += o.OffsetX

	row = max(0, row)
	col = max(0, min(col, termWidth-width))
	return overlayLayout{row: row, col: col, width: width}
}
