package report

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-pdf/fpdf"
)

// ErrMissingAsset indicates a required template image is absent. Raised at
// construction, before any page is produced.
var ErrMissingAsset = errors.New("missing template asset")

// Canvas owns page geometry and the letterhead decorations, and exposes the
// text and image primitives the composer renders with. One Canvas produces
// exactly one document.
type Canvas struct {
	pdf    *fpdf.Fpdf
	layout Layout
	tr     func(string) string
	manual bool
}

// NewCanvas verifies the template assets and prepares an empty document with
// the letterhead header and footer repeated on every page.
func NewCanvas(layout Layout) (*Canvas, error) {
	for _, path := range []string{layout.HeaderPath(), layout.FooterPath(), layout.SignaturePath()} {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("%w: %s", ErrMissingAsset, path)
		}
	}

	pdf := fpdf.New(layout.Orientation, layout.Unit, layout.PageFormat, "")
	c := &Canvas{
		pdf:    pdf,
		layout: layout,
		tr:     pdf.UnicodeTranslatorFromDescriptor(""),
	}

	pdf.SetMargins(layout.LeftMargin, layout.TopMargin, layout.RightMargin)
	pdf.SetHeaderFunc(func() {
		w, _ := pdf.GetPageSize()
		pdf.Image(layout.HeaderPath(), 0, 0, w, 0, false, "", 0, "")
		pdf.Ln(layout.HeaderLift)
	})
	pdf.SetFooterFunc(func() {
		w, h := pdf.GetPageSize()
		fw := w * layout.FooterWidthRatio
		y := h - layout.FooterBottomMargin - layout.FooterHeight
		pdf.Image(layout.FooterPath(), (w-fw)/2, y, fw, 0, false, "", 0, "")
	})
	pdf.SetAutoPageBreak(true, layout.FooterMargin)
	return c, nil
}

func (c *Canvas) Layout() Layout {
	return c.layout
}

// AddPage starts a page and triggers the header decoration, leaving the
// cursor below the letterhead.
func (c *Canvas) AddPage() {
	c.pdf.AddPage()
}

// Typography selects font style and size for all subsequent text.
func (c *Canvas) Typography(size float64, bold bool) {
	style := ""
	if bold {
		style = "B"
	}
	if size <= 0 {
		size = c.layout.FontSize
	}
	c.pdf.SetFont(c.layout.FontFamily, style, size)
}

// WriteLine emits one line of text at the current cursor and advances it.
func (c *Canvas) WriteLine(text, align string) {
	c.pdf.CellFormat(0, c.layout.LineHeight, c.tr(text), "", 1, align, false, 0, "")
}

// WriteWrapped emits auto-wrapping multi-line text across the usable width.
func (c *Canvas) WriteWrapped(text, align string) {
	c.pdf.MultiCell(0, c.layout.LineHeight, c.tr(text), "", align, false)
}

// PlaceImage draws an image at absolute coordinates, height scaled from the
// given width.
func (c *Canvas) PlaceImage(path string, x, y, w float64) {
	c.pdf.Image(path, x, y, w, 0, false, "", 0, "")
}

// Space advances the cursor by the given vertical distance.
func (c *Canvas) Space(mm float64) {
	c.pdf.Ln(mm)
}

// SetManualBreak switches between automatic and manual page-break modes and
// reports the previous mode so callers can restore it. Under manual mode no
// implicit page break ever happens; the caller owns the bottom boundary.
func (c *Canvas) SetManualBreak(on bool) bool {
	prev := c.manual
	c.manual = on
	if on {
		c.pdf.SetAutoPageBreak(false, 0)
	} else {
		c.pdf.SetAutoPageBreak(true, c.layout.FooterMargin)
	}
	return prev
}

func (c *Canvas) X() float64 { return c.pdf.GetX() }

func (c *Canvas) Y() float64 { return c.pdf.GetY() }

func (c *Canvas) SetXY(x, y float64) { c.pdf.SetXY(x, y) }

func (c *Canvas) SetY(y float64) { c.pdf.SetY(y) }

// UsableWidth is the page width between the horizontal margins.
func (c *Canvas) UsableWidth() float64 {
	w, _ := c.pdf.GetPageSize()
	return w - c.layout.LeftMargin - c.layout.RightMargin
}

// PrintableBottom is the lowest cursor position body content may reach
// without invading the footer reserve.
func (c *Canvas) PrintableBottom() float64 {
	_, h := c.pdf.GetPageSize()
	return h - c.layout.FooterMargin
}

// StringWidth measures text in the current typography.
func (c *Canvas) StringWidth(s string) float64 {
	return c.pdf.GetStringWidth(c.tr(s))
}

func (c *Canvas) PageCount() int {
	return c.pdf.PageCount()
}

func (c *Canvas) Error() error {
	return c.pdf.Error()
}
