package report

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tanq16/precosteo/internal/ledger"
)

// Fixed document text. The precosteo letter is addressed to a single client
// and issued from a single city.
const (
	documentCity      = "Santiago de Cali"
	documentAddressee = "SOCIEDAD PORTUARIA REGIONAL DE BUENAVENTURA"
	salutationLabel   = "Señores:"
	locationLabel     = "Lugar de ejecución:"
	statusLine        = "Estado: PRECOSTEO PARA REVISIÓN Y APROBACIÓN"
	closingLine       = "Cordialmente,"
	signatureName     = "AMC MANTENIMIENTOS S.A.S."
	sectionTitleMax   = 60
)

// Column aliases per semantic role, in priority order. Resolution happens
// once per table render.
var (
	itemAliases      = []string{"ID_ITEM", "ITEM", "COD_ITEM", "CODIGO", "CÓDIGO"}
	descAliases      = []string{"ACTIVIDAD", "DESCRIPCION", "DESCRIPCIÓN", "DETALLE", "DESCRIPCION_ACTIVIDAD"}
	unitAliases      = []string{"UNIDAD_MEDIDA", "UNIDAD", "UND", "UM", "UNIDAD DE MEDIDA"}
	qtyAliases       = []string{"CANTIDAD", "CANT", "QTY"}
	unitPriceAliases = []string{"VALOR_UNITARIO", "VR_UNITARIO", "PRECIO_UNITARIO", "VALOR UNITARIO", "VR UNITARIO"}
	totalAliases     = []string{"VALOR_TOTAL", "VR_TOTAL", "VALOR TOTAL", "TOTAL", "SUBTOTAL"}
	placeAliases     = []string{
		"LUGAR_EJECUCION", "LUGAR", "LUGAR DE EJECUCIÓN", "LUGAR DE EJECUCION",
		"UBICACION", "UBICACIÓN", "DESCRIPCION_LUGAR", "DESCRIPCIÓN", "ZONA",
	}
)

// Input carries everything one precosteo document is built from.
type Input struct {
	Code          string
	Summary       string
	Locations     *ledger.Table
	Ledger        *ledger.Table
	Range         ledger.DateRange
	ExcludedItems []string
	Now           time.Time // zero means time.Now()
}

// columnSpec maps the six semantic table roles to the ledger's actual column
// names. An empty name renders as an empty cell for every row.
type columnSpec struct {
	item      string
	desc      string
	unit      string
	qty       string
	unitPrice string
	total     string
}

func resolveColumns(t *ledger.Table) columnSpec {
	var spec columnSpec
	spec.item, _ = t.Resolve(itemAliases...)
	spec.desc, _ = t.Resolve(descAliases...)
	spec.unit, _ = t.Resolve(unitAliases...)
	spec.qty, _ = t.Resolve(qtyAliases...)
	spec.unitPrice, _ = t.Resolve(unitPriceAliases...)
	spec.total, _ = t.Resolve(totalAliases...)
	// Only the free-text role falls back to the first available column.
	if spec.desc == "" && len(t.Columns()) > 0 {
		spec.desc = t.Columns()[0]
	}
	return spec
}

// tableRow is one fully formatted activity row ready to draw.
type tableRow struct {
	item      string
	desc      string
	unit      string
	qty       string
	unitPrice string
	total     string
}

// buildTableRows formats every ledger row and accumulates the grand total.
// Monetary values that parse are re-rendered in thousands-dot notation;
// values that do not parse keep their raw text and contribute nothing to
// the total.
func buildTableRows(t *ledger.Table, spec columnSpec) ([]tableRow, decimal.Decimal) {
	rows := make([]tableRow, 0, t.Len())
	grand := decimal.Zero
	for i := 0; i < t.Len(); i++ {
		row := tableRow{
			item: strings.TrimSpace(t.Cell(i, spec.item)),
			desc: strings.TrimSpace(t.Cell(i, spec.desc)),
			unit: strings.TrimSpace(t.Cell(i, spec.unit)),
			qty:  strings.TrimSpace(t.Cell(i, spec.qty)),
		}
		row.unitPrice = strings.TrimSpace(t.Cell(i, spec.unitPrice))
		if d, ok := ParseMoney(row.unitPrice); ok {
			row.unitPrice = FormatMoney(d)
		}
		row.total = strings.TrimSpace(t.Cell(i, spec.total))
		if d, ok := ParseMoney(row.total); ok {
			row.total = FormatMoney(d)
			grand = grand.Add(d)
		}
		rows = append(rows, row)
	}
	return rows, grand
}

// inferPlaceText derives the "place of execution" line from the locations
// table: preferred columns first, then the first column; values are trimmed
// and deduplicated case-insensitively preserving first-seen order.
func inferPlaceText(t *ledger.Table) string {
	if t == nil || len(t.Columns()) == 0 {
		return ""
	}
	col, ok := t.Resolve(placeAliases...)
	if !ok {
		col = t.Columns()[0]
	}
	seen := make(map[string]struct{})
	var items []string
	for _, v := range t.Column(col) {
		s := strings.TrimSpace(v)
		if s == "" || strings.EqualFold(s, "nan") {
			continue
		}
		key := strings.ToLower(s)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		items = append(items, s)
	}
	return strings.Join(items, ", ")
}

// sectionTitle is the first comma-separated segment of the place text,
// truncated to a fixed length.
func sectionTitle(placeText string) string {
	title := placeText
	if i := strings.Index(title, ","); i >= 0 {
		title = title[:i]
	}
	title = strings.TrimSpace(title)
	if runes := []rune(title); len(runes) > sectionTitleMax {
		title = string(runes[:sectionTitleMax])
	}
	return title
}

// Compose renders the whole precosteo document onto the canvas: reference
// code, dated salutation, addressee, narrative summary, place of execution,
// the paginated activity table with its grand total, and the closing
// status/signature block.
func Compose(c *Canvas, in Input) error {
	now := in.Now
	if now.IsZero() {
		now = time.Now()
	}

	c.AddPage()

	c.Typography(12, true)
	c.WriteLine(in.Code, "R")

	c.Space(2)
	c.WriteLine(documentCity+", "+SpanishDate(now), "L")

	c.Space(12)
	c.WriteLine(salutationLabel, "L")

	c.Space(10)
	c.WriteWrapped(documentAddressee, "L")

	c.Space(6)
	c.Typography(11, false)
	c.WriteWrapped(strings.TrimSpace(in.Summary), "J")

	placeText := inferPlaceText(in.Locations)
	if placeText != "" {
		c.Space(8)
		c.Typography(11, true)
		c.pdf.CellFormat(c.StringWidth(locationLabel)+1, c.layout.LineHeight, c.tr(locationLabel), "", 0, "L", false, 0, "")
		c.Typography(11, false)
		c.WriteWrapped(" "+placeText, "L")
	}

	renderTable(c, in, placeText)
	renderSignature(c)

	return c.Error()
}

// renderTable lays out the activity table. Automatic page breaks are
// suspended for its whole duration: a row is a bordered multi-cell unit
// whose height comes from its wrapped description, and it must never split
// across a page boundary.
func renderTable(c *Canvas, in Input, placeText string) {
	filtered := ledger.FilterByRange(in.Ledger, in.Range)
	spec := resolveColumns(filtered)
	filtered = ledger.ExcludeItems(filtered, spec.item, in.ExcludedItems)
	if filtered.Len() == 0 {
		return
	}

	rows, grand := buildTableRows(filtered, spec)
	title := sectionTitle(placeText)

	c.Space(10)

	prev := c.SetManualBreak(true)
	defer c.SetManualBreak(prev)

	// The header bars and the first row move together: starting them this
	// close to the bottom would paint into the footer reserve.
	if c.Y()+tableHeaderHeight+rowHeight(c, rows[0].desc) > c.PrintableBottom() {
		c.AddPage()
	}
	drawTableHeader(c, title, in.Code)
	for _, row := range rows {
		h := rowHeight(c, row.desc)
		if c.Y()+h > c.PrintableBottom() {
			c.AddPage()
			drawTableHeader(c, title, in.Code)
		}
		drawRow(c, row, h)
	}

	if c.Y()+c.layout.TotalRowHeight > c.PrintableBottom() {
		c.AddPage()
		drawTableHeader(c, title, in.Code)
	}
	drawTotalRow(c, grand)
}

// rowHeight measures the wrapped description at the width the renderer
// actually wraps at: the column's inner width minus the renderer's own cell
// margin on both sides. Every cell of the row shares this height.
func rowHeight(c *Canvas, desc string) float64 {
	c.Typography(10, false)
	wrap := c.layout.ColDescription - 2*c.layout.CellPadding - 2*c.pdf.GetCellMargin()
	lines := WrapCount(c.StringWidth, wrap, desc)
	return float64(lines)*c.layout.TableLineHeight + 2*c.layout.CellPadding
}

func colTotalWidth(c *Canvas) float64 {
	l := c.layout
	return c.UsableWidth() - l.ColItem - l.ColDescription - l.ColUnit - l.ColQuantity - l.ColUnitPrice
}

// Stacked heights of the repeatable table header bars.
const (
	titleBarHeight     = 7.0
	codeBarHeight      = 6.0
	columnHeaderHeight = 7.0
	tableHeaderHeight  = titleBarHeight + codeBarHeight + columnHeaderHeight
)

// drawTableHeader emits the repeatable table header: title bar, reference
// code bar, then the six column headers.
func drawTableHeader(c *Canvas, title, code string) {
	l := c.layout
	usable := c.UsableWidth()

	c.pdf.SetFillColor(210, 210, 210)
	c.Typography(11, true)
	c.pdf.CellFormat(usable, titleBarHeight, c.tr(title), "1", 1, "C", true, 0, "")
	c.Typography(10, true)
	c.pdf.CellFormat(usable, codeBarHeight, c.tr(code), "1", 1, "C", true, 0, "")

	c.pdf.SetFillColor(230, 230, 230)
	c.Typography(9, true)
	c.pdf.CellFormat(l.ColItem, columnHeaderHeight, c.tr("ITEM"), "1", 0, "C", true, 0, "")
	c.pdf.CellFormat(l.ColDescription, columnHeaderHeight, c.tr("DESCRIPCIÓN"), "1", 0, "C", true, 0, "")
	c.pdf.CellFormat(l.ColUnit, columnHeaderHeight, c.tr("UNIDAD"), "1", 0, "C", true, 0, "")
	c.pdf.CellFormat(l.ColQuantity, columnHeaderHeight, c.tr("CANTIDAD"), "1", 0, "C", true, 0, "")
	c.pdf.CellFormat(l.ColUnitPrice, columnHeaderHeight, c.tr("VR. UNITARIO"), "1", 0, "C", true, 0, "")
	c.pdf.CellFormat(colTotalWidth(c), columnHeaderHeight, c.tr("VR. TOTAL"), "1", 1, "C", true, 0, "")
}

// drawRow draws one activity row. The description is drawn inside its own
// rectangle with the wrapped text inset by the cell padding; the remaining
// cells are full-height bordered cells so all six share one height.
func drawRow(c *Canvas, row tableRow, h float64) {
	l := c.layout
	x := l.LeftMargin
	y := c.Y()

	c.Typography(10, false)
	c.SetXY(x, y)
	c.pdf.CellFormat(l.ColItem, h, c.tr(row.item), "1", 0, "C", false, 0, "")

	dx := x + l.ColItem
	c.pdf.Rect(dx, y, l.ColDescription, h, "D")
	c.SetXY(dx+l.CellPadding, y+l.CellPadding)
	c.pdf.MultiCell(l.ColDescription-2*l.CellPadding, l.TableLineHeight, c.tr(row.desc), "", "L", false)

	c.SetXY(dx+l.ColDescription, y)
	c.pdf.CellFormat(l.ColUnit, h, c.tr(row.unit), "1", 0, "C", false, 0, "")
	c.pdf.CellFormat(l.ColQuantity, h, c.tr(row.qty), "1", 0, "C", false, 0, "")
	c.pdf.CellFormat(l.ColUnitPrice, h, c.tr(row.unitPrice), "1", 0, "R", false, 0, "")
	c.pdf.CellFormat(colTotalWidth(c), h, c.tr(row.total), "1", 0, "R", false, 0, "")

	c.SetXY(x, y+h)
}

// drawTotalRow closes the table: a filled span over the first four columns,
// the "Total" label in the unit-price column and the grand total in the
// total column. The reduced size keeps large totals inside the column.
func drawTotalRow(c *Canvas, grand decimal.Decimal) {
	l := c.layout
	h := l.TotalRowHeight
	span := l.ColItem + l.ColDescription + l.ColUnit + l.ColQuantity

	c.pdf.SetFillColor(190, 200, 215)
	c.pdf.CellFormat(span, h, "", "1", 0, "L", true, 0, "")
	c.Typography(10, true)
	c.pdf.CellFormat(l.ColUnitPrice, h, c.tr("Total"), "1", 0, "C", true, 0, "")
	c.Typography(9, true)
	c.pdf.CellFormat(colTotalWidth(c), h, c.tr(FormatMoney(grand)), "1", 1, "R", true, 0, "")
}

// renderSignature emits the closing status line and the signature image,
// stepping to a fresh page first when the block would invade the footer
// reserve.
func renderSignature(c *Canvas) {
	l := c.layout
	blockH := 10 + 3*l.LineHeight + l.SignatureHeight
	if c.Y()+blockH > c.PrintableBottom() {
		c.AddPage()
	}

	c.Space(10)
	c.Typography(11, true)
	c.WriteLine(statusLine, "L")

	c.Space(8)
	c.Typography(11, false)
	c.WriteLine(closingLine, "L")

	y := c.Y() + 2
	c.PlaceImage(l.SignaturePath(), l.LeftMargin, y, l.SignatureWidth)
	c.SetY(y + l.SignatureHeight)

	c.Typography(11, true)
	c.WriteLine(signatureName, "L")
}
