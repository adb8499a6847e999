package report

import "path/filepath"

// Layout holds every numeric and string parameter the document layout
// depends on. It is built once per document and never mutated.
type Layout struct {
	// Page
	Orientation string
	Unit        string
	PageFormat  string

	// Margins (mm)
	TopMargin   float64
	LeftMargin  float64
	RightMargin float64

	// Visual spacing (mm)
	HeaderLift float64

	// Template assets
	TemplatesDir  string
	HeaderFile    string
	FooterFile    string
	SignatureFile string

	// Footer decoration
	FooterHeight       float64
	FooterWidthRatio   float64
	FooterBottomMargin float64
	FooterMargin       float64 // content safety reserve above the footer

	// Typography
	FontFamily string
	FontSize   float64
	LineHeight float64

	// Activity table geometry (mm). The total column absorbs whatever
	// usable width remains after the five fixed columns.
	ColItem         float64
	ColDescription  float64
	ColUnit         float64
	ColQuantity     float64
	ColUnitPrice    float64
	CellPadding     float64
	TableLineHeight float64
	TotalRowHeight  float64

	// Signature block
	SignatureWidth  float64
	SignatureHeight float64

	// Output
	OutputDir    string
	OutputPrefix string
}

func DefaultLayout() Layout {
	return Layout{
		Orientation: "P",
		Unit:        "mm",
		PageFormat:  "Letter",

		TopMargin:   22.0,
		LeftMargin:  15.0,
		RightMargin: 15.0,

		HeaderLift: 12.0,

		TemplatesDir:  "TEMPLATES",
		HeaderFile:    "header.png",
		FooterFile:    "footer.png",
		SignatureFile: "firma.png",

		FooterHeight:       12.0,
		FooterWidthRatio:   0.50,
		FooterBottomMargin: 7.0,
		FooterMargin:       28.0,

		FontFamily: "Helvetica",
		FontSize:   12,
		LineHeight: 6.0,

		ColItem:         18.0,
		ColDescription:  80.0,
		ColUnit:         18.0,
		ColQuantity:     18.0,
		ColUnitPrice:    26.0,
		CellPadding:     2.0,
		TableLineHeight: 5.0,
		TotalRowHeight:  8.0,

		SignatureWidth:  55.0,
		SignatureHeight: 20.0,

		OutputDir:    "BD/PRECOSTEOS",
		OutputPrefix: "PRECOSTEO",
	}
}

func (l Layout) HeaderPath() string {
	return filepath.Join(l.TemplatesDir, l.HeaderFile)
}

func (l Layout) FooterPath() string {
	return filepath.Join(l.TemplatesDir, l.FooterFile)
}

func (l Layout) SignaturePath() string {
	return filepath.Join(l.TemplatesDir, l.SignatureFile)
}
