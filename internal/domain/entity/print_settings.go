package entity

// Anchos de papel térmico soportados (mm). Determinan columnas por línea.
const (
	PaperWidth80 = 80 // 48 columnas
	PaperWidth58 = 58 // 32 columnas
)

// Formatos de página para el documento HTML/PDF.
const (
	PaperLetter = "letter"
	PaperA4     = "a4"
	PaperLegal  = "legal"
)

// Orientaciones de página.
const (
	OrientationPortrait  = "portrait"
	OrientationLandscape = "landscape"
)

// ReceiptOptions interruptores del recibo térmico. Solo los consume el
// generador de plantillas; esta capa nunca los persiste.
type ReceiptOptions struct {
	PaperWidth int  // 80 o 58; cero = preferencia de la empresa
	ShowLogo   bool
	ShowNCF    bool
	ShowQR     bool
	PaperCut   bool
	CashDrawer bool
}

// DocumentOptions interruptores del documento HTML/PDF imprimible.
type DocumentOptions struct {
	PaperFormat string // letter (defecto), a4, legal
	Orientation string // portrait (defecto), landscape
	ShowLogo    bool
	ShowNCF     bool
	ShowQR      bool
	Watermark   string // texto literal (ej. "BORRADOR"); vacío = sin marca de agua
}

// Normalize aplica los valores por defecto de formato y orientación.
func (o *DocumentOptions) Normalize() {
	switch o.PaperFormat {
	case PaperLetter, PaperA4, PaperLegal:
	default:
		o.PaperFormat = PaperLetter
	}
	switch o.Orientation {
	case OrientationPortrait, OrientationLandscape:
	default:
		o.Orientation = OrientationPortrait
	}
}
