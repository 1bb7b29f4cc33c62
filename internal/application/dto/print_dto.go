package dto

// ReceiptOptionsRequest interruptores del recibo térmico vía query/body.
type ReceiptOptionsRequest struct {
	PaperWidth int  `json:"paper_width" query:"paper_width"` // 80 o 58
	ShowLogo   bool `json:"show_logo" query:"show_logo"`
	ShowNCF    bool `json:"show_ncf" query:"show_ncf"`
	ShowQR     bool `json:"show_qr" query:"show_qr"`
	PaperCut   bool `json:"paper_cut" query:"paper_cut"`
	CashDrawer bool `json:"cash_drawer" query:"cash_drawer"`
}

// DocumentOptionsRequest interruptores del documento HTML/PDF.
type DocumentOptionsRequest struct {
	PaperFormat string `json:"paper_format" query:"paper_format"` // letter, a4, legal
	Orientation string `json:"orientation" query:"orientation"`   // portrait, landscape
	ShowLogo    bool   `json:"show_logo" query:"show_logo"`
	ShowNCF     bool   `json:"show_ncf" query:"show_ncf"`
	ShowQR      bool   `json:"show_qr" query:"show_qr"`
	Watermark   string `json:"watermark" query:"watermark"` // ej. "BORRADOR"
}

// PrintRequest despacho del recibo a una impresora física.
type PrintRequest struct {
	Options     ReceiptOptionsRequest `json:"options"`
	Destination PrintDestinationDTO   `json:"destination"`
}

// PrintDestinationDTO destino del trabajo de impresión.
type PrintDestinationDTO struct {
	Kind    string `json:"kind"`    // "network" o "file"
	Address string `json:"address"` // host o ruta de spool
	Port    int    `json:"port"`    // solo network; 0 = 9100
}

// PrintResponse resultado del despacho.
type PrintResponse struct {
	SaleNumber string `json:"sale_number"`
	Bytes      int    `json:"bytes"`
	Dispatched bool   `json:"dispatched"`
	PreviewURL string `json:"preview_url,omitempty"`
}

// QRResponse URL de verificación del comprobante y su QR como data-URL,
// para frontends que componen su propia vista de impresión.
type QRResponse struct {
	SaleNumber string `json:"sale_number"`
	VerifyURL  string `json:"verify_url"`
	QRDataURL  string `json:"qr_data_url"`
}

// DocumentResponse resultado de la generación remota/degradada del documento.
type DocumentResponse struct {
	SaleNumber string `json:"sale_number"`
	Status     string `json:"status"`            // ok, degraded
	URL        string `json:"url,omitempty"`     // artefacto alojado (solo ok)
	Payload    string `json:"payload,omitempty"` // fallback data-URL (solo degraded)
}
