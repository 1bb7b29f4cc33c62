package htmldoc

// documentTemplate es la plantilla única del comprobante en formato carta.
// Todo el CSS es inline para que el HTML sea autocontenido y se pueda
// codificar como data-URL o enviar tal cual al servicio remoto de PDF.
const documentTemplate = `<!DOCTYPE html>
<html lang="es">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
@page { size: {{.PageSize}} {{.Orientation}}; margin: 18mm; }
body { font-family: Helvetica, Arial, sans-serif; font-size: 12px; color: #222; margin: 0; }
.watermark { position: fixed; top: 40%; left: 0; width: 100%; text-align: center;
  font-size: 96px; font-weight: bold; color: rgba(180, 180, 180, 0.35);
  transform: rotate(-30deg); z-index: 0; pointer-events: none; }
.page { position: relative; z-index: 1; }
header { display: flex; justify-content: space-between; align-items: flex-start;
  border-bottom: 2px solid #222; padding-bottom: 12px; }
.company h1 { font-size: 18px; margin: 0 0 4px 0; }
.company p { margin: 1px 0; }
.logo { max-height: 64px; margin-bottom: 6px; }
.doc-meta { text-align: right; }
.doc-meta .label { font-size: 14px; font-weight: bold; }
.ncf-box { border: 1px solid #222; padding: 6px 10px; margin: 12px 0;
  text-align: center; font-weight: bold; }
.ncf-box small { display: block; font-weight: normal; }
.meta, .customer { margin: 10px 0; }
.meta p, .customer p { margin: 2px 0; }
table.items { width: 100%; border-collapse: collapse; margin: 14px 0; }
table.items th { border-bottom: 1px solid #222; text-align: left; padding: 4px; }
table.items td { border-bottom: 1px solid #ddd; padding: 4px; }
table.items th.num, table.items td.num { text-align: right; }
.totals { width: 260px; margin-left: auto; }
.totals div { display: flex; justify-content: space-between; padding: 2px 4px; }
.totals .grand { border-top: 2px solid #222; font-weight: bold; font-size: 14px; }
.qr { text-align: center; margin: 18px 0; font-family: monospace; }
footer { margin-top: 24px; text-align: center; color: #555; }
</style>
</head>
<body>
{{if .Watermark}}<div class="watermark">{{.Watermark}}</div>{{end}}
<div class="page">
<header>
  <div class="company">
    {{if .LogoSrc}}<img class="logo" src="{{.LogoSrc}}" alt="logo">{{end}}
    <h1>{{.CompanyName}}</h1>
    {{if .BusinessName}}<p>{{.BusinessName}}</p>{{end}}
    {{if .RNC}}<p>RNC: {{.RNC}}</p>{{end}}
    {{if .Address}}<p>{{.Address}}</p>{{end}}
    {{if .Phone}}<p>Tel: {{.Phone}}</p>{{end}}
    {{if .Email}}<p>{{.Email}}</p>{{end}}
  </div>
  <div class="doc-meta">
    <p class="label">{{.DocLabel}}</p>
    <p>No. {{.SaleNumber}}</p>
    <p>{{.Date}}</p>
  </div>
</header>

{{if .NCF}}
<div class="ncf-box">
  NCF: {{.NCF}}
  {{if .NCFTypeName}}<small>{{.NCFTypeName}}</small>{{end}}
  {{if .FiscalPeriod}}<small>Período Fiscal: {{.FiscalPeriod}}</small>{{end}}
</div>
{{end}}

<div class="meta">
  <p>Forma de pago: {{.PaymentLabel}}</p>
  {{if .Cashier}}<p>Cajero: {{.Cashier}}</p>{{end}}
</div>

{{if .HasCustomer}}
<div class="customer">
  <p><strong>Cliente:</strong> {{.CustomerName}}</p>
  {{if .CustomerRNC}}<p>RNC/Cédula: {{.CustomerRNC}}</p>{{end}}
  {{if .CustomerPhone}}<p>Tel: {{.CustomerPhone}}</p>{{end}}
</div>
{{end}}

<table class="items">
  <thead>
    <tr>
      <th>Descripción</th>
      <th>Código</th>
      <th class="num">Cant.</th>
      <th class="num">Precio</th>
      <th class="num">Desc.</th>
      <th class="num">Subtotal</th>
    </tr>
  </thead>
  <tbody>
    {{range .Items}}
    <tr>
      <td>{{.Name}}</td>
      <td>{{.Code}}</td>
      <td class="num">{{.Qty}}</td>
      <td class="num">{{.Unit}}</td>
      <td class="num">{{.Discount}}</td>
      <td class="num">{{.Subtotal}}</td>
    </tr>
    {{end}}
  </tbody>
</table>

<div class="totals">
  <div><span>Subtotal:</span><span>{{.Subtotal}}</span></div>
  <div><span>ITBIS (18%):</span><span>{{.ITBIS}}</span></div>
  <div class="grand"><span>TOTAL:</span><span>{{.Total}}</span></div>
</div>

{{if .QRToken}}<div class="qr">{{.QRToken}}</div>{{end}}

<footer>
  <p>¡Gracias por su compra!</p>
  {{if .Website}}<p>{{.Website}}</p>{{end}}
</footer>
</div>
</body>
</html>
`
