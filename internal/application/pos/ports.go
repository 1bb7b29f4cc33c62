// Package pos contiene los casos de uso del punto de venta: creación de
// ventas con asignación de NCF, consulta y administración de secuencias.
package pos

import (
	"context"

	"github.com/fourone/fourone-api/internal/domain/repository"
)

// TxRunner ejecuta el cierre de venta dentro de una transacción: número de
// venta, asignación de NCF y persistencia de cabecera y líneas son atómicos.
type TxRunner interface {
	RunSale(ctx context.Context, fn func(
		saleRepo repository.SaleRepository,
		ncfRepo repository.NCFSequenceRepository,
	) error) error
}
