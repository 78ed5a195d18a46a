package catalog

import (
	"github.com/shopspring/decimal"

	"github.com/contada-dev/contada/internal/model"
)

// DefaultCatalog returns the standard teaching roster.
func DefaultCatalog() []Definition {
	return []Definition{
		{Name: "Caja", Type: model.AccountTypeAsset, Value: decimal.NewFromInt(100), Description: "Efectivo disponible"},
		{Name: "Banco", Type: model.AccountTypeAsset, Value: decimal.NewFromInt(500), Description: "Cuenta corriente bancaria"},
		{Name: "Ctas x Cobrar", Type: model.AccountTypeAsset, Value: decimal.NewFromInt(300), Description: "Créditos a clientes"},
		{Name: "Ctas x Pagar", Type: model.AccountTypeLiability, Value: decimal.NewFromInt(100), Description: "Deudas con proveedores"},
		{Name: "Capital Social", Type: model.AccountTypeEquity, Value: decimal.NewFromInt(1000), Description: "Aportes de los socios"},
		{Name: "Venta Servicios", Type: model.AccountTypeRevenue, Value: decimal.NewFromInt(500), RequiresIVA: true, Description: "Ingresos por servicios"},
		{Name: "Compra Mercadería", Type: model.AccountTypeExpense, Value: decimal.NewFromInt(200), RequiresIVA: true, Description: "Compras con factura"},
		{Name: "Gastos Personales", Type: model.AccountTypeExpense, Value: decimal.NewFromInt(50), IsPersonal: true, Description: "Gastos del dueño, no de la empresa"},
		{Name: "Sueldos", Type: model.AccountTypeExpense, Value: decimal.NewFromInt(150), Description: "Remuneraciones del personal"},
	}
}
