package market

import (
	"github.com/shopspring/decimal"

	"github.com/contada-dev/contada/internal/model"
)

// DefaultEvents returns the static contract catalog. Every effect only
// names accounts that exist in the default card roster, so every mission
// is playable with a dealt hand.
func DefaultEvents() []model.MarketEvent {
	amt := decimal.NewFromInt
	return []model.MarketEvent{
		{
			ID:              "venta-contado",
			Title:           "Venta de servicios al contado",
			Description:     "Un cliente paga 500 en efectivo por servicios prestados.",
			Kind:            model.KindSale,
			Amount:          amt(500),
			RequiresInvoice: true,
			Effect:          model.Effect{Debe: []string{"Caja"}, Haber: []string{"Venta Servicios"}},
		},
		{
			ID:              "venta-credito",
			Title:           "Venta de servicios a crédito",
			Description:     "Se factura 300 a un cliente que pagará el mes próximo.",
			Kind:            model.KindSale,
			Amount:          amt(300),
			RequiresInvoice: true,
			Effect:          model.Effect{Debe: []string{"Ctas x Cobrar"}, Haber: []string{"Venta Servicios"}},
		},
		{
			ID:              "compra-contado",
			Title:           "Compra de mercadería al contado",
			Description:     "Se compran 200 en mercadería pagando en efectivo, con factura.",
			Kind:            model.KindPurchase,
			Amount:          amt(200),
			RequiresInvoice: true,
			Effect:          model.Effect{Debe: []string{"Compra Mercadería"}, Haber: []string{"Caja"}},
		},
		{
			ID:          "compra-credito",
			Title:       "Compra de mercadería a crédito",
			Description: "El proveedor entrega 200 en mercadería a pagar a fin de mes.",
			Kind:        model.KindPurchase,
			Amount:      amt(200),
			Effect:      model.Effect{Debe: []string{"Compra Mercadería"}, Haber: []string{"Ctas x Pagar"}},
		},
		{
			ID:          "aporte-capital",
			Title:       "Aporte de capital",
			Description: "Los socios aportan 1000 en efectivo a la empresa.",
			Kind:        model.KindEvent,
			Amount:      amt(1000),
			Effect:      model.Effect{Debe: []string{"Caja"}, Haber: []string{"Capital Social"}},
		},
		{
			ID:          "deposito-banco",
			Title:       "Depósito bancario",
			Description: "Se depositan 500 de la caja en la cuenta corriente.",
			Kind:        model.KindEvent,
			Amount:      amt(500),
			Effect:      model.Effect{Debe: []string{"Banco"}, Haber: []string{"Caja"}},
		},
		{
			ID:          "pago-proveedores",
			Title:       "Pago a proveedores",
			Description: "Se cancelan 100 de deudas con proveedores en efectivo.",
			Kind:        model.KindPurchase,
			Amount:      amt(100),
			Effect:      model.Effect{Debe: []string{"Ctas x Pagar"}, Haber: []string{"Caja"}},
		},
		{
			ID:          "cobro-clientes",
			Title:       "Cobro a clientes",
			Description: "Un cliente cancela 300 de su cuenta pendiente.",
			Kind:        model.KindEvent,
			Amount:      amt(300),
			Effect:      model.Effect{Debe: []string{"Caja"}, Haber: []string{"Ctas x Cobrar"}},
		},
		{
			ID:          "pago-sueldos",
			Title:       "Pago de sueldos",
			Description: "Se pagan 150 de remuneraciones en efectivo.",
			Kind:        model.KindEvent,
			Amount:      amt(150),
			Effect:      model.Effect{Debe: []string{"Sueldos"}, Haber: []string{"Caja"}},
		},
	}
}
