package entity

import "errors"

// Errores de negocio del motor de composición de órdenes.
// Los controllers los traducen a códigos HTTP: NotFound -> 404,
// estado inválido -> 409, validación -> 400.

var (
	// NotFound
	ErrPointOfSaleNotFound     = errors.New("point of sale not found")
	ErrOrderNotFound           = errors.New("order not found")
	ErrOrderLineNotFound       = errors.New("order line not found")
	ErrBusinessPartnerNotFound = errors.New("business partner not found")
	ErrProductNotFound         = errors.New("product not found")
	ErrChargeNotFound          = errors.New("charge not found")
	ErrPriceListNotFound       = errors.New("price list not found")
	ErrDocumentTypeNotFound    = errors.New("document type not found")
	ErrProductPriceNotFound    = errors.New("product has no valid price for the order price list")

	// Estado inválido
	ErrOrderNotDrafted    = errors.New("order is not in DRAFTED state")
	ErrOrderLineProcessed = errors.New("order line is already processed")
	ErrOrderProcessed     = errors.New("order is already processed")

	// Validación
	ErrProductOrChargeRequired = errors.New("exactly one of product or charge is required")
	ErrNothingToUpdate         = errors.New("nothing to update: quantity, price or discount rate required")
	ErrSearchCriteriaRequired  = errors.New("search value, upc, code or name is required")
	ErrPointOfSaleRequired     = errors.New("point of sale reference is required")
	ErrOrderRequired           = errors.New("order reference is required")
)
