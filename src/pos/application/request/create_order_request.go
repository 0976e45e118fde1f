package request

// CreateOrderRequest abre (o reutiliza) una orden en borrador para una
// terminal. CustomerUUID vacío significa usar el cliente de mostrador
// de la terminal.
type CreateOrderRequest struct {
	PosUUID          string `json:"pos_uuid" binding:"required"`
	CustomerUUID     string `json:"customer_uuid,omitempty"`
	DocumentTypeUUID string `json:"document_type_uuid,omitempty"`
}
