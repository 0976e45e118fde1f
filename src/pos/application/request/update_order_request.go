package request

// UpdateOrderRequest modifica una orden en borrador. Todos los campos
// son opcionales: los vacíos se ignoran. Cambiar el cliente dispara la
// cascada de reprecio sobre todas las líneas.
type UpdateOrderRequest struct {
	PosUUID          string `json:"pos_uuid,omitempty"`
	DocumentTypeUUID string `json:"document_type_uuid,omitempty"`
	CustomerUUID     string `json:"customer_uuid,omitempty"`
	Description      string `json:"description,omitempty"`
}
