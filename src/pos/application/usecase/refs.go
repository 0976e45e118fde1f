package usecase

import "github.com/google/uuid"

// parseOptionalUUID interpreta una referencia opcional. Retorna false
// cuando viene vacía; una referencia malformada se trata como ausente
// para que la resolución posterior decida el error de negocio.
func parseOptionalUUID(value string) (uuid.UUID, bool) {
	if value == "" {
		return uuid.Nil, false
	}
	parsed, err := uuid.Parse(value)
	if err != nil {
		return uuid.Nil, false
	}
	return parsed, true
}
