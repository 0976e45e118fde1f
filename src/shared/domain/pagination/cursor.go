package pagination

import (
	"fmt"
	"strconv"
	"strings"
)

// Cursor de paginación basado en tokens opacos por sesión.
// El token codifica únicamente (sesión, número de página); el tamaño
// de página es fijo a nivel de servicio.

// PageSize es el tamaño de página fijo para todos los listados
const PageSize = 50

// EncodeToken genera el token opaco para una página de la sesión
func EncodeToken(sessionID string, page int) string {
	return fmt.Sprintf("%s-%d", sessionID, page)
}

// DecodeToken recupera el número de página desde un token.
// Un token vacío, de otra sesión o malformado significa primera página (0).
func DecodeToken(sessionID, token string) int {
	if token == "" {
		return 0
	}
	prefix := sessionID + "-"
	if !strings.HasPrefix(token, prefix) {
		return 0
	}
	page, err := strconv.Atoi(strings.TrimPrefix(token, prefix))
	if err != nil || page < 0 {
		return 0
	}
	return page
}

// Offset calcula el offset de la consulta para una página
func Offset(page int) int {
	if page > 0 {
		return (page - 1) * PageSize
	}
	return 0
}

// Limit calcula el límite de la consulta para una página.
// El límite es acumulativo: crece con el número de página. Cambiarlo a
// ventana fija rompería la semántica que esperan los clientes actuales.
func Limit(page int) int {
	if page == 0 {
		return PageSize
	}
	return page * PageSize
}

// NextToken emite el token de la página siguiente sólo cuando el total
// de registros supera el límite actual; en otro caso retorna vacío.
func NextToken(sessionID string, page, count int) string {
	if count > Limit(page) {
		return EncodeToken(sessionID, page+1)
	}
	return ""
}
