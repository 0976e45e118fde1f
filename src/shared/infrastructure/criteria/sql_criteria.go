package criteria

import (
	"fmt"
	"strconv"
	"strings"

	domainCriteria "pos/src/shared/domain/criteria"
)

// SQLCriteriaConverter convierte un objeto Criteria en una consulta SQL
type SQLCriteriaConverter struct{}

// NewSQLCriteriaConverter crea una nueva instancia del conversor
func NewSQLCriteriaConverter() *SQLCriteriaConverter {
	return &SQLCriteriaConverter{}
}

// ToSelectSQL convierte un criteria a una consulta SQL SELECT completa con sus parámetros
func (s *SQLCriteriaConverter) ToSelectSQL(baseQuery string, criteria domainCriteria.Criteria) (string, []interface{}) {
	var parts []string
	var params []interface{}

	// Query base
	parts = append(parts, baseQuery)

	// Agregar WHERE clause si hay filtros
	if !criteria.Filters.IsEmpty() {
		whereClause, whereParams := s.buildWhereClause(criteria.Filters)
		parts = append(parts, whereClause)
		params = append(params, whereParams...)
	}

	// Agregar ORDER BY clause si hay ordenamiento
	if !criteria.Order.IsEmpty() {
		parts = append(parts, s.buildOrderClause(criteria.Order))
	}

	// Agregar LIMIT y OFFSET clause si hay paginación
	if criteria.Limit != nil && criteria.Offset != nil {
		parts = append(parts, s.buildLimitClause(criteria.Limit, criteria.Offset))
	}

	return strings.Join(parts, " "), params
}

// ToCountSQL convierte un criteria a una consulta SQL COUNT con sus parámetros
func (s *SQLCriteriaConverter) ToCountSQL(baseCountQuery string, criteria domainCriteria.Criteria) (string, []interface{}) {
	var parts []string
	var params []interface{}

	// Query base (generalmente "SELECT COUNT(*) FROM table")
	parts = append(parts, baseCountQuery)

	// Agregar WHERE clause si hay filtros
	if !criteria.Filters.IsEmpty() {
		whereClause, whereParams := s.buildWhereClause(criteria.Filters)
		parts = append(parts, whereClause)
		params = append(params, whereParams...)
	}

	// No necesitamos ORDER BY ni LIMIT para COUNT

	return strings.Join(parts, " "), params
}

// buildWhereClause construye la cláusula WHERE con sus parámetros
func (s *SQLCriteriaConverter) buildWhereClause(filters domainCriteria.Filters) (string, []interface{}) {
	var conditions []string
	var params []interface{}

	paramIndex := 1
	for _, filter := range filters.Items {
		condition, value := s.processFilterWithIndex(filter, paramIndex)
		conditions = append(conditions, condition)
		if value != nil {
			params = append(params, value)
			paramIndex++
		}
	}

	if len(conditions) > 0 {
		return fmt.Sprintf("WHERE %s", strings.Join(conditions, " AND ")), params
	}

	return "", params
}

// buildOrderClause construye la cláusula ORDER BY
func (s *SQLCriteriaConverter) buildOrderClause(order domainCriteria.Order) string {
	return fmt.Sprintf("ORDER BY %s %s", order.Field, string(order.OrderType))
}

// buildLimitClause construye la cláusula LIMIT y OFFSET
func (s *SQLCriteriaConverter) buildLimitClause(limit, offset *int) string {
	return fmt.Sprintf("LIMIT %d OFFSET %d", *limit, *offset)
}

// processFilterWithIndex convierte un filtro en una condición SQL con índice de parámetro
func (s *SQLCriteriaConverter) processFilterWithIndex(filter domainCriteria.Filter, paramIndex int) (string, interface{}) {
	var condition string
	placeholder := "$" + strconv.Itoa(paramIndex)

	switch filter.Operator {
	case domainCriteria.OpEqual, domainCriteria.OpNotEqual, domainCriteria.OpGreaterThan,
		domainCriteria.OpGreaterThanOrEqual, domainCriteria.OpLessThan, domainCriteria.OpLessThanOrEqual:
		condition = fmt.Sprintf("%s %s %s", filter.Field, filter.Operator, placeholder)
	case domainCriteria.OpLike:
		condition = fmt.Sprintf("UPPER(%s) LIKE UPPER(%s)", filter.Field, placeholder)
		// Asegurar que el valor sea compatible con LIKE
		if str, ok := filter.Value.(string); ok {
			if !strings.Contains(str, "%") {
				filter.Value = "%" + str + "%"
			}
		}
	case domainCriteria.OpIn:
		condition = fmt.Sprintf("%s = ANY(%s)", filter.Field, placeholder)
	case domainCriteria.OpIsNull:
		condition = fmt.Sprintf("%s IS NULL", filter.Field)
		return condition, nil
	case domainCriteria.OpIsNotNull:
		condition = fmt.Sprintf("%s IS NOT NULL", filter.Field)
		return condition, nil
	default:
		condition = fmt.Sprintf("%s = %s", filter.Field, placeholder)
	}

	return condition, filter.Value
}
