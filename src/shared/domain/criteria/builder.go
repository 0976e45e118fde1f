package criteria

// CriteriaBuilder construye criterias de forma fluida desde los use cases
type CriteriaBuilder struct {
	filters Filters
	order   Order
	limit   *int
	offset  *int
}

// NewCriteriaBuilder crea un builder vacío
func NewCriteriaBuilder() *CriteriaBuilder {
	return &CriteriaBuilder{}
}

// Where agrega una condición
func (b *CriteriaBuilder) Where(field string, operator Operator, value interface{}) *CriteriaBuilder {
	b.filters.Add(NewFilter(field, operator, value))
	return b
}

// OrderBy define el ordenamiento
func (b *CriteriaBuilder) OrderBy(field string, orderType OrderType) *CriteriaBuilder {
	b.order = NewOrder(field, orderType)
	return b
}

// Paginate define limit y offset
func (b *CriteriaBuilder) Paginate(limit, offset int) *CriteriaBuilder {
	b.limit = &limit
	b.offset = &offset
	return b
}

// Build construye el criteria final
func (b *CriteriaBuilder) Build() Criteria {
	return NewCriteria(b.filters, b.order, b.limit, b.offset)
}
