package criteria

import (
	"testing"

	"github.com/stretchr/testify/assert"

	domainCriteria "pos/src/shared/domain/criteria"
)

func TestToSelectSQL_FiltersOrderAndPagination(t *testing.T) {
	converter := NewSQLCriteriaConverter()

	crit := domainCriteria.NewCriteriaBuilder().
		Where("pos_id", domainCriteria.OpEqual, int64(9)).
		Where("grand_total", domainCriteria.OpGreaterThanOrEqual, "100").
		OrderBy("date_ordered", domainCriteria.DESC).
		Paginate(50, 0).
		Build()

	query, params := converter.ToSelectSQL("SELECT * FROM orders", crit)

	assert.Equal(t, "SELECT * FROM orders WHERE pos_id = $1 AND grand_total >= $2 ORDER BY date_ordered DESC LIMIT 50 OFFSET 0", query)
	assert.Equal(t, []interface{}{int64(9), "100"}, params)
}

func TestToSelectSQL_LikeWrapsValue(t *testing.T) {
	converter := NewSQLCriteriaConverter()

	crit := domainCriteria.NewCriteriaBuilder().
		Where("document_no", domainCriteria.OpLike, "POS-10").
		Build()

	query, params := converter.ToSelectSQL("SELECT * FROM orders", crit)

	assert.Equal(t, "SELECT * FROM orders WHERE UPPER(document_no) LIKE UPPER($1)", query)
	assert.Equal(t, []interface{}{"%POS-10%"}, params)
}

func TestToSelectSQL_LikeKeepsExplicitWildcards(t *testing.T) {
	converter := NewSQLCriteriaConverter()

	crit := domainCriteria.NewCriteriaBuilder().
		Where("document_no", domainCriteria.OpLike, "POS-%").
		Build()

	_, params := converter.ToSelectSQL("SELECT * FROM orders", crit)

	assert.Equal(t, []interface{}{"POS-%"}, params)
}

func TestToSelectSQL_InUsesAny(t *testing.T) {
	converter := NewSQLCriteriaConverter()

	crit := domainCriteria.NewCriteriaBuilder().
		Where("status", domainCriteria.OpIn, []string{"DRAFTED", "IN_PROGRESS"}).
		Build()

	query, params := converter.ToSelectSQL("SELECT * FROM orders", crit)

	assert.Equal(t, "SELECT * FROM orders WHERE status = ANY($1)", query)
	assert.Len(t, params, 1)
}

func TestToSelectSQL_NullOperatorsTakeNoParams(t *testing.T) {
	converter := NewSQLCriteriaConverter()

	crit := domainCriteria.NewCriteriaBuilder().
		Where("business_partner_id", domainCriteria.OpIsNull, nil).
		Where("pos_id", domainCriteria.OpEqual, int64(9)).
		Build()

	query, params := converter.ToSelectSQL("SELECT * FROM orders", crit)

	// El filtro IS NULL no consume placeholder: el siguiente sigue siendo $1
	assert.Equal(t, "SELECT * FROM orders WHERE business_partner_id IS NULL AND pos_id = $1", query)
	assert.Equal(t, []interface{}{int64(9)}, params)
}

func TestToCountSQL_OmitsOrderAndPagination(t *testing.T) {
	converter := NewSQLCriteriaConverter()

	crit := domainCriteria.NewCriteriaBuilder().
		Where("pos_id", domainCriteria.OpEqual, int64(9)).
		OrderBy("date_ordered", domainCriteria.DESC).
		Paginate(50, 0).
		Build()

	query, params := converter.ToCountSQL("SELECT COUNT(*) FROM orders", crit)

	assert.Equal(t, "SELECT COUNT(*) FROM orders WHERE pos_id = $1", query)
	assert.Equal(t, []interface{}{int64(9)}, params)
}

func TestToSelectSQL_NoFilters(t *testing.T) {
	converter := NewSQLCriteriaConverter()

	query, params := converter.ToSelectSQL("SELECT * FROM orders", domainCriteria.NewCriteriaBuilder().Build())

	assert.Equal(t, "SELECT * FROM orders", query)
	assert.Empty(t, params)
}
