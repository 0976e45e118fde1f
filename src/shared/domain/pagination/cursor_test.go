package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeToken(t *testing.T) {
	assert.Equal(t, 0, DecodeToken("sess", ""))
	assert.Equal(t, 3, DecodeToken("sess", "sess-3"))
	assert.Equal(t, 0, DecodeToken("sess", "otra-3"))
	assert.Equal(t, 0, DecodeToken("sess", "sess-abc"))
	assert.Equal(t, 0, DecodeToken("sess", "sess--1"))
}

func TestDecodeToken_SessionWithDashes(t *testing.T) {
	// Los IDs de sesión pueden contener guiones (UUIDs)
	session := "9f1c2d3e-4b5a-6789"
	assert.Equal(t, 2, DecodeToken(session, EncodeToken(session, 2)))
}

func TestOffset(t *testing.T) {
	assert.Equal(t, 0, Offset(0))
	assert.Equal(t, 0, Offset(1))
	assert.Equal(t, 50, Offset(2))
	assert.Equal(t, 100, Offset(3))
}

func TestLimit_GrowsWithPage(t *testing.T) {
	assert.Equal(t, 50, Limit(0))
	assert.Equal(t, 50, Limit(1))
	assert.Equal(t, 100, Limit(2))
	assert.Equal(t, 150, Limit(3))
}

func TestNextToken(t *testing.T) {
	assert.Equal(t, "sess-1", NextToken("sess", 0, 51))
	assert.Empty(t, NextToken("sess", 0, 50))
	assert.Equal(t, "sess-3", NextToken("sess", 2, 120))
	assert.Empty(t, NextToken("sess", 2, 100))
}
