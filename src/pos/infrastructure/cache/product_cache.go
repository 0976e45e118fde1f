package cache

import (
	"pos/src/pos/domain/entity"

	lru "github.com/hashicorp/golang-lru/v2"
)

// LRUProductCache memoiza productos resueltos por término de búsqueda.
// Está acotado por cantidad de entradas: al llenarse se descartan las
// menos usadas. Es seguro para uso concurrente.
type LRUProductCache struct {
	entries *lru.Cache[string, *entity.Product]
}

// NewLRUProductCache crea un cache con capacidad máxima de size entradas
func NewLRUProductCache(size int) (*LRUProductCache, error) {
	entries, err := lru.New[string, *entity.Product](size)
	if err != nil {
		return nil, err
	}
	return &LRUProductCache{entries: entries}, nil
}

// Get retorna el producto memoizado para la clave, si existe
func (c *LRUProductCache) Get(key string) (*entity.Product, bool) {
	return c.entries.Get(key)
}

// Put memoiza el producto bajo la clave dada
func (c *LRUProductCache) Put(key string, product *entity.Product) {
	c.entries.Add(key, product)
}

// Purge vacía el cache completo. Se expone para invalidar tras cambios
// de catálogo.
func (c *LRUProductCache) Purge() {
	c.entries.Purge()
}
