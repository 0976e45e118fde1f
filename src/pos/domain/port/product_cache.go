package port

import "pos/src/pos/domain/entity"

// ProductCache memoiza la resolución de productos por término de
// búsqueda (código, UPC, SKU, nombre) para evitar lookups repetidos.
// Debe ser seguro para get/put concurrente y estar acotado por
// cantidad de entradas; no garantiza consistencia con el catálogo, por
// eso existe Purge.
type ProductCache interface {
	Get(key string) (*entity.Product, bool)
	Put(key string, product *entity.Product)
	Purge()
}
