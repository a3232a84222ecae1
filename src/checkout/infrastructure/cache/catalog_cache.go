package cache

import (
	"context"
	"strings"
	"sync"

	"pos/src/checkout/domain/entity"
	"pos/src/checkout/domain/port"

	"github.com/sirupsen/logrus"
)

// CatalogCache cache en memoria del catálogo de productos vendibles.
// Se carga desde el inventario remoto al arrancar y se recarga después de
// cada venta exitosa, porque el stock se descuenta del lado servidor.
type CatalogCache struct {
	source port.InventorySource
	items  map[string]entity.CatalogItem
	order  []string
	mu     sync.RWMutex
}

// NewCatalogCache crea un cache vacío sobre la fuente de inventario
func NewCatalogCache(source port.InventorySource) *CatalogCache {
	return &CatalogCache{
		source: source,
		items:  make(map[string]entity.CatalogItem),
	}
}

// Refresh reemplaza el contenido del cache con el catálogo actual del
// inventario remoto. Si la llamada falla el contenido anterior se conserva.
func (c *CatalogCache) Refresh(ctx context.Context) error {
	logrus.Info("🔄 Refreshing product catalog cache...")

	catalog, err := c.source.FetchCatalog(ctx)
	if err != nil {
		logrus.WithError(err).Warn("⚠️  Could not refresh catalog cache, keeping previous content")
		return err
	}

	items := make(map[string]entity.CatalogItem, len(catalog))
	order := make([]string, 0, len(catalog))
	for _, item := range catalog {
		if _, dup := items[item.ID]; dup {
			continue
		}
		items[item.ID] = item
		order = append(order, item.ID)
	}

	c.mu.Lock()
	c.items = items
	c.order = order
	c.mu.Unlock()

	logrus.Infof("✅ Loaded %d products into catalog cache", len(order))
	return nil
}

// Get obtiene un producto del catálogo por ID
func (c *CatalogCache) Get(id string) (entity.CatalogItem, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	item, ok := c.items[id]
	return item, ok
}

// List retorna el catálogo en el orden en que lo entregó el inventario,
// opcionalmente filtrado por nombre (búsqueda sin distinguir mayúsculas)
func (c *CatalogCache) List(search string) []entity.CatalogItem {
	c.mu.RLock()
	defer c.mu.RUnlock()

	search = strings.ToLower(search)
	result := make([]entity.CatalogItem, 0, len(c.order))
	for _, id := range c.order {
		item := c.items[id]
		if search != "" && !strings.Contains(strings.ToLower(item.Nombre), search) {
			continue
		}
		result = append(result, item)
	}
	return result
}

// Len retorna la cantidad de productos en el cache
func (c *CatalogCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.order)
}
