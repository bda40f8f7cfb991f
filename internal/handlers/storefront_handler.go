package handlers

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"tienda-arte/internal/cache"
	"tienda-arte/internal/catalog"
	"tienda-arte/internal/identity"
	"tienda-arte/internal/links"
	"tienda-arte/internal/models"
	"tienda-arte/internal/repository"
)

// CatalogLoader es lo que el handler necesita del cargador de tiendas
type CatalogLoader interface {
	Load(ctx context.Context) (*catalog.Storefront, error)
	LoadMerchant(ctx context.Context, merchantID uuid.UUID) (*catalog.Storefront, error)
}

// ProductStore es lo que el handler de detalle necesita de la frontera de datos
type ProductStore interface {
	FindProductByID(ctx context.Context, id string) (*models.Product, error)
	FetchProfile(ctx context.Context, merchantID uuid.UUID) (*models.Profile, error)
}

type StorefrontHandler struct {
	loader CatalogLoader
	store  ProductStore
	links  links.Builder
	cache  *cache.SnapshotCache
}

func NewStorefrontHandler(loader CatalogLoader, store ProductStore, lb links.Builder, c *cache.SnapshotCache) *StorefrontHandler {
	return &StorefrontHandler{
		loader: loader,
		store:  store,
		links:  lb,
		cache:  c,
	}
}

type categoryTab struct {
	models.Category
	Count int `json:"count"`
}

type storefrontResponse struct {
	MerchantID       string           `json:"merchant_id"`
	Profile          *models.Profile  `json:"profile"`
	Categories       []categoryTab    `json:"categories"`
	Products         []models.Product `json:"products"`
	Total            int              `json:"total"`
	SelectedCategory string           `json:"selected_category"`
	Query            string           `json:"query"`
}

type purchaseLinks struct {
	MercadoPago string `json:"mercadopago,omitempty"`
	WhatsApp    string `json:"whatsapp"`
}

// GetStorefront sirve la tienda inferida: la del dueño del producto activo
// más reciente. La foto cargada se cachea; los filtros se aplican por request.
func (h *StorefrontHandler) GetStorefront(c *gin.Context) {
	const cacheKey = "storefront:current"

	snapshot, found := h.cache.Get(cacheKey)
	if !found {
		loaded, err := h.loader.Load(c.Request.Context())
		if err != nil {
			h.renderLoadError(c, err)
			return
		}
		h.cache.Set(cacheKey, loaded)
		snapshot = loaded
	}

	h.renderStorefront(c, snapshot)
}

// GetStorefrontByMerchant sirve la tienda de un artesano explícito
func (h *StorefrontHandler) GetStorefrontByMerchant(c *gin.Context) {
	merchantID, err := uuid.Parse(c.Param("merchantId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid merchant ID"})
		return
	}

	cacheKey := "storefront:" + merchantID.String()
	snapshot, found := h.cache.Get(cacheKey)
	if !found {
		loaded, err := h.loader.LoadMerchant(c.Request.Context(), merchantID)
		if err != nil {
			h.renderLoadError(c, err)
			return
		}
		h.cache.Set(cacheKey, loaded)
		snapshot = loaded
	}

	h.renderStorefront(c, snapshot)
}

func (h *StorefrontHandler) renderStorefront(c *gin.Context, snapshot *catalog.Storefront) {
	view := catalog.NewView()
	view.ApplyLoad(snapshot)
	view.SelectCategory(c.DefaultQuery("category", catalog.AllCategories))
	view.SetSearch(c.Query("q"))

	counts := view.Counts()
	tabs := make([]categoryTab, 0, len(snapshot.Categories))
	for _, cat := range snapshot.Categories {
		tabs = append(tabs, categoryTab{Category: cat, Count: counts[cat.Name]})
	}

	c.JSON(http.StatusOK, storefrontResponse{
		MerchantID:       snapshot.MerchantID.String(),
		Profile:          snapshot.Profile,
		Categories:       tabs,
		Products:         view.VisibleProducts(),
		Total:            counts[catalog.AllCategories],
		SelectedCategory: view.SelectedCategory,
		Query:            view.SearchQuery,
	})
}

func (h *StorefrontHandler) renderLoadError(c *gin.Context, err error) {
	if errors.Is(err, catalog.ErrNoProducts) {
		// Estado de tienda vacía: el front muestra el llamado a registrarse
		c.JSON(http.StatusNotFound, gin.H{
			"error": "no hay productos disponibles",
			"code":  "empty_catalog",
		})
		return
	}
	zap.L().Error("Failed to load storefront", zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load storefront"})
}

// GetProduct sirve el detalle de un producto junto con sus enlaces de compra
func (h *StorefrontHandler) GetProduct(c *gin.Context) {
	product, err := h.store.FindProductByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}
		zap.L().Error("Failed to get product", zap.String("id", c.Param("id")), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get product"})
		return
	}

	// El perfil solo aporta el link de pago; sin perfil queda solo WhatsApp
	var profile *models.Profile
	if merchantID, err := uuid.Parse(product.UserID); err == nil {
		if p, err := h.store.FetchProfile(c.Request.Context(), merchantID); err == nil {
			profile = p
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"product": product,
		"links": purchaseLinks{
			MercadoPago: h.links.PaymentLink(profile, *product),
			WhatsApp:    h.links.WhatsAppLink(*product),
		},
	})
}

// Me devuelve el usuario con sesión, o null para visitantes anónimos
func (h *StorefrontHandler) Me(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"user": identity.FromContext(c)})
}
