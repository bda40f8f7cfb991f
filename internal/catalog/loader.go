package catalog

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"tienda-arte/internal/models"
)

// ErrNoProducts indica que no hay ningún producto activo para mostrar.
// Es el estado de tienda vacía, no un fallo de transporte.
var ErrNoProducts = errors.New("no hay productos disponibles")

// Store es la frontera de acceso a datos que consume el cargador.
// FetchActiveProducts nunca falla: ante un error devuelve una lista vacía.
type Store interface {
	FetchActiveProducts(ctx context.Context) []models.Product
	FetchActiveProductsForMerchant(ctx context.Context, merchantID uuid.UUID) ([]models.Product, error)
	FetchProfile(ctx context.Context, merchantID uuid.UUID) (*models.Profile, error)
	FetchCategories(ctx context.Context, merchantID uuid.UUID) ([]models.Category, error)
}

// Storefront es la foto completa de una tienda lista para renderizar
type Storefront struct {
	MerchantID uuid.UUID         `json:"merchant_id"`
	Products   []models.Product  `json:"products"`
	Profile    *models.Profile   `json:"profile"`
	Categories []models.Category `json:"categories"`
}

type Loader struct {
	store Store
}

func NewLoader(store Store) *Loader {
	return &Loader{store: store}
}

// Load arma la tienda sin conocer al artesano de antemano: lista todos los
// productos activos y toma como dueño al del producto más reciente. El listado
// global se descarta después; solo decide qué tienda se muestra.
func (l *Loader) Load(ctx context.Context) (*Storefront, error) {
	all := l.store.FetchActiveProducts(ctx)
	if len(all) == 0 {
		return nil, ErrNoProducts
	}

	merchantID, err := uuid.Parse(all[0].UserID)
	if err != nil {
		return nil, fmt.Errorf("invalid merchant id on newest product: %w", err)
	}

	return l.LoadMerchant(ctx, merchantID)
}

// LoadMerchant carga la tienda de un artesano concreto. Los tres fetches
// corren en paralelo y el resultado se aplica recién cuando terminan todos.
// Perfil y categorías degradan a vacío si fallan; los productos no.
func (l *Loader) LoadMerchant(ctx context.Context, merchantID uuid.UUID) (*Storefront, error) {
	var (
		wg          sync.WaitGroup
		products    []models.Product
		productsErr error
		profile     *models.Profile
		categories  []models.Category
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		products, productsErr = l.store.FetchActiveProductsForMerchant(ctx, merchantID)
	}()
	go func() {
		defer wg.Done()
		p, err := l.store.FetchProfile(ctx, merchantID)
		if err != nil {
			zap.L().Warn("Profile unavailable, storefront renders without banner",
				zap.String("merchant_id", merchantID.String()), zap.Error(err))
			return
		}
		profile = p
	}()
	go func() {
		defer wg.Done()
		c, err := l.store.FetchCategories(ctx, merchantID)
		if err != nil {
			zap.L().Warn("Categories unavailable, storefront renders without tabs",
				zap.String("merchant_id", merchantID.String()), zap.Error(err))
			return
		}
		categories = c
	}()
	wg.Wait()

	if productsErr != nil {
		return nil, fmt.Errorf("load storefront %s: %w", merchantID, productsErr)
	}
	if len(products) == 0 {
		return nil, ErrNoProducts
	}
	if categories == nil {
		categories = []models.Category{}
	}

	return &Storefront{
		MerchantID: merchantID,
		Products:   products,
		Profile:    profile,
		Categories: categories,
	}, nil
}
