package catalog

import (
	"context"
	"errors"
	"math/rand"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"tienda-arte/internal/models"
)

type fakeStore struct {
	all []models.Product

	merchantProducts    []models.Product
	merchantProductsErr error
	profile             *models.Profile
	profileErr          error
	categories          []models.Category
	categoriesErr       error

	scopedCalls      int
	lastMerchantID   uuid.UUID
	randomizeLatency bool
}

func (f *fakeStore) FetchActiveProducts(ctx context.Context) []models.Product {
	return f.all
}

func (f *fakeStore) FetchActiveProductsForMerchant(ctx context.Context, merchantID uuid.UUID) ([]models.Product, error) {
	f.scopedCalls++
	f.lastMerchantID = merchantID
	f.sleep()
	return f.merchantProducts, f.merchantProductsErr
}

func (f *fakeStore) FetchProfile(ctx context.Context, merchantID uuid.UUID) (*models.Profile, error) {
	f.sleep()
	return f.profile, f.profileErr
}

func (f *fakeStore) FetchCategories(ctx context.Context, merchantID uuid.UUID) ([]models.Category, error) {
	f.sleep()
	return f.categories, f.categoriesErr
}

func (f *fakeStore) sleep() {
	if f.randomizeLatency {
		time.Sleep(time.Duration(rand.Intn(5)) * time.Millisecond)
	}
}

func merchantFixture() (uuid.UUID, *fakeStore) {
	merchantID := uuid.New()
	owned := []models.Product{
		product("Gato acuarela", "Pintura", "Pinturas", 3),
		product("Pin esmaltado", "Gato dorado", "Pines", 0),
	}
	for i := range owned {
		owned[i].UserID = merchantID.String()
	}
	return merchantID, &fakeStore{
		all:              owned,
		merchantProducts: owned,
		profile:          &models.Profile{ID: merchantID.String(), Name: "Ana"},
		categories:       []models.Category{{Name: "Pinturas"}, {Name: "Pines"}},
	}
}

func TestLoadEmptyCatalog(t *testing.T) {
	store := &fakeStore{all: []models.Product{}}
	loader := NewLoader(store)

	s, err := loader.Load(context.Background())

	assert.ErrorIs(t, err, ErrNoProducts)
	assert.Nil(t, s)
	assert.Zero(t, store.scopedCalls, "con catálogo vacío no se dispara ningún fetch por artesano")
}

func TestLoadPicksNewestProductsOwner(t *testing.T) {
	merchantID, store := merchantFixture()
	otherOwner := []models.Product{product("Ajeno", "", "", 1)}
	otherOwner[0].UserID = uuid.NewString()
	store.all = append(store.all, otherOwner...)

	s, err := NewLoader(store).Load(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, merchantID, s.MerchantID)
	assert.Equal(t, merchantID, store.lastMerchantID)
}

func TestLoadReplacesGlobalSnapshot(t *testing.T) {
	merchantID, store := merchantFixture()
	// El listado global trae además un producto de otro artesano; la foto
	// final solo puede contener los del dueño elegido.
	foreign := product("Ajeno", "", "", 1)
	foreign.UserID = uuid.NewString()
	store.all = append([]models.Product{store.all[0]}, foreign)

	s, err := NewLoader(store).Load(context.Background())

	assert.NoError(t, err)
	assert.Len(t, s.Products, 2)
	for _, p := range s.Products {
		assert.Equal(t, merchantID.String(), p.UserID)
	}
}

func TestLoadInvalidOwnerID(t *testing.T) {
	store := &fakeStore{all: []models.Product{{UserID: "not-a-uuid", Name: "x"}}}

	_, err := NewLoader(store).Load(context.Background())

	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrNoProducts)
}

func TestLoadProfileFailureDegrades(t *testing.T) {
	_, store := merchantFixture()
	store.profile = nil
	store.profileErr = errors.New("profile fetch blew up")

	s, err := NewLoader(store).Load(context.Background())

	assert.NoError(t, err, "un perfil caído no voltea la carga")
	assert.Nil(t, s.Profile)
	assert.Len(t, s.Products, 2)
	assert.Len(t, s.Categories, 2)
}

func TestLoadCategoriesFailureDegrades(t *testing.T) {
	_, store := merchantFixture()
	store.categories = nil
	store.categoriesErr = errors.New("categories fetch blew up")

	s, err := NewLoader(store).Load(context.Background())

	assert.NoError(t, err)
	assert.NotNil(t, s.Categories)
	assert.Empty(t, s.Categories)
}

func TestLoadProductsFailurePropagates(t *testing.T) {
	_, store := merchantFixture()
	store.merchantProducts = nil
	store.merchantProductsErr = errors.New("query timed out")

	s, err := NewLoader(store).Load(context.Background())

	assert.Nil(t, s)
	assert.ErrorContains(t, err, "query timed out")
}

func TestLoadMerchantEmptyStore(t *testing.T) {
	merchantID := uuid.New()
	store := &fakeStore{merchantProducts: []models.Product{}}

	_, err := NewLoader(store).LoadMerchant(context.Background(), merchantID)

	assert.ErrorIs(t, err, ErrNoProducts)
}

func TestLoadMerchantOrderIndependence(t *testing.T) {
	merchantID, store := merchantFixture()
	store.randomizeLatency = true
	loader := NewLoader(store)

	// El orden de finalización de los tres fetches no puede cambiar la foto
	var first *Storefront
	for i := 0; i < 20; i++ {
		s, err := loader.LoadMerchant(context.Background(), merchantID)
		assert.NoError(t, err)
		if first == nil {
			first = s
			continue
		}
		assert.Equal(t, first, s)
	}
}
