package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"tienda-arte/internal/models"
)

// ErrProductNotFound se devuelve cuando el producto no existe o no está activo
var ErrProductNotFound = errors.New("product not found")

// ErrProfileNotFound se devuelve cuando el artesano no tiene perfil cargado
var ErrProfileNotFound = errors.New("profile not found")

// StoreRepository es la frontera de acceso a datos de la tienda pública.
// Solo expone lecturas; el panel de administración escribe por otro camino.
type StoreRepository struct {
	products   *mongo.Collection
	categories *mongo.Collection
	profiles   *mongo.Collection
}

func NewStoreRepository(db *mongo.Database) *StoreRepository {
	return &StoreRepository{
		products:   db.Collection("products"),
		categories: db.Collection("categories"),
		profiles:   db.Collection("profiles"),
	}
}

// FetchActiveProducts obtiene todos los productos activos, más recientes primero.
// Un fallo de transporte se registra y se devuelve una lista vacía: este listado
// global solo sirve para descubrir qué tienda mostrar.
func (r *StoreRepository) FetchActiveProducts(ctx context.Context) []models.Product {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	products, err := r.findActive(ctx, bson.M{"is_active": true})
	if err != nil {
		zap.L().Error("Error fetching products", zap.Error(err))
		return []models.Product{}
	}
	return products
}

// FetchActiveProductsForMerchant obtiene los productos activos de un artesano,
// más recientes primero, con su categoría embebida
func (r *StoreRepository) FetchActiveProductsForMerchant(ctx context.Context, merchantID uuid.UUID) ([]models.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	return r.findActive(ctx, bson.M{
		"user_id":   merchantID.String(),
		"is_active": true,
	})
}

// findActive ejecuta la consulta de productos con el $lookup de categorías.
// El $unwind con preserveNullAndEmptyArrays deja la categoría como documento
// único u omitida, que es como la espera el modelo.
func (r *StoreRepository) findActive(ctx context.Context, match bson.M) ([]models.Product, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: match}},
		{{Key: "$sort", Value: bson.M{"created_at": -1}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         "categories",
			"localField":   "category_id",
			"foreignField": "_id",
			"as":           "categories",
		}}},
		{{Key: "$unwind", Value: bson.M{
			"path":                       "$categories",
			"preserveNullAndEmptyArrays": true,
		}}},
	}

	cursor, err := r.products.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	products := []models.Product{}
	if err := cursor.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// FindProductByID obtiene un producto activo por ID, con su categoría embebida
func (r *StoreRepository) FindProductByID(ctx context.Context, id string) (*models.Product, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	objID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("invalid product ID")
	}

	products, err := r.findActive(ctx, bson.M{"_id": objID, "is_active": true})
	if err != nil {
		return nil, err
	}
	if len(products) == 0 {
		return nil, ErrProductNotFound
	}
	return &products[0], nil
}

// FetchProfile obtiene el perfil público de un artesano
func (r *StoreRepository) FetchProfile(ctx context.Context, merchantID uuid.UUID) (*models.Profile, error) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	var profile models.Profile
	err := r.profiles.FindOne(ctx, bson.M{"_id": merchantID.String()}).Decode(&profile)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

// FetchCategories obtiene las categorías de un artesano ordenadas por nombre
func (r *StoreRepository) FetchCategories(ctx context.Context, merchantID uuid.UUID) ([]models.Category, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	findOptions := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})

	cursor, err := r.categories.Find(ctx, bson.M{"user_id": merchantID.String()}, findOptions)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	categories := []models.Category{}
	if err := cursor.All(ctx, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}
