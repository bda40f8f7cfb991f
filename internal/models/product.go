package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product representa un producto publicado en la tienda
type Product struct {
	ID             primitive.ObjectID  `json:"id" bson:"_id,omitempty"`
	UserID         string              `json:"user_id" bson:"user_id"`
	CategoryID     *primitive.ObjectID `json:"category_id,omitempty" bson:"category_id,omitempty"`
	Name           string              `json:"name" bson:"name"`
	Description    string              `json:"description" bson:"description"`
	AdditionalInfo string              `json:"additional_info,omitempty" bson:"additional_info,omitempty"`
	Price          float64             `json:"price" bson:"price"`
	Stock          int                 `json:"stock" bson:"stock"`
	ImageURL       string              `json:"image_url" bson:"image_url"`
	IsActive       bool                `json:"is_active" bson:"is_active"`
	CreatedAt      time.Time           `json:"created_at" bson:"created_at"`
	UpdatedAt      time.Time           `json:"updated_at" bson:"updated_at"`

	// Categoría embebida por el $lookup del repositorio; puede faltar
	Category *Category `json:"categories,omitempty" bson:"categories,omitempty"`
}

// CategoryName devuelve el nombre de la categoría embebida, o "" si no tiene
func (p *Product) CategoryName() string {
	if p.Category == nil {
		return ""
	}
	return p.Category.Name
}
