package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Category representa una categoría de productos de un artesano.
// El nombre funciona como etiqueta visible y como clave de filtrado:
// dentro de una misma tienda los nombres se tratan como únicos.
type Category struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	UserID    string             `json:"user_id" bson:"user_id"`
	Name      string             `json:"name" bson:"name"`
	CreatedAt time.Time          `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time          `json:"updated_at" bson:"updated_at"`
}
