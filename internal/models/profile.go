package models

import "time"

// Profile representa el perfil público del artesano dueño de la tienda
type Profile struct {
	ID              string    `json:"id" bson:"_id"`
	Name            string    `json:"name" bson:"name"`
	Specialty       string    `json:"specialty,omitempty" bson:"specialty,omitempty"`
	Instagram       string    `json:"instagram,omitempty" bson:"instagram,omitempty"`
	TikTok          string    `json:"tiktok,omitempty" bson:"tiktok,omitempty"`
	Facebook        string    `json:"facebook,omitempty" bson:"facebook,omitempty"`
	BankInfo        string    `json:"bank_info,omitempty" bson:"bank_info,omitempty"`
	MercadoPagoLink string    `json:"mercadopago_link,omitempty" bson:"mercadopago_link,omitempty"`
	AvatarURL       string    `json:"avatar_url,omitempty" bson:"avatar_url,omitempty"`
	CreatedAt       time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt       time.Time `json:"updated_at" bson:"updated_at"`
}
