package identity

import (
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"
)

// UserContextKey es la clave del usuario resuelto dentro del contexto de gin
const UserContextKey = "currentUser"

// User es el usuario autenticado por el servicio de identidad del backend.
// El catálogo público nunca lo exige; solo lo consume el chrome de la página.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// Verifier valida los tokens emitidos por el backend (HS256)
type Verifier struct {
	secret []byte
}

func NewVerifier(secret string) *Verifier {
	v := &Verifier{}
	if secret != "" {
		v.secret = []byte(secret)
	}
	return v
}

// CurrentUser resuelve el usuario del header Authorization. Token ausente o
// inválido significa visitante anónimo, nunca un error.
func (v *Verifier) CurrentUser(authorization string) *User {
	const prefix = "Bearer "
	if !strings.HasPrefix(authorization, prefix) {
		return nil
	}

	claims, err := v.parse(strings.TrimPrefix(authorization, prefix))
	if err != nil {
		return nil
	}

	sub, _ := claims["sub"].(string)
	if sub == "" {
		return nil
	}
	email, _ := claims["email"].(string)
	return &User{ID: sub, Email: email}
}

func (v *Verifier) parse(tokenStr string) (jwt.MapClaims, error) {
	if v.secret == nil {
		return nil, fmt.Errorf("JWT secret not configured")
	}

	token, err := jwt.Parse(tokenStr, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return v.secret, nil
	})
	if err != nil || token == nil || !token.Valid {
		return nil, fmt.Errorf("invalid or expired token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fmt.Errorf("invalid token claims")
	}
	return claims, nil
}

// Middleware resuelve al usuario actual si hay token y sigue de largo si no;
// ninguna ruta pública se bloquea por falta de sesión
func Middleware(v *Verifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		if user := v.CurrentUser(c.GetHeader("Authorization")); user != nil {
			c.Set(UserContextKey, user)
		}
		c.Next()
	}
}

// FromContext devuelve el usuario resuelto por el middleware, o nil
func FromContext(c *gin.Context) *User {
	if val, ok := c.Get(UserContextKey); ok {
		if user, ok := val.(*User); ok {
			return user
		}
	}
	return nil
}
