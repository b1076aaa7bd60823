package auth

import "context"

// Claims es lo que necesitamos saber del usuario logueado.
// UserID es el owner de los eventos que crea.
type Claims struct {
	UserID string
	Email  string
}

// AuthVerifier verifica un token de sesión y devuelve claims o error.
type AuthVerifier interface {
	Verify(ctx context.Context, token string) (Claims, error)
}
