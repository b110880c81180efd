package transfer

import "github.com/golang-jwt/jwt/v5"

type CustomClaims struct {
	Subject string `json:"sub"`
	jwt.RegisteredClaims
}

type TokenRequest struct {
	Secret string `json:"secret"`
}
