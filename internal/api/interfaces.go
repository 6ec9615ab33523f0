package api

import (
	jwtservice "github.com/limbo/clover/pkg/jwt_service"
)

type JWTServiceI interface {
	ParseToken(tokenString string, typ jwtservice.TokenType) (*jwtservice.Claims, error)
}
