package models

import "github.com/golang-jwt/jwt/v5"

// Token bundles a parsed JWT with the signed string representation and the
// subject extracted from its claims. Used by the ingestion auth middleware.
type Token struct {
	Token        *jwt.Token
	SignedString string
	Subject      string
}
