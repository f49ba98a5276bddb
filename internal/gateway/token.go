package gateway

import (
	jwtlib "github.com/golang-jwt/jwt/v5"

	pkgjwt "github.com/rahmanabdur1/productivity-app/pkg/jwt"
)

// GetTokenUsername reads the username claim out of the session token without
// verifying the signature. The dashboard never trusts the token itself; the
// API re-verifies it on every request.
func GetTokenUsername(tokenString string) string {
	token, _, err := jwtlib.NewParser().ParseUnverified(tokenString, &pkgjwt.Claims{})
	if err != nil {
		return ""
	}
	claims, ok := token.Claims.(*pkgjwt.Claims)
	if !ok {
		return ""
	}
	return claims.Username
}
