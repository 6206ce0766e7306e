package token

import "github.com/golang-jwt/jwt/v5"

type Claim struct {
	Metadata Metadata `json:"metadata"`
	jwt.RegisteredClaims
}

type Metadata struct {
	OperatorID uint   `json:"operator_id"`
	Username   string `json:"username"`
}
