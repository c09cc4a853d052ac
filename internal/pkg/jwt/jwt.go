package jwt

import (
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

// Service verifies access tokens issued by the identity service. The backend
// never issues end-user tokens itself; EncodeAccessToken exists for tooling
// and tests.
type Service interface {
	JWTAuth() *jwtauth.JWTAuth
	EncodeAccessToken(userID, companyID string, expiresIn time.Duration) (string, error)
}

type JWTService struct {
	secretKey string
	tokenAuth *jwtauth.JWTAuth
}

func NewJWTService(secretKey string) Service {
	return &JWTService{
		secretKey: secretKey,
		tokenAuth: jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
	}
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

func (j *JWTService) EncodeAccessToken(userID, companyID string, expiresIn time.Duration) (string, error) {
	_, tokenString, err := j.tokenAuth.Encode(map[string]interface{}{
		"user_id":    userID,
		"company_id": companyID,
		"type":       "access",
		"exp":        time.Now().Add(expiresIn).Unix(),
	})
	return tokenString, err
}
