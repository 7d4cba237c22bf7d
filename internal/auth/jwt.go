package auth

import (
	"errors"
	"time"

	"github.com/InnovativeSphere/jewel-dashboard/internal/config"
	"github.com/InnovativeSphere/jewel-dashboard/internal/constant"
	"github.com/InnovativeSphere/jewel-dashboard/internal/util"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

// Tokens expire two hours after issue, same as the dashboard frontend expects.
const TOKEN_EXPIRY = 2 * time.Hour

type JWT struct {
	logger    *zap.SugaredLogger
	jwtSecret string
}

type JWTInterface interface {
	GenerateToken(payload JWTPayload) (string, error)
	VerifyToken(token string) (*JWTClaims, error)
}

func NewJwt(cfg config.AuthConfig, logger *zap.SugaredLogger) *JWT {
	// For unit test
	if logger == nil {
		logger = util.NewLogger("development")
	}

	return &JWT{
		jwtSecret: cfg.JWT_SECRET,
		logger:    logger,
	}
}

// JWTPayload is the identity embedded in a signed token.
type JWTPayload struct {
	ID    uint   `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type JWTClaims struct {
	User JWTPayload `json:"user"`
	IAT  int64      `json:"iat"`
	EXP  int64      `json:"exp"`
}

// GenerateToken signs a token carrying {id, email, role} with a fixed
// two-hour expiry. The claim layout is flat so tokens issued by the previous
// dashboard backend verify the same way.
func (j JWT) GenerateToken(payload JWTPayload) (string, error) {
	j.logger.Debugf("Generate token with payload: %v", payload)

	claims := jwt.MapClaims{
		"id":    payload.ID,
		"email": payload.Email,
		"role":  payload.Role,
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(TOKEN_EXPIRY).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(j.jwtSecret))
	if err != nil {
		return "", err
	}

	return signed, nil
}

// VerifyToken checks signature and expiry and returns the embedded identity.
// Any failure (malformed, expired, bad signature) is returned as an error and
// logged at debug level; callers treat every failure as "no identity".
func (j JWT) VerifyToken(token string) (*JWTClaims, error) {
	claims := jwt.MapClaims{}
	parsedToken, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(j.jwtSecret), nil
	})
	if err != nil {
		j.logger.Debugf("Failed to verify jwt token. Error: %v", err)
		return nil, err
	}

	if !parsedToken.Valid {
		j.logger.Debug("Jwt token is not valid")
		return nil, errors.New("jwt token is not valid")
	}

	id, ok := claims["id"].(float64)
	if !ok {
		return nil, errors.New("invalid token: id claim is missing or malformed")
	}

	email, _ := claims["email"].(string)

	// Tokens minted without a role claim are treated as plain users.
	role, ok := claims["role"].(string)
	if !ok || role == "" {
		role = constant.RoleUser
	}

	iat, _ := claims["iat"].(float64)
	exp, _ := claims["exp"].(float64)

	return &JWTClaims{
		User: JWTPayload{
			ID:    uint(id),
			Email: email,
			Role:  role,
		},
		IAT: int64(iat),
		EXP: int64(exp),
	}, nil
}
