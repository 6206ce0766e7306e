package usecase

import (
	"context"
	"fmt"
	"time"

	"bank-portal-service/src/internal/model"
	"bank-portal-service/src/internal/repository"
	httpError "bank-portal-service/src/pkg/http-error"
	"bank-portal-service/src/pkg/log"
	"bank-portal-service/src/pkg/token"
	"bank-portal-service/src/pkg/utils"

	"github.com/go-playground/validator/v10"
	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const revokedTokenPrefix = "session:revoked:"

type OperatorUseCase struct {
	DB                 *gorm.DB
	Log                log.Log
	Validate           *validator.Validate
	OperatorRepository *repository.OperatorRepository
	Redis              redis.UniversalClient
	JwtSecret          string
	JwtIssuer          string
	TokenTTL           time.Duration
}

func NewOperatorUseCase(
	db *gorm.DB,
	logger log.Log,
	validate *validator.Validate,
	operatorRepository *repository.OperatorRepository,
	redisClient redis.UniversalClient,
	jwtSecret string,
	jwtIssuer string,
	tokenTTL time.Duration,
) *OperatorUseCase {
	return &OperatorUseCase{
		DB:                 db,
		Log:                logger,
		Validate:           validate,
		OperatorRepository: operatorRepository,
		Redis:              redisClient,
		JwtSecret:          jwtSecret,
		JwtIssuer:          jwtIssuer,
		TokenTTL:           tokenTTL,
	}
}

func (c *OperatorUseCase) Login(ctx context.Context, request *model.LoginRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		return result
	}

	operator, err := c.OperatorRepository.FindByUsername(ctx, c.DB, request.Username)
	if err != nil {
		errObj := httpError.NewUnauthorized()
		errObj.Message = "invalid username or password"
		result.Error = errObj
		return result
	}

	if err := bcrypt.CompareHashAndPassword([]byte(operator.Password), []byte(request.Password)); err != nil {
		errObj := httpError.NewUnauthorized()
		errObj.Message = "invalid username or password"
		result.Error = errObj
		return result
	}

	signed, err := token.Generate(token.Metadata{
		OperatorID: operator.ID,
		Username:   operator.Username,
	}, c.JwtIssuer, c.JwtSecret, c.TokenTTL)
	if err != nil {
		result.Error = httpError.NewInternalServerError()
		c.Log.Error("OperatorUseCase.Login-sign", err.Error(), "operator", operator.Username)
		return result
	}

	result.Data = &model.LoginResponse{
		Token:    signed,
		Username: operator.Username,
	}
	return result
}

// Logout revokes the presented token for its remaining lifetime so the
// middleware rejects it even though the signature is still valid.
func (c *OperatorUseCase) Logout(ctx context.Context, request *model.LogoutRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		return result
	}

	claim, err := token.Parse(request.Token, c.JwtSecret)
	if err != nil {
		errObj := httpError.NewUnauthorized()
		errObj.Message = "invalid token"
		result.Error = errObj
		return result
	}

	if c.Redis != nil && claim.ExpiresAt != nil {
		ttl := time.Until(claim.ExpiresAt.Time)
		if ttl > 0 {
			key := revokedTokenPrefix + request.Token
			if err := c.Redis.Set(ctx, key, "1", ttl).Err(); err != nil {
				result.Error = httpError.NewInternalServerError()
				c.Log.Error("OperatorUseCase.Logout-revoke", err.Error(), "operator", claim.Metadata.Username)
				return result
			}
		}
	}

	result.Data = map[string]interface{}{"message": "logged out successfully"}
	return result
}

// IsTokenRevoked is used by the auth middleware on every request.
func (c *OperatorUseCase) IsTokenRevoked(ctx context.Context, tokenString string) bool {
	if c.Redis == nil {
		return false
	}
	count, err := c.Redis.Exists(ctx, revokedTokenPrefix+tokenString).Result()
	if err != nil {
		c.Log.Error("OperatorUseCase.IsTokenRevoked", err.Error(), "scope", "auth")
		return false
	}
	return count > 0
}
