package usecase_test

import (
	"context"
	"testing"
	"time"

	"bank-portal-service/src/internal/entity"
	"bank-portal-service/src/internal/model"
	"bank-portal-service/src/internal/repository"
	"bank-portal-service/src/internal/usecase"
	"bank-portal-service/src/pkg/log"
	"bank-portal-service/src/pkg/token"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testJwtSecret = "test-secret"

func newOperatorFixture(t *testing.T) (*fixture, *usecase.OperatorUseCase) {
	t.Helper()

	f := newFixture(t)
	uc := usecase.NewOperatorUseCase(
		f.DB, log.GetLogger(), validator.New(),
		repository.NewOperatorRepository(),
		nil,
		testJwtSecret, "bank-portal-service", time.Hour,
	)

	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)
	require.NoError(t, f.DB.Create(&entity.Operator{Username: "admin", Password: string(hash)}).Error)

	return f, uc
}

func TestLoginIssuesValidToken(t *testing.T) {
	_, uc := newOperatorFixture(t)

	result := uc.Login(context.Background(), &model.LoginRequest{
		Username: "admin",
		Password: "s3cret",
	})
	require.NoError(t, result.Error)

	response := result.Data.(*model.LoginResponse)
	assert.Equal(t, "admin", response.Username)

	claim, err := token.Parse(response.Token, testJwtSecret)
	require.NoError(t, err)
	assert.Equal(t, "admin", claim.Metadata.Username)
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	_, uc := newOperatorFixture(t)

	result := uc.Login(context.Background(), &model.LoginRequest{
		Username: "admin",
		Password: "wrong",
	})
	require.Error(t, result.Error)
}

func TestLoginRejectsUnknownUser(t *testing.T) {
	_, uc := newOperatorFixture(t)

	result := uc.Login(context.Background(), &model.LoginRequest{
		Username: "ghost",
		Password: "s3cret",
	})
	require.Error(t, result.Error)
}

func TestLogoutRejectsMalformedToken(t *testing.T) {
	_, uc := newOperatorFixture(t)

	result := uc.Logout(context.Background(), &model.LogoutRequest{Token: "not-a-jwt"})
	require.Error(t, result.Error)
}
