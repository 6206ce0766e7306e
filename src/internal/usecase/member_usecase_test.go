package usecase_test

import (
	"context"
	"testing"

	"bank-portal-service/src/internal/entity"
	"bank-portal-service/src/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateMemberOpensAccountWithBalance(t *testing.T) {
	f := newFixture(t)

	result := f.Member.Create(context.Background(), &model.CreateMemberRequest{
		Name:           "asha devi",
		Mobile:         "9876543210",
		AccountNumber:  "AC-100",
		InitialAmount:  1000,
		DevelopmentFee: 20,
	})
	require.NoError(t, result.Error)

	response := result.Data.(*model.MemberResponse)
	assert.Equal(t, "Asha Devi", response.Name)
	require.NotNil(t, response.Account)
	assert.Equal(t, "AC-100", response.Account.AccountNumber)
	assert.Equal(t, 1000.0, response.Account.TotalAmount)

	// the opening balance is journaled like any other deposit
	var count int64
	require.NoError(t, f.DB.Model(&entity.TransactionLog{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	org := f.organisation(t)
	assert.Equal(t, 20.0, org.Amount)
}

func TestCreateMemberRejectsDuplicateAccountNumber(t *testing.T) {
	f := newFixture(t)

	first := f.Member.Create(context.Background(), &model.CreateMemberRequest{
		Name:          "Asha Devi",
		Mobile:        "9876543210",
		AccountNumber: "AC-100",
	})
	require.NoError(t, first.Error)

	second := f.Member.Create(context.Background(), &model.CreateMemberRequest{
		Name:          "Binod Kumar",
		Mobile:        "9876543211",
		AccountNumber: "AC-100",
	})
	require.Error(t, second.Error)
}

func TestCreateMemberGeneratesAccountNumber(t *testing.T) {
	f := newFixture(t)

	result := f.Member.Create(context.Background(), &model.CreateMemberRequest{
		Name:   "Asha Devi",
		Mobile: "9876543210",
	})
	require.NoError(t, result.Error)

	response := result.Data.(*model.MemberResponse)
	require.NotNil(t, response.Account)
	assert.NotEmpty(t, response.Account.AccountNumber)
}

func TestCreateMemberValidatesMobile(t *testing.T) {
	f := newFixture(t)

	result := f.Member.Create(context.Background(), &model.CreateMemberRequest{
		Name:   "Asha Devi",
		Mobile: "12ab",
	})
	require.Error(t, result.Error)
}

func TestUpdateMemberPatchesOnlyProvidedFields(t *testing.T) {
	f := newFixture(t)
	member := f.createMember(t, "Asha Devi", "9876543210", 0)

	result := f.Member.Update(context.Background(), &model.UpdateMemberRequest{
		ID:      member.ID,
		Address: "Ward 4, Old Town",
	})
	require.NoError(t, result.Error)

	response := result.Data.(*model.MemberResponse)
	assert.Equal(t, "Asha Devi", response.Name)
	assert.Equal(t, "9876543210", response.Mobile)
	assert.Equal(t, "Ward 4, Old Town", response.Address)
}
