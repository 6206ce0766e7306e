package converter

import (
	"bank-portal-service/src/internal/entity"
	"bank-portal-service/src/internal/model"
)

func MemberToResponse(member *entity.Member) *model.MemberResponse {
	resp := &model.MemberResponse{
		ID:          member.ID,
		Name:        member.Name,
		FathersName: member.FathersName,
		Mobile:      member.Mobile,
		Address:     member.Address,
		CreatedAt:   member.CreatedAt,
	}
	if member.Account != nil {
		resp.Account = AccountToResponse(member.Account)
	}
	return resp
}

func AccountToResponse(account *entity.Account) *model.AccountResponse {
	return &model.AccountResponse{
		ID:            account.ID,
		AccountNumber: account.AccountNumber,
		TotalAmount:   account.TotalAmount,
		ReleasedMoney: account.ReleasedMoney,
	}
}

func MemberToBrief(member *entity.Member) *model.MemberBrief {
	return &model.MemberBrief{
		ID:     member.ID,
		Name:   member.Name,
		Mobile: member.Mobile,
	}
}

func AccountToBrief(account *entity.Account) *model.AccountBrief {
	return &model.AccountBrief{
		ID:            account.ID,
		AccountNumber: account.AccountNumber,
	}
}
