package converter

import (
	"bank-portal-service/src/internal/entity"
	"bank-portal-service/src/internal/model"
)

func LoanToResponse(loan *entity.Loan) *model.LoanResponse {
	resp := &model.LoanResponse{
		ID:                loan.ID,
		MemberID:          loan.MemberID,
		PrincipalAmount:   loan.PrincipalAmount,
		InterestRate:      loan.InterestRate,
		TimePeriod:        loan.TimePeriod,
		EmiAmount:         loan.EmiAmount,
		RemainingBalance:  loan.RemainingBalance,
		TotalInterestPaid: loan.TotalInterestPaid,
		Status:            string(loan.Status),
		CreatedAt:         loan.CreatedAt,
		CompletedAt:       loan.CompletedAt,
	}
	if loan.Member != nil {
		resp.Member = MemberToBrief(loan.Member)
	}
	if len(loan.Payments) > 0 {
		resp.Payments = LoanPaymentsToResponses(loan.Payments)
	}
	return resp
}

func LoansToResponses(loans []entity.Loan) []model.LoanResponse {
	responses := make([]model.LoanResponse, len(loans))
	for i := range loans {
		responses[i] = *LoanToResponse(&loans[i])
	}
	return responses
}

func LoanPaymentToResponse(payment *entity.LoanPayment) *model.LoanPaymentResponse {
	return &model.LoanPaymentResponse{
		ID:             payment.ID,
		LoanID:         payment.LoanID,
		PrincipalPaid:  payment.PrincipalPaid,
		ExtraPrincipal: payment.ExtraPrincipal,
		InterestPaid:   payment.InterestPaid,
		Penalty:        payment.Penalty,
		TotalPaid:      payment.TotalPaid,
		RemainingAfter: payment.RemainingAfter,
		CreatedAt:      payment.CreatedAt,
	}
}

func LoanPaymentsToResponses(payments []entity.LoanPayment) []model.LoanPaymentResponse {
	responses := make([]model.LoanPaymentResponse, len(payments))
	for i := range payments {
		responses[i] = *LoanPaymentToResponse(&payments[i])
	}
	return responses
}
