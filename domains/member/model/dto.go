package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/shopspring/decimal"
)

// RegisterMemberRequest carries the fields needed to enroll a patron.
type RegisterMemberRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Type  Type   `json:"type"`
}

func (r RegisterMemberRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
			validation.Length(2, 100),
		),
		validation.Field(&r.Email,
			validation.Required.Error("email is required"),
			is.Email.Error("invalid email format"),
		),
		validation.Field(&r.Type,
			validation.Required.Error("member type is required"),
			validation.By(validType),
		),
	)
}

// PayFineRequest carries a fine payment. Amount must be positive and within
// the member's outstanding balance.
type PayFineRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

func (r PayFineRequest) Validate() error {
	if !r.Amount.IsPositive() {
		return ErrInvalidPaymentAmount
	}
	return nil
}

func validType(value interface{}) error {
	t, _ := value.(Type)
	if !t.IsValid() {
		return validation.NewError("validation_member_type", "must be one of: regular, student, professor, vip")
	}
	return nil
}
