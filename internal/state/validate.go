package state

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/jafarshop/weblarek/internal/domain"
)

// Presence checks only. Addresses, emails and phones are not format-checked.
type paymentStep struct {
	Payment string `json:"payment" validate:"required"`
	Address string `json:"address" validate:"required"`
}

type contactsStep struct {
	Email string `json:"email" validate:"required"`
	Phone string `json:"phone" validate:"required"`
}

var fieldMessages = map[string]string{
	string(domain.OrderFieldPayment): domain.MessagePaymentRequired,
	string(domain.OrderFieldAddress): domain.MessageAddressRequired,
	string(domain.ContactFieldEmail): domain.MessageEmailRequired,
	string(domain.ContactFieldPhone): domain.MessagePhoneRequired,
}

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// formErrors runs the validator over one step and maps failures to messages.
func formErrors(v *validator.Validate, step any) domain.FormErrors {
	errs := domain.FormErrors{}

	err := v.Struct(step)
	if err == nil {
		return errs
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		// only reachable with a non-struct argument
		panic(err)
	}
	for _, fe := range verrs {
		errs[fe.Field()] = fieldMessages[fe.Field()]
	}
	return errs
}
