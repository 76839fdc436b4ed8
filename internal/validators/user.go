package validators

import (
	"context"
	"net/mail"
	"unicode/utf8"

	"github.com/MKhiriev/go-note-keeper/models"
)

const (
	FieldLogin       = "login"
	FieldPassword    = "password"
	FieldDisplayName = "display_name"
)

const (
	MinPasswordLength    = 6
	MaxDisplayNameLength = 100
)

// UserValidator validates registration data and profile updates.
type UserValidator struct{}

func NewUserValidator() Validator {
	return &UserValidator{}
}

func (v *UserValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.User:
		return v.validateUser(value, fields...)
	case *models.User:
		return v.validateUser(*value, fields...)

	case models.UpdateUserRequest:
		return checkDisplayName(value.DisplayName)
	case *models.UpdateUserRequest:
		return checkDisplayName(value.DisplayName)

	default:
		return ErrUnsupportedType
	}
}

func (v *UserValidator) validateUser(user models.User, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldLogin, FieldPassword, FieldDisplayName}
	}

	for _, f := range fields {
		var err error
		switch f {
		case FieldLogin:
			addr, parseErr := mail.ParseAddress(user.Login)
			if parseErr != nil || addr.Address != user.Login {
				err = ErrInvalidLogin
			}
		case FieldPassword:
			if utf8.RuneCountInString(user.Password) < MinPasswordLength {
				err = ErrPasswordTooShort
			}
		case FieldDisplayName:
			err = checkDisplayName(user.DisplayName)
		default:
			err = ErrUnknownField
		}
		if err != nil {
			return err
		}
	}

	return nil
}

func checkDisplayName(name string) error {
	if utf8.RuneCountInString(name) > MaxDisplayNameLength {
		return ErrDisplayNameTooLong
	}
	return nil
}
