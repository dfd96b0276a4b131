package services

import (
	"github.com/dmitrijs2005/gophaccounts/internal/common"
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

const (
	minNameLength     = 2
	maxNameLength     = 255
	minPasswordLength = 8
)

func validateEmail(email string) error {
	if err := validation.Validate(email, validation.Required, is.Email); err != nil {
		return common.ErrInvalidEmail
	}
	return nil
}

func validateName(name string) error {
	if err := validation.Validate(name, validation.Required, validation.Length(minNameLength, maxNameLength)); err != nil {
		return common.ErrInvalidName
	}
	return nil
}

func validatePassword(password string) error {
	if err := validation.Validate(password, validation.Required, validation.Length(minPasswordLength, 0)); err != nil {
		return common.ErrWeakPassword
	}
	return nil
}

func validateTokenID(id string) error {
	if err := validation.Validate(id, validation.Required, is.UUIDv4); err != nil {
		return common.ErrTokenNotValidFormat
	}
	return nil
}

func validateSessionID(id string) error {
	if err := validation.Validate(id, validation.Required, is.UUIDv4); err != nil {
		return common.ErrInvalidSessionID
	}
	return nil
}
