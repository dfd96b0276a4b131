// Package common defines shared constants and sentinel errors used across
// client and server layers. Callers should use errors.Is to match these values.
//
// Every specific error wraps one of the category errors, so transport code can
// classify a failure with errors.Is(err, common.ErrorNotFound) and still
// surface the specific message to the caller.
package common

import (
	"errors"
	"fmt"
)

var (
	// Categories.
	ErrorValidation   = errors.New("validation error")
	ErrorNotFound     = errors.New("not found")
	ErrInvalidToken   = errors.New("invalid token")
	ErrorConflict     = errors.New("conflict")
	ErrorUnauthorized = errors.New("unauthorized")
	ErrorInternal     = errors.New("internal error")

	// Client input errors.
	ErrInvalidEmail        = fmt.Errorf("%w: invalid email", ErrorValidation)
	ErrInvalidName         = fmt.Errorf("%w: name must be between 2 and 255 characters", ErrorValidation)
	ErrWeakPassword        = fmt.Errorf("%w: password must be at least 8 characters", ErrorValidation)
	ErrTokenNotValidFormat = fmt.Errorf("%w: token is not a valid uuid", ErrorValidation)
	ErrInvalidSessionID    = fmt.Errorf("%w: session id is not a valid uuid", ErrorValidation)

	// Lookup misses.
	ErrUserNotFound        = fmt.Errorf("%w: user", ErrorNotFound)
	ErrSessionNotFound     = fmt.Errorf("%w: session", ErrorNotFound)
	ErrVerifyTokenNotFound = fmt.Errorf("%w: verify token", ErrorNotFound)
	ErrResetTokenNotFound  = fmt.Errorf("%w: reset token", ErrorNotFound)

	// Token lifecycle errors.
	ErrTokenMalformed          = fmt.Errorf("%w: malformed", ErrInvalidToken)
	ErrTokenExpired            = fmt.Errorf("%w: expired", ErrInvalidToken)
	ErrSignatureInvalid        = fmt.Errorf("%w: signature is invalid", ErrInvalidToken)
	ErrWrongTokenType          = fmt.Errorf("%w: wrong token type", ErrInvalidToken)
	ErrSessionExpiredOrRevoked = fmt.Errorf("%w: session expired or revoked", ErrInvalidToken)

	// State conflicts.
	ErrEmailAlreadyInUse   = fmt.Errorf("%w: email already in use", ErrorConflict)
	ErrUserAlreadyVerified = fmt.Errorf("%w: user email already verified", ErrorConflict)
	ErrUserNotVerified     = fmt.Errorf("%w: user email not verified", ErrorConflict)
	ErrInvalidRefreshToken = fmt.Errorf("%w: invalid refresh token", ErrorConflict)

	// Credential mismatch.
	ErrInvalidPassword = fmt.Errorf("%w: invalid password", ErrorUnauthorized)
	ErrNotAuthorized   = fmt.Errorf("%w: not authorized", ErrorUnauthorized)

	// Claims that disagree with stored state.
	ErrInternalInconsistency = fmt.Errorf("%w: inconsistent token claims", ErrorInternal)
)
