package middleware

import (
	"sync"

	"github.com/google/uuid"
)

var _ tokenValidator = &tokenValidatorMock{}

type tokenValidatorMock struct {
	ValidateAccessTokenFunc func(token string) (uuid.UUID, error)

	calls struct {
		ValidateAccessToken []struct {
			Token string
		}
	}
	lockValidateAccessToken sync.RWMutex
}

func (mock *tokenValidatorMock) ValidateAccessToken(token string) (uuid.UUID, error) {
	if mock.ValidateAccessTokenFunc == nil {
		panic("tokenValidatorMock.ValidateAccessTokenFunc: method is nil but tokenValidator.ValidateAccessToken was just called")
	}
	callInfo := struct {
		Token string
	}{Token: token}
	mock.lockValidateAccessToken.Lock()
	mock.calls.ValidateAccessToken = append(mock.calls.ValidateAccessToken, callInfo)
	mock.lockValidateAccessToken.Unlock()
	return mock.ValidateAccessTokenFunc(token)
}

func (mock *tokenValidatorMock) ValidateAccessTokenCalls() []struct {
	Token string
} {
	mock.lockValidateAccessToken.RLock()
	defer mock.lockValidateAccessToken.RUnlock()
	return mock.calls.ValidateAccessToken
}
