package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/genz-translator-backend/internal/domain"
	"github.com/heartmarshall/genz-translator-backend/internal/service/user"
)

var _ profileService = &profileServiceMock{}

type profileServiceMock struct {
	GetProfileFunc    func(ctx context.Context, userID uuid.UUID) (*domain.User, error)
	OnboardFunc       func(ctx context.Context, input user.OnboardInput) (*domain.User, error)
	UpdateProfileFunc func(ctx context.Context, input user.UpdateProfileInput) (*domain.User, error)

	calls struct {
		GetProfile []struct {
			Ctx    context.Context
			UserID uuid.UUID
		}
		Onboard []struct {
			Ctx   context.Context
			Input user.OnboardInput
		}
		UpdateProfile []struct {
			Ctx   context.Context
			Input user.UpdateProfileInput
		}
	}
	lockGetProfile    sync.RWMutex
	lockOnboard       sync.RWMutex
	lockUpdateProfile sync.RWMutex
}

func (mock *profileServiceMock) GetProfile(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	if mock.GetProfileFunc == nil {
		panic("profileServiceMock.GetProfileFunc: method is nil but profileService.GetProfile was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
	}{
		Ctx:    ctx,
		UserID: userID,
	}
	mock.lockGetProfile.Lock()
	mock.calls.GetProfile = append(mock.calls.GetProfile, callInfo)
	mock.lockGetProfile.Unlock()
	return mock.GetProfileFunc(ctx, userID)
}

func (mock *profileServiceMock) GetProfileCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
} {
	var calls []struct {
		Ctx    context.Context
		UserID uuid.UUID
	}
	mock.lockGetProfile.RLock()
	calls = mock.calls.GetProfile
	mock.lockGetProfile.RUnlock()
	return calls
}

func (mock *profileServiceMock) Onboard(ctx context.Context, input user.OnboardInput) (*domain.User, error) {
	if mock.OnboardFunc == nil {
		panic("profileServiceMock.OnboardFunc: method is nil but profileService.Onboard was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input user.OnboardInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockOnboard.Lock()
	mock.calls.Onboard = append(mock.calls.Onboard, callInfo)
	mock.lockOnboard.Unlock()
	return mock.OnboardFunc(ctx, input)
}

func (mock *profileServiceMock) OnboardCalls() []struct {
	Ctx   context.Context
	Input user.OnboardInput
} {
	var calls []struct {
		Ctx   context.Context
		Input user.OnboardInput
	}
	mock.lockOnboard.RLock()
	calls = mock.calls.Onboard
	mock.lockOnboard.RUnlock()
	return calls
}

func (mock *profileServiceMock) UpdateProfile(ctx context.Context, input user.UpdateProfileInput) (*domain.User, error) {
	if mock.UpdateProfileFunc == nil {
		panic("profileServiceMock.UpdateProfileFunc: method is nil but profileService.UpdateProfile was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input user.UpdateProfileInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockUpdateProfile.Lock()
	mock.calls.UpdateProfile = append(mock.calls.UpdateProfile, callInfo)
	mock.lockUpdateProfile.Unlock()
	return mock.UpdateProfileFunc(ctx, input)
}

func (mock *profileServiceMock) UpdateProfileCalls() []struct {
	Ctx   context.Context
	Input user.UpdateProfileInput
} {
	var calls []struct {
		Ctx   context.Context
		Input user.UpdateProfileInput
	}
	mock.lockUpdateProfile.RLock()
	calls = mock.calls.UpdateProfile
	mock.lockUpdateProfile.RUnlock()
	return calls
}
