package vibe

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/genz-translator-backend/internal/domain"
)

var _ pulseRepo = &pulseRepoMock{}

type pulseRepoMock struct {
	CountsByPostIDsFunc func(ctx context.Context, postIDs []uuid.UUID) (map[uuid.UUID]map[domain.ReactionKind]int, error)
	ToggleFunc          func(ctx context.Context, postID uuid.UUID, userID uuid.UUID, kind domain.ReactionKind) (bool, error)

	calls struct {
		CountsByPostIDs []struct {
			Ctx     context.Context
			PostIDs []uuid.UUID
		}
		Toggle []struct {
			Ctx    context.Context
			PostID uuid.UUID
			UserID uuid.UUID
			Kind   domain.ReactionKind
		}
	}
	lockCountsByPostIDs sync.RWMutex
	lockToggle          sync.RWMutex
}

func (mock *pulseRepoMock) CountsByPostIDs(ctx context.Context, postIDs []uuid.UUID) (map[uuid.UUID]map[domain.ReactionKind]int, error) {
	if mock.CountsByPostIDsFunc == nil {
		panic("pulseRepoMock.CountsByPostIDsFunc: method is nil but pulseRepo.CountsByPostIDs was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		PostIDs []uuid.UUID
	}{
		Ctx:     ctx,
		PostIDs: postIDs,
	}
	mock.lockCountsByPostIDs.Lock()
	mock.calls.CountsByPostIDs = append(mock.calls.CountsByPostIDs, callInfo)
	mock.lockCountsByPostIDs.Unlock()
	return mock.CountsByPostIDsFunc(ctx, postIDs)
}

func (mock *pulseRepoMock) CountsByPostIDsCalls() []struct {
	Ctx     context.Context
	PostIDs []uuid.UUID
} {
	var calls []struct {
		Ctx     context.Context
		PostIDs []uuid.UUID
	}
	mock.lockCountsByPostIDs.RLock()
	calls = mock.calls.CountsByPostIDs
	mock.lockCountsByPostIDs.RUnlock()
	return calls
}

func (mock *pulseRepoMock) Toggle(ctx context.Context, postID uuid.UUID, userID uuid.UUID, kind domain.ReactionKind) (bool, error) {
	if mock.ToggleFunc == nil {
		panic("pulseRepoMock.ToggleFunc: method is nil but pulseRepo.Toggle was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		PostID uuid.UUID
		UserID uuid.UUID
		Kind   domain.ReactionKind
	}{
		Ctx:    ctx,
		PostID: postID,
		UserID: userID,
		Kind:   kind,
	}
	mock.lockToggle.Lock()
	mock.calls.Toggle = append(mock.calls.Toggle, callInfo)
	mock.lockToggle.Unlock()
	return mock.ToggleFunc(ctx, postID, userID, kind)
}

func (mock *pulseRepoMock) ToggleCalls() []struct {
	Ctx    context.Context
	PostID uuid.UUID
	UserID uuid.UUID
	Kind   domain.ReactionKind
} {
	var calls []struct {
		Ctx    context.Context
		PostID uuid.UUID
		UserID uuid.UUID
		Kind   domain.ReactionKind
	}
	mock.lockToggle.RLock()
	calls = mock.calls.Toggle
	mock.lockToggle.RUnlock()
	return calls
}
