package vibe

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/genz-translator-backend/internal/domain"
)

var _ vibeRepo = &vibeRepoMock{}

type vibeRepoMock struct {
	CreateFunc              func(ctx context.Context, p *domain.VibePost) (*domain.VibePost, error)
	ExistsFunc              func(ctx context.Context, id uuid.UUID) (bool, error)
	GetByIDFunc             func(ctx context.Context, id uuid.UUID) (*domain.VibePost, error)
	IncrementRemixCountFunc func(ctx context.Context, id uuid.UUID) error
	ListFunc                func(ctx context.Context, f domain.VibeFilter) ([]*domain.VibePost, error)
	LockByIDFunc            func(ctx context.Context, id uuid.UUID) error

	calls struct {
		Create []struct {
			Ctx context.Context
			P   *domain.VibePost
		}
		Exists []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		GetByID []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		IncrementRemixCount []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		List []struct {
			Ctx context.Context
			F   domain.VibeFilter
		}
		LockByID []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
	}
	lockCreate              sync.RWMutex
	lockExists              sync.RWMutex
	lockGetByID             sync.RWMutex
	lockIncrementRemixCount sync.RWMutex
	lockList                sync.RWMutex
	lockLockByID            sync.RWMutex
}

func (mock *vibeRepoMock) Create(ctx context.Context, p *domain.VibePost) (*domain.VibePost, error) {
	if mock.CreateFunc == nil {
		panic("vibeRepoMock.CreateFunc: method is nil but vibeRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		P   *domain.VibePost
	}{
		Ctx: ctx,
		P:   p,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, p)
}

func (mock *vibeRepoMock) CreateCalls() []struct {
	Ctx context.Context
	P   *domain.VibePost
} {
	var calls []struct {
		Ctx context.Context
		P   *domain.VibePost
	}
	mock.lockCreate.RLock()
	calls = mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *vibeRepoMock) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	if mock.ExistsFunc == nil {
		panic("vibeRepoMock.ExistsFunc: method is nil but vibeRepo.Exists was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{
		Ctx: ctx,
		Id:  id,
	}
	mock.lockExists.Lock()
	mock.calls.Exists = append(mock.calls.Exists, callInfo)
	mock.lockExists.Unlock()
	return mock.ExistsFunc(ctx, id)
}

func (mock *vibeRepoMock) ExistsCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	var calls []struct {
		Ctx context.Context
		Id  uuid.UUID
	}
	mock.lockExists.RLock()
	calls = mock.calls.Exists
	mock.lockExists.RUnlock()
	return calls
}

func (mock *vibeRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.VibePost, error) {
	if mock.GetByIDFunc == nil {
		panic("vibeRepoMock.GetByIDFunc: method is nil but vibeRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{
		Ctx: ctx,
		Id:  id,
	}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *vibeRepoMock) GetByIDCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	var calls []struct {
		Ctx context.Context
		Id  uuid.UUID
	}
	mock.lockGetByID.RLock()
	calls = mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *vibeRepoMock) IncrementRemixCount(ctx context.Context, id uuid.UUID) error {
	if mock.IncrementRemixCountFunc == nil {
		panic("vibeRepoMock.IncrementRemixCountFunc: method is nil but vibeRepo.IncrementRemixCount was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{
		Ctx: ctx,
		Id:  id,
	}
	mock.lockIncrementRemixCount.Lock()
	mock.calls.IncrementRemixCount = append(mock.calls.IncrementRemixCount, callInfo)
	mock.lockIncrementRemixCount.Unlock()
	return mock.IncrementRemixCountFunc(ctx, id)
}

func (mock *vibeRepoMock) IncrementRemixCountCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	var calls []struct {
		Ctx context.Context
		Id  uuid.UUID
	}
	mock.lockIncrementRemixCount.RLock()
	calls = mock.calls.IncrementRemixCount
	mock.lockIncrementRemixCount.RUnlock()
	return calls
}

func (mock *vibeRepoMock) List(ctx context.Context, f domain.VibeFilter) ([]*domain.VibePost, error) {
	if mock.ListFunc == nil {
		panic("vibeRepoMock.ListFunc: method is nil but vibeRepo.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
		F   domain.VibeFilter
	}{
		Ctx: ctx,
		F:   f,
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, f)
}

func (mock *vibeRepoMock) ListCalls() []struct {
	Ctx context.Context
	F   domain.VibeFilter
} {
	var calls []struct {
		Ctx context.Context
		F   domain.VibeFilter
	}
	mock.lockList.RLock()
	calls = mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *vibeRepoMock) LockByID(ctx context.Context, id uuid.UUID) error {
	if mock.LockByIDFunc == nil {
		panic("vibeRepoMock.LockByIDFunc: method is nil but vibeRepo.LockByID was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{
		Ctx: ctx,
		Id:  id,
	}
	mock.lockLockByID.Lock()
	mock.calls.LockByID = append(mock.calls.LockByID, callInfo)
	mock.lockLockByID.Unlock()
	return mock.LockByIDFunc(ctx, id)
}

func (mock *vibeRepoMock) LockByIDCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	var calls []struct {
		Ctx context.Context
		Id  uuid.UUID
	}
	mock.lockLockByID.RLock()
	calls = mock.calls.LockByID
	mock.lockLockByID.RUnlock()
	return calls
}
