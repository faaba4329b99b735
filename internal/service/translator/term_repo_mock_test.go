package translator

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/genz-translator-backend/internal/domain"
)

var _ termRepo = &termRepoMock{}

type termRepoMock struct {
	CreateFunc              func(ctx context.Context, t *domain.Term) (*domain.Term, error)
	IncrementPopularityFunc func(ctx context.Context, id uuid.UUID) error
	ListFunc                func(ctx context.Context) ([]*domain.Term, error)
	ListByPopularityFunc    func(ctx context.Context) ([]*domain.Term, error)
	SearchFunc              func(ctx context.Context, query string) ([]*domain.Term, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			T   *domain.Term
		}
		IncrementPopularity []struct {
			Ctx context.Context
			Id  uuid.UUID
		}
		List []struct {
			Ctx context.Context
		}
		ListByPopularity []struct {
			Ctx context.Context
		}
		Search []struct {
			Ctx   context.Context
			Query string
		}
	}
	lockCreate              sync.RWMutex
	lockIncrementPopularity sync.RWMutex
	lockList                sync.RWMutex
	lockListByPopularity    sync.RWMutex
	lockSearch              sync.RWMutex
}

func (mock *termRepoMock) Create(ctx context.Context, t *domain.Term) (*domain.Term, error) {
	if mock.CreateFunc == nil {
		panic("termRepoMock.CreateFunc: method is nil but termRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		T   *domain.Term
	}{
		Ctx: ctx,
		T:   t,
	}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, t)
}

func (mock *termRepoMock) CreateCalls() []struct {
	Ctx context.Context
	T   *domain.Term
} {
	var calls []struct {
		Ctx context.Context
		T   *domain.Term
	}
	mock.lockCreate.RLock()
	calls = mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *termRepoMock) IncrementPopularity(ctx context.Context, id uuid.UUID) error {
	if mock.IncrementPopularityFunc == nil {
		panic("termRepoMock.IncrementPopularityFunc: method is nil but termRepo.IncrementPopularity was just called")
	}
	callInfo := struct {
		Ctx context.Context
		Id  uuid.UUID
	}{
		Ctx: ctx,
		Id:  id,
	}
	mock.lockIncrementPopularity.Lock()
	mock.calls.IncrementPopularity = append(mock.calls.IncrementPopularity, callInfo)
	mock.lockIncrementPopularity.Unlock()
	return mock.IncrementPopularityFunc(ctx, id)
}

func (mock *termRepoMock) IncrementPopularityCalls() []struct {
	Ctx context.Context
	Id  uuid.UUID
} {
	var calls []struct {
		Ctx context.Context
		Id  uuid.UUID
	}
	mock.lockIncrementPopularity.RLock()
	calls = mock.calls.IncrementPopularity
	mock.lockIncrementPopularity.RUnlock()
	return calls
}

func (mock *termRepoMock) List(ctx context.Context) ([]*domain.Term, error) {
	if mock.ListFunc == nil {
		panic("termRepoMock.ListFunc: method is nil but termRepo.List was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx)
}

func (mock *termRepoMock) ListCalls() []struct {
	Ctx context.Context
} {
	var calls []struct {
		Ctx context.Context
	}
	mock.lockList.RLock()
	calls = mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *termRepoMock) ListByPopularity(ctx context.Context) ([]*domain.Term, error) {
	if mock.ListByPopularityFunc == nil {
		panic("termRepoMock.ListByPopularityFunc: method is nil but termRepo.ListByPopularity was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{
		Ctx: ctx,
	}
	mock.lockListByPopularity.Lock()
	mock.calls.ListByPopularity = append(mock.calls.ListByPopularity, callInfo)
	mock.lockListByPopularity.Unlock()
	return mock.ListByPopularityFunc(ctx)
}

func (mock *termRepoMock) ListByPopularityCalls() []struct {
	Ctx context.Context
} {
	var calls []struct {
		Ctx context.Context
	}
	mock.lockListByPopularity.RLock()
	calls = mock.calls.ListByPopularity
	mock.lockListByPopularity.RUnlock()
	return calls
}

func (mock *termRepoMock) Search(ctx context.Context, query string) ([]*domain.Term, error) {
	if mock.SearchFunc == nil {
		panic("termRepoMock.SearchFunc: method is nil but termRepo.Search was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Query string
	}{
		Ctx:   ctx,
		Query: query,
	}
	mock.lockSearch.Lock()
	mock.calls.Search = append(mock.calls.Search, callInfo)
	mock.lockSearch.Unlock()
	return mock.SearchFunc(ctx, query)
}

func (mock *termRepoMock) SearchCalls() []struct {
	Ctx   context.Context
	Query string
} {
	var calls []struct {
		Ctx   context.Context
		Query string
	}
	mock.lockSearch.RLock()
	calls = mock.calls.Search
	mock.lockSearch.RUnlock()
	return calls
}
