package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/genz-translator-backend/internal/domain"
	"github.com/heartmarshall/genz-translator-backend/internal/service/vibe"
)

var _ vibeService = &vibeServiceMock{}

type vibeServiceMock struct {
	FeedFunc        func(ctx context.Context, input vibe.FeedInput) ([]*domain.VibeView, error)
	ListRemixesFunc func(ctx context.Context, input vibe.ListRemixesInput) ([]*domain.RemixEntry, error)
	PublishFunc     func(ctx context.Context, input vibe.PublishInput) (*domain.VibeView, error)
	ReactFunc       func(ctx context.Context, input vibe.ReactInput) (*domain.VibeView, error)
	RemixFunc       func(ctx context.Context, input vibe.RemixInput) (*domain.VibeView, error)

	calls struct {
		Feed []struct {
			Ctx   context.Context
			Input vibe.FeedInput
		}
		ListRemixes []struct {
			Ctx   context.Context
			Input vibe.ListRemixesInput
		}
		Publish []struct {
			Ctx   context.Context
			Input vibe.PublishInput
		}
		React []struct {
			Ctx   context.Context
			Input vibe.ReactInput
		}
		Remix []struct {
			Ctx   context.Context
			Input vibe.RemixInput
		}
	}
	lockFeed        sync.RWMutex
	lockListRemixes sync.RWMutex
	lockPublish     sync.RWMutex
	lockReact       sync.RWMutex
	lockRemix       sync.RWMutex
}

func (mock *vibeServiceMock) Feed(ctx context.Context, input vibe.FeedInput) ([]*domain.VibeView, error) {
	if mock.FeedFunc == nil {
		panic("vibeServiceMock.FeedFunc: method is nil but vibeService.Feed was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input vibe.FeedInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockFeed.Lock()
	mock.calls.Feed = append(mock.calls.Feed, callInfo)
	mock.lockFeed.Unlock()
	return mock.FeedFunc(ctx, input)
}

func (mock *vibeServiceMock) FeedCalls() []struct {
	Ctx   context.Context
	Input vibe.FeedInput
} {
	var calls []struct {
		Ctx   context.Context
		Input vibe.FeedInput
	}
	mock.lockFeed.RLock()
	calls = mock.calls.Feed
	mock.lockFeed.RUnlock()
	return calls
}

func (mock *vibeServiceMock) ListRemixes(ctx context.Context, input vibe.ListRemixesInput) ([]*domain.RemixEntry, error) {
	if mock.ListRemixesFunc == nil {
		panic("vibeServiceMock.ListRemixesFunc: method is nil but vibeService.ListRemixes was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input vibe.ListRemixesInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockListRemixes.Lock()
	mock.calls.ListRemixes = append(mock.calls.ListRemixes, callInfo)
	mock.lockListRemixes.Unlock()
	return mock.ListRemixesFunc(ctx, input)
}

func (mock *vibeServiceMock) ListRemixesCalls() []struct {
	Ctx   context.Context
	Input vibe.ListRemixesInput
} {
	var calls []struct {
		Ctx   context.Context
		Input vibe.ListRemixesInput
	}
	mock.lockListRemixes.RLock()
	calls = mock.calls.ListRemixes
	mock.lockListRemixes.RUnlock()
	return calls
}

func (mock *vibeServiceMock) Publish(ctx context.Context, input vibe.PublishInput) (*domain.VibeView, error) {
	if mock.PublishFunc == nil {
		panic("vibeServiceMock.PublishFunc: method is nil but vibeService.Publish was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input vibe.PublishInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockPublish.Lock()
	mock.calls.Publish = append(mock.calls.Publish, callInfo)
	mock.lockPublish.Unlock()
	return mock.PublishFunc(ctx, input)
}

func (mock *vibeServiceMock) PublishCalls() []struct {
	Ctx   context.Context
	Input vibe.PublishInput
} {
	var calls []struct {
		Ctx   context.Context
		Input vibe.PublishInput
	}
	mock.lockPublish.RLock()
	calls = mock.calls.Publish
	mock.lockPublish.RUnlock()
	return calls
}

func (mock *vibeServiceMock) React(ctx context.Context, input vibe.ReactInput) (*domain.VibeView, error) {
	if mock.ReactFunc == nil {
		panic("vibeServiceMock.ReactFunc: method is nil but vibeService.React was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input vibe.ReactInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockReact.Lock()
	mock.calls.React = append(mock.calls.React, callInfo)
	mock.lockReact.Unlock()
	return mock.ReactFunc(ctx, input)
}

func (mock *vibeServiceMock) ReactCalls() []struct {
	Ctx   context.Context
	Input vibe.ReactInput
} {
	var calls []struct {
		Ctx   context.Context
		Input vibe.ReactInput
	}
	mock.lockReact.RLock()
	calls = mock.calls.React
	mock.lockReact.RUnlock()
	return calls
}

func (mock *vibeServiceMock) Remix(ctx context.Context, input vibe.RemixInput) (*domain.VibeView, error) {
	if mock.RemixFunc == nil {
		panic("vibeServiceMock.RemixFunc: method is nil but vibeService.Remix was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input vibe.RemixInput
	}{
		Ctx:   ctx,
		Input: input,
	}
	mock.lockRemix.Lock()
	mock.calls.Remix = append(mock.calls.Remix, callInfo)
	mock.lockRemix.Unlock()
	return mock.RemixFunc(ctx, input)
}

func (mock *vibeServiceMock) RemixCalls() []struct {
	Ctx   context.Context
	Input vibe.RemixInput
} {
	var calls []struct {
		Ctx   context.Context
		Input vibe.RemixInput
	}
	mock.lockRemix.RLock()
	calls = mock.calls.Remix
	mock.lockRemix.RUnlock()
	return calls
}
