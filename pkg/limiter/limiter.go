package limiter

import (
	"context"

	"github.com/adrianliechti/removebg/pkg/removebg"

	"golang.org/x/time/rate"
)

var _ removebg.Remover = (*limitedRemover)(nil)

type limitedRemover struct {
	limiter  *rate.Limiter
	provider removebg.Remover
}

// NewRemover wraps a remover so calls wait on the limiter first. The service
// enforces request quotas per key; a nil limiter disables the wait.
func NewRemover(l *rate.Limiter, p removebg.Remover) removebg.Remover {
	return &limitedRemover{
		limiter:  l,
		provider: p,
	}
}

func (p *limitedRemover) RemoveFromFile(ctx context.Context, path string, options *removebg.Options) (*removebg.Result, error) {
	if p.limiter != nil {
		if err := p.limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	return p.provider.RemoveFromFile(ctx, path, options)
}

func (p *limitedRemover) RemoveFromURL(ctx context.Context, url string, options *removebg.Options) (*removebg.Result, error) {
	if p.limiter != nil {
		if err := p.limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	return p.provider.RemoveFromURL(ctx, url, options)
}

func (p *limitedRemover) RemoveFromBase64(ctx context.Context, data string, options *removebg.Options) (*removebg.Result, error) {
	if p.limiter != nil {
		if err := p.limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	return p.provider.RemoveFromBase64(ctx, data, options)
}
