package jobs

import (
	"context"
	"sync"
)

// ForEach calls fn for every index in [0, n) with at most limit calls in
// flight and waits for all of them. fn owns slot i of any result slice, so
// callers need no extra locking. Indexes not yet started when ctx is
// cancelled are skipped.
func ForEach(ctx context.Context, n, limit int, fn func(ctx context.Context, i int)) {
	if limit < 1 {
		limit = 1
	}
	sem := make(chan struct{}, limit)
	var wg sync.WaitGroup

	for i := 0; i < n; i++ {
		if ctx.Err() != nil {
			break
		}
		select {
		case sem <- struct{}{}:
		case <-ctx.Done():
			wg.Wait()
			return
		}
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			defer func() { <-sem }()
			fn(ctx, i)
		}(i)
	}
	wg.Wait()
}
