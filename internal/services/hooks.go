package services

import "context"

// writeHooks runs callbacks after a service commits a write.
type writeHooks struct {
	hooks []func(context.Context)
}

// OnWrite registers fn to run after every successful create, update or delete.
func (w *writeHooks) OnWrite(fn func(context.Context)) {
	w.hooks = append(w.hooks, fn)
}

func (w *writeHooks) written(ctx context.Context) {
	for _, fn := range w.hooks {
		fn(ctx)
	}
}
