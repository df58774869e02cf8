package cli

import (
	"context"

	"github.com/openstfoundation/abibin/internal/app"
)

func withApp(ctx context.Context, a *app.App) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, appKey, a)
}
