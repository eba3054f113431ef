package app

import "context"

type appKey struct{}

// SetAppInContext stores the App in context
func SetAppInContext(ctx context.Context, a *App) context.Context {
	return context.WithValue(ctx, appKey{}, a)
}

// GetAppFromContext retrieves the App from context, or nil
func GetAppFromContext(ctx context.Context) *App {
	a, _ := ctx.Value(appKey{}).(*App)
	return a
}

// FromContext is GetAppFromContext for command handlers that need an App
func FromContext(ctx context.Context) (*App, error) {
	if a := GetAppFromContext(ctx); a != nil {
		return a, nil
	}
	return nil, ErrNotInitialized
}
