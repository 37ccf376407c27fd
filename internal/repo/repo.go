package repo

import (
	"context"
	"fmt"
	"time"

	"stickynotes/internal/pkg/dbutil"
	appErr "stickynotes/internal/pkg/errors"
)

// queryTimeout caps every single store call so a slow database surfaces as
// a service error instead of hanging the request.
const queryTimeout = 5 * time.Second

func withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, queryTimeout)
}

func classify(err error) error {
	if err == nil {
		return nil
	}
	if dbutil.IsUnavailable(err) {
		return fmt.Errorf("%w: %v", appErr.ErrUnavailable, err)
	}
	return err
}
