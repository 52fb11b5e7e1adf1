package service

import (
	"context"
	"errors"

	"pack-panel/backend/common/i18n"
)

// ErrHasActiveServers is the cause of every rejection caused by servers still using a pack.
// Match it with errors.Is; the returned error carries the translated message.
var ErrHasActiveServers = errors.New("pack has active servers")

func hasActiveServersError(ctx context.Context, code string) error {
	return i18n.WrapCtx(ctx, ErrHasActiveServers, code)
}
