package draft

import "errors"

var (
	// ErrDraftNotFound возвращается, когда черновик не найден (или уже удалён по TTL)
	ErrDraftNotFound = errors.New("draft.store: draft not found")
)
