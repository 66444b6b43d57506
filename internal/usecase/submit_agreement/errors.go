package submit_agreement

import "errors"

var (
	// ErrDraftNotFound возвращается, когда черновик не найден или уже удалён
	ErrDraftNotFound = errors.New("draft not found")

	// ErrAccessDenied возвращается, когда черновик принадлежит другому пользователю
	ErrAccessDenied = errors.New("access denied")

	// ErrSubmitInProgress возвращается при повторном сабмите, пока первый не завершился
	ErrSubmitInProgress = errors.New("submit is already in progress")

	// ErrInternal возвращается при внутренних ошибках
	ErrInternal = errors.New("submit_agreement: internal error")
)
