package drafts

import "errors"

var (
	// ErrDraftNotFound возвращается, когда черновик не найден или уже удалён
	ErrDraftNotFound = errors.New("draft not found")

	// ErrAccessDenied возвращается, когда черновик принадлежит другому пользователю
	ErrAccessDenied = errors.New("access denied")

	// ErrVehicleNotFound возвращается, когда выбранный автомобиль отсутствует в каталоге
	ErrVehicleNotFound = errors.New("vehicle not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("drafts: internal error")
)
