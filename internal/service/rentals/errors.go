package rentals

import "errors"

var (
	// ErrRentalNotFound возвращается, когда договор не найден
	ErrRentalNotFound = errors.New("rental not found")

	// ErrAccessDenied возвращается, когда договор принадлежит другому пользователю
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrEmptyUpdate возвращается, когда запрос обновления не меняет ни одного поля
	ErrEmptyUpdate = errors.New("update request is empty")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("rentals: internal error")
)
