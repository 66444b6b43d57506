package vehicles

import "errors"

var (
	// ErrVehicleNotFound возвращается, когда автомобиль не найден в каталоге
	ErrVehicleNotFound = errors.New("vehicle not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("vehicles: internal error")
)
