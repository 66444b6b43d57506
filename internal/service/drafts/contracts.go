package drafts

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-RentalService/internal/domain"
)

// DraftStore интерфейс хранилища черновиков
type DraftStore interface {
	Create(d *domain.Draft)
	GetByID(id string) (*domain.Draft, error)
	Save(d *domain.Draft) error
	Delete(id string) error
}

// VehicleRepository интерфейс репозитория каталога автомобилей
type VehicleRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Vehicle, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// IDGenerator интерфейс генерации идентификаторов черновиков
type IDGenerator interface {
	NewID() string
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

// UUIDGenerator генератор идентификаторов на основе UUID v4
type UUIDGenerator struct{}

// NewID возвращает новый UUID
func (g *UUIDGenerator) NewID() string {
	return uuid.NewString()
}
