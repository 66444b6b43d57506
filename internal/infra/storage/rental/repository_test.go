package rental

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RentalService/internal/domain"
	"github.com/m04kA/SMC-RentalService/pkg/ptr"
)

func newMockRepo(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewRepository(db), mock
}

func rentalRow() *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows(rentalColumns).
		AddRow(
			int64(101),            // id
			"AGR-2025-001",        // agreement_number
			int64(42),             // user_id
			"Ali Khan",            // client_full_name
			"12345-1234567-1",     // client_cnic
			"+92 300 1234567",     // client_phone
			"Karachi",             // client_address
			[]byte(`[]`),          // client_images
			int64(7),              // vehicle_id
			"Toyota Corolla",      // vehicle_name
			"Toyota",              // vehicle_brand
			"Corolla",             // vehicle_model
			"2022",                // vehicle_year
			"white",               // vehicle_color
			"Bilal Ahmed",         // witness_name
			"54321-7654321-9",     // witness_cnic
			"+92 300 7654321",     // witness_phone
			"Lahore",              // witness_address
			nil,                   // witness_image
			now,                   // delivery_date
			"10:00",               // delivery_time
			now.Add(72*time.Hour), // return_date
			"10:00",               // return_time
			"daily",               // rent_type
			0,                     // custom_days
			9000.0,                // total_amount
			3000.0,                // advance_payment
			6000.0,                // balance
			"partial",             // payment_status
			nil,                   // notes
			nil,                   // accessories
			nil,                   // vehicle_condition
			nil,                   // dents_scratches
			nil,                   // client_signature
			nil,                   // owner_signature
			now,                   // created_at
			now,                   // updated_at
		)
}

func TestRepository_Create(t *testing.T) {
	repo, mock := newMockRepo(t)
	now := time.Now()

	rental := &domain.Rental{
		AgreementNumber: ptr.Ptr("AGR-2025-001"),
		UserID:          42,
		Client: domain.Client{
			FullName: "Ali Khan",
			CNIC:     "12345-1234567-1",
			Phone:    "+92 300 1234567",
			Address:  "Karachi",
		},
		VehicleID:      7,
		VehicleName:    "Toyota Corolla",
		RentType:       domain.RentTypeDaily,
		TotalAmount:    9000,
		AdvancePayment: 3000,
		Balance:        6000,
		PaymentStatus:  domain.PaymentPartial,
	}

	mock.ExpectQuery("INSERT INTO rentals").
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at", "updated_at"}).
			AddRow(int64(101), now, now))

	created, err := repo.Create(context.Background(), rental)
	require.NoError(t, err)
	assert.Equal(t, int64(101), created.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_GetByID(t *testing.T) {
	repo, mock := newMockRepo(t)

	t.Run("found", func(t *testing.T) {
		mock.ExpectQuery(`SELECT .+ FROM rentals WHERE id = \$1`).
			WithArgs(int64(101)).
			WillReturnRows(rentalRow())

		rental, err := repo.GetByID(context.Background(), 101)
		require.NoError(t, err)
		assert.Equal(t, int64(101), rental.ID)
		assert.Equal(t, "Ali Khan", rental.Client.FullName)
		assert.Equal(t, domain.PaymentPartial, rental.PaymentStatus)
		require.NotNil(t, rental.AgreementNumber)
		assert.Equal(t, "AGR-2025-001", *rental.AgreementNumber)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery(`SELECT .+ FROM rentals WHERE id = \$1`).
			WithArgs(int64(999)).
			WillReturnRows(sqlmock.NewRows(rentalColumns))

		_, err := repo.GetByID(context.Background(), 999)
		assert.ErrorIs(t, err, ErrRentalNotFound)
	})
}

func TestRepository_List_FiltersByUserAndStatus(t *testing.T) {
	repo, mock := newMockRepo(t)

	userID := int64(42)
	status := domain.PaymentPartial

	mock.ExpectQuery(`SELECT .+ FROM rentals WHERE user_id = \$1 AND payment_status = \$2 ORDER BY created_at DESC`).
		WithArgs(userID, status).
		WillReturnRows(rentalRow())

	rentals, err := repo.List(context.Background(), domain.RentalsFilter{
		UserID:        &userID,
		PaymentStatus: &status,
	})
	require.NoError(t, err)
	require.Len(t, rentals, 1)
	assert.Equal(t, int64(101), rentals[0].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Update(t *testing.T) {
	repo, mock := newMockRepo(t)

	rental := &domain.Rental{
		ID:             101,
		AdvancePayment: 9000,
		Balance:        0,
		PaymentStatus:  domain.PaymentPaid,
	}

	t.Run("success", func(t *testing.T) {
		mock.ExpectExec("UPDATE rentals SET").
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Update(context.Background(), rental))
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectExec("UPDATE rentals SET").
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.Update(context.Background(), rental), ErrRentalNotFound)
	})
}

func TestRepository_Delete(t *testing.T) {
	repo, mock := newMockRepo(t)

	t.Run("success", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM rentals").
			WithArgs(int64(101)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.Delete(context.Background(), 101))
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectExec("DELETE FROM rentals").
			WithArgs(int64(999)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.Delete(context.Background(), 999), ErrRentalNotFound)
	})
}
