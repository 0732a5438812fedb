package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/vkarpenko/flightgate/internal/domain"
)

type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) error
	List(ctx context.Context) ([]domain.Booking, error)
}

// Querier is the subset of pgxpool.Pool the repository uses.
type Querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

var _ Querier = (*pgxpool.Pool)(nil)

type PGBookingRepository struct {
	db Querier
}

func NewBookingRepository(db Querier) BookingRepository {
	return &PGBookingRepository{db: db}
}

func (r *PGBookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	return r.db.QueryRow(ctx, `INSERT INTO bookings
		(passenger_name, passport_number, airline_code, departure_airport, arrival_airport, departure_time, arrival_time, price, currency, trip_type)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at`,
		booking.PassengerName, booking.PassportNumber, booking.AirlineCode,
		booking.DepartureAirport, booking.ArrivalAirport, booking.DepartureTime,
		booking.ArrivalTime, booking.Price, booking.Currency, booking.TripType).
		Scan(&booking.ID, &booking.CreatedAt)
}

func (r *PGBookingRepository) List(ctx context.Context) ([]domain.Booking, error) {
	rows, err := r.db.Query(ctx, `SELECT id, passenger_name, passport_number, airline_code, departure_airport, arrival_airport, departure_time, arrival_time, price, currency, trip_type, created_at
		FROM bookings ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bookings := make([]domain.Booking, 0)
	for rows.Next() {
		var b domain.Booking
		if err := rows.Scan(&b.ID, &b.PassengerName, &b.PassportNumber, &b.AirlineCode, &b.DepartureAirport, &b.ArrivalAirport, &b.DepartureTime, &b.ArrivalTime, &b.Price, &b.Currency, &b.TripType, &b.CreatedAt); err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}

var _ BookingRepository = (*PGBookingRepository)(nil)
