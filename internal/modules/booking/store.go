// README: Booking store backed by PostgreSQL; flattened records for the admin panel.
package booking

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

func (s *Store) Save(ctx context.Context, r *Record) error {
	_, err := s.db.Exec(ctx, `
		INSERT INTO bookings (
			booking_id, created_at,
			customer_name, customer_email, customer_phone, pickup_location, drop_location,
			trip_type, from_city, to_city, pickup_date, pickup_time, car_name, distance_km,
			base_fare, driver_allowance, taxes, selected_services, services_total, total_fare,
			payment_option, amount_paid_now, amount_paid_later, payment_status,
			has_gst, gst_company, gst_number, status
		) VALUES (
			$1, $2,
			$3, $4, $5, $6, $7,
			$8, $9, $10, $11, $12, $13, $14,
			$15, $16, $17, $18, $19, $20,
			$21, $22, $23, $24,
			$25, $26, $27, $28
		)`,
		r.BookingID, r.CreatedAt,
		r.CustomerName, r.CustomerEmail, r.CustomerPhone, r.PickupLocation, r.DropLocation,
		r.TripType, r.FromCity, r.ToCity, r.PickupDate, r.PickupTime, r.CarName, r.DistanceKm,
		r.BaseFare, r.DriverAllowance, r.Taxes, r.SelectedServices, r.ServicesTotal, r.TotalFare,
		r.PaymentOption, r.AmountPaidNow, r.AmountPaidLater, r.PaymentStatus,
		r.HasGST, r.GSTCompany, r.GSTNumber, r.Status,
	)
	return err
}

func (s *Store) List(ctx context.Context) ([]Record, error) {
	rows, err := s.db.Query(ctx, `
		SELECT booking_id, created_at,
		       customer_name, customer_email, customer_phone, pickup_location, drop_location,
		       trip_type, from_city, to_city, pickup_date, pickup_time, car_name, distance_km,
		       base_fare, driver_allowance, taxes, selected_services, services_total, total_fare,
		       payment_option, amount_paid_now, amount_paid_later, payment_status,
		       has_gst, gst_company, gst_number, status
		FROM bookings
		ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Record
	for rows.Next() {
		var r Record
		if err := rows.Scan(
			&r.BookingID, &r.CreatedAt,
			&r.CustomerName, &r.CustomerEmail, &r.CustomerPhone, &r.PickupLocation, &r.DropLocation,
			&r.TripType, &r.FromCity, &r.ToCity, &r.PickupDate, &r.PickupTime, &r.CarName, &r.DistanceKm,
			&r.BaseFare, &r.DriverAllowance, &r.Taxes, &r.SelectedServices, &r.ServicesTotal, &r.TotalFare,
			&r.PaymentOption, &r.AmountPaidNow, &r.AmountPaidLater, &r.PaymentStatus,
			&r.HasGST, &r.GSTCompany, &r.GSTNumber, &r.Status,
		); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

// UpdateStatus moves a booking through the admin lifecycle. Returns false
// when the booking id is unknown.
func (s *Store) UpdateStatus(ctx context.Context, bookingID, status string) (bool, error) {
	tag, err := s.db.Exec(ctx, `
		UPDATE bookings SET status = $1 WHERE booking_id = $2`,
		status, bookingID,
	)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}
