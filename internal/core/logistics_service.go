package core

import (
	"context"
	"database/sql"
	"fmt"
)

type logisticsService struct {
	store *sql.DB
}

// NewLogisticsService constructs a LogisticsService backed by the SQLite store.
func NewLogisticsService(store *sql.DB) LogisticsService {
	return &logisticsService{store: store}
}

const lmdColumns = `id, client_name, po_number, vehicle_number, driver_name, client_location,
       vehicle_type, booking_person, km, price_per_km, extra_expenses, reason, total_amount,
       payment_status, mode_of_payment, amount_paid, amount_due, date, time`

const fmdColumns = `id, vendor_name, vendor_location, vehicle_number, driver_name, po_number,
       items, vehicle_type, booking_person, km, price_per_km, extra_expenses, reason, total_amount,
       payment_status, mode_of_payment, amount_paid, amount_due, date, time`

func (s *logisticsService) InsertLMD(ctx context.Context, r LMDRecord) (int64, error) {
	res, err := s.store.ExecContext(ctx, `
		INSERT INTO lmd_data (client_name, po_number, vehicle_number, driver_name, client_location,
		                      vehicle_type, booking_person, km, price_per_km, extra_expenses, reason,
		                      total_amount, payment_status, mode_of_payment, amount_paid, amount_due, date, time)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ClientName, r.PONumber, r.VehicleNumber, r.DriverName, r.ClientLocation,
		r.VehicleType, r.BookingPerson, r.Km, r.PricePerKm, r.ExtraExpenses, r.Reason,
		r.TotalAmount, r.PaymentStatus, r.ModeOfPayment, r.AmountPaid, r.AmountDue, r.Date, r.Time)
	if err != nil {
		return 0, fmt.Errorf("insert lmd record: %w", err)
	}
	return res.LastInsertId()
}

func (s *logisticsService) UpdateLMD(ctx context.Context, r LMDRecord) error {
	_, err := s.store.ExecContext(ctx, `
		UPDATE lmd_data SET client_name=?, po_number=?, vehicle_number=?, driver_name=?,
		       client_location=?, vehicle_type=?, booking_person=?, km=?, price_per_km=?,
		       extra_expenses=?, reason=?, total_amount=?, payment_status=?, mode_of_payment=?,
		       amount_paid=?, amount_due=?, date=?, time=?
		WHERE id=?`,
		r.ClientName, r.PONumber, r.VehicleNumber, r.DriverName, r.ClientLocation,
		r.VehicleType, r.BookingPerson, r.Km, r.PricePerKm, r.ExtraExpenses, r.Reason,
		r.TotalAmount, r.PaymentStatus, r.ModeOfPayment, r.AmountPaid, r.AmountDue, r.Date, r.Time,
		r.ID)
	if err != nil {
		return fmt.Errorf("update lmd record %d: %w", r.ID, err)
	}
	return nil
}

func (s *logisticsService) DeleteLMD(ctx context.Context, id int64) error {
	if _, err := s.store.ExecContext(ctx, "DELETE FROM lmd_data WHERE id = ?", id); err != nil {
		return fmt.Errorf("delete lmd record %d: %w", id, err)
	}
	return nil
}

func (s *logisticsService) scanLMD(rows *sql.Rows) ([]LMDRecord, error) {
	defer rows.Close()
	var out []LMDRecord
	for rows.Next() {
		var r LMDRecord
		if err := rows.Scan(&r.ID, &r.ClientName, &r.PONumber, &r.VehicleNumber, &r.DriverName,
			&r.ClientLocation, &r.VehicleType, &r.BookingPerson, &r.Km, &r.PricePerKm,
			&r.ExtraExpenses, &r.Reason, &r.TotalAmount, &r.PaymentStatus, &r.ModeOfPayment,
			&r.AmountPaid, &r.AmountDue, &r.Date, &r.Time); err != nil {
			return nil, fmt.Errorf("scan lmd record: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func (s *logisticsService) AllLMD(ctx context.Context) ([]LMDRecord, error) {
	rows, err := s.store.QueryContext(ctx,
		"SELECT "+lmdColumns+" FROM lmd_data ORDER BY id DESC")
	if err != nil {
		return nil, fmt.Errorf("list lmd records: %w", err)
	}
	return s.scanLMD(rows)
}

func (s *logisticsService) LatestLMD(ctx context.Context, limit int) ([]LMDRecord, error) {
	rows, err := s.store.QueryContext(ctx,
		"SELECT "+lmdColumns+" FROM lmd_data ORDER BY id DESC LIMIT ?", limit)
	if err != nil {
		return nil, fmt.Errorf("latest lmd records: %w", err)
	}
	return s.scanLMD(rows)
}

func (s *logisticsService) FilteredLMD(ctx context.Context, f LogisticsFilter) ([]LMDRecord, error) {
	var fb filterBuilder
	fb.Like("driver_name", f.DriverName)
	fb.Like("vehicle_number", f.VehicleNumber)
	fb.Like("client_location", f.Location)
	fb.From("date", f.StartDate)
	fb.To("date", f.EndDate)
	fb.Eq("payment_status", f.PaymentStatus)
	where, args := fb.Clause()

	rows, err := s.store.QueryContext(ctx,
		"SELECT "+lmdColumns+" FROM lmd_data"+where+" ORDER BY id DESC", args...)
	if err != nil {
		return nil, fmt.Errorf("filter lmd records: %w", err)
	}
	return s.scanLMD(rows)
}

func (s *logisticsService) InsertFMD(ctx context.Context, r FMDRecord) (int64, error) {
	res, err := s.store.ExecContext(ctx, `
		INSERT INTO fmd_data (vendor_name, vendor_location, vehicle_number, driver_name, po_number,
		                      items, vehicle_type, booking_person, km, price_per_km, extra_expenses,
		                      reason, total_amount, payment_status, mode_of_payment, amount_paid,
		                      amount_due, date, time)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.VendorName, r.VendorLocation, r.VehicleNumber, r.DriverName, r.PONumber,
		r.Items, r.VehicleType, r.BookingPerson, r.Km, r.PricePerKm, r.ExtraExpenses,
		r.Reason, r.TotalAmount, r.PaymentStatus, r.ModeOfPayment, r.AmountPaid,
		r.AmountDue, r.Date, r.Time)
	if err != nil {
		return 0, fmt.Errorf("insert fmd record: %w", err)
	}
	return res.LastInsertId()
}

func (s *logisticsService) UpdateFMD(ctx context.Context, r FMDRecord) error {
	_, err := s.store.ExecContext(ctx, `
		UPDATE fmd_data SET vendor_name=?, vendor_location=?, vehicle_number=?, driver_name=?,
		       po_number=?, items=?, vehicle_type=?, booking_person=?, km=?, price_per_km=?,
		       extra_expenses=?, reason=?, total_amount=?, payment_status=?, mode_of_payment=?,
		       amount_paid=?, amount_due=?, date=?, time=?
		WHERE id=?`,
		r.VendorName, r.VendorLocation, r.VehicleNumber, r.DriverName, r.PONumber,
		r.Items, r.VehicleType, r.BookingPerson, r.Km, r.PricePerKm, r.ExtraExpenses,
		r.Reason, r.TotalAmount, r.PaymentStatus, r.ModeOfPayment, r.AmountPaid,
		r.AmountDue, r.Date, r.Time, r.ID)
	if err != nil {
		return fmt.Errorf("update fmd record %d: %w", r.ID, err)
	}
	return nil
}

func (s *logisticsService) DeleteFMD(ctx context.Context, id int64) error {
	if _, err := s.store.ExecContext(ctx, "DELETE FROM fmd_data WHERE id = ?", id); err != nil {
		return fmt.Errorf("delete fmd record %d: %w", id, err)
	}
	return nil
}

func (s *logisticsService) scanFMD(rows *sql.Rows) ([]FMDRecord, error) {
	defer rows.Close()
	var out []FMDRecord
	for rows.Next() {
		var r FMDRecord
		if err := rows.Scan(&r.ID, &r.VendorName, &r.VendorLocation, &r.VehicleNumber, &r.DriverName,
			&r.PONumber, &r.Items, &r.VehicleType, &r.BookingPerson, &r.Km, &r.PricePerKm,
			&r.ExtraExpenses, &r.Reason, &r.TotalAmount, &r.PaymentStatus, &r.ModeOfPayment,
			&r.AmountPaid, &r.AmountDue, &r.Date, &r.Time); err != nil {
			return nil, fmt.Errorf("scan fmd record: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func (s *logisticsService) AllFMD(ctx context.Context) ([]FMDRecord, error) {
	rows, err := s.store.QueryContext(ctx,
		"SELECT "+fmdColumns+" FROM fmd_data ORDER BY id DESC")
	if err != nil {
		return nil, fmt.Errorf("list fmd records: %w", err)
	}
	return s.scanFMD(rows)
}

func (s *logisticsService) LatestFMD(ctx context.Context, limit int) ([]FMDRecord, error) {
	rows, err := s.store.QueryContext(ctx,
		"SELECT "+fmdColumns+" FROM fmd_data ORDER BY id DESC LIMIT ?", limit)
	if err != nil {
		return nil, fmt.Errorf("latest fmd records: %w", err)
	}
	return s.scanFMD(rows)
}

func (s *logisticsService) FilteredFMD(ctx context.Context, f LogisticsFilter) ([]FMDRecord, error) {
	var fb filterBuilder
	fb.Like("driver_name", f.DriverName)
	fb.Like("vehicle_number", f.VehicleNumber)
	fb.Like("vendor_location", f.Location)
	fb.From("date", f.StartDate)
	fb.To("date", f.EndDate)
	fb.Eq("payment_status", f.PaymentStatus)
	where, args := fb.Clause()

	rows, err := s.store.QueryContext(ctx,
		"SELECT "+fmdColumns+" FROM fmd_data"+where+" ORDER BY id DESC", args...)
	if err != nil {
		return nil, fmt.Errorf("filter fmd records: %w", err)
	}
	return s.scanFMD(rows)
}
