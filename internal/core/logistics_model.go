package core

import (
	"context"

	"github.com/shopspring/decimal"
)

// LMDRecord is an outbound (last-mile) dispatch booking.
type LMDRecord struct {
	ID             int             `json:"id"`
	ClientName     string          `json:"client_name"`
	PONumber       string          `json:"po_number"`
	VehicleNumber  string          `json:"vehicle_number"`
	DriverName     string          `json:"driver_name"`
	ClientLocation string          `json:"client_location"`
	VehicleType    string          `json:"vehicle_type"`
	BookingPerson  string          `json:"booking_person"`
	Km             float64         `json:"km"`
	PricePerKm     decimal.Decimal `json:"price_per_km"`
	ExtraExpenses  decimal.Decimal `json:"extra_expenses"`
	Reason         string          `json:"reason"`
	TotalAmount    decimal.Decimal `json:"total_amount"`
	PaymentStatus  string          `json:"payment_status"`
	ModeOfPayment  *string         `json:"mode_of_payment"`
	AmountPaid     decimal.Decimal `json:"amount_paid"`
	AmountDue      decimal.Decimal `json:"amount_due"`
	Date           string          `json:"date"`
	Time           string          `json:"time"`
}

// FMDRecord is an inbound (first-mile) dispatch booking from a vendor.
type FMDRecord struct {
	ID             int             `json:"id"`
	VendorName     string          `json:"vendor_name"`
	VendorLocation string          `json:"vendor_location"`
	VehicleNumber  string          `json:"vehicle_number"`
	DriverName     string          `json:"driver_name"`
	PONumber       string          `json:"po_number"`
	Items          string          `json:"items"`
	VehicleType    string          `json:"vehicle_type"`
	BookingPerson  string          `json:"booking_person"`
	Km             float64         `json:"km"`
	PricePerKm     decimal.Decimal `json:"price_per_km"`
	ExtraExpenses  decimal.Decimal `json:"extra_expenses"`
	Reason         string          `json:"reason"`
	TotalAmount    decimal.Decimal `json:"total_amount"`
	PaymentStatus  string          `json:"payment_status"`
	ModeOfPayment  *string         `json:"mode_of_payment"`
	AmountPaid     decimal.Decimal `json:"amount_paid"`
	AmountDue      decimal.Decimal `json:"amount_due"`
	Date           string          `json:"date"`
	Time           string          `json:"time"`
}

// LogisticsFilter holds the optional filters of the dispatch lists. Text
// filters are substring matches; the location filter hits client_location for
// LMD and vendor_location for FMD.
type LogisticsFilter struct {
	DriverName    string
	VehicleNumber string
	Location      string
	StartDate     string
	EndDate       string
	PaymentStatus string
}

// LogisticsService manages outbound (LMD) and inbound (FMD) dispatch records.
type LogisticsService interface {
	InsertLMD(ctx context.Context, r LMDRecord) (int64, error)
	UpdateLMD(ctx context.Context, r LMDRecord) error
	DeleteLMD(ctx context.Context, id int64) error
	AllLMD(ctx context.Context) ([]LMDRecord, error)
	LatestLMD(ctx context.Context, limit int) ([]LMDRecord, error)
	FilteredLMD(ctx context.Context, f LogisticsFilter) ([]LMDRecord, error)

	InsertFMD(ctx context.Context, r FMDRecord) (int64, error)
	UpdateFMD(ctx context.Context, r FMDRecord) error
	DeleteFMD(ctx context.Context, id int64) error
	AllFMD(ctx context.Context) ([]FMDRecord, error)
	LatestFMD(ctx context.Context, limit int) ([]FMDRecord, error)
	FilteredFMD(ctx context.Context, f LogisticsFilter) ([]FMDRecord, error)
}
