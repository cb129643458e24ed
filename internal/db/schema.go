package db

import (
	"database/sql"
	"fmt"
)

// Schema DDL. Every statement is CREATE TABLE IF NOT EXISTS so Init can run
// against an already-populated store.
const (
	createItems = `CREATE TABLE IF NOT EXISTS items (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT UNIQUE
);`

	createProductManagers = `CREATE TABLE IF NOT EXISTS product_managers (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT UNIQUE
);`

	createPurchaseVendors = `CREATE TABLE IF NOT EXISTS purchase_vendors (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT UNIQUE
);`

	createBGradeClients = `CREATE TABLE IF NOT EXISTS b_grade_clients (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT UNIQUE
);`

	createVendors = `CREATE TABLE IF NOT EXISTS vendors (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT UNIQUE,
    location TEXT,
    km REAL
);`

	createGeneratedSOs = `CREATE TABLE IF NOT EXISTS generated_sos (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    client_name TEXT,
    so_number TEXT,
    date_of_dispatch TEXT
);`

	createSOItems = `CREATE TABLE IF NOT EXISTS so_items (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    so_id INTEGER,
    item_name TEXT,
    quantity_kg REAL,
    quantity_pcs REAL,
    FOREIGN KEY (so_id) REFERENCES generated_sos (id) ON DELETE CASCADE
);`

	createGeneratedPOs = `CREATE TABLE IF NOT EXISTS generated_pos (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    product_manager TEXT,
    item_name TEXT,
    po_number TEXT,
    qty_ordered REAL,
    rate REAL,
    unit TEXT,
    vendor_name TEXT,
    expected_date TEXT,
    quality_specifications TEXT,
    note TEXT
);`

	createLMDData = `CREATE TABLE IF NOT EXISTS lmd_data (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    client_name TEXT,
    po_number TEXT,
    vehicle_number TEXT,
    driver_name TEXT,
    client_location TEXT,
    vehicle_type TEXT,
    booking_person TEXT,
    km REAL,
    price_per_km REAL,
    extra_expenses REAL,
    reason TEXT,
    total_amount REAL,
    payment_status TEXT,
    mode_of_payment TEXT,
    amount_paid REAL,
    amount_due REAL,
    date TEXT,
    time TEXT
);`

	createFMDData = `CREATE TABLE IF NOT EXISTS fmd_data (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    vendor_name TEXT,
    vendor_location TEXT,
    vehicle_number TEXT,
    driver_name TEXT,
    po_number TEXT,
    items TEXT,
    vehicle_type TEXT,
    booking_person TEXT,
    km REAL,
    price_per_km REAL,
    extra_expenses REAL,
    reason TEXT,
    total_amount REAL,
    payment_status TEXT,
    mode_of_payment TEXT,
    amount_paid REAL,
    amount_due REAL,
    date TEXT,
    time TEXT
);`

	createPaymentHistory = `CREATE TABLE IF NOT EXISTS payment_history (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    parent_table_name TEXT NOT NULL,
    parent_id INTEGER NOT NULL,
    amount_paid REAL NOT NULL,
    mode_of_payment TEXT NOT NULL,
    payment_date TEXT NOT NULL,
    payment_time TEXT NOT NULL
);`

	createPurchases = `CREATE TABLE IF NOT EXISTS purchases (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    item TEXT,
    vendor TEXT,
    po_number TEXT,
    qty_receive REAL,
    unit_receive TEXT,
    pcs_receive REAL,
    qty_accept REAL,
    unit_accept TEXT,
    pcs_accept REAL,
    qty_reject REAL,
    unit_reject TEXT,
    pcs_reject REAL,
    reason_for_rejection TEXT,
    date TEXT,
    time TEXT,
    ctrl_date TEXT,
    item_tag TEXT,
    payment_status TEXT,
    mode_of_payment TEXT,
    amount_paid REAL,
    amount_due REAL,
    rate REAL,
    total_value REAL
);`

	createStockUpdates = `CREATE TABLE IF NOT EXISTS stock_updates (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    item TEXT NOT NULL,
    a_grade_qty REAL,
    a_grade_unit TEXT,
    pcs_a_grade REAL,
    b_grade_qty REAL,
    b_grade_unit TEXT,
    pcs_b_grade REAL,
    c_grade_qty REAL,
    c_grade_unit TEXT,
    pcs_c_grade REAL,
    ungraded_qty REAL,
    ungraded_unit TEXT,
    pcs_ungraded REAL,
    dump_qty REAL,
    dump_unit TEXT,
    pcs_dump REAL,
    total_qty REAL,
    date TEXT,
    time TEXT,
    po_number TEXT,
    a_grade_tags TEXT,
    b_grade_tags TEXT,
    c_grade_tags TEXT,
    ungraded_tags TEXT,
    dump_tags TEXT
);`

	createBGradeSales = `CREATE TABLE IF NOT EXISTS b_grade_sales (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    item TEXT,
    clint TEXT,
    quantity REAL,
    rate REAL,
    unit TEXT,
    total_value REAL,
    date TEXT,
    time TEXT,
    po_number TEXT,
    pcs REAL,
    item_tag TEXT,
    payment_status TEXT,
    mode_of_payment TEXT,
    amount_paid REAL,
    amount_due REAL
);`

	createSales = `CREATE TABLE IF NOT EXISTS sales (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    item TEXT,
    clint TEXT,
    quantity REAL,
    unit TEXT,
    pcs REAL,
    date TEXT,
    time TEXT,
    po_number TEXT,
    item_tag TEXT,
    payment_status TEXT,
    mode_of_payment TEXT,
    amount_paid REAL,
    amount_due REAL,
    rate REAL,
    total_value REAL
);`

	createSalesWaitlist = `CREATE TABLE IF NOT EXISTS sales_waitlist (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    item TEXT,
    clint TEXT,
    po_number TEXT,
    quantity REAL,
    unit TEXT,
    pcs REAL,
    item_tag TEXT
);`

	createRejectionReceived = `CREATE TABLE IF NOT EXISTS rejection_received (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    client_name TEXT,
    item TEXT,
    quantity REAL,
    unit TEXT,
    pcs REAL,
    sample_quantity REAL,
    reason TEXT,
    date TEXT,
    time TEXT,
    ctrl_date TEXT,
    po_number TEXT,
    item_tag TEXT
);`

	createVendorRejections = `CREATE TABLE IF NOT EXISTS vendor_rejections (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    item TEXT,
    vendor TEXT,
    po_number TEXT,
    quantity_sent REAL,
    unit TEXT,
    pcs REAL,
    date TEXT,
    time TEXT
);`

	createDumpSales = `CREATE TABLE IF NOT EXISTS dump_sales (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    item TEXT,
    quantity REAL,
    unit TEXT,
    pcs REAL,
    date TEXT,
    time TEXT,
    po_number TEXT,
    item_tag TEXT
);`

	createMandiResales = `CREATE TABLE IF NOT EXISTS mandi_resales (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    item TEXT,
    quantity REAL,
    unit TEXT,
    pcs REAL,
    date TEXT,
    time TEXT,
    item_tag TEXT
);`
)

var createStatements = []string{
	createItems,
	createProductManagers,
	createPurchaseVendors,
	createBGradeClients,
	createVendors,
	createGeneratedSOs,
	createSOItems,
	createGeneratedPOs,
	createLMDData,
	createFMDData,
	createPaymentHistory,
	createPurchases,
	createStockUpdates,
	createBGradeSales,
	createSales,
	createSalesWaitlist,
	createRejectionReceived,
	createVendorRejections,
	createDumpSales,
	createMandiResales,
}

// Init creates all tables if absent and inserts the seed master lists.
// Safe to run on every startup.
func Init(store *sql.DB) error {
	for _, stmt := range createStatements {
		if _, err := store.Exec(stmt); err != nil {
			return fmt.Errorf("create table: %w", err)
		}
	}
	if err := seedMasterLists(store); err != nil {
		return fmt.Errorf("seed master lists: %w", err)
	}
	return nil
}
