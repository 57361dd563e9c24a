package models

import (
	"time"

	"github.com/google/uuid"
)

// ReportExport records an admin exporting an analytics report
type ReportExport struct {
	ID         uuid.UUID         `json:"id"`
	AdminID    string            `json:"admin_id"`
	AdminEmail string            `json:"admin_email"`
	Report     string            `json:"report"` // summary, daily, categories, products, inventory, customers
	Format     string            `json:"format"` // csv, json, pdf
	Filters    map[string]string `json:"filters"`
	RowCount   int               `json:"row_count"`
	IPAddress  string            `json:"ip_address"`
	CreatedAt  time.Time         `json:"created_at"`
}

const (
	ReportSummary    = "summary"
	ReportDaily      = "daily"
	ReportCategories = "categories"
	ReportProducts   = "products"
	ReportInventory  = "inventory"
	ReportCustomers  = "customers"

	FormatCSV  = "csv"
	FormatJSON = "json"
	FormatPDF  = "pdf"
)
