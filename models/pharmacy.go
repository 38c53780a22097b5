package models

import "time"

// PharmacyItem is one stocked product. Quantity is only ever changed by
// conditional $inc updates so a sale can never drive it negative.
type PharmacyItem struct {
	Code           string    `json:"code" bson:"code"`
	Name           string    `json:"name" bson:"name"`
	CategoryID     string    `json:"categoryId" bson:"categoryId"`
	ManufacturerID string    `json:"manufacturerId" bson:"manufacturerId"`
	RackID         string    `json:"rackId,omitempty" bson:"rackId,omitempty"`
	SupplierID     string    `json:"supplierId,omitempty" bson:"supplierId,omitempty"`
	Unit           string    `json:"unit" bson:"unit"`
	PurchasePrice  float64   `json:"purchasePrice" bson:"purchasePrice"`
	SalePrice      float64   `json:"salePrice" bson:"salePrice"`
	Quantity       int       `json:"quantity" bson:"quantity"`
	ReorderLevel   int       `json:"reorderLevel" bson:"reorderLevel"`
	ExpiryDate     string    `json:"expiryDate,omitempty" bson:"expiryDate,omitempty"`
	CreatedAt      time.Time `json:"createdAt" bson:"createdAt"`
	CreatedBy      string    `json:"createdBy" bson:"createdBy"`
	UpdatedAt      time.Time `json:"updatedAt" bson:"updatedAt"`
	UpdatedBy      string    `json:"updatedBy" bson:"updatedBy"`
}

type CreatePharmacyItemRequest struct {
	Name           string  `json:"name" binding:"required"`
	CategoryID     string  `json:"categoryId" binding:"required"`
	ManufacturerID string  `json:"manufacturerId"`
	RackID         string  `json:"rackId"`
	SupplierID     string  `json:"supplierId"`
	Unit           string  `json:"unit"`
	PurchasePrice  float64 `json:"purchasePrice"`
	SalePrice      float64 `json:"salePrice"`
	Quantity       int     `json:"quantity"`
	ReorderLevel   int     `json:"reorderLevel"`
	ExpiryDate     string  `json:"expiryDate"`
}

type SaleLine struct {
	ItemID   string  `json:"itemId" bson:"itemId" binding:"required"`
	Quantity int     `json:"quantity" bson:"quantity" binding:"required,gt=0"`
	Rate     float64 `json:"rate" bson:"rate"`
	Discount float64 `json:"discount" bson:"discount"`
}

// PosSale is one counter sale. Each line decrements item stock.
type PosSale struct {
	Code        string     `json:"code" bson:"code"`
	PatientID   string     `json:"patientId,omitempty" bson:"patientId,omitempty"`
	Lines       []SaleLine `json:"lines" bson:"lines"`
	Total       float64    `json:"total" bson:"total"`
	PaymentMode string     `json:"paymentMode" bson:"paymentMode"`
	SaleDate    string     `json:"saleDate" bson:"saleDate"`
	CreatedAt   time.Time  `json:"createdAt" bson:"createdAt"`
	CreatedBy   string     `json:"createdBy" bson:"createdBy"`
}

type CreatePosSaleRequest struct {
	PatientID   string     `json:"patientId"`
	Lines       []SaleLine `json:"lines" binding:"required,min=1"`
	PaymentMode string     `json:"paymentMode"`
	SaleDate    string     `json:"saleDate" binding:"required"`
}

// MissedSale records demand that could not be served from stock.
type MissedSale struct {
	Code      string    `json:"code" bson:"code"`
	ItemID    string    `json:"itemId" bson:"itemId"`
	ItemName  string    `json:"itemName" bson:"itemName"`
	Quantity  int       `json:"quantity" bson:"quantity"`
	Reason    string    `json:"reason" bson:"reason"`
	Date      string    `json:"date" bson:"date"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	CreatedBy string    `json:"createdBy" bson:"createdBy"`
}

type PurchaseOrderLine struct {
	ItemID   string  `json:"itemId" bson:"itemId" binding:"required"`
	Quantity int     `json:"quantity" bson:"quantity" binding:"required,gt=0"`
	Rate     float64 `json:"rate" bson:"rate"`
}

type PurchaseOrder struct {
	Code       string              `json:"code" bson:"code"`
	SupplierID string              `json:"supplierId" bson:"supplierId"`
	Lines      []PurchaseOrderLine `json:"lines" bson:"lines"`
	Total      float64             `json:"total" bson:"total"`
	Status     string              `json:"status" bson:"status"`
	OrderDate  string              `json:"orderDate" bson:"orderDate"`
	CreatedAt  time.Time           `json:"createdAt" bson:"createdAt"`
	CreatedBy  string              `json:"createdBy" bson:"createdBy"`
	UpdatedAt  time.Time           `json:"updatedAt" bson:"updatedAt"`
	UpdatedBy  string              `json:"updatedBy" bson:"updatedBy"`
}

type CreatePurchaseOrderRequest struct {
	SupplierID string              `json:"supplierId" binding:"required"`
	Lines      []PurchaseOrderLine `json:"lines" binding:"required,min=1"`
	OrderDate  string              `json:"orderDate" binding:"required"`
}

// StoreClosing is the end-of-day cash record, one per calendar date.
type StoreClosing struct {
	Code        string    `json:"code" bson:"code"`
	ClosingDate string    `json:"closingDate" bson:"closingDate"`
	TotalSales  float64   `json:"totalSales" bson:"totalSales"`
	SaleCount   int       `json:"saleCount" bson:"saleCount"`
	CashCounted float64   `json:"cashCounted" bson:"cashCounted"`
	Difference  float64   `json:"difference" bson:"difference"`
	Notes       string    `json:"notes,omitempty" bson:"notes,omitempty"`
	CreatedAt   time.Time `json:"createdAt" bson:"createdAt"`
	CreatedBy   string    `json:"createdBy" bson:"createdBy"`
}

type StoreClosingRequest struct {
	ClosingDate string  `json:"closingDate" binding:"required"`
	CashCounted float64 `json:"cashCounted"`
	Notes       string  `json:"notes"`
}

// StockAdjustment is a manual stock correction, positive or negative.
type StockAdjustment struct {
	Code      string    `json:"code" bson:"code"`
	ItemID    string    `json:"itemId" bson:"itemId"`
	Delta     int       `json:"delta" bson:"delta"`
	Reason    string    `json:"reason" bson:"reason"`
	Date      string    `json:"date" bson:"date"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	CreatedBy string    `json:"createdBy" bson:"createdBy"`
}

type CreateStockAdjustmentRequest struct {
	ItemID string `json:"itemId" binding:"required"`
	Delta  int    `json:"delta" binding:"required"`
	Reason string `json:"reason" binding:"required"`
	Date   string `json:"date" binding:"required"`
}
