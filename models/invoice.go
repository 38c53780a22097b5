package models

import "time"

// Revenue share policies for an invoice line.
const (
	ShareDoctor   = "Doctor"
	ShareHospital = "Hospital"
	ShareBoth     = "Hospital & Doctor"
)

// Invoice settlement states derived from the stored due/advance fields.
const (
	InvoicePaid    = "Paid"
	InvoicePending = "Pending"
	InvoiceCredit  = "Credit"
)

type InvoiceItem struct {
	ProcedureID string  `json:"procedureId,omitempty" bson:"procedureId,omitempty"`
	Name        string  `json:"name" bson:"name"`
	Rate        float64 `json:"rate" bson:"rate"`
	Quantity    int     `json:"quantity" bson:"quantity"`
	Discount    float64 `json:"discount" bson:"discount"`
	Tax         float64 `json:"tax" bson:"tax"`
	ShareType   string  `json:"shareType" bson:"shareType"`
}

// Payment is one installment against an invoice.
type Payment struct {
	ReceiptID string    `json:"receiptId" bson:"receiptId"`
	Amount    float64   `json:"amount" bson:"amount"`
	Mode      string    `json:"mode" bson:"mode"`
	PaidAt    time.Time `json:"paidAt" bson:"paidAt"`
	TakenBy   string    `json:"takenBy" bson:"takenBy"`
}

// Invoice stores its computed money fields so lists and summaries never
// recompute them.
type Invoice struct {
	Code          string        `json:"code" bson:"code"`
	InvoiceNumber string        `json:"invoiceNumber" bson:"invoiceNumber"`
	PatientID     string        `json:"patientId" bson:"patientId"`
	DoctorID      string        `json:"doctorId,omitempty" bson:"doctorId,omitempty"`
	Items         []InvoiceItem `json:"items" bson:"items"`
	Payments      []Payment     `json:"payments" bson:"payments"`
	PaymentMode   string        `json:"paymentMode,omitempty" bson:"paymentMode,omitempty"`
	SubTotal      float64       `json:"subTotal" bson:"subTotal"`
	Discount      float64       `json:"discount" bson:"discount"`
	Tax           float64       `json:"tax" bson:"tax"`
	GrandTotal    float64       `json:"grandTotal" bson:"grandTotal"`
	Paid          float64       `json:"paid" bson:"paid"`
	Due           float64       `json:"due" bson:"due"`
	Advance       float64       `json:"advance" bson:"advance"`
	DoctorShare   float64       `json:"doctorShare" bson:"doctorShare"`
	HospitalShare float64       `json:"hospitalShare" bson:"hospitalShare"`
	CreatedAt     time.Time     `json:"createdAt" bson:"createdAt"`
	CreatedBy     string        `json:"createdBy" bson:"createdBy"`
	UpdatedAt     time.Time     `json:"updatedAt" bson:"updatedAt"`
	UpdatedBy     string        `json:"updatedBy" bson:"updatedBy"`
}

type CreateInvoiceRequest struct {
	PatientID   string        `json:"patientId" binding:"required"`
	DoctorID    string        `json:"doctorId"`
	Items       []InvoiceItem `json:"items" binding:"required,min=1"`
	PaymentMode string        `json:"paymentMode"`
	Paid        float64       `json:"paid"`
}

type PayInvoiceRequest struct {
	Amount float64 `json:"amount" binding:"required,gt=0"`
	Mode   string  `json:"mode"`
}

// InvoiceFilter collects every list predicate. Predicates on the invoice
// document itself run as a plain filtered query; the cross entity ones
// force the lookup pipeline.
type InvoiceFilter struct {
	DoctorID      string
	PatientID     string
	InvoiceNumber string
	PaymentMode   string
	Status        string
	PatientName   string
	MRNumber      string
	Phone         string
	DoctorName    string
	DepartmentID  string
	Search        string
	From          string
	To            string
	MinTotal      float64
	MaxTotal      float64
	HasMinTotal   bool
	HasMaxTotal   bool
	Page          int64
	Limit         int64
}

// NeedsJoin reports whether any predicate lives on a joined entity.
func (f InvoiceFilter) NeedsJoin() bool {
	return f.PatientName != "" || f.MRNumber != "" || f.Phone != "" ||
		f.DoctorName != "" || f.DepartmentID != "" || f.Search != ""
}

type InvoiceSummary struct {
	SubTotal      float64 `json:"subTotal"`
	Discount      float64 `json:"discount"`
	Tax           float64 `json:"tax"`
	GrandTotal    float64 `json:"grandTotal"`
	Paid          float64 `json:"paid"`
	Due           float64 `json:"due"`
	Advance       float64 `json:"advance"`
	DoctorShare   float64 `json:"doctorShare"`
	HospitalShare float64 `json:"hospitalShare"`
}

// An unset share type falls back to the even split.
func ValidShareType(shareType string) bool {
	switch shareType {
	case "", ShareDoctor, ShareHospital, ShareBoth:
		return true
	}
	return false
}
