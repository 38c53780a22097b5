package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"CareDesk360/models"
)

func TestShareSplit(t *testing.T) {
	item := models.InvoiceItem{Rate: 500, Quantity: 2, Discount: 100}

	item.ShareType = models.ShareDoctor
	d, h := ShareSplit(item)
	assert.Equal(t, 900.0, d)
	assert.Equal(t, 0.0, h)

	item.ShareType = models.ShareHospital
	d, h = ShareSplit(item)
	assert.Equal(t, 0.0, d)
	assert.Equal(t, 900.0, h)

	item.ShareType = models.ShareBoth
	d, h = ShareSplit(item)
	assert.Equal(t, 450.0, d)
	assert.Equal(t, 450.0, h)

	// unset policy defaults to the even split
	item.ShareType = ""
	d, h = ShareSplit(item)
	assert.Equal(t, 450.0, d)
	assert.Equal(t, 450.0, h)
}

func TestComputeInvoiceTotalsDue(t *testing.T) {
	inv := models.Invoice{
		Items: []models.InvoiceItem{
			{Rate: 1000, Quantity: 1, Discount: 100, Tax: 0},
		},
		Paid: 500,
	}
	ComputeInvoiceTotals(&inv)
	assert.Equal(t, 1000.0, inv.SubTotal)
	assert.Equal(t, 100.0, inv.Discount)
	assert.Equal(t, 900.0, inv.GrandTotal)
	assert.Equal(t, 400.0, inv.Due)
	assert.Equal(t, 0.0, inv.Advance)
}

func TestComputeInvoiceTotalsPaidExactly(t *testing.T) {
	inv := models.Invoice{
		Items: []models.InvoiceItem{{Rate: 1000, Quantity: 1, Discount: 100}},
		Paid:  900,
	}
	ComputeInvoiceTotals(&inv)
	assert.Equal(t, 900.0, inv.GrandTotal)
	assert.Equal(t, 0.0, inv.Due)
	assert.Equal(t, 0.0, inv.Advance)
	assert.Equal(t, models.InvoicePaid, InvoiceStatus(inv))
}

func TestComputeInvoiceTotalsAdvance(t *testing.T) {
	inv := models.Invoice{
		Items: []models.InvoiceItem{{Rate: 300, Quantity: 2, Tax: 40}},
		Paid:  1000,
	}
	ComputeInvoiceTotals(&inv)
	assert.Equal(t, 640.0, inv.GrandTotal)
	assert.Equal(t, 0.0, inv.Due)
	assert.Equal(t, 360.0, inv.Advance)
	assert.Equal(t, models.InvoiceCredit, InvoiceStatus(inv))
}

func TestInvoiceStatusPending(t *testing.T) {
	inv := models.Invoice{Due: 10}
	assert.Equal(t, models.InvoicePending, InvoiceStatus(inv))
}

func TestComputeInvoiceTotalsMixedShares(t *testing.T) {
	inv := models.Invoice{
		Items: []models.InvoiceItem{
			{Rate: 200, Quantity: 1, ShareType: models.ShareDoctor},
			{Rate: 400, Quantity: 1, Discount: 100, ShareType: models.ShareHospital},
			{Rate: 100, Quantity: 2, ShareType: models.ShareBoth},
		},
	}
	ComputeInvoiceTotals(&inv)
	assert.Equal(t, 300.0, inv.DoctorShare)   // 200 + 100
	assert.Equal(t, 400.0, inv.HospitalShare) // 300 + 100
}

// The summary sums the stored per-invoice fields verbatim, so it can never
// disagree with what the invoices individually report.
func TestSummarizeInvoices(t *testing.T) {
	invoices := []models.Invoice{
		{SubTotal: 100, GrandTotal: 100, Paid: 100, Due: 0},
		{SubTotal: 250, GrandTotal: 240, Paid: 100, Due: 140, Discount: 10},
		{SubTotal: 50, GrandTotal: 50, Paid: 80, Advance: 30},
	}
	s := SummarizeInvoices(invoices)
	assert.Equal(t, 400.0, s.SubTotal)
	assert.Equal(t, 390.0, s.GrandTotal)
	assert.Equal(t, 280.0, s.Paid)
	assert.Equal(t, 140.0, s.Due)
	assert.Equal(t, 30.0, s.Advance)
	assert.Equal(t, 10.0, s.Discount)
}

func TestSummarizeInvoicesEmpty(t *testing.T) {
	assert.Equal(t, models.InvoiceSummary{}, SummarizeInvoices(nil))
}

func TestInvoiceFilterNeedsJoin(t *testing.T) {
	assert.False(t, models.InvoiceFilter{DoctorID: "D0001", Status: models.InvoicePaid}.NeedsJoin())
	assert.False(t, models.InvoiceFilter{InvoiceNumber: "INV", HasMinTotal: true, MinTotal: 100}.NeedsJoin())
	assert.True(t, models.InvoiceFilter{PatientName: "ali"}.NeedsJoin())
	assert.True(t, models.InvoiceFilter{MRNumber: "MR-1"}.NeedsJoin())
	assert.True(t, models.InvoiceFilter{Search: "x"}.NeedsJoin())
	assert.True(t, models.InvoiceFilter{DepartmentID: "DEP01"}.NeedsJoin())
}

func TestDirectInvoiceFilterStatus(t *testing.T) {
	filter := directInvoiceFilter(models.InvoiceFilter{Status: models.InvoicePaid})
	assert.Equal(t, float64(0), filter["due"])
	assert.Equal(t, float64(0), filter["advance"])

	filter = directInvoiceFilter(models.InvoiceFilter{Status: models.InvoicePending})
	assert.Contains(t, filter, "due")

	filter = directInvoiceFilter(models.InvoiceFilter{Status: models.InvoiceCredit})
	assert.Contains(t, filter, "advance")
}
