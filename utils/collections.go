package utils

// Mongo collection names
const (
	PatientCollection          = "PATIENT"
	DoctorCollection           = "DOCTOR"
	DoctorScheduleCollection   = "DOCTOR_SCHEDULE"
	DoctorTimeSlotCollection   = "DOCTOR_TIMESLOTS"
	AppointmentCollection      = "APPOINTMENT"
	TokenCollection            = "TOKEN"
	LeaveCollection            = "DOCTOR_LEAVES"
	InvoiceCollection          = "INVOICE"
	ProcedureCollection        = "PROCEDURE"
	DepartmentCollection       = "DEPARTMENT"
	WardCollection             = "WARD"
	RoomCollection             = "ROOM"
	BedDetailCollection        = "BED_DETAIL"
	RoomDetailCollection       = "ROOM_DETAIL"
	AdmissionCollection        = "ADMIT_PATIENT"
	DischargeCollection        = "DISCHARGE_PATIENT"
	InDoorDutyCollection       = "INDOOR_DUTY"
	BirthCertCollection        = "BIRTH_CERTIFICATE"
	DeathCertCollection        = "DEATH_CERTIFICATE"
	MedicalCertCollection      = "MEDICAL_CERTIFICATE"
	ExpenseCollection          = "EXPENSE"
	ExpenseCategoryCollection  = "EXPENSE_CATEGORY"
	UserCollection             = "USER"
	PharmacyItemCollection     = "PHARMACY_ITEM"
	PharmacyCategoryCollection = "PHARMACY_CATEGORY"
	ManufacturerCollection     = "PHARMACY_MANUFACTURER"
	RackCollection             = "PHARMACY_RACK"
	SupplierCollection         = "PHARMACY_SUPPLIER"
	PosSaleCollection          = "PHARMACY_POS"
	PurchaseOrderCollection    = "PHARMACY_PURCHASE_ORDER"
	MissedSaleCollection       = "PHARMACY_MISSED_SALE"
	StockAdjustmentCollection  = "PHARMACY_STOCK_ADJUSTMENT"
	StoreClosingCollection     = "STORE_CLOSING"
)

// Redis cache key prefixes
const (
	PatientKey        = "PATIENT_"
	DoctorScheduleKey = "DOCTOR_SCHEDULE_"
	AppointmentKey    = "APPOINTMENT_"
	TokenKey          = "TOKEN_"
	InvoiceKey        = "INVOICE_"
	PharmacyItemKey   = "PHARMACY_ITEM_"
	UserKey           = "USER_"
)

// DefaultPageLimit applies to every paginated list endpoint.
const DefaultPageLimit int64 = 20
