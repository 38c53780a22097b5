package utils

// User facing failure messages
const (
	DOCTOR_IS_ON_LEAVE            = "Doctor is on leave for the selected date"
	SLOT_ALREADY_BOOKED           = "This slot is already booked for the doctor"
	NO_TIME_SLOT_AVAILABLE        = "No time slot available for this date"
	NO_DATES_MATCH_RECURRENCE     = "No dates match the given recurrence"
	ALL_RECURRING_DATES_CONFLICT  = "All dates in the series conflict with leaves or existing appointments"
	INVALID_APPOINTMENT_STATUS    = "Invalid appointment status"
	INVALID_TOKEN_STATUS          = "Invalid token status"
	TOKEN_NUMBER_ALREADY_TAKEN    = "Token number already taken for this doctor and date"
	PATIENT_NOT_FOUND             = "Patient not found"
	DOCTOR_NOT_FOUND              = "Doctor not found"
	DOCTOR_SCHEDULE_NOT_FOUND     = "Doctor schedule not found"
	RECORD_NOT_FOUND              = "Record not found"
	DUPLICATE_PHONE_NUMBER        = "A patient with this phone number already exists"
	DUPLICATE_CNIC                = "A patient with this CNIC already exists"
	DUPLICATE_EMAIL               = "A user with this email already exists"
	DUPLICATE_NAME                = "A record with this name already exists"
	DUPLICATE_BED_NUMBER          = "A bed with this number already exists"
	DUPLICATE_ROOM_NUMBER         = "A room with this number already exists"
	BED_ALREADY_OCCUPIED          = "Bed is already occupied"
	ROOM_ALREADY_OCCUPIED         = "Room is already occupied"
	BED_NOT_OCCUPIED              = "Bed is not currently occupied"
	PATIENT_ALREADY_ADMITTED      = "Patient is already admitted"
	ADMISSION_NOT_FOUND           = "Admission record not found"
	INVALID_ALLOCATION_TYPE       = "Allocation type must be Ward or Room"
	INVALID_DATE_RANGE            = "Start date must not be after end date"
	INSUFFICIENT_STOCK            = "Insufficient stock for the requested quantity"
	INVALID_SHARE_TYPE            = "Share type must be Doctor, Hospital or Hospital & Doctor"
	INVALID_PAGE_NUMBER           = "Page number must be a positive integer"
	MISSING_REQUIRED_FIELDS       = "Missing required fields"
	LEAVE_OVERLAPS_EXISTING       = "Leave overlaps an existing leave for this doctor"
	CATEGORY_HAS_EXPENSES         = "Category still has expenses attached"
	STORE_ALREADY_CLOSED_FOR_DATE = "Store closing already recorded for this date"
)

var userFacing = map[string]bool{
	DOCTOR_IS_ON_LEAVE:            true,
	SLOT_ALREADY_BOOKED:           true,
	NO_TIME_SLOT_AVAILABLE:        true,
	NO_DATES_MATCH_RECURRENCE:     true,
	ALL_RECURRING_DATES_CONFLICT:  true,
	INVALID_APPOINTMENT_STATUS:    true,
	INVALID_TOKEN_STATUS:          true,
	TOKEN_NUMBER_ALREADY_TAKEN:    true,
	PATIENT_NOT_FOUND:             true,
	DOCTOR_NOT_FOUND:              true,
	DOCTOR_SCHEDULE_NOT_FOUND:     true,
	RECORD_NOT_FOUND:              true,
	DUPLICATE_PHONE_NUMBER:        true,
	DUPLICATE_CNIC:                true,
	DUPLICATE_EMAIL:               true,
	DUPLICATE_NAME:                true,
	DUPLICATE_BED_NUMBER:          true,
	DUPLICATE_ROOM_NUMBER:         true,
	BED_ALREADY_OCCUPIED:          true,
	ROOM_ALREADY_OCCUPIED:         true,
	BED_NOT_OCCUPIED:              true,
	PATIENT_ALREADY_ADMITTED:      true,
	ADMISSION_NOT_FOUND:           true,
	INVALID_ALLOCATION_TYPE:       true,
	INVALID_DATE_RANGE:            true,
	INSUFFICIENT_STOCK:            true,
	INVALID_SHARE_TYPE:            true,
	INVALID_PAGE_NUMBER:           true,
	MISSING_REQUIRED_FIELDS:       true,
	LEAVE_OVERLAPS_EXISTING:       true,
	CATEGORY_HAS_EXPENSES:         true,
	STORE_ALREADY_CLOSED_FOR_DATE: true,
}

// IsUserFacing reports whether an error message is one of the validation
// failures above. Anything else is treated as a driver error and surfaced
// with a 500.
func IsUserFacing(msg string) bool {
	return userFacing[msg]
}
