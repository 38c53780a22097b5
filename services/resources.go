package services

import "CareDesk360/utils"

// Simple CRUD resources served by the shared helpers in crud.go.
var (
	// Doctor registry backing the invoice joins and the doctorId
	// references on schedules, appointments and tokens.
	DoctorResource = Resource{
		Collection:   utils.DoctorCollection,
		Required:     []string{"name", "departmentId"},
		SearchFields: []string{"name", "specialization"},
	}
	DepartmentResource = Resource{
		Collection:   utils.DepartmentCollection,
		Required:     []string{"name"},
		SearchFields: []string{"name"},
		DuplicateMsg: utils.DUPLICATE_NAME,
	}
	WardResource = Resource{
		Collection:   utils.WardCollection,
		Required:     []string{"name"},
		SearchFields: []string{"name"},
		DuplicateMsg: utils.DUPLICATE_NAME,
	}
	RoomResource = Resource{
		Collection:   utils.RoomCollection,
		Required:     []string{"name"},
		SearchFields: []string{"name"},
		DuplicateMsg: utils.DUPLICATE_NAME,
	}
	ProcedureResource = Resource{
		Collection:   utils.ProcedureCollection,
		Required:     []string{"name", "rate"},
		SearchFields: []string{"name"},
		DuplicateMsg: utils.DUPLICATE_NAME,
	}
	ExpenseCategoryResource = Resource{
		Collection:   utils.ExpenseCategoryCollection,
		Required:     []string{"name"},
		SearchFields: []string{"name"},
		DuplicateMsg: utils.DUPLICATE_NAME,
	}
	BirthCertificateResource = Resource{
		Collection:   utils.BirthCertCollection,
		Required:     []string{"patientId", "childName", "dateOfBirth"},
		SearchFields: []string{"childName"},
	}
	DeathCertificateResource = Resource{
		Collection:   utils.DeathCertCollection,
		Required:     []string{"patientId", "dateOfDeath", "cause"},
		SearchFields: []string{"cause"},
	}
	MedicalCertificateResource = Resource{
		Collection:   utils.MedicalCertCollection,
		Required:     []string{"patientId", "doctorId", "remarks"},
		SearchFields: []string{"remarks"},
	}
	InDoorDutyResource = Resource{
		Collection:   utils.InDoorDutyCollection,
		Required:     []string{"doctorId", "date", "shift"},
		SearchFields: []string{"shift"},
	}
	PharmacyCategoryResource = Resource{
		Collection:   utils.PharmacyCategoryCollection,
		Required:     []string{"name"},
		SearchFields: []string{"name"},
		DuplicateMsg: utils.DUPLICATE_NAME,
	}
	ManufacturerResource = Resource{
		Collection:   utils.ManufacturerCollection,
		Required:     []string{"name"},
		SearchFields: []string{"name"},
		DuplicateMsg: utils.DUPLICATE_NAME,
	}
	RackResource = Resource{
		Collection:   utils.RackCollection,
		Required:     []string{"name"},
		SearchFields: []string{"name"},
		DuplicateMsg: utils.DUPLICATE_NAME,
	}
	SupplierResource = Resource{
		Collection:   utils.SupplierCollection,
		Required:     []string{"name"},
		SearchFields: []string{"name", "phoneNo"},
		DuplicateMsg: utils.DUPLICATE_NAME,
	}
	// Admission and discharge records are written by the admit/discharge
	// services; these serve the read side.
	AdmissionResource = Resource{
		Collection:   utils.AdmissionCollection,
		SearchFields: []string{"patientId"},
	}
	DischargeResource = Resource{
		Collection:   utils.DischargeCollection,
		SearchFields: []string{"patientId", "admissionId"},
	}
)
