package routes

import (
	"net/http"

	authorization "github.com/KanapuramVaishnavi/Core/config/authorization"

	"github.com/gin-gonic/gin"

	"CareDesk360/controllers"
	"CareDesk360/middleware"
	"CareDesk360/services"
)

func Routes(r *gin.Engine) {

	//public
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	//privateroutes
	r.Use(middleware.RateLimit())
	r.Use(authorization.JWTAuth())
	controllers.User(r)
	controllers.Patient(r)
	controllers.DoctorSchedule(r)
	controllers.Appointment(r)
	controllers.Token(r)
	controllers.Leave(r)
	controllers.Invoice(r)
	controllers.AdmitPatient(r)
	controllers.DischargePatient(r)
	controllers.BedDetail(r)
	controllers.RoomDetail(r)
	controllers.Expense(r)
	controllers.ExpenseCategory(r)
	controllers.PharmacyItem(r)
	controllers.PosSale(r)
	controllers.PurchaseOrder(r)
	controllers.StockAdjustment(r)
	controllers.MissedSale(r)
	controllers.StoreClosing(r)
	controllers.RegisterResource(r, "doctor", services.DoctorResource)
	controllers.RegisterResource(r, "department", services.DepartmentResource)
	controllers.RegisterResource(r, "ward", services.WardResource)
	controllers.RegisterResource(r, "room", services.RoomResource)
	controllers.RegisterResource(r, "procedure", services.ProcedureResource)
	controllers.RegisterResource(r, "birthCertificate", services.BirthCertificateResource)
	controllers.RegisterResource(r, "deathCertificate", services.DeathCertificateResource)
	controllers.RegisterResource(r, "medicalCertificate", services.MedicalCertificateResource)
	controllers.RegisterResource(r, "inDoorDuty", services.InDoorDutyResource)
	controllers.RegisterResource(r, "pharmacyCategory", services.PharmacyCategoryResource)
	controllers.RegisterResource(r, "manufacturer", services.ManufacturerResource)
	controllers.RegisterResource(r, "rack", services.RackResource)
	controllers.RegisterResource(r, "supplier", services.SupplierResource)
}
