package controllers

import (
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"CareDesk360/services"
)

func mountedRoutes(r *gin.Engine) map[string]bool {
	set := make(map[string]bool)
	for _, route := range r.Routes() {
		set[route.Method+" "+route.Path] = true
	}
	return set
}

func TestDoctorRegistryRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterResource(r, "doctor", services.DoctorResource)

	routes := mountedRoutes(r)
	assert.True(t, routes["POST /apis/doctor/create"])
	assert.True(t, routes["GET /apis/doctor/get"])
	assert.True(t, routes["GET /apis/doctor/get/:id"])
	assert.True(t, routes["PUT /apis/doctor/update/:id"])
	assert.True(t, routes["DELETE /apis/doctor/delete/:id"])
}

func TestDischargeRoutesComplete(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	DischargePatient(r)

	routes := mountedRoutes(r)
	assert.True(t, routes["POST /apis/dischargePatient/create"])
	assert.True(t, routes["GET /apis/dischargePatient/get"])
	assert.True(t, routes["GET /apis/dischargePatient/get/:id"])
	assert.True(t, routes["PUT /apis/dischargePatient/update/:id"])
	assert.True(t, routes["DELETE /apis/dischargePatient/delete/:id"])
}
