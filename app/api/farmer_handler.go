package api

import (
	"github.com/gin-gonic/gin"

	"PacsApp/app/services"
)

func (s *Server) registerFarmer(c *gin.Context) {
	var input services.RegisterFarmerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBadRequest(c, "invalid request body: "+err.Error())
		return
	}

	farmer, err := s.farmers.Register(input)
	if err != nil {
		respondError(c, err)
		return
	}
	respondCreated(c, farmer)
}

func (s *Server) getFarmer(c *gin.Context) {
	farmer, err := s.farmers.GetByAadhaar(c.Param("aadhaar"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, farmer)
}

func (s *Server) farmerOrders(c *gin.Context) {
	orders, err := s.orders.HistoryByAadhaar(c.Param("aadhaar"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, orders)
}

func (s *Server) listFarmers(c *gin.Context) {
	farmers, err := s.farmers.List()
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, farmers)
}
