package api

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"PacsApp/app/services"
)

func (s *Server) createOrder(c *gin.Context) {
	var input services.CreateOrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBadRequest(c, "invalid request body: "+err.Error())
		return
	}

	order, err := s.orders.Create(input)
	if err != nil {
		respondError(c, err)
		return
	}
	respondCreated(c, order)
}

func (s *Server) getOrder(c *gin.Context) {
	id, ok := parseOrderID(c)
	if !ok {
		return
	}
	order, err := s.orders.GetWithFarmer(id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, order)
}

// listOrders returns one civil day of orders. The optional date query
// parameter uses YYYY-MM-DD; omitted means today.
func (s *Server) listOrders(c *gin.Context) {
	date, ok := s.parseDateQuery(c)
	if !ok {
		return
	}

	orders, err := s.orders.ListByDate(date)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, orders)
}

func parseOrderID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		respondBadRequest(c, "invalid order id")
		return 0, false
	}
	return uint(id), true
}
