package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"PacsApp/app/printer"
)

type printReceiptRequest struct {
	Style string `json:"style"`
}

// printReceipt sends the order's receipt to the printer. An unknown or
// omitted style falls back to the default.
func (s *Server) printReceipt(c *gin.Context) {
	id, ok := parseOrderID(c)
	if !ok {
		return
	}

	var req printReceiptRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBadRequest(c, "invalid request body: "+err.Error())
			return
		}
	}

	jobID, err := s.receipts.Print(c.Request.Context(), id, printer.StyleID(req.Style))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, gin.H{"job_id": jobID})
}

// previewReceipt returns the plain-text rendering of the receipt.
func (s *Server) previewReceipt(c *gin.Context) {
	id, ok := parseOrderID(c)
	if !ok {
		return
	}

	text, err := s.receipts.Preview(id, printer.StyleID(c.Query("style")))
	if err != nil {
		respondError(c, err)
		return
	}
	c.String(http.StatusOK, text)
}

func (s *Server) printerStatus(c *gin.Context) {
	respondOK(c, s.receipts.Status(c.Request.Context()))
}

func (s *Server) listStyles(c *gin.Context) {
	respondOK(c, s.receipts.Styles())
}

func (s *Server) printTestPage(c *gin.Context) {
	jobID, err := s.receipts.TestPage(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, gin.H{"job_id": jobID})
}
