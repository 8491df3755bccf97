package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nasir9967/skillbazaar/internal/service"
)

type BookingHandler struct {
	svc *service.BookingSvc
}

func NewBookingHandler(svc *service.BookingSvc) *BookingHandler {
	return &BookingHandler{svc: svc}
}

type bookingBody struct {
	ServiceID string `json:"serviceId"`
	Details   struct {
		Date         string `json:"date"`
		Time         string `json:"time"`
		Address      string `json:"address"`
		Phone        string `json:"phone"`
		Requirements string `json:"requirements"`
	} `json:"bookingData"`
}

func (h *BookingHandler) bookingInput(c *gin.Context, body bookingBody) service.BookingInput {
	return service.BookingInput{
		SkillID:        body.ServiceID,
		Date:           body.Details.Date,
		Time:           body.Details.Time,
		Address:        body.Details.Address,
		Phone:          body.Details.Phone,
		Requirements:   body.Details.Requirements,
		IdempotencyKey: c.GetHeader("Idempotency-Key"),
	}
}

// POST /bookings — cash-on-delivery checkout.
func (h *BookingHandler) Create(c *gin.Context) {
	var body bookingBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	b, err := h.svc.CreateCOD(c, subject(c), h.bookingInput(c, body))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"success":   true,
		"message":   "booking created successfully",
		"bookingId": b.ID,
	})
}

// GET /bookings?type=customer|provider
func (h *BookingHandler) List(c *gin.Context) {
	perspective := c.DefaultQuery("type", "customer")
	views, err := h.svc.List(c, subject(c), perspective)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, views)
}

// POST /create-order — online checkout: gateway order + pending booking.
func (h *BookingHandler) CreateOrder(c *gin.Context) {
	var body bookingBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	handle, err := h.svc.CreateOnline(c, subject(c), h.bookingInput(c, body))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, handle)
}

// POST /verify-payment — gateway callback relayed by the client.
func (h *BookingHandler) VerifyPayment(c *gin.Context) {
	var body struct {
		OrderID   string `json:"razorpay_order_id"`
		PaymentID string `json:"razorpay_payment_id"`
		Signature string `json:"razorpay_signature"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	b, err := h.svc.VerifyPayment(c, subject(c), body.OrderID, body.PaymentID, body.Signature)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":   true,
		"message":   "payment verified and booking confirmed",
		"bookingId": b.ID,
	})
}

// POST /bookings/:id/status — confirm / start / complete / cancel.
func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	var body struct {
		Action string `json:"action"`
		Reason string `json:"reason"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	b, err := h.svc.UpdateStatus(c, subject(c), c.Param("id"), body.Action, body.Reason)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "status": b.Status})
}

// POST /bookings/:id/review
func (h *BookingHandler) Review(c *gin.Context) {
	var body struct {
		Rating int    `json:"rating"`
		Review string `json:"review"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	b, err := h.svc.Review(c, subject(c), c.Param("id"), body.Rating, body.Review)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "bookingId": b.ID})
}
