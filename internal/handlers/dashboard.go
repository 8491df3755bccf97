package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nasir9967/skillbazaar/internal/domain"
	"github.com/nasir9967/skillbazaar/internal/service"
)

type DashboardHandler struct {
	svc *service.DashboardSvc
}

func NewDashboardHandler(svc *service.DashboardSvc) *DashboardHandler {
	return &DashboardHandler{svc: svc}
}

// GET /dashboard — shape depends on the caller's role.
func (h *DashboardHandler) Get(c *gin.Context) {
	v, _ := c.Get("role")
	role, _ := v.(string)
	if role == string(domain.RoleBusiness) {
		out, err := h.svc.ForBusiness(c, subject(c))
		if err != nil {
			fail(c, err)
			return
		}
		c.JSON(http.StatusOK, out)
		return
	}
	out, err := h.svc.ForCustomer(c)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}
