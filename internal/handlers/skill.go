package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nasir9967/skillbazaar/internal/service"
)

type SkillHandler struct {
	svc *service.SkillSvc
}

func NewSkillHandler(svc *service.SkillSvc) *SkillHandler {
	return &SkillHandler{svc: svc}
}

type skillBody struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Price       int64    `json:"price"`
	Category    string   `json:"category"`
	Location    string   `json:"location"`
	Tags        []string `json:"tags"`
	Active      *bool    `json:"active"`
}

func (b skillBody) input() service.SkillInput {
	return service.SkillInput{
		Title:       b.Title,
		Description: b.Description,
		Price:       b.Price,
		Category:    b.Category,
		Location:    b.Location,
		Tags:        b.Tags,
		Active:      b.Active,
	}
}

// GET /skills — public, newest first, capped.
func (h *SkillHandler) List(c *gin.Context) {
	skills, err := h.svc.Latest(c, 50)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, skills)
}

// POST /skills — business only.
func (h *SkillHandler) Create(c *gin.Context) {
	var body skillBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	sk, err := h.svc.Create(c, subject(c), body.input())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "skill": sk})
}

// PUT /skills/:id — owner only.
func (h *SkillHandler) Update(c *gin.Context) {
	var body skillBody
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	sk, err := h.svc.Update(c, c.Param("id"), subject(c), body.input())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "skill": sk})
}

// DELETE /skills/:id — owner only.
func (h *SkillHandler) Delete(c *gin.Context) {
	if err := h.svc.Delete(c, c.Param("id"), subject(c)); err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// GET /my-services — the caller's own listings, newest first.
func (h *SkillHandler) Mine(c *gin.Context) {
	services, err := h.svc.Mine(c, subject(c))
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "services": services, "total": len(services)})
}
