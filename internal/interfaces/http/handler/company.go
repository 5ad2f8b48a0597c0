package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	boardapp "github.com/talenttrek/backend/internal/application/board"
	"github.com/talenttrek/backend/internal/interfaces/http/middleware"
)

// CompanyHandler handles recruiter company management endpoints
type CompanyHandler struct {
	BaseHandler
	companyService *boardapp.CompanyService
}

// NewCompanyHandler creates a new company handler
func NewCompanyHandler(companyService *boardapp.CompanyService) *CompanyHandler {
	return &CompanyHandler{companyService: companyService}
}

// CreateCompany handles POST /companies
func (h *CompanyHandler) CreateCompany(c *gin.Context) {
	recruiterID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req CreateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	info, err := h.companyService.CreateCompany(c.Request.Context(), boardapp.CreateCompanyInput{
		RecruiterID: recruiterID,
		Name:        req.Name,
		Description: req.Description,
		Location:    req.Location,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Created(c, toCompanyResponse(*info))
}

// ListCompanies handles GET /companies
func (h *CompanyHandler) ListCompanies(c *gin.Context) {
	recruiterID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	infos, err := h.companyService.ListMyCompanies(c.Request.Context(), recruiterID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	out := make([]CompanyResponse, 0, len(infos))
	for _, info := range infos {
		out = append(out, toCompanyResponse(info))
	}
	h.Success(c, out)
}

// GetCompany handles GET /companies/:id
func (h *CompanyHandler) GetCompany(c *gin.Context) {
	recruiterID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	companyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid company ID")
		return
	}

	info, err := h.companyService.GetCompany(c.Request.Context(), companyID, recruiterID)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, toCompanyResponse(*info))
}

// UpdateCompany handles PUT /companies/:id
func (h *CompanyHandler) UpdateCompany(c *gin.Context) {
	recruiterID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	companyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid company ID")
		return
	}

	var req UpdateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	info, err := h.companyService.UpdateCompany(c.Request.Context(), boardapp.UpdateCompanyInput{
		CompanyID:   companyID,
		RecruiterID: recruiterID,
		Name:        req.Name,
		Description: req.Description,
		Location:    req.Location,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}

	h.Success(c, toCompanyResponse(*info))
}

// DeleteCompany handles DELETE /companies/:id
func (h *CompanyHandler) DeleteCompany(c *gin.Context) {
	recruiterID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	companyID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid company ID")
		return
	}

	var req DeleteCompanyRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	if err := h.companyService.DeleteCompany(c.Request.Context(), boardapp.DeleteCompanyInput{
		CompanyID:   companyID,
		RecruiterID: recruiterID,
		Force:       req.Force,
	}); err != nil {
		h.HandleError(c, err)
		return
	}

	h.NoContent(c)
}
