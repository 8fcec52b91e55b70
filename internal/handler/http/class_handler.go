package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mazboy1/frasa-backend/internal/handler/http/dto"
	usecasecontract "github.com/mazboy1/frasa-backend/internal/usecase/contract"
)

type ClassHandler struct {
	classUsecase usecasecontract.IClassUseCase
}

func NewClassHandler(classUsecase usecasecontract.IClassUseCase) *ClassHandler {
	return &ClassHandler{classUsecase: classUsecase}
}

// CreateClass submits a new course; it always enters the pending state.
func (h *ClassHandler) CreateClass(c *gin.Context) {
	var req dto.NewClassRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	class, err := h.classUsecase.Submit(c.Request.Context(), usecasecontract.ClassSubmission{
		Name:            req.Name,
		Image:           req.Image,
		InstructorName:  req.InstructorName,
		InstructorEmail: req.InstructorEmail,
		AvailableSeats:  string(req.AvailableSeats),
		Price:           string(req.Price),
		Description:     req.Description,
		Category:        req.Category,
		Prerequisites:   req.Prerequisites,
		Objectives:      req.Objectives,
		TargetAudience:  req.TargetAudience,
		Modules:         req.Modules,
		TotalDuration:   req.TotalDuration,
		TotalLessons:    req.TotalLessons,
		Level:           req.Level,
	})
	if err != nil {
		DomainError(c, err)
		return
	}
	SuccessHandler(c, http.StatusCreated, class)
}

// ApprovedCatalog is the public listing of approved classes.
func (h *ClassHandler) ApprovedCatalog(c *gin.Context) {
	classes, err := h.classUsecase.ApprovedCatalog(c.Request.Context())
	if err != nil {
		DomainError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, classes)
}

// ManageClasses lists every class for the admin manage view.
func (h *ClassHandler) ManageClasses(c *gin.Context) {
	classes, err := h.classUsecase.AllClasses(c.Request.Context())
	if err != nil {
		DomainError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, classes)
}

// GetClass returns a single class by id.
func (h *ClassHandler) GetClass(c *gin.Context) {
	class, err := h.classUsecase.GetClass(c.Request.Context(), c.Param("id"))
	if err != nil {
		DomainError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, class)
}

// ChangeStatus moves a class between pending, approved and rejected.
func (h *ClassHandler) ChangeStatus(c *gin.Context) {
	var req dto.ChangeStatusRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	if err := h.classUsecase.ChangeStatus(c.Request.Context(), c.Param("id"), req.Status, req.Reason); err != nil {
		DomainError(c, err)
		return
	}
	MessageHandler(c, http.StatusOK, "Class status updated to "+req.Status)
}

// UpdateClass overwrites the editable fields and forces the class back to
// pending.
func (h *ClassHandler) UpdateClass(c *gin.Context) {
	var req dto.UpdateClassRequest
	if err := BindAndValidate(c, &req); err != nil {
		return
	}

	err := h.classUsecase.Edit(c.Request.Context(), c.Param("id"), usecasecontract.ClassEdit{
		Name:           req.Name,
		Image:          req.Image,
		Description:    req.Description,
		Price:          string(req.Price),
		AvailableSeats: string(req.AvailableSeats),
		Category:       req.Category,
		Prerequisites:  req.Prerequisites,
		Objectives:     req.Objectives,
		TargetAudience: req.TargetAudience,
		Modules:        req.Modules,
		TotalDuration:  req.TotalDuration,
		TotalLessons:   req.TotalLessons,
		Level:          req.Level,
	})
	if err != nil {
		DomainError(c, err)
		return
	}
	MessageHandler(c, http.StatusOK, "Class updated successfully")
}

// MyClasses lists every class belonging to the requesting instructor.
func (h *ClassHandler) MyClasses(c *gin.Context) {
	h.instructorClasses(c, "")
}

// ApprovedClasses lists the instructor's approved classes.
func (h *ClassHandler) ApprovedClasses(c *gin.Context) {
	h.instructorClasses(c, "approved")
}

// PendingClasses lists the instructor's classes awaiting review.
func (h *ClassHandler) PendingClasses(c *gin.Context) {
	h.instructorClasses(c, "pending")
}

// RejectedClasses lists the instructor's rejected classes.
func (h *ClassHandler) RejectedClasses(c *gin.Context) {
	h.instructorClasses(c, "rejected")
}

func (h *ClassHandler) instructorClasses(c *gin.Context, status string) {
	email := c.Query("email")
	classes, err := h.classUsecase.InstructorClasses(c.Request.Context(), email, status)
	if err != nil {
		DomainError(c, err)
		return
	}
	SuccessHandler(c, http.StatusOK, dto.ClassListResponse{
		Classes:    classes,
		Total:      len(classes),
		Instructor: email,
	})
}
