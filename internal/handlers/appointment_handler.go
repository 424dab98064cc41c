package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/clinic-scheduler/internal/dto"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/clinic-scheduler/internal/middleware"
	ucAppointment "github.com/BruksfildServices01/clinic-scheduler/internal/usecase/appointment"
	"github.com/BruksfildServices01/clinic-scheduler/internal/validators"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	create *ucAppointment.CreateAppointment
	update *ucAppointment.UpdateAppointment
	delete *ucAppointment.DeleteAppointment
	status *ucAppointment.ChangeStatus
	list   *ucAppointment.ListAppointments
}

func NewAppointmentHandler(
	create *ucAppointment.CreateAppointment,
	update *ucAppointment.UpdateAppointment,
	del *ucAppointment.DeleteAppointment,
	status *ucAppointment.ChangeStatus,
	list *ucAppointment.ListAppointments,
) *AppointmentHandler {
	return &AppointmentHandler{
		create: create,
		update: update,
		delete: del,
		status: status,
		list:   list,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	PatientNoRM     string `json:"patient_no_rm" binding:"required"`
	DoctorID        uint   `json:"doctor_id" binding:"required"`
	AppointmentDate string `json:"appointment_date" binding:"required,isodate"`
	AppointmentTime string `json:"appointment_time" binding:"required,clock"`
	Type            string `json:"type"`
	Poli            string `json:"poli"`
	Notes           string `json:"notes"`
	Complaint       string `json:"complaint"`
}

type UpdateAppointmentRequest struct {
	PatientNoRM     *string `json:"patient_no_rm"`
	DoctorID        *uint   `json:"doctor_id" binding:"omitempty,min=1"`
	AppointmentDate *string `json:"appointment_date" binding:"omitempty,isodate"`
	AppointmentTime *string `json:"appointment_time" binding:"omitempty,clock"`
	Status          *string `json:"status"`
	Type            *string `json:"type"`
	Poli            *string `json:"poli"`
	Notes           *string `json:"notes"`
	Complaint       *string `json:"complaint"`
}

type ChangeStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, validators.FromBinding(err))
		return
	}

	ap, err := h.create.Execute(c.Request.Context(), ucAppointment.CreateAppointmentInput{
		Actor:       middleware.Actor(c),
		PatientNoRM: req.PatientNoRM,
		DoctorID:    req.DoctorID,
		Date:        req.AppointmentDate,
		Time:        req.AppointmentTime,
		Type:        req.Type,
		Poli:        req.Poli,
		Notes:       req.Notes,
		Complaint:   req.Complaint,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.FromAppointment(ap))
}

// ======================================================
// UPDATE
// ======================================================

func (h *AppointmentHandler) Update(c *gin.Context) {
	var req UpdateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, validators.FromBinding(err))
		return
	}

	ap, err := h.update.Execute(c.Request.Context(), c.Param("code"), ucAppointment.UpdateAppointmentInput{
		Actor:       middleware.Actor(c),
		DoctorID:    req.DoctorID,
		Date:        req.AppointmentDate,
		Time:        req.AppointmentTime,
		PatientNoRM: req.PatientNoRM,
		Status:      req.Status,
		Type:        req.Type,
		Poli:        req.Poli,
		Notes:       req.Notes,
		Complaint:   req.Complaint,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.OK(c, dto.FromAppointment(ap))
}

// ======================================================
// STATUS
// ======================================================

func (h *AppointmentHandler) ChangeStatus(c *gin.Context) {
	var req ChangeStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, validators.FromBinding(err))
		return
	}

	ap, err := h.status.Execute(c.Request.Context(), middleware.Actor(c), c.Param("code"), req.Status)
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.OK(c, dto.FromAppointment(ap))
}

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	ap, err := h.status.Cancel(c.Request.Context(), middleware.Actor(c), c.Param("code"))
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.OK(c, dto.FromAppointment(ap))
}

// ======================================================
// DELETE
// ======================================================

func (h *AppointmentHandler) Delete(c *gin.Context) {
	if err := h.delete.Execute(c.Request.Context(), middleware.Actor(c), c.Param("code")); err != nil {
		writeError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// ======================================================
// READ
// ======================================================

func (h *AppointmentHandler) Get(c *gin.Context) {
	ap, err := h.list.Get(c.Request.Context(), c.Param("code"))
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.OK(c, ap)
}

func (h *AppointmentHandler) ListByDate(c *gin.Context) {
	doctorID, ok := queryID(c, "doctor_id")
	if !ok {
		return
	}

	aps, err := h.list.ByDate(c.Request.Context(), doctorID, c.Query("date"))
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.List(c, aps)
}

func (h *AppointmentHandler) ListByMonth(c *gin.Context) {
	doctorID, ok := queryID(c, "doctor_id")
	if !ok {
		return
	}
	year, ok := queryInt(c, "year")
	if !ok {
		return
	}
	month, ok := queryInt(c, "month")
	if !ok {
		return
	}

	aps, err := h.list.ByMonth(c.Request.Context(), doctorID, year, month)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"year":         year,
		"month":        month,
		"appointments": aps,
	})
}
