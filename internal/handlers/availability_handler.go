package handlers

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httpresp"
	ucAppointment "github.com/BruksfildServices01/clinic-scheduler/internal/usecase/appointment"
)

// AvailabilityHandler serves doctor listings, badges, slot grids and the
// comparison view. Nothing here is consulted when a booking is written.
type AvailabilityHandler struct {
	avail    *ucAppointment.GetAvailability
	compare  *ucAppointment.CompareDoctors
	calendar *ucAppointment.GetCalendar
	list     *ucAppointment.ListAppointments
}

func NewAvailabilityHandler(
	avail *ucAppointment.GetAvailability,
	compare *ucAppointment.CompareDoctors,
	calendar *ucAppointment.GetCalendar,
	list *ucAppointment.ListAppointments,
) *AvailabilityHandler {
	return &AvailabilityHandler{
		avail:    avail,
		compare:  compare,
		calendar: calendar,
		list:     list,
	}
}

func (h *AvailabilityHandler) ListDoctors(c *gin.Context) {
	docs, err := h.list.Doctors(c.Request.Context(), strings.TrimSpace(c.Query("poli")))
	if err != nil {
		writeError(c, err)
		return
	}
	httpresp.List(c, docs)
}

func (h *AvailabilityHandler) Status(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	date := c.Query("date")

	status, err := h.avail.Classify(c.Request.Context(), id, date)
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.OK(c, gin.H{
		"doctor_id": id,
		"date":      date,
		"status":    status,
	})
}

// Availability returns the slot grid, or a single slot check when ?time=
// is given.
func (h *AvailabilityHandler) Availability(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if at := c.Query("time"); at != "" {
		check, err := h.avail.CheckSlot(c.Request.Context(), id, c.Query("date"), at)
		if err != nil {
			writeError(c, err)
			return
		}
		httpresp.OK(c, check)
		return
	}

	grid, err := h.avail.Execute(c.Request.Context(), id, c.Query("date"))
	if err != nil {
		writeError(c, err)
		return
	}
	httpresp.OK(c, grid)
}

func (h *AvailabilityHandler) Calendar(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	days, err := h.calendar.Execute(c.Request.Context(), id, c.Query("from"), c.Query("to"))
	if err != nil {
		writeError(c, err)
		return
	}
	httpresp.List(c, days)
}

func (h *AvailabilityHandler) Compare(c *gin.Context) {
	var ids []uint
	for _, part := range strings.Split(c.Query("doctor_ids"), ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseUint(part, 10, 64)
		if err != nil || id == 0 {
			httperr.Validation(c, httperr.ValidationError{Field: "doctor_ids", Reason: "must be a comma separated list of ids"})
			return
		}
		ids = append(ids, uint(id))
	}

	cmp, err := h.compare.Execute(c.Request.Context(), c.Query("date"), ids)
	if err != nil {
		writeError(c, err)
		return
	}
	httpresp.OK(c, cmp)
}
