package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/venue-scheduler/internal/httperr"
	"github.com/BruksfildServices01/venue-scheduler/internal/httpresp"
	ucCalendar "github.com/BruksfildServices01/venue-scheduler/internal/usecase/calendar"
)

// ======================================================
// HANDLER
// ======================================================

type EventHandler struct {
	createUC      *ucCalendar.CreateEvent
	confirmUC     *ucCalendar.ConfirmEvent
	completeUC    *ucCalendar.CompleteEvent
	cancelUC      *ucCalendar.CancelEvent
	listByDateUC  *ucCalendar.ListEventsByDate
	listByMonthUC *ucCalendar.ListEventsByMonth
	loc           *time.Location
}

func NewEventHandler(
	createUC *ucCalendar.CreateEvent,
	confirmUC *ucCalendar.ConfirmEvent,
	completeUC *ucCalendar.CompleteEvent,
	cancelUC *ucCalendar.CancelEvent,
	listByDateUC *ucCalendar.ListEventsByDate,
	listByMonthUC *ucCalendar.ListEventsByMonth,
	loc *time.Location,
) *EventHandler {
	return &EventHandler{
		createUC:      createUC,
		confirmUC:     confirmUC,
		completeUC:    completeUC,
		cancelUC:      cancelUC,
		listByDateUC:  listByDateUC,
		listByMonthUC: listByMonthUC,
		loc:           loc,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateEventRequest struct {
	Title       string `json:"title"`
	Date        string `json:"date"`
	Start       string `json:"start"`
	End         string `json:"end"`
	Category    string `json:"category"`
	ClientID    *uint  `json:"client_id"`
	Description string `json:"description"`
}

// ======================================================
// CREATE (evento avulso)
// ======================================================

func (h *EventHandler) Create(c *gin.Context) {
	var req CreateEventRequest
	if !bindJSON(c, &req) {
		return
	}

	ev, err := h.createUC.Execute(c.Request.Context(), ucCalendar.CreateEventInput{
		Title:       req.Title,
		Date:        req.Date,
		Start:       req.Start,
		End:         req.End,
		Category:    req.Category,
		ClientID:    req.ClientID,
		Description: req.Description,
	})
	if err != nil {
		httperr.FromError(c, err, "failed_to_create_event", "Erro ao criar evento.")
		return
	}

	httpresp.Created(c, ev)
}

// ======================================================
// LIST
// ======================================================

func (h *EventHandler) ListByDate(c *gin.Context) {
	date, ok := dateQuery(c, h.loc)
	if !ok {
		return
	}

	events, err := h.listByDateUC.Execute(c.Request.Context(), date)
	if err != nil {
		httperr.FromError(c, err, "failed_to_list_events", "Erro ao listar eventos.")
		return
	}

	httpresp.List(c, events)
}

func (h *EventHandler) ListByMonth(c *gin.Context) {
	now := time.Now().In(h.loc)

	year, ok := yearQuery(c, h.loc)
	if !ok {
		return
	}

	month := int(now.Month())
	if raw := c.Query("month"); raw != "" {
		m, err := strconv.Atoi(raw)
		if err != nil || m < 1 || m > 12 {
			httperr.FromError(c, httperr.ErrBusiness("invalid_date"), "", "")
			return
		}
		month = m
	}

	events, err := h.listByMonthUC.Execute(c.Request.Context(), year, month)
	if err != nil {
		httperr.FromError(c, err, "failed_to_list_events", "Erro ao listar eventos.")
		return
	}

	httpresp.List(c, events)
}

// ======================================================
// TRANSIÇÕES
// ======================================================

func (h *EventHandler) Confirm(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	res, err := h.confirmUC.Execute(c.Request.Context(), id)
	if err != nil {
		httperr.FromError(c, err, "failed_to_confirm_event", "Erro ao confirmar evento.")
		return
	}

	httpresp.OK(c, res)
}

func (h *EventHandler) Complete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	ev, err := h.completeUC.Execute(c.Request.Context(), id)
	if err != nil {
		httperr.FromError(c, err, "failed_to_complete_event", "Erro ao concluir evento.")
		return
	}

	httpresp.OK(c, ev)
}

func (h *EventHandler) Cancel(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	ev, err := h.cancelUC.Execute(c.Request.Context(), id)
	if err != nil {
		httperr.FromError(c, err, "failed_to_cancel_event", "Erro ao cancelar evento.")
		return
	}

	httpresp.OK(c, ev)
}
