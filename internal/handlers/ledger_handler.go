package handlers

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/venue-scheduler/internal/httperr"
	"github.com/BruksfildServices01/venue-scheduler/internal/httpresp"
	ucLedger "github.com/BruksfildServices01/venue-scheduler/internal/usecase/ledger"
)

// ======================================================
// HANDLER
// ======================================================

type LedgerHandler struct {
	list      *ucLedger.ListMovements
	summarize *ucLedger.Summarize
	export    *ucLedger.ExportCSV
	create    *ucLedger.CreateMovement
	remove    *ucLedger.DeleteMovement
	loc       *time.Location
}

func NewLedgerHandler(
	list *ucLedger.ListMovements,
	summarize *ucLedger.Summarize,
	export *ucLedger.ExportCSV,
	create *ucLedger.CreateMovement,
	remove *ucLedger.DeleteMovement,
	loc *time.Location,
) *LedgerHandler {
	return &LedgerHandler{
		list:      list,
		summarize: summarize,
		export:    export,
		create:    create,
		remove:    remove,
		loc:       loc,
	}
}

type CreateMovementRequest struct {
	Type        string          `json:"type"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
	Date        string          `json:"date"`
}

func (h *LedgerHandler) period(c *gin.Context) (ucLedger.Period, bool) {
	p, err := ucLedger.ParsePeriod(c.Query("from"), c.Query("to"), time.Now(), h.loc)
	if err != nil {
		httperr.FromError(c, err, "", "")
		return ucLedger.Period{}, false
	}
	return p, true
}

// ======================================================
// READ
// ======================================================

func (h *LedgerHandler) List(c *gin.Context) {
	p, ok := h.period(c)
	if !ok {
		return
	}

	ms, err := h.list.Execute(c.Request.Context(), p)
	if err != nil {
		httperr.FromError(c, err, "failed_to_list_movements", "Erro ao listar lançamentos.")
		return
	}

	httpresp.List(c, ms)
}

func (h *LedgerHandler) Summary(c *gin.Context) {
	p, ok := h.period(c)
	if !ok {
		return
	}

	s, err := h.summarize.Execute(c.Request.Context(), p)
	if err != nil {
		httperr.FromError(c, err, "failed_to_summarize", "Erro ao calcular resumo.")
		return
	}

	httpresp.OK(c, s)
}

// Export gera o CSV em memória para poder responder erro em JSON.
func (h *LedgerHandler) Export(c *gin.Context) {
	p, ok := h.period(c)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := h.export.Execute(c.Request.Context(), p, &buf); err != nil {
		httperr.FromError(c, err, "failed_to_export", "Erro ao exportar lançamentos.")
		return
	}

	filename := fmt.Sprintf(
		"livro-caixa-%s-%s.csv",
		p.From.Format("20060102"),
		p.To.AddDate(0, 0, -1).Format("20060102"),
	)
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

// ======================================================
// WRITE
// ======================================================

func (h *LedgerHandler) Create(c *gin.Context) {
	var req CreateMovementRequest
	if !bindJSON(c, &req) {
		return
	}

	m, err := h.create.Execute(c.Request.Context(), ucLedger.CreateMovementInput{
		Type:        req.Type,
		Category:    req.Category,
		Description: req.Description,
		Amount:      req.Amount,
		Date:        req.Date,
	})
	if err != nil {
		httperr.FromError(c, err, "failed_to_create_movement", "Erro ao criar lançamento.")
		return
	}

	httpresp.Created(c, m)
}

func (h *LedgerHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.remove.Execute(c.Request.Context(), id); err != nil {
		httperr.FromError(c, err, "failed_to_delete_movement", "Erro ao excluir lançamento.")
		return
	}

	httpresp.NoContent(c)
}
