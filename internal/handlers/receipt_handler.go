package handlers

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/venue-scheduler/internal/httperr"
	"github.com/BruksfildServices01/venue-scheduler/internal/httpresp"
	ucReceipt "github.com/BruksfildServices01/venue-scheduler/internal/usecase/receipt"
)

type ReceiptHandler struct {
	nextNumber *ucReceipt.NextReceiptNumber
	list       *ucReceipt.ListReceipts
	issue      *ucReceipt.IssueReceipt
	remove     *ucReceipt.DeleteReceipt
	loc        *time.Location
}

func NewReceiptHandler(
	nextNumber *ucReceipt.NextReceiptNumber,
	list *ucReceipt.ListReceipts,
	issue *ucReceipt.IssueReceipt,
	remove *ucReceipt.DeleteReceipt,
	loc *time.Location,
) *ReceiptHandler {
	return &ReceiptHandler{
		nextNumber: nextNumber,
		list:       list,
		issue:      issue,
		remove:     remove,
		loc:        loc,
	}
}

type IssueReceiptRequest struct {
	ContractID        *uint            `json:"contract_id"`
	Number            string           `json:"number"`
	Amount            *decimal.Decimal `json:"amount"`
	Date              string           `json:"date"`
	Method            string           `json:"method"`
	ClientName        string           `json:"client_name"`
	IsFinalSettlement bool             `json:"is_final_settlement"`
}

func (h *ReceiptHandler) NextNumber(c *gin.Context) {
	year, ok := yearQuery(c, h.loc)
	if !ok {
		return
	}

	number, err := h.nextNumber.Execute(c.Request.Context(), year)
	if err != nil {
		httperr.FromError(c, err, "failed_to_number_receipt", "Erro ao gerar número do recibo.")
		return
	}

	httpresp.OK(c, gin.H{"year": year, "number": number})
}

func (h *ReceiptHandler) List(c *gin.Context) {
	year, ok := yearQuery(c, h.loc)
	if !ok {
		return
	}

	receipts, err := h.list.Execute(c.Request.Context(), year)
	if err != nil {
		httperr.FromError(c, err, "failed_to_list_receipts", "Erro ao listar recibos.")
		return
	}

	httpresp.List(c, receipts)
}

func (h *ReceiptHandler) Issue(c *gin.Context) {
	var req IssueReceiptRequest
	if !bindJSON(c, &req) {
		return
	}

	rc, err := h.issue.Execute(c.Request.Context(), ucReceipt.IssueReceiptInput{
		ContractID:        req.ContractID,
		Number:            req.Number,
		Amount:            req.Amount,
		Date:              req.Date,
		Method:            req.Method,
		ClientName:        req.ClientName,
		IsFinalSettlement: req.IsFinalSettlement,
	})
	if err != nil {
		httperr.FromError(c, err, "failed_to_issue_receipt", "Erro ao emitir recibo.")
		return
	}

	httpresp.Created(c, rc)
}

func (h *ReceiptHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := h.remove.Execute(c.Request.Context(), id); err != nil {
		httperr.FromError(c, err, "failed_to_delete_receipt", "Erro ao excluir recibo.")
		return
	}

	httpresp.NoContent(c)
}
