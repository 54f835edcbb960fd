package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

func Write(c *gin.Context, status int, code, message string) {
	c.JSON(status, HTTPError{
		Code:    code,
		Message: message,
	})
}

func BadRequest(c *gin.Context, code, message string) {
	Write(c, http.StatusBadRequest, code, message)
}

func NotFound(c *gin.Context, code, message string) {
	Write(c, http.StatusNotFound, code, message)
}

func Conflict(c *gin.Context, code, message string) {
	Write(c, http.StatusConflict, code, message)
}

func Unavailable(c *gin.Context, code, message string) {
	Write(c, http.StatusServiceUnavailable, code, message)
}

func Internal(c *gin.Context, code, message string) {
	Write(c, http.StatusInternalServerError, code, message)
}

// ======================================================
// Mapeamento de erros de negócio
// ======================================================

var messages = map[string]string{
	"missing_client_name":       "Nome do cliente obrigatório.",
	"missing_client_phone":      "Telefone do cliente obrigatório.",
	"missing_event_date":        "Data do evento obrigatória.",
	"invalid_event_date":        "Data do evento inválida.",
	"invalid_deposit_date":      "Data do sinal inválida.",
	"invalid_balance_due_date":  "Data de vencimento do saldo inválida.",
	"invalid_time":              "Horário inválido.",
	"invalid_date":              "Data inválida.",
	"invalid_email":             "E-mail inválido.",
	"negative_value":            "Valores não podem ser negativos.",
	"missing_contract_id":       "Contrato não informado.",
	"contract_not_found":        "Contrato não encontrado.",
	"client_not_found":          "Cliente não encontrado.",
	"event_not_found":           "Evento não encontrado.",
	"receipt_not_found":         "Recibo não encontrado.",
	"movement_not_found":        "Lançamento não encontrado.",
	"invalid_state":             "Transição de status inválida.",
	"invalid_receipt_number":    "Número de recibo inválido.",
	"receipt_number_taken":      "Número de recibo já utilizado.",
	"invalid_amount":            "Valor inválido.",
	"invalid_movement_type":     "Tipo de lançamento inválido.",
	"nothing_to_charge":         "Não há saldo em aberto.",
	"payments_not_configured":   "Pagamentos online não configurados.",
	"invalid_category":          "Categoria inválida.",
	"missing_title":             "Título obrigatório.",
	"missing_description":       "Descrição obrigatória.",
	"invalid_period":            "Período inválido.",
	"invalid_client_status":     "Status de cliente inválido.",
	"movement_owned_by_receipt": "Lançamento de recibo: exclua o recibo.",
	"invalid_id":                "Identificador inválido.",
	"invalid_body":              "Requisição inválida.",
}

var statuses = map[string]int{
	"contract_not_found":        http.StatusNotFound,
	"client_not_found":          http.StatusNotFound,
	"event_not_found":           http.StatusNotFound,
	"receipt_not_found":         http.StatusNotFound,
	"movement_not_found":        http.StatusNotFound,
	"receipt_number_taken":      http.StatusConflict,
	"invalid_state":             http.StatusConflict,
	"movement_owned_by_receipt": http.StatusConflict,
	"payments_not_configured":   http.StatusServiceUnavailable,
}

// FromError escreve a resposta adequada para err.
// Erros que não são de negócio viram 500 com fallbackCode.
func FromError(c *gin.Context, err error, fallbackCode, fallbackMessage string) {
	code := Code(err)
	if code == "" {
		Internal(c, fallbackCode, fallbackMessage)
		return
	}

	status, ok := statuses[code]
	if !ok {
		status = http.StatusBadRequest
	}

	msg, ok := messages[code]
	if !ok {
		msg = code
	}

	Write(c, status, code, msg)
}
