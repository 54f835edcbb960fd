package handlers

import (
	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/venue-scheduler/internal/domain/contract"
	"github.com/BruksfildServices01/venue-scheduler/internal/httperr"
	"github.com/BruksfildServices01/venue-scheduler/internal/httpresp"
	ucContract "github.com/BruksfildServices01/venue-scheduler/internal/usecase/contract"
)

// ======================================================
// HANDLER
// ======================================================

type ContractHandler struct {
	save       *ucContract.SaveContract
	get        *ucContract.GetContract
	settlement *ucContract.GetSettlement
	checkout   *ucContract.CreateCheckoutLink
}

func NewContractHandler(
	save *ucContract.SaveContract,
	get *ucContract.GetContract,
	settlement *ucContract.GetSettlement,
	checkout *ucContract.CreateCheckoutLink,
) *ContractHandler {
	return &ContractHandler{
		save:       save,
		get:        get,
		settlement: settlement,
		checkout:   checkout,
	}
}

// ======================================================
// QUOTE (sem escrita)
// ======================================================

func (h *ContractHandler) Quote(c *gin.Context) {
	var terms domain.Terms
	if !bindJSON(c, &terms) {
		return
	}

	if terms.GuestCount < 0 || terms.Payment.BaseGuestCount < 0 ||
		terms.Payment.PricePerGuest.IsNegative() || terms.Payment.DepositAmount.IsNegative() {
		httperr.FromError(c, httperr.ErrBusiness("negative_value"), "", "")
		return
	}

	httpresp.OK(c, terms.Quote())
}

// ======================================================
// SAVE
// ======================================================

func (h *ContractHandler) Create(c *gin.Context) {
	var terms domain.Terms
	if !bindJSON(c, &terms) {
		return
	}

	res, err := h.save.Execute(c.Request.Context(), ucContract.SaveContractInput{
		IsNewContract: true,
		Terms:         terms,
	})
	if err != nil {
		httperr.FromError(c, err, "failed_to_save_contract", "Erro ao salvar contrato.")
		return
	}

	httpresp.Created(c, res)
}

func (h *ContractHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var terms domain.Terms
	if !bindJSON(c, &terms) {
		return
	}

	res, err := h.save.Execute(c.Request.Context(), ucContract.SaveContractInput{
		ContractID:    id,
		IsNewContract: false,
		Terms:         terms,
	})
	if err != nil {
		httperr.FromError(c, err, "failed_to_save_contract", "Erro ao salvar contrato.")
		return
	}

	httpresp.OK(c, res)
}

// ======================================================
// READ
// ======================================================

func (h *ContractHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	view, err := h.get.Execute(c.Request.Context(), id)
	if err != nil {
		httperr.FromError(c, err, "failed_to_get_contract", "Erro ao carregar contrato.")
		return
	}

	httpresp.OK(c, view)
}

func (h *ContractHandler) Settlement(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	s, err := h.settlement.Execute(c.Request.Context(), id)
	if err != nil {
		httperr.FromError(c, err, "failed_to_get_settlement", "Erro ao calcular saldo.")
		return
	}

	httpresp.OK(c, s)
}

func (h *ContractHandler) CheckoutLink(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	link, err := h.checkout.Execute(c.Request.Context(), id)
	if err != nil {
		httperr.FromError(c, err, "failed_to_create_checkout", "Erro ao gerar link de pagamento.")
		return
	}

	httpresp.Created(c, link)
}
