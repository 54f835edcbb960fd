package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/venue-scheduler/internal/audit"
	"github.com/BruksfildServices01/venue-scheduler/internal/domain/receipt"
	"github.com/BruksfildServices01/venue-scheduler/internal/handlers"
	infraRepo "github.com/BruksfildServices01/venue-scheduler/internal/infra/repository"
	"github.com/BruksfildServices01/venue-scheduler/internal/logger"
	"github.com/BruksfildServices01/venue-scheduler/internal/middleware"
	ucCalendar "github.com/BruksfildServices01/venue-scheduler/internal/usecase/calendar"
	ucClient "github.com/BruksfildServices01/venue-scheduler/internal/usecase/client"
	ucContract "github.com/BruksfildServices01/venue-scheduler/internal/usecase/contract"
	ucLedger "github.com/BruksfildServices01/venue-scheduler/internal/usecase/ledger"
	ucReceipt "github.com/BruksfildServices01/venue-scheduler/internal/usecase/receipt"
)

// Dependencies reúne o que main monta antes de registrar as rotas.
// Sequencer, Archive e Payments são opcionais.
type Dependencies struct {
	DB       *gorm.DB
	Audit    *audit.Dispatcher
	Log      *logger.Logger
	Location *time.Location

	CORSAllowedOrigins []string

	Sequencer receipt.Sequencer
	Archive   ucContract.SnapshotArchive
	Payments  ucContract.CheckoutProvider
}

func RegisterRoutes(r *gin.Engine, d Dependencies) {

	// ======================================================
	// 🌍 MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware(d.CORSAllowedOrigins))

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	clientRepo := infraRepo.NewClientGormRepository(d.DB)
	contractRepo := infraRepo.NewContractGormRepository(d.DB)
	calendarRepo := infraRepo.NewCalendarGormRepository(d.DB)
	ledgerRepo := infraRepo.NewLedgerGormRepository(d.DB)
	receiptRepo := infraRepo.NewReceiptGormRepository(d.DB)

	seq := d.Sequencer
	if seq == nil {
		seq = infraRepo.NewReceiptSequenceGorm(d.DB)
	}

	// ======================================================
	// 🧠 USE CASES: CLIENTES
	// ======================================================
	resolveClientUC := ucClient.NewResolveClient(clientRepo, d.Audit)
	listClientsUC := ucClient.NewListClients(clientRepo)

	// ======================================================
	// 🧠 USE CASES: CONTRATOS
	// ======================================================
	saveContractUC := ucContract.NewSaveContract(
		resolveClientUC,
		contractRepo,
		calendarRepo,
		ledgerRepo,
		d.Archive,
		d.Audit,
		d.Log,
		d.Location,
	)
	getContractUC := ucContract.NewGetContract(contractRepo, d.Log)
	settlementUC := ucContract.NewGetSettlement(contractRepo, receiptRepo, d.Log)
	checkoutUC := ucContract.NewCreateCheckoutLink(settlementUC, d.Payments, d.Audit)

	// ======================================================
	// 🧠 USE CASES: AGENDA
	// ======================================================
	nextNumberUC := ucReceipt.NewNextReceiptNumber(seq, receiptRepo)

	createEventUC := ucCalendar.NewCreateEvent(calendarRepo, d.Audit, d.Location)
	confirmEventUC := ucCalendar.NewConfirmEvent(calendarRepo, settlementUC, nextNumberUC, d.Audit, d.Log)
	completeEventUC := ucCalendar.NewCompleteEvent(calendarRepo, d.Audit)
	cancelEventUC := ucCalendar.NewCancelEvent(calendarRepo, d.Audit)
	listByDateUC := ucCalendar.NewListEventsByDate(calendarRepo, d.Location)
	listByMonthUC := ucCalendar.NewListEventsByMonth(calendarRepo, d.Location)

	// ======================================================
	// 🧠 USE CASES: RECIBOS E LIVRO-CAIXA
	// ======================================================
	listReceiptsUC := ucReceipt.NewListReceipts(receiptRepo)
	issueReceiptUC := ucReceipt.NewIssueReceipt(receiptRepo, seq, contractRepo, d.Audit, d.Location)
	deleteReceiptUC := ucReceipt.NewDeleteReceipt(receiptRepo, ledgerRepo, d.Audit)

	listMovementsUC := ucLedger.NewListMovements(ledgerRepo)
	summarizeUC := ucLedger.NewSummarize(ledgerRepo)
	exportUC := ucLedger.NewExportCSV(ledgerRepo)
	createMovementUC := ucLedger.NewCreateMovement(ledgerRepo, d.Audit, d.Location)
	deleteMovementUC := ucLedger.NewDeleteMovement(ledgerRepo, d.Audit)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	contractHandler := handlers.NewContractHandler(
		saveContractUC,
		getContractUC,
		settlementUC,
		checkoutUC,
	)
	clientHandler := handlers.NewClientHandler(listClientsUC, resolveClientUC)
	eventHandler := handlers.NewEventHandler(
		createEventUC,
		confirmEventUC,
		completeEventUC,
		cancelEventUC,
		listByDateUC,
		listByMonthUC,
		d.Location,
	)
	receiptHandler := handlers.NewReceiptHandler(
		nextNumberUC,
		listReceiptsUC,
		issueReceiptUC,
		deleteReceiptUC,
		d.Location,
	)
	ledgerHandler := handlers.NewLedgerHandler(
		listMovementsUC,
		summarizeUC,
		exportUC,
		createMovementUC,
		deleteMovementUC,
		d.Location,
	)
	auditLogsHandler := handlers.NewAuditLogsHandler(d.DB, d.Location)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// CONTRATOS
		// ------------------------------
		api.POST("/contracts/quote", contractHandler.Quote)
		api.POST("/contracts", contractHandler.Create)
		api.PUT("/contracts/:id", contractHandler.Update)
		api.GET("/contracts/:id", contractHandler.Get)
		api.GET("/contracts/:id/settlement", contractHandler.Settlement)
		api.POST("/contracts/:id/checkout-link", contractHandler.CheckoutLink)

		// ------------------------------
		// CLIENTES
		// ------------------------------
		api.GET("/clients", clientHandler.List)
		api.POST("/clients/resolve", clientHandler.Resolve)

		// ------------------------------
		// AGENDA
		// ------------------------------
		api.GET("/events", eventHandler.ListByDate)
		api.GET("/events/month", eventHandler.ListByMonth)
		api.POST("/events", eventHandler.Create)
		api.PATCH("/events/:id/confirm", eventHandler.Confirm)
		api.PATCH("/events/:id/complete", eventHandler.Complete)
		api.PATCH("/events/:id/cancel", eventHandler.Cancel)

		// ------------------------------
		// RECIBOS
		// ------------------------------
		api.GET("/receipts/next-number", receiptHandler.NextNumber)
		api.GET("/receipts", receiptHandler.List)
		api.POST("/receipts", receiptHandler.Issue)
		api.DELETE("/receipts/:id", receiptHandler.Delete)

		// ------------------------------
		// LIVRO-CAIXA
		// ------------------------------
		api.GET("/ledger", ledgerHandler.List)
		api.GET("/ledger/summary", ledgerHandler.Summary)
		api.GET("/ledger/export.csv", ledgerHandler.Export)
		api.POST("/ledger", ledgerHandler.Create)
		api.DELETE("/ledger/:id", ledgerHandler.Delete)

		api.GET("/audit-logs", auditLogsHandler.List)
	}
}
