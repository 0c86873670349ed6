package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/govindweb777/erp-sales-backend/internal/application/auth"
	appledger "github.com/govindweb777/erp-sales-backend/internal/application/ledger"
	"github.com/govindweb777/erp-sales-backend/internal/application/usecase"
	"github.com/govindweb777/erp-sales-backend/internal/domain/entity"
	"github.com/govindweb777/erp-sales-backend/internal/domain/repository"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC           *auth.AuthUseCase
	LedgerSvc        *appledger.Service
	UserUC           *usecase.UserUseCase
	BranchUC         *usecase.BranchUseCase
	CompanyUC        *usecase.CompanyUseCase
	DashboardUC      *usecase.DashboardUseCase
	ItemUC           *usecase.ItemUseCase
	ChartOfAccountUC *usecase.ChartOfAccountUseCase
	AccountGroupUC   *usecase.AccountGroupUseCase
	BankAccountUC    *usecase.BankAccountUseCase
	ItemGroupUC      *usecase.ItemGroupUseCase
	ItemCategoryUC   *usecase.ItemCategoryUseCase
	ReportUC         *usecase.ReportUseCase
	UserRepo         repository.UserRepository
	JWTSecret        string
}

// Rutas de colección por tipo de documento. Las siete colecciones montan el
// mismo handler genérico bajo su propio prefijo.
var documentRoutes = []struct {
	path    string
	docType entity.DocumentType
}{
	{"/sales", entity.DocTypeSales},
	{"/purchases", entity.DocTypePurchase},
	{"/expenses", entity.DocTypeExpense},
	{"/receipts", entity.DocTypeReceipt},
	{"/payments", entity.DocTypePayment},
	{"/contra-entries", entity.DocTypeContraEntry},
	{"/journal-vouchers", entity.DocTypeJournalVoucher},
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/forgot-password", authHandler.ForgotPassword)
	authGroup.Post("/reset-password", authHandler.ResetPassword)

	// Rutas protegidas (requieren Bearer Token; el principal se resuelve
	// contra la base en cada request)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret, deps.UserRepo))
	protected.Get("/auth/me", authHandler.Me)

	// Panel de administración (admin y user-panel; este último limitado por
	// moduleAccess)
	admin := protected.Group("/admin", RequireRole(entity.RoleAdmin, entity.RoleUserPanel))

	users := admin.Group("/users", RequireModule(func(m entity.ModuleAccess) bool { return m.IsUserManagement }))
	userHandler := NewUserHandler(deps.UserUC)
	users.Post("/", userHandler.Create)
	users.Get("/", userHandler.List)
	users.Get("/:id", userHandler.Get)
	users.Put("/:id", userHandler.Update)
	users.Patch("/:id/toggle-status", userHandler.ToggleStatus)
	users.Delete("/:id", userHandler.Delete)

	branches := admin.Group("/branches", RequireModule(func(m entity.ModuleAccess) bool { return m.IsBranchManagement }))
	branchHandler := NewBranchHandler(deps.BranchUC)
	branches.Post("/", branchHandler.Create)
	branches.Get("/", branchHandler.List)
	branches.Get("/deleted/list", branchHandler.ListDeleted)
	branches.Get("/:id", branchHandler.Get)
	branches.Put("/:id", branchHandler.Update)
	branches.Patch("/:id/toggle-status", branchHandler.ToggleStatus)
	branches.Delete("/:id", branchHandler.SoftDelete)
	branches.Patch("/:id/restore", branchHandler.Restore)

	companyHandler := NewCompanyHandler(deps.CompanyUC)
	company := admin.Group("/company", RequireModule(func(m entity.ModuleAccess) bool { return m.IsSettings }))
	company.Get("/", companyHandler.Get)
	company.Put("/", companyHandler.Update)

	dashboardHandler := NewDashboardHandler(deps.DashboardUC)
	admin.Get("/dashboard", RequireModule(func(m entity.ModuleAccess) bool { return m.IsDashboard }), dashboardHandler.Summary)

	// Documentos contables (las rutas fijas van antes de /:id)
	for _, route := range documentRoutes {
		group := protected.Group(route.path)
		handler := NewDocumentHandler(deps.LedgerSvc, route.docType)
		group.Post("/", handler.Create)
		group.Get("/", handler.List)
		group.Get("/deleted/list", handler.ListDeleted)
		group.Get("/next-number", handler.NextNumber)
		group.Get("/:id", handler.Get)
		group.Put("/:id", handler.Update)
		group.Patch("/:id/toggle-active", handler.ToggleActive)
		group.Patch("/:id/restore", handler.Restore)
		group.Delete("/:id", handler.SoftDelete)
		group.Delete("/:id/permanent", handler.HardDelete)
	}

	// Ítems de inventario
	items := protected.Group("/items")
	itemHandler := NewItemHandler(deps.ItemUC)
	items.Post("/", itemHandler.Create)
	items.Get("/", itemHandler.List)
	items.Get("/:id", itemHandler.Get)
	items.Put("/:id", itemHandler.Update)
	items.Delete("/:id", itemHandler.SoftDelete)
	items.Patch("/:id/restore", itemHandler.Restore)

	// Maestros contables
	coa := protected.Group("/chart-of-accounts")
	coaHandler := NewChartOfAccountHandler(deps.ChartOfAccountUC)
	coa.Post("/", coaHandler.Create)
	coa.Get("/", coaHandler.List)
	coa.Get("/:id", coaHandler.Get)
	coa.Put("/:id", coaHandler.Update)
	coa.Delete("/:id", coaHandler.SoftDelete)

	groups := protected.Group("/account-groups")
	groupHandler := NewAccountGroupHandler(deps.AccountGroupUC)
	groups.Post("/", groupHandler.Create)
	groups.Get("/", groupHandler.List)
	groups.Get("/:id", groupHandler.Get)
	groups.Put("/:id", groupHandler.Update)
	groups.Patch("/:id/toggle-status", groupHandler.ToggleStatus)
	groups.Delete("/:id", groupHandler.SoftDelete)

	banks := protected.Group("/bank-accounts")
	bankHandler := NewBankAccountHandler(deps.BankAccountUC)
	banks.Post("/", bankHandler.Create)
	banks.Get("/", bankHandler.List)
	banks.Get("/:id", bankHandler.Get)
	banks.Put("/:id", bankHandler.Update)
	banks.Delete("/:id", bankHandler.SoftDelete)

	// Maestros de ítems
	itemGroups := protected.Group("/item-groups")
	itemGroupHandler := NewItemGroupHandler(deps.ItemGroupUC)
	itemGroups.Post("/", itemGroupHandler.Create)
	itemGroups.Get("/", itemGroupHandler.List)
	itemGroups.Get("/:id", itemGroupHandler.Get)
	itemGroups.Put("/:id", itemGroupHandler.Update)
	itemGroups.Delete("/:id", itemGroupHandler.Delete)

	itemCategories := protected.Group("/item-categories")
	itemCategoryHandler := NewItemCategoryHandler(deps.ItemCategoryUC)
	itemCategories.Post("/", itemCategoryHandler.Create)
	itemCategories.Get("/", itemCategoryHandler.List)
	itemCategories.Get("/:id", itemCategoryHandler.Get)
	itemCategories.Put("/:id", itemCategoryHandler.Update)
	itemCategories.Delete("/:id", itemCategoryHandler.Delete)

	// Reportes (el user-panel no los ve)
	reports := protected.Group("/reports", RequireRole(entity.RoleAdmin, entity.RoleBranch, entity.RoleUser))
	reportHandler := NewReportHandler(deps.ReportUC)
	reports.Get("/ledger", reportHandler.Ledger)
	reports.Get("/trial-balance", reportHandler.TrialBalance)
	reports.Get("/receivables", reportHandler.Receivables)
	reports.Get("/payables", reportHandler.Payables)
}
