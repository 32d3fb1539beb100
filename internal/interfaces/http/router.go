package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/retail-pos-api/internal/application/auth"
	"github.com/tu-usuario/retail-pos-api/internal/application/procurement"
	"github.com/tu-usuario/retail-pos-api/internal/application/sales"
	"github.com/tu-usuario/retail-pos-api/internal/application/usecase"
	"github.com/tu-usuario/retail-pos-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC        *auth.AuthUseCase
	ProductUC     *usecase.ProductUseCase
	CatalogUC     *usecase.CatalogUseCase
	EmployeeUC    *usecase.EmployeeUseCase
	VendorUC      *usecase.VendorUseCase
	CustomerUC    *usecase.CustomerUseCase
	ExpenseUC     *usecase.ExpenseUseCase
	BillUC        *usecase.BillUseCase
	ReportUC      *usecase.ReportUseCase
	CreateSaleUC  *sales.CreateSaleUseCase
	RefundUC      *sales.RefundUseCase
	SaleQueryUC   *sales.QueryUseCase
	SalePDFUC     *sales.PDFUseCase
	PurchaseOrder *procurement.PurchaseOrderUseCase
	ReceiveUC     *procurement.ReceiveUseCase
	JWTSecret     string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/register", authHandler.Register)
	authGroup.Post("/login", authHandler.Login)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Los borrados que tocan historial quedan solo para admin/manager.
	adminOnly := RequireRole(entity.RoleAdmin)
	managerOrAdmin := RequireRole(entity.RoleAdmin, entity.RoleManager)

	// Products (protegido)
	products := protected.Group("/products")
	productHandler := NewProductHandler(deps.ProductUC)
	products.Post("/", productHandler.Create)
	products.Get("/", productHandler.List)
	products.Get("/:id", productHandler.GetByID)
	products.Put("/:id", productHandler.Update)
	products.Delete("/:id", managerOrAdmin, productHandler.Delete)
	products.Get("/:id/lots", productHandler.ListLots)

	// Sales (protegido)
	salesGroup := protected.Group("/sales")
	saleHandler := NewSaleHandler(deps.CreateSaleUC, deps.RefundUC, deps.SaleQueryUC, deps.SalePDFUC)
	salesGroup.Post("/", saleHandler.Create)
	salesGroup.Get("/", saleHandler.List)
	salesGroup.Get("/:id", saleHandler.GetByID)
	salesGroup.Put("/:id", saleHandler.Update)
	salesGroup.Post("/:id/refund", saleHandler.Refund)
	salesGroup.Delete("/:id", adminOnly, saleHandler.Delete)
	salesGroup.Get("/:id/pdf", saleHandler.InvoicePDF)

	// Purchase orders + receives (protegido)
	purchaseHandler := NewPurchaseHandler(deps.PurchaseOrder, deps.ReceiveUC)
	orders := protected.Group("/purchase-orders")
	orders.Post("/", purchaseHandler.CreateOrder)
	orders.Get("/", purchaseHandler.ListOrders)
	orders.Get("/:id", purchaseHandler.GetOrder)
	orders.Delete("/:id", managerOrAdmin, purchaseHandler.DeleteOrder)
	receives := protected.Group("/purchase-receives")
	receives.Post("/", purchaseHandler.CreateReceive)
	receives.Get("/", purchaseHandler.ListReceives)
	receives.Get("/:id", purchaseHandler.GetReceive)
	receives.Delete("/:id", managerOrAdmin, purchaseHandler.DeleteReceive)

	// Catálogo (protegido)
	catalogHandler := NewCatalogHandler(deps.CatalogUC)
	categories := protected.Group("/categories")
	categories.Post("/", catalogHandler.CreateCategory)
	categories.Get("/", catalogHandler.ListCategories)
	categories.Put("/:id", catalogHandler.UpdateCategory)
	categories.Delete("/:id", catalogHandler.DeleteCategory)
	subcategories := protected.Group("/subcategories")
	subcategories.Post("/", catalogHandler.CreateSubcategory)
	subcategories.Get("/", catalogHandler.ListSubcategories)
	subcategories.Delete("/:id", catalogHandler.DeleteSubcategory)
	brands := protected.Group("/brands")
	brands.Post("/", catalogHandler.CreateBrand)
	brands.Get("/", catalogHandler.ListBrands)
	brands.Put("/:id", catalogHandler.UpdateBrand)
	brands.Delete("/:id", catalogHandler.DeleteBrand)
	conditions := protected.Group("/conditions")
	conditions.Post("/", catalogHandler.CreateCondition)
	conditions.Get("/", catalogHandler.ListConditions)
	conditions.Delete("/:id", catalogHandler.DeleteCondition)

	// Employees (protegido)
	employees := protected.Group("/employees")
	employeeHandler := NewEmployeeHandler(deps.EmployeeUC)
	employees.Post("/", employeeHandler.Create)
	employees.Get("/", employeeHandler.List)
	employees.Get("/:id", employeeHandler.GetByID)
	employees.Put("/:id", employeeHandler.Update)
	employees.Delete("/:id", employeeHandler.Delete)

	// Vendors (protegido)
	vendors := protected.Group("/vendors")
	vendorHandler := NewVendorHandler(deps.VendorUC)
	vendors.Post("/", vendorHandler.Create)
	vendors.Get("/", vendorHandler.List)
	vendors.Get("/:id", vendorHandler.GetByID)
	vendors.Put("/:id", vendorHandler.Update)
	vendors.Delete("/:id", vendorHandler.Delete)

	// Customers (protegido)
	customers := protected.Group("/customers")
	customerHandler := NewCustomerHandler(deps.CustomerUC)
	customers.Post("/", customerHandler.Create)
	customers.Get("/", customerHandler.List)
	customers.Get("/:id", customerHandler.GetByID)
	customers.Put("/:id", customerHandler.Update)
	customers.Delete("/:id", customerHandler.Delete)

	// Expenses (protegido)
	expenseHandler := NewExpenseHandler(deps.ExpenseUC)
	expenses := protected.Group("/expenses")
	expenses.Post("/", expenseHandler.Create)
	expenses.Get("/", expenseHandler.List)
	expenses.Put("/:id", expenseHandler.Update)
	expenses.Delete("/:id", expenseHandler.Delete)
	expenseCategories := protected.Group("/expense-categories")
	expenseCategories.Post("/", expenseHandler.CreateCategory)
	expenseCategories.Get("/", expenseHandler.ListCategories)
	expenseCategories.Delete("/:id", expenseHandler.DeleteCategory)

	// Bills (protegido)
	billHandler := NewBillHandler(deps.BillUC)
	bills := protected.Group("/bills")
	bills.Post("/", billHandler.Create)
	bills.Get("/", billHandler.List)
	bills.Get("/:id", billHandler.GetByID)
	bills.Put("/:id", billHandler.Update)
	bills.Delete("/:id", managerOrAdmin, billHandler.Delete)

	// Reports (protegido)
	reports := protected.Group("/reports")
	reportHandler := NewReportHandler(deps.ReportUC)
	reports.Get("/counts", reportHandler.EntityCounts)
	reports.Get("/stock", reportHandler.StockCounts)
	reports.Get("/sales-summary", reportHandler.SalesSummary)
	reports.Get("/top-products", reportHandler.TopProducts)
}
