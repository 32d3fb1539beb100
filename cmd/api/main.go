package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/shopspring/decimal"

	"github.com/tu-usuario/retail-pos-api/internal/application/auth"
	"github.com/tu-usuario/retail-pos-api/internal/application/procurement"
	"github.com/tu-usuario/retail-pos-api/internal/application/sales"
	"github.com/tu-usuario/retail-pos-api/internal/application/usecase"
	infrapdf "github.com/tu-usuario/retail-pos-api/internal/infrastructure/pdf"
	"github.com/tu-usuario/retail-pos-api/internal/infrastructure/postgres"
	infraqr "github.com/tu-usuario/retail-pos-api/internal/infrastructure/qr"
	httpRouter "github.com/tu-usuario/retail-pos-api/internal/interfaces/http"
	"github.com/tu-usuario/retail-pos-api/pkg/config"
	"github.com/tu-usuario/retail-pos-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	productRepo := postgres.NewProductRepository(pool)
	lotRepo := postgres.NewLotRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	orderRepo := postgres.NewPurchaseOrderRepository(pool)
	receiveRepo := postgres.NewPurchaseReceiveRepository(pool)
	employeeRepo := postgres.NewEmployeeRepository(pool)
	vendorRepo := postgres.NewVendorRepository(pool)
	customerRepo := postgres.NewCustomerRepository(pool)
	categoryRepo := postgres.NewCategoryRepository(pool)
	subcategoryRepo := postgres.NewSubcategoryRepository(pool)
	brandRepo := postgres.NewBrandRepository(pool)
	conditionRepo := postgres.NewConditionRepository(pool)
	expenseRepo := postgres.NewExpenseRepository(pool)
	billRepo := postgres.NewBillRepository(pool)
	expenseCategoryRepo := postgres.NewExpenseCategoryRepository(pool)
	counterRepo := postgres.NewCounterRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	reportRepo := postgres.NewReportRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	qrGen := infraqr.NewGenerator()

	createSaleUC := sales.NewCreateSaleUseCase(txRunner, employeeRepo, productRepo, sales.Config{
		InvoicePrefix: cfg.POS.InvoicePrefix,
		VATRate:       decimal.NewFromFloat(cfg.POS.VATRate),
	})
	refundUC := sales.NewRefundUseCase(txRunner)
	saleQueryUC := sales.NewQueryUseCase(saleRepo)

	// PDF: factura imprimible de mostrador
	pdfGenerator := infrapdf.NewMarotoInvoiceGenerator(cfg.App.Name)
	salePDFUC := sales.NewPDFUseCase(saleRepo, employeeRepo, productRepo, pdfGenerator)

	purchaseOrderUC := procurement.NewPurchaseOrderUseCase(orderRepo, vendorRepo, counterRepo)
	receiveUC := procurement.NewReceiveUseCase(
		txRunner, receiveRepo, orderRepo, brandRepo, conditionRepo, qrGen, log,
		procurement.Config{SKUPrefix: cfg.POS.SKUPrefix},
	)

	productUC := usecase.NewProductUseCase(productRepo, lotRepo, qrGen)
	catalogUC := usecase.NewCatalogUseCase(categoryRepo, subcategoryRepo, brandRepo, conditionRepo)
	employeeUC := usecase.NewEmployeeUseCase(employeeRepo)
	vendorUC := usecase.NewVendorUseCase(vendorRepo)
	customerUC := usecase.NewCustomerUseCase(customerRepo)
	expenseUC := usecase.NewExpenseUseCase(expenseRepo, expenseCategoryRepo)
	billUC := usecase.NewBillUseCase(billRepo, vendorRepo, orderRepo)
	reportUC := usecase.NewReportUseCase(reportRepo)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Retail POS API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:        authUC,
		ProductUC:     productUC,
		CatalogUC:     catalogUC,
		EmployeeUC:    employeeUC,
		VendorUC:      vendorUC,
		CustomerUC:    customerUC,
		ExpenseUC:     expenseUC,
		BillUC:        billUC,
		ReportUC:      reportUC,
		CreateSaleUC:  createSaleUC,
		RefundUC:      refundUC,
		SaleQueryUC:   saleQueryUC,
		SalePDFUC:     salePDFUC,
		PurchaseOrder: purchaseOrderUC,
		ReceiveUC:     receiveUC,
		JWTSecret:     cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
