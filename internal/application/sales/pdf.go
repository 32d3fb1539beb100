package sales

import (
	"context"

	"github.com/tu-usuario/retail-pos-api/internal/domain"
	"github.com/tu-usuario/retail-pos-api/internal/domain/entity"
	"github.com/tu-usuario/retail-pos-api/internal/domain/repository"
)

// InvoicePDFGenerator puerto de generación de la factura imprimible.
// productTitles mapea productID -> título para mostrar en la tabla.
type InvoicePDFGenerator interface {
	GenerateInvoicePDF(ctx context.Context, sale *entity.Sale, employee *entity.Employee, productTitles map[string]string) ([]byte, error)
}

// PDFUseCase arma la factura imprimible de una venta.
type PDFUseCase struct {
	saleRepo     repository.SaleRepository
	employeeRepo repository.EmployeeRepository
	productRepo  repository.ProductRepository
	generator    InvoicePDFGenerator
}

// NewPDFUseCase construye el caso de uso.
func NewPDFUseCase(
	saleRepo repository.SaleRepository,
	employeeRepo repository.EmployeeRepository,
	productRepo repository.ProductRepository,
	generator InvoicePDFGenerator,
) *PDFUseCase {
	return &PDFUseCase{saleRepo: saleRepo, employeeRepo: employeeRepo, productRepo: productRepo, generator: generator}
}

// InvoicePDF devuelve los bytes del PDF de la factura.
func (uc *PDFUseCase) InvoicePDF(ctx context.Context, saleID string) ([]byte, error) {
	sale, err := uc.saleRepo.GetByID(saleID)
	if err != nil {
		return nil, err
	}
	if sale == nil {
		return nil, domain.ErrNotFound
	}
	// El empleado es opcional en el PDF: una venta con vendedor borrado sigue
	// siendo imprimible.
	employee, err := uc.employeeRepo.GetByID(sale.EmployeeID)
	if err != nil {
		return nil, err
	}
	titles := make(map[string]string, len(sale.Items))
	for i := range sale.Items {
		id := sale.Items[i].ProductID
		if _, ok := titles[id]; ok {
			continue
		}
		product, err := uc.productRepo.GetByID(id)
		if err != nil {
			return nil, err
		}
		if product != nil {
			titles[id] = product.Title
		}
	}
	return uc.generator.GenerateInvoicePDF(ctx, sale, employee, titles)
}
