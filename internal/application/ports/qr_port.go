package ports

// QRGenerator genera una imagen QR embebible (data URL PNG) a partir de un
// contenido, típicamente un SKU o un número de factura. Función pura desde la
// perspectiva del dominio: sin efectos sobre datos.
type QRGenerator interface {
	DataURL(content string) (string, error)
}
