package handlers

// HandlerBundle groups every handler for route registration.
type HandlerBundle struct {
	Catalog *CatalogHandler
	Cart    *CartHandler
	Booking *BookingHandler
	Payment *PaymentHandler
	Admin   *AdminHandler
	Upload  *UploadHandler
}
