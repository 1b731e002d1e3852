package repository

// Record names preserved from the storefront's browser storage. Each is an
// independently read/written key; absence means "no prior value".
const (
	recCartItems      = "cart_items"
	recAuthUser       = "authUser"
	recCoupon         = "cuponAplicado"
	recCustomer       = "datosCliente"
	recAddress        = "datosDireccion"
	recPaymentMethod  = "metodoPago"
	recPaymentDetails = "datosPago"
	recPurchasedItems = "boletaItems"
	recFolio          = "folioBoleta"
	recDraft          = "checkoutDraft"
	recNotice         = "cartNotice"
)

func sessionKey(sessionID, record string) string {
	return "session:" + sessionID + ":" + record
}
