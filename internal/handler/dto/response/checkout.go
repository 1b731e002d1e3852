package response

import (
	"balancestore/internal/domain/checkout"
	"balancestore/internal/usecase/commands"
	"balancestore/internal/usecase/queries"
)

type CustomerResponse struct {
	Nombre    string `json:"nombre"`
	Apellidos string `json:"apellidos"`
	Correo    string `json:"correo"`
}

type AddressResponse struct {
	Calle        string `json:"calle"`
	Depto        string `json:"depto,omitempty"`
	Region       string `json:"region"`
	Comuna       string `json:"comuna"`
	Indicaciones string `json:"indicaciones,omitempty"`
}

type DraftResponse struct {
	Status       string           `json:"status"`
	Cliente      CustomerResponse `json:"cliente"`
	Direccion    AddressResponse  `json:"direccion"`
	MetodoPago   string           `json:"metodoPago,omitempty"`
	GuestAllowed bool             `json:"guestAllowed"`
}

type SubmitResponse struct {
	Folio          string          `json:"folio"`
	Pricing        PricingResponse `json:"pricing"`
	BoletaGuardada bool            `json:"boletaGuardada"`
	Status         string          `json:"status"`
}

type ReceiptResponse struct {
	Folio      string             `json:"folio"`
	Cliente    CustomerResponse   `json:"cliente"`
	Direccion  AddressResponse    `json:"direccion"`
	MetodoPago string             `json:"metodoPago"`
	Items      []CartItemResponse `json:"items"`
	Cupon      *CouponResponse    `json:"cupon,omitempty"`
	Pricing    PricingResponse    `json:"pricing"`
}

func newCustomerResponse(c checkout.CustomerInfo) CustomerResponse {
	return CustomerResponse{Nombre: c.Nombre, Apellidos: c.Apellidos, Correo: c.Correo}
}

func newAddressResponse(a checkout.Address) AddressResponse {
	return AddressResponse{
		Calle:        a.Calle,
		Depto:        a.Depto,
		Region:       a.Region,
		Comuna:       a.Comuna,
		Indicaciones: a.Indicaciones,
	}
}

func NewDraftResponse(draft *checkout.Draft) DraftResponse {
	return DraftResponse{
		Status:       draft.Status.String(),
		Cliente:      newCustomerResponse(draft.Customer),
		Direccion:    newAddressResponse(draft.Address),
		MetodoPago:   string(draft.Method),
		GuestAllowed: draft.GuestAllowed,
	}
}

func NewSubmitResponse(result *commands.SubmitResult) SubmitResponse {
	return SubmitResponse{
		Folio:          result.Folio,
		Pricing:        NewPricingResponse(result.Pricing),
		BoletaGuardada: result.Outcome.Recorded,
		Status:         result.Status.String(),
	}
}

func NewReceiptResponse(view *queries.ReceiptView) ReceiptResponse {
	return ReceiptResponse{
		Folio:      view.Folio,
		Cliente:    newCustomerResponse(view.Customer),
		Direccion:  newAddressResponse(view.Address),
		MetodoPago: view.Method,
		Items:      NewCartItemResponses(view.Items),
		Cupon:      NewCouponResponse(view.Coupon),
		Pricing:    NewPricingResponse(view.Pricing),
	}
}
