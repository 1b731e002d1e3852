package request

import (
	"balancestore/internal/domain/checkout"
	"balancestore/internal/usecase/commands"
)

type CustomerRequest struct {
	Nombre    string `json:"nombre"`
	Apellidos string `json:"apellidos"`
	Correo    string `json:"correo"`
}

type AddressRequest struct {
	Calle        string `json:"calle"`
	Depto        string `json:"depto"`
	Region       string `json:"region"`
	Comuna       string `json:"comuna"`
	Indicaciones string `json:"indicaciones"`
}

type PaymentDetailsRequest struct {
	NumeroTarjeta      string `json:"numeroTarjeta"`
	NombreTarjeta      string `json:"nombreTarjeta"`
	VencimientoTarjeta string `json:"vencimientoTarjeta"`
	CVVTarjeta         string `json:"cvvTarjeta"`
}

// DraftUpdateRequest is a partial form edit: absent sections leave the
// stored draft untouched.
type DraftUpdateRequest struct {
	Cliente    *CustomerRequest       `json:"cliente"`
	Direccion  *AddressRequest        `json:"direccion"`
	MetodoPago *string                `json:"metodoPago"`
	Pago       *PaymentDetailsRequest `json:"pago"`
}

func (r *DraftUpdateRequest) ToCommand() (commands.DraftUpdate, error) {
	var update commands.DraftUpdate

	if r.Cliente != nil {
		update.Customer = &checkout.CustomerInfo{
			Nombre:    r.Cliente.Nombre,
			Apellidos: r.Cliente.Apellidos,
			Correo:    r.Cliente.Correo,
		}
	}
	if r.Direccion != nil {
		update.Address = &checkout.Address{
			Calle:        r.Direccion.Calle,
			Depto:        r.Direccion.Depto,
			Region:       r.Direccion.Region,
			Comuna:       r.Direccion.Comuna,
			Indicaciones: r.Direccion.Indicaciones,
		}
	}
	if r.MetodoPago != nil {
		method, err := checkout.NewPaymentMethod(*r.MetodoPago)
		if err != nil {
			return commands.DraftUpdate{}, err
		}
		update.Method = &method
	}
	if r.Pago != nil {
		update.Payment = &checkout.PaymentDetails{
			NumeroTarjeta:      r.Pago.NumeroTarjeta,
			NombreTarjeta:      r.Pago.NombreTarjeta,
			VencimientoTarjeta: r.Pago.VencimientoTarjeta,
			CVVTarjeta:         r.Pago.CVVTarjeta,
		}
	}

	return update, nil
}
