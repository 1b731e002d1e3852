package checkout

// Receipt is the outbound boleta record submitted once per successful
// checkout. JSON keys are the remote service's contract.
type Receipt struct {
	Folio          string `json:"folio"`
	NombreCompleto string `json:"nombreCompleto"`
	Email          string `json:"email"`
	MetodoPago     string `json:"metodoPago"`
	Total          int64  `json:"total"`
	ProductosJSON  string `json:"productosJson"`
}

// RecordOutcome distinguishes a stored boleta from a best-effort failure.
// A failed record never blocks checkout completion.
type RecordOutcome struct {
	Recorded bool
	Reason   string
}

func Recorded() RecordOutcome {
	return RecordOutcome{Recorded: true}
}

func RecordFailed(reason string) RecordOutcome {
	return RecordOutcome{Recorded: false, Reason: reason}
}
