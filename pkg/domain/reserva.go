package domain

// Reservation lifecycle statuses accepted by PATCH /reservas/{id}.
const (
	ReservaAtiva      = "ativa"
	ReservaFinalizada = "finalizada"
	ReservaCancelada  = "cancelada"
)

// Reserva links a client and a book with pickup/return dates and a lifecycle
// status. Associated records may come nested or as denormalized name fields.
type Reserva struct {
	ReservaID    int      `json:"ReservaID"`
	ClienteID    int      `json:"ClienteID"`
	LivroID      int      `json:"LivroID"`
	CPFReserva   string   `json:"CPFReserva"`
	NomeLivro    string   `json:"NomeLivro"`
	LivroNome    string   `json:"LivroNome"`
	DataRetirada string   `json:"DataRetirada"`
	DataVolta    string   `json:"DataVolta"`
	DataEntrega  string   `json:"DataEntrega"`
	Entrega      string   `json:"Entrega"`
	QntdLivro    int      `json:"QntdLivro"`
	Observacao   string   `json:"Observacao"`
	Status       string   `json:"status"`
	Cliente      *Cliente `json:"cliente"`
	Livro        *Livro   `json:"livro"`
}
