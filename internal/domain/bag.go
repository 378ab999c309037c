package domain

import "time"

// BagStatus é o estado de uma mala de consignação.
// Malas canceladas não têm status próprio: a linha é removida da coleção
// depois que as peças voltam para Disponível.
type BagStatus string

const (
	BagOpen      BagStatus = "Aberta"
	BagFinalized BagStatus = "Finalizada"
)

// Bag é uma mala: um conjunto de peças enviado para a cliente decidir
// o que compra e o que devolve.
//
// Invariante: toda peça referenciada por uma mala Aberta está Em Mala;
// depois do acerto (ou cancelamento) cada peça terminou Disponível ou
// Vendido.
type Bag struct {
	ID             string    `json:"id"`
	CustomerID     string    `json:"cliente_id"`
	CustomerName   string    `json:"nome_cliente"`
	ShipDate       time.Time `json:"data_envio"`
	ProductIDs     []string  `json:"lista_ids_produtos"`
	Status         BagStatus `json:"status"`
	ExpectedReturn time.Time `json:"data_prevista_retorno"`
}
