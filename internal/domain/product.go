package domain

// ProductStatus é o estado de uma peça física do estoque.
// Cada linha da coleção Produtos representa UMA unidade física:
// quantidade é contagem de linhas, não um campo numérico.
type ProductStatus string

const (
	ProductAvailable ProductStatus = "Disponível"
	ProductInBag     ProductStatus = "Em Mala"
	ProductSold      ProductStatus = "Vendido"
)

// Sizes são os tamanhos aceitos no cadastro de produtos.
var Sizes = []string{"PP", "P", "M", "G", "GG", "XG", "Único"}

func ValidSize(size string) bool {
	for _, s := range Sizes {
		if s == size {
			return true
		}
	}
	return false
}

type Product struct {
	ID        string        `json:"id"`
	Name      string        `json:"nome"`
	Size      string        `json:"tamanho"`
	CostPrice float64       `json:"preco_custo"`
	SalePrice float64       `json:"preco_venda"`
	Status    ProductStatus `json:"status"`
}

// StockGroup agrega unidades iguais (nome + tamanho) para a visão de estoque.
type StockGroup struct {
	Name      string  `json:"nome"`
	Size      string  `json:"tamanho"`
	CostPrice float64 `json:"preco_custo"`
	SalePrice float64 `json:"preco_venda"`
	Available int     `json:"disponiveis"`
	InBag     int     `json:"em_mala"`
	Sold      int     `json:"vendidas"`
}
