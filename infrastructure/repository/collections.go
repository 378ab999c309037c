package repository

// Nomes das coleções (abas) e a ordem posicional dos campos.
// A ordem dos cabeçalhos é significativa: os repositórios leem e gravam
// por posição, não por nome.
const (
	productsCollection  = "Produtos"
	customersCollection = "Clientes"
	financeCollection   = "Financeiro"
	bagsCollection      = "Malas"
	closuresCollection  = "Fechamentos"
	settingsCollection  = "Configuracoes"
)

// CollectionHeaders é usado no bootstrap para criar abas ausentes.
func CollectionHeaders() map[string][]string {
	return map[string][]string{
		productsCollection:  {"id", "nome", "tamanho", "preco_custo", "preco_venda", "status"},
		customersCollection: {"id", "nome", "whatsapp", "endereco"},
		financeCollection:   {"id", "data_lancamento", "data_vencimento", "tipo", "descricao", "valor", "forma_pagamento", "status_pagamento"},
		bagsCollection:      {"id", "cliente_id", "nome_cliente", "data_envio", "lista_ids_produtos", "status", "data_prevista_retorno"},
		closuresCollection:  {"mes_ano", "status"},
		settingsCollection:  {"parametro", "valor"},
	}
}
