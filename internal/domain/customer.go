package domain

type Customer struct {
	ID       string `json:"id"`
	Name     string `json:"nome"`
	WhatsApp string `json:"whatsapp"`
	Address  string `json:"endereco"`
}
