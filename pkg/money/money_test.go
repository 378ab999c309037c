package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected float64
	}{
		{name: "Valor com milhar e decimal brasileiro", input: "1.250,50", expected: 1250.50},
		{name: "Valor apenas com vírgula decimal", input: "80,00", expected: 80.00},
		{name: "Valor com prefixo R$", input: "R$ 1.250,50", expected: 1250.50},
		{name: "Valor com ponto decimal americano", input: "1250.50", expected: 1250.50},
		{name: "Valor inteiro", input: "42", expected: 42.0},
		{name: "String vazia", input: "", expected: 0.0},
		{name: "Texto inválido", input: "abc", expected: 0.0},
		{name: "Espaços no meio", input: "R$ 1 250,50", expected: 1250.50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, Parse(tt.input), 0.001)
		})
	}
}

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected string
	}{
		{name: "Valor com milhar", input: 1250.5, expected: "R$ 1.250,50"},
		{name: "Valor pequeno", input: 80, expected: "R$ 80,00"},
		{name: "Zero", input: 0, expected: "R$ 0,00"},
		{name: "Milhão", input: 1234567.89, expected: "R$ 1.234.567,89"},
		{name: "Centavos", input: 0.07, expected: "R$ 0,07"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Format(tt.input))
		})
	}
}

// Parse(Format(x)) deve devolver o valor original dentro de um centavo.
func TestRoundTrip(t *testing.T) {
	values := []float64{0, 0.01, 0.99, 1, 9.90, 80, 99.99, 100.5, 999.99, 1250.5, 19999.01, 1234567.89}

	for _, v := range values {
		got := Parse(Format(v))
		assert.InDelta(t, v, got, 0.01, "round-trip divergiu para %v", v)
	}
}

func TestRound(t *testing.T) {
	assert.Equal(t, 33.33, Round(100.0/3.0))
	assert.Equal(t, 0.0, Round(0))
	assert.Equal(t, 226.37, Round(226.3744))
}

func TestToCell(t *testing.T) {
	assert.Equal(t, "80.00", ToCell(80))
	assert.Equal(t, "1250.50", ToCell(1250.5))
}
