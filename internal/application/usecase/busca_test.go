package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizarBusca(t *testing.T) {
	casos := []struct {
		entrada  string
		esperado string
	}{
		{"Saia Lápis", "saia lapis"},
		{"CALÇA", "calca"},
		{"blusão", "blusao"},
		{"já normalizado", "ja normalizado"},
		{"", ""},
	}
	for _, c := range casos {
		assert.Equal(t, c.esperado, normalizarBusca(c.entrada), "entrada: %q", c.entrada)
	}
}

func TestContemBusca(t *testing.T) {
	assert.True(t, contemBusca("Saia Lápis Midi", "lapis"))
	assert.True(t, contemBusca("saia lapis", "LÁPIS"), "acentos no termo também são ignorados")
	assert.True(t, contemBusca("Vestido Céu", "céu"))
	assert.False(t, contemBusca("Saia Lápis", "calça"))
}
