package venda

import (
	"fmt"
	"math/rand"
	"time"
)

// IDGenerator porta para geração do identificador curto da venda.
// Injetável para que colisões sejam testáveis de forma determinística.
type IDGenerator interface {
	NovoID() string
}

// GeradorRelogio gera IDs no formato "V" + 8 últimos dígitos do timestamp em
// milissegundos + sufixo aleatório de 2 dígitos (ex.: V1234567807). Cabe em
// varchar(20); a probabilidade de colisão é baixa mas não nula — uma colisão
// vira violação de unicidade e é devolvida ao chamador, sem retry.
type GeradorRelogio struct {
	Agora     func() time.Time
	Aleatorio func(n int) int
}

// NewGeradorRelogio constrói o gerador com relógio e fonte aleatória reais.
func NewGeradorRelogio() *GeradorRelogio {
	return &GeradorRelogio{
		Agora:     time.Now,
		Aleatorio: rand.Intn,
	}
}

// NovoID gera o próximo identificador de venda.
func (g *GeradorRelogio) NovoID() string {
	millis := fmt.Sprintf("%d", g.Agora().UnixMilli())
	if len(millis) > 8 {
		millis = millis[len(millis)-8:]
	}
	return fmt.Sprintf("V%s%02d", millis, g.Aleatorio(100))
}
