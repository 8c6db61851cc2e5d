package venda_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/estoquepro/backoffice-api/internal/domain"
	"github.com/estoquepro/backoffice-api/internal/domain/venda"
)

// TestGeradorRelogio_Formato verifica o formato do ID com relógio e fonte
// aleatória injetados: "V" + 8 últimos dígitos do timestamp em milissegundos
// + sufixo de 2 dígitos.
func TestGeradorRelogio_Formato(t *testing.T) {
	// 2024-03-15 12:00:00 UTC => UnixMilli 1710504000000, últimos 8: 04000000
	instante := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	g := &venda.GeradorRelogio{
		Agora:     func() time.Time { return instante },
		Aleatorio: func(n int) int { return 7 },
	}

	id := g.NovoID()
	assert.Equal(t, "V0400000007", id, "ID deve concatenar prefixo V, 8 dígitos do relógio e sufixo com zero à esquerda")
	assert.LessOrEqual(t, len(id), 20, "ID deve caber em varchar(20)")
}

// TestGeradorRelogio_SufixoDoisDigitos garante o zero à esquerda no sufixo.
func TestGeradorRelogio_SufixoDoisDigitos(t *testing.T) {
	instante := time.UnixMilli(99999999) // menos de 8 dígitos não é truncado
	g := &venda.GeradorRelogio{
		Agora:     func() time.Time { return instante },
		Aleatorio: func(n int) int { return 3 },
	}
	assert.Equal(t, "V9999999903", g.NovoID())
}

func TestNovaItemRef_ExatamenteUmaReferencia(t *testing.T) {
	ref, err := venda.NovaItemRef("P1", "", "")
	require.NoError(t, err)
	assert.Equal(t, venda.RefProduto, ref.Tipo)
	assert.Equal(t, "P1", ref.ID)

	ref, err = venda.NovaItemRef("", "C1", "")
	require.NoError(t, err)
	assert.Equal(t, venda.RefConjunto, ref.Tipo)

	ref, err = venda.NovaItemRef("", "", "K1")
	require.NoError(t, err)
	assert.Equal(t, venda.RefKit, ref.Tipo)
}

func TestNovaItemRef_ReferenciaAusenteOuAmbigua(t *testing.T) {
	_, err := venda.NovaItemRef("", "", "")
	assert.ErrorIs(t, err, domain.ErrEntradaInvalida, "item sem nenhuma referência deve ser rejeitado")

	_, err = venda.NovaItemRef("P1", "C1", "")
	assert.ErrorIs(t, err, domain.ErrEntradaInvalida, "item com mais de uma referência deve ser rejeitado")

	_, err = venda.NovaItemRef("P1", "C1", "K1")
	assert.ErrorIs(t, err, domain.ErrEntradaInvalida)
}

func TestNormalizarTipo(t *testing.T) {
	assert.Equal(t, venda.TipoFisica, venda.NormalizarTipo("fisica"))
	assert.Equal(t, venda.TipoOnline, venda.NormalizarTipo("online"))
	assert.Equal(t, venda.TipoOnline, venda.NormalizarTipo(""), "canal ausente assume online")
	assert.Equal(t, venda.TipoOnline, venda.NormalizarTipo("balcao"), "canal desconhecido assume online")
}

func TestNormalizarQuantidade(t *testing.T) {
	assert.Equal(t, 1, venda.NormalizarQuantidade(0))
	assert.Equal(t, 1, venda.NormalizarQuantidade(-3))
	assert.Equal(t, 5, venda.NormalizarQuantidade(5))
}

func TestAjusteResultado_String(t *testing.T) {
	assert.Equal(t, "aplicado", venda.AjusteAplicado.String())
	assert.Equal(t, "ignorado_sem_registro", venda.AjusteIgnoradoSemRegistro.String())
	assert.Equal(t, "ignorado_nao_encontrado", venda.AjusteIgnoradoNaoEncontrado.String())
}
