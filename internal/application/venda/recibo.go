package venda

import (
	"context"

	"github.com/estoquepro/backoffice-api/internal/domain"
	"github.com/estoquepro/backoffice-api/internal/domain/repository"
)

// ReciboUseCase gera o recibo em PDF de uma venda existente.
type ReciboUseCase struct {
	vendaRepo repository.VendaRepository
	gerador   ReciboPDFGenerator
}

// NewReciboUseCase constrói o caso de uso.
func NewReciboUseCase(vendaRepo repository.VendaRepository, gerador ReciboPDFGenerator) *ReciboUseCase {
	return &ReciboUseCase{vendaRepo: vendaRepo, gerador: gerador}
}

// Gerar carrega a venda com itens e delega ao gerador de PDF.
func (uc *ReciboUseCase) Gerar(ctx context.Context, vendaID string) ([]byte, error) {
	venda, err := uc.vendaRepo.BuscarPorID(vendaID)
	if err != nil {
		return nil, err
	}
	if venda == nil {
		return nil, domain.ErrNaoEncontrado
	}
	itens, err := uc.vendaRepo.ListarItens(vendaID)
	if err != nil {
		return nil, err
	}
	return uc.gerador.GerarRecibo(ctx, venda, itens)
}
