package venda

import (
	"context"
	"time"

	"github.com/estoquepro/backoffice-api/internal/application/dto"
	"github.com/estoquepro/backoffice-api/internal/domain"
	"github.com/estoquepro/backoffice-api/internal/domain/entity"
	"github.com/estoquepro/backoffice-api/internal/domain/repository"
	domvenda "github.com/estoquepro/backoffice-api/internal/domain/venda"
)

// ConsultaVendaUseCase leituras e manutenção do cabeçalho de vendas.
// Atualização e exclusão não reexecutam ajuste de estoque.
type ConsultaVendaUseCase struct {
	vendaRepo repository.VendaRepository
	txRunner  TxRunner
}

// NewConsultaVendaUseCase constrói o caso de uso.
func NewConsultaVendaUseCase(vendaRepo repository.VendaRepository, txRunner TxRunner) *ConsultaVendaUseCase {
	return &ConsultaVendaUseCase{vendaRepo: vendaRepo, txRunner: txRunner}
}

// Listar devolve todas as vendas com seus itens e nomes resolvidos.
func (uc *ConsultaVendaUseCase) Listar() ([]*dto.VendaResponse, error) {
	vendas, err := uc.vendaRepo.Listar()
	if err != nil {
		return nil, err
	}
	return uc.comItens(vendas)
}

// ListarPorPeriodo filtra cabeçalhos por data_venda; datas em "2006-01-02".
func (uc *ConsultaVendaUseCase) ListarPorPeriodo(dataInicio, dataFim string) ([]*dto.VendaResponse, error) {
	var inicio, fim *time.Time
	if dataInicio != "" {
		t, err := time.Parse(formatoData, dataInicio)
		if err != nil {
			return nil, domain.ErrEntradaInvalida
		}
		inicio = &t
	}
	if dataFim != "" {
		t, err := time.Parse(formatoData, dataFim)
		if err != nil {
			return nil, domain.ErrEntradaInvalida
		}
		fim = &t
	}
	vendas, err := uc.vendaRepo.ListarPorPeriodo(inicio, fim)
	if err != nil {
		return nil, err
	}
	out := make([]*dto.VendaResponse, 0, len(vendas))
	for _, v := range vendas {
		out = append(out, vendaParaResponse(v, nil))
	}
	return out, nil
}

// BuscarPorID devolve a venda com itens; nil quando não existe.
func (uc *ConsultaVendaUseCase) BuscarPorID(id string) (*dto.VendaResponse, error) {
	v, err := uc.vendaRepo.BuscarPorID(id)
	if err != nil {
		return nil, err
	}
	if v == nil {
		return nil, nil
	}
	itens, err := uc.vendaRepo.ListarItens(id)
	if err != nil {
		return nil, err
	}
	return vendaParaResponse(v, itens), nil
}

// Atualizar grava o cabeçalho; nil quando a venda não existe.
func (uc *ConsultaVendaUseCase) Atualizar(id string, in dto.AtualizarVendaRequest) (*dto.VendaResponse, error) {
	dataVenda := time.Now()
	if in.DataVenda != "" {
		parsed, err := time.Parse(formatoData, in.DataVenda)
		if err != nil {
			return nil, domain.ErrEntradaInvalida
		}
		dataVenda = parsed
	}
	var afiliadoID *string
	if in.AfiliadoID != "" {
		afiliadoID = &in.AfiliadoID
	}
	v := &entity.Venda{
		ID:          id,
		AfiliadoID:  afiliadoID,
		Tipo:        domvenda.NormalizarTipo(in.TipoVenda),
		Total:       in.ValorTotal,
		DataVenda:   dataVenda,
		Observacoes: in.Observacoes,
	}
	out, err := uc.vendaRepo.Atualizar(v)
	if err != nil {
		return nil, err
	}
	if out == nil {
		return nil, nil
	}
	return vendaParaResponse(out, nil), nil
}

// Remover exclui itens e cabeçalho na mesma transação. Os decrementos de
// estoque aplicados na criação NÃO são revertidos.
func (uc *ConsultaVendaUseCase) Remover(ctx context.Context, id string) error {
	return uc.txRunner.Run(ctx, func(
		vendaRepo repository.VendaRepository,
		_ repository.ProdutoRepository,
		_ repository.AfiliadoEstoqueRepository,
		_ repository.KitRepository,
		_ repository.ConjuntoRepository,
	) error {
		if err := vendaRepo.RemoverItens(id); err != nil {
			return err
		}
		removida, err := vendaRepo.Remover(id)
		if err != nil {
			return err
		}
		if !removida {
			return domain.ErrNaoEncontrado
		}
		return nil
	})
}

func (uc *ConsultaVendaUseCase) comItens(vendas []*entity.Venda) ([]*dto.VendaResponse, error) {
	out := make([]*dto.VendaResponse, 0, len(vendas))
	for _, v := range vendas {
		itens, err := uc.vendaRepo.ListarItens(v.ID)
		if err != nil {
			return nil, err
		}
		out = append(out, vendaParaResponse(v, itens))
	}
	return out, nil
}
