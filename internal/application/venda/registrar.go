package venda

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/estoquepro/backoffice-api/internal/application/dto"
	"github.com/estoquepro/backoffice-api/internal/domain"
	"github.com/estoquepro/backoffice-api/internal/domain/entity"
	"github.com/estoquepro/backoffice-api/internal/domain/repository"
	domvenda "github.com/estoquepro/backoffice-api/internal/domain/venda"
)

const formatoData = "2006-01-02"

// RegistrarVendaUseCase grava o cabeçalho da venda, seus itens e os ajustes
// de estoque de todos os produtos afetados em uma única transação. Qualquer
// falha desfaz tudo; não há retry nem idempotência — reenviar o mesmo request
// cria uma segunda venda com novo ID e reaplica os decrementos.
type RegistrarVendaUseCase struct {
	txRunner TxRunner
	gerador  domvenda.IDGenerator
}

// NewRegistrarVendaUseCase constrói o caso de uso. O gerador de ID é
// injetável para testar colisões de forma determinística.
func NewRegistrarVendaUseCase(txRunner TxRunner, gerador domvenda.IDGenerator) *RegistrarVendaUseCase {
	return &RegistrarVendaUseCase{txRunner: txRunner, gerador: gerador}
}

// itemVenda item já validado: referência como variante e quantidade normalizada.
type itemVenda struct {
	ref  domvenda.ItemRef
	item dto.VendaItemRequest
}

// Registrar valida o request, abre a transação e aplica o fluxo completo:
// insere o cabeçalho, insere cada item e resolve o impacto de estoque por
// tipo de referência (produto direto, conjunto ou kit).
func (uc *RegistrarVendaUseCase) Registrar(ctx context.Context, in dto.CriarVendaRequest) (*dto.VendaResponse, error) {
	if len(in.Produtos) == 0 {
		return nil, domain.ErrProdutosObrigatorios
	}

	itens := make([]itemVenda, 0, len(in.Produtos))
	for _, p := range in.Produtos {
		ref, err := domvenda.NovaItemRef(p.ProdutoID, p.ConjuntoID, p.KitID)
		if err != nil {
			return nil, err
		}
		p.Quantidade = domvenda.NormalizarQuantidade(p.Quantidade)
		itens = append(itens, itemVenda{ref: ref, item: p})
	}

	tipo := domvenda.NormalizarTipo(in.TipoVenda)
	var afiliadoID *string
	if in.AfiliadoID != "" {
		afiliadoID = &in.AfiliadoID
	}

	dataVenda := time.Now()
	if in.DataVenda != "" {
		parsed, err := time.Parse(formatoData, in.DataVenda)
		if err != nil {
			return nil, domain.ErrEntradaInvalida
		}
		dataVenda = parsed
	}

	venda := &entity.Venda{
		ID:          uc.gerador.NovoID(),
		AfiliadoID:  afiliadoID,
		Tipo:        tipo,
		Total:       in.ValorTotal,
		DataVenda:   dataVenda,
		Observacoes: in.Observacoes,
	}

	var criada *entity.Venda
	var ajustes []domvenda.Ajuste

	err := uc.txRunner.Run(ctx, func(
		vendaRepo repository.VendaRepository,
		produtoRepo repository.ProdutoRepository,
		estoqueRepo repository.AfiliadoEstoqueRepository,
		kitRepo repository.KitRepository,
		conjuntoRepo repository.ConjuntoRepository,
	) error {
		out, err := vendaRepo.Criar(venda)
		if err != nil {
			return err
		}
		criada = out

		for _, it := range itens {
			vendaItem := &entity.VendaItem{
				VendaID:       criada.ID,
				Quantidade:    it.item.Quantidade,
				PrecoUnitario: it.item.PrecoUnitario,
				Subtotal:      it.item.Subtotal,
			}
			switch it.ref.Tipo {
			case domvenda.RefProduto:
				vendaItem.ProdutoID = &it.ref.ID
			case domvenda.RefConjunto:
				vendaItem.ConjuntoID = &it.ref.ID
			case domvenda.RefKit:
				vendaItem.KitID = &it.ref.ID
			}
			if err := vendaRepo.CriarItem(vendaItem); err != nil {
				return err
			}

			feitos, err := uc.ajustarItem(produtoRepo, estoqueRepo, kitRepo, conjuntoRepo, tipo, afiliadoID, it)
			if err != nil {
				return err
			}
			ajustes = append(ajustes, feitos...)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	for _, a := range ajustes {
		if a.Resultado != domvenda.AjusteAplicado {
			log.Warn().
				Str("venda_id", criada.ID).
				Str("produto_id", a.ProdutoID).
				Int("quantidade", a.Quantidade).
				Str("resultado", a.Resultado.String()).
				Msg("ajuste de estoque ignorado")
		}
	}

	return vendaParaResponse(criada, nil), nil
}

// ajustarItem resolve o impacto de estoque de um item: produto direto recebe
// um ajuste; conjunto e kit expandem a composição e ajustam cada membro com
// quantidade_do_membro × quantidade_do_item. Composição vazia (cadastro
// removido) não gera ajuste nem erro.
func (uc *RegistrarVendaUseCase) ajustarItem(
	produtoRepo repository.ProdutoRepository,
	estoqueRepo repository.AfiliadoEstoqueRepository,
	kitRepo repository.KitRepository,
	conjuntoRepo repository.ConjuntoRepository,
	tipo string,
	afiliadoID *string,
	it itemVenda,
) ([]domvenda.Ajuste, error) {
	switch it.ref.Tipo {
	case domvenda.RefProduto:
		a, err := uc.ajustarEstoque(produtoRepo, estoqueRepo, tipo, afiliadoID, it.ref.ID, it.item.Quantidade)
		if err != nil {
			return nil, err
		}
		return []domvenda.Ajuste{a}, nil

	case domvenda.RefConjunto:
		membros, err := conjuntoRepo.ListarProdutos(it.ref.ID)
		if err != nil {
			return nil, err
		}
		var ajustes []domvenda.Ajuste
		for _, m := range membros {
			a, err := uc.ajustarEstoque(produtoRepo, estoqueRepo, tipo, afiliadoID, m.ProdutoID, m.Quantidade*it.item.Quantidade)
			if err != nil {
				return nil, err
			}
			ajustes = append(ajustes, a)
		}
		return ajustes, nil

	case domvenda.RefKit:
		membros, err := kitRepo.ListarProdutos(it.ref.ID)
		if err != nil {
			return nil, err
		}
		var ajustes []domvenda.Ajuste
		for _, m := range membros {
			a, err := uc.ajustarEstoque(produtoRepo, estoqueRepo, tipo, afiliadoID, m.ProdutoID, m.Quantidade*it.item.Quantidade)
			if err != nil {
				return nil, err
			}
			ajustes = append(ajustes, a)
		}
		return ajustes, nil
	}
	return nil, domain.ErrEntradaInvalida
}

// ajustarEstoque aplica a política de ajuste a um par (produto, quantidade).
//
// Venda física com afiliado: baixa primeiro a alocação do afiliado. Se o
// afiliado não mantém o produto, o ajuste é um no-op deliberado. Se o saldo
// restante fica <= 0, a alocação é removida e o estoque físico é decrementado
// pela quantidade PEDIDA (não pela mantida), limitado em zero. Se ainda sobra
// saldo, só a alocação muda — o estoque físico não é tocado nesse ramo; a
// baixa fica adiada até a alocação se esgotar (comportamento histórico do
// painel, mantido tal qual).
//
// Qualquer outro caso baixa o estoque do site, limitado em zero.
func (uc *RegistrarVendaUseCase) ajustarEstoque(
	produtoRepo repository.ProdutoRepository,
	estoqueRepo repository.AfiliadoEstoqueRepository,
	tipo string,
	afiliadoID *string,
	produtoID string,
	quantidade int,
) (domvenda.Ajuste, error) {
	ajuste := domvenda.Ajuste{ProdutoID: produtoID, Quantidade: quantidade}

	if tipo == domvenda.TipoFisica && afiliadoID != nil {
		alocacao, err := estoqueRepo.Buscar(produtoID, *afiliadoID)
		if err != nil {
			return ajuste, err
		}
		if alocacao == nil {
			ajuste.Resultado = domvenda.AjusteIgnoradoSemRegistro
			return ajuste, nil
		}
		restante := alocacao.Quantidade - quantidade
		if restante <= 0 {
			if err := estoqueRepo.Remover(produtoID, *afiliadoID); err != nil {
				return ajuste, err
			}
			ok, err := produtoRepo.DecrementarEstoqueFisico(produtoID, quantidade)
			if err != nil {
				return ajuste, err
			}
			if !ok {
				ajuste.Resultado = domvenda.AjusteIgnoradoNaoEncontrado
				return ajuste, nil
			}
			ajuste.Resultado = domvenda.AjusteAplicado
			return ajuste, nil
		}
		if err := estoqueRepo.Atualizar(produtoID, *afiliadoID, restante); err != nil {
			return ajuste, err
		}
		ajuste.Resultado = domvenda.AjusteAplicado
		return ajuste, nil
	}

	ok, err := produtoRepo.DecrementarEstoqueSite(produtoID, quantidade)
	if err != nil {
		return ajuste, err
	}
	if !ok {
		ajuste.Resultado = domvenda.AjusteIgnoradoNaoEncontrado
		return ajuste, nil
	}
	ajuste.Resultado = domvenda.AjusteAplicado
	return ajuste, nil
}

// vendaParaResponse converte a entidade em DTO de resposta.
func vendaParaResponse(v *entity.Venda, itens []*entity.VendaItem) *dto.VendaResponse {
	resp := &dto.VendaResponse{
		ID:           v.ID,
		DataVenda:    v.DataVenda,
		AfiliadoID:   v.AfiliadoID,
		AfiliadoNome: v.AfiliadoNome,
		ValorTotal:   v.Total,
		TipoVenda:    v.Tipo,
		Observacoes:  v.Observacoes,
	}
	for _, it := range itens {
		resp.Produtos = append(resp.Produtos, dto.VendaItemResponse{
			ID:            it.ID,
			ProdutoID:     it.ProdutoID,
			ConjuntoID:    it.ConjuntoID,
			KitID:         it.KitID,
			Quantidade:    it.Quantidade,
			PrecoUnitario: it.PrecoUnitario,
			Subtotal:      it.Subtotal,
			ProdutoNome:   it.ProdutoNome,
			ConjuntoNome:  it.ConjuntoNome,
			KitNome:       it.KitNome,
		})
	}
	return resp
}
