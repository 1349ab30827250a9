package backup_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"garantias/internal/application/backup"
	"garantias/internal/domain"
	"garantias/internal/domain/entity"
)

func TestDecode_BytesQueNaoSaoJSON(t *testing.T) {
	codec := backup.NewCodec(newFakeStore().repos())

	_, err := codec.Decode([]byte("isto não é json"))
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrSintaxe)

	_, err = codec.Decode([]byte("{truncado"))
	assert.ErrorIs(t, err, domain.ErrSintaxe)

	_, err = codec.Decode(nil)
	assert.ErrorIs(t, err, domain.ErrSintaxe)
}

func TestDecode_JSONValidoComFormaErrada(t *testing.T) {
	codec := backup.NewCodec(newFakeStore().repos())

	casos := []string{
		`"uma string"`,
		`42`,
		`{"qualquer": "coisa"}`,
		`[]`,
		`[{"nome": "não é garantia"}]`,
		`[1, 2, 3]`,
	}
	for _, raw := range casos {
		_, err := codec.Decode([]byte(raw))
		require.Error(t, err, "entrada: %s", raw)
		assert.ErrorIs(t, err, domain.ErrValidacao, "entrada: %s", raw)
	}
}

func TestDecode_FormaAtual(t *testing.T) {
	codec := backup.NewCodec(newFakeStore().repos())

	raw := `{
		"warranties": [
			{"id": 7, "codigo": "AM-100", "descricao": "Amortecedor", "status": "Aprovada"},
			{"codigo": "FR-200", "defeito": "vazamento"}
		],
		"persons": [{"id": 3, "nome": "João", "tipo": "mecanico"}],
		"companyData": {"nome": "Autopeças Silva", "cnpj": "00.000.000/0001-00"}
	}`
	doc, err := codec.Decode([]byte(raw))
	require.NoError(t, err)
	require.Len(t, doc.Warranties, 2)
	assert.Equal(t, int64(7), doc.Warranties[0].ID)
	assert.Equal(t, "AM-100", doc.Warranties[0].Codigo)
	require.Len(t, doc.Persons, 1)
	assert.Equal(t, "João", doc.Persons[0].Nome)
	require.NotNil(t, doc.CompanyData)
	assert.Equal(t, "Autopeças Silva", doc.CompanyData.Nome)
	assert.Empty(t, doc.Suppliers)
	assert.Empty(t, doc.Lotes)
	assert.Empty(t, doc.Devolucoes)
}

func TestDecode_FormaAtualAceitaMembroUnico(t *testing.T) {
	codec := backup.NewCodec(newFakeStore().repos())

	doc, err := codec.Decode([]byte(`{"lotes": []}`))
	require.NoError(t, err)
	assert.Empty(t, doc.Lotes)
	assert.Empty(t, doc.Warranties)
}

func TestDecode_ArrayLegadoViraWarranties(t *testing.T) {
	codec := backup.NewCodec(newFakeStore().repos())

	raw := `[
		{"codigo": "A1", "descricao": "Bomba d'água", "fornecedor": "ACME"},
		{"descricao": "Alternador", "defeito": "não liga", "quantidade": 2}
	]`
	doc, err := codec.Decode([]byte(raw))
	require.NoError(t, err)
	require.Len(t, doc.Warranties, 2)
	assert.Equal(t, "A1", doc.Warranties[0].Codigo)
	assert.Equal(t, "não liga", doc.Warranties[1].Defeito)
	assert.Empty(t, doc.Persons)
	assert.Nil(t, doc.CompanyData)
}

func TestDecode_ArrayLegadoExigeCodigoOuDescricao(t *testing.T) {
	codec := backup.NewCodec(newFakeStore().repos())

	// fornecedor e defeito também existem em garantias, mas sozinhos não
	// identificam uma: um export de fornecedores não pode virar warranties
	casos := []string{
		`[{"fornecedor": "ACME Autopeças"}]`,
		`[{"defeito": "vazamento"}]`,
		`[{"fornecedor": "ACME", "cnpj": "00.000.000/0001-00", "contato": "Zé"}]`,
	}
	for _, raw := range casos {
		_, err := codec.Decode([]byte(raw))
		require.Error(t, err, "entrada: %s", raw)
		assert.ErrorIs(t, err, domain.ErrValidacao, "entrada: %s", raw)
	}
}

func TestDecode_ArrayLegadoRejeitaElementoEstranho(t *testing.T) {
	codec := backup.NewCodec(newFakeStore().repos())

	// basta um elemento sem nenhum campo de garantia para rejeitar o arquivo
	raw := `[
		{"codigo": "A1"},
		{"campoDesconhecido": true}
	]`
	_, err := codec.Decode([]byte(raw))
	assert.ErrorIs(t, err, domain.ErrValidacao)
}

func TestExport_DocumentoAutossuficiente(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	agora := time.Now()

	require.NoError(t, store.garantias.Create(ctx, &entity.Garantia{
		Codigo: "AM-100", Descricao: "Amortecedor", CriadoEm: agora, Status: entity.StatusGarantiaEmAnalise,
	}))
	require.NoError(t, store.devolucoes.Create(ctx, &entity.Devolucao{
		Numero: "DEV-1", Cliente: "Oficina do Zé", CriadoEm: agora,
		Itens: []entity.ItemDevolucao{
			{Codigo: "FR-200", Descricao: "Pastilha", Quantidade: 2},
		},
	}))
	require.NoError(t, store.empresa.Save(ctx, &entity.DadosEmpresa{Nome: "Autopeças Silva"}))

	codec := backup.NewCodec(store.repos())
	doc, err := codec.Export(ctx)
	require.NoError(t, err)

	require.Len(t, doc.Warranties, 1)
	assert.Equal(t, int64(1), doc.Warranties[0].ID, "identificador de topo é mantido no export")
	require.Len(t, doc.Devolucoes, 1)
	require.Len(t, doc.Devolucoes[0].Itens, 1)
	assert.Equal(t, "FR-200", doc.Devolucoes[0].Itens[0].Codigo)
	require.NotNil(t, doc.CompanyData)
	assert.Equal(t, "Autopeças Silva", doc.CompanyData.Nome)
	assert.Empty(t, doc.Persons)
	assert.Empty(t, doc.Lotes)
	assert.Empty(t, doc.Suppliers)
}
