// Package busca implementa a normalização de texto e a busca inteligente
// compartilhada por todas as telas de listagem e pelo combobox de produtos.
// É a única implementação: todo filtro da aplicação usa a mesma semântica.
package busca

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// removeAcentos decompõe (NFD), descarta as marcas combinantes e recompõe (NFC).
var removeAcentos = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Normalizar deixa o valor minúsculo, sem acentos e sem espaços nas pontas.
// Valor vazio normaliza para string vazia.
func Normalizar(valor string) string {
	s := strings.ToLower(strings.TrimSpace(valor))
	if s == "" {
		return ""
	}
	out, _, err := transform.String(removeAcentos, s)
	if err != nil {
		// transformação falhou (sequência inválida); segue com o valor minúsculo
		return s
	}
	return out
}

// Corresponde devolve true incondicionalmente quando o termo normaliza para vazio;
// caso contrário, true sse o termo normalizado é substring do valor normalizado de
// ao menos um dos campos. Campos podem ser de tipos escalares mistos (string,
// número): são convertidos para texto antes da normalização.
func Corresponde(termo string, campos ...any) bool {
	t := Normalizar(termo)
	if t == "" {
		return true
	}
	for _, campo := range campos {
		if campo == nil {
			continue
		}
		if strings.Contains(Normalizar(fmt.Sprint(campo)), t) {
			return true
		}
	}
	return false
}
