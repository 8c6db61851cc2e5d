package usecase

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// removeAcentos NFD + remoção de marcas combinantes + NFC. O catálogo é em
// português; "saia lápis" precisa casar com "saia lapis".
var removeAcentos = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// normalizarBusca prepara um texto para comparação sem acentos e sem caixa.
func normalizarBusca(s string) string {
	out, _, err := transform.String(removeAcentos, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(out)
}

// contemBusca verifica se o texto contém o termo, ignorando acentos e caixa.
func contemBusca(texto, termo string) bool {
	return strings.Contains(normalizarBusca(texto), normalizarBusca(termo))
}
