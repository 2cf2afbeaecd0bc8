// Package match implementa o casamento aproximado de rótulos de local contra
// as chaves do inventário inicial (distância de edição de Levenshtein).
package match

// Threshold é a distância máxima aceita para considerar duas chaves o mesmo
// local. Acima disso BestMatch devolve ausência.
const Threshold = 3

// Levenshtein calcula a distância de edição clássica (inserção, remoção e
// substituição com custo unitário) em O(len(a)*len(b)) de tempo e
// O(min(len(a),len(b))) de espaço, com uma única linha rolante.
func Levenshtein(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	// A linha rolante indexa a string mais curta.
	if len(ra) < len(rb) {
		ra, rb = rb, ra
	}
	if len(rb) == 0 {
		return len(ra)
	}

	row := make([]int, len(rb)+1)
	for j := range row {
		row[j] = j
	}

	for i := 1; i <= len(ra); i++ {
		prev := row[0] // row[j-1] da linha anterior
		row[0] = i
		for j := 1; j <= len(rb); j++ {
			cur := row[j]
			cost := 1
			if ra[i-1] == rb[j-1] {
				cost = 0
			}
			row[j] = min3(row[j]+1, row[j-1]+1, prev+cost)
			prev = cur
		}
	}
	return row[len(rb)]
}

// BestMatch devolve a chave com menor distância de edição até candidate,
// desde que a distância mínima não passe de Threshold. keys deve vir em ordem
// lexical: entre mínimos empatados vence a primeira chave na iteração, o que
// torna o resultado determinístico.
func BestMatch(candidate string, keys []string) (string, bool) {
	best := ""
	bestDist := -1
	for _, k := range keys {
		d := Levenshtein(candidate, k)
		if bestDist < 0 || d < bestDist {
			best, bestDist = k, d
		}
	}
	if bestDist < 0 || bestDist > Threshold {
		return "", false
	}
	return best, true
}

func min3(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}
