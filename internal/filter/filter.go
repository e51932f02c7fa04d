// Package filter aplica busca textual e filtro de status sobre listas de registros.
package filter

import "strings"

// StatusAll desativa o filtro de status
const StatusAll = "All"

// Query combina o texto de busca e o status selecionado
type Query struct {
	Text   string `json:"q"`
	Status string `json:"status"`
}

// Fields descreve como extrair os campos pesquisáveis e o status de um registro
type Fields[T any] struct {
	Search func(T) []string
	Status func(T) string
}

// Apply retorna os registros que casam com a busca E com o status, preservando a ordem.
// A busca é uma substring sem diferenciar maiúsculas; status vazio equivale a "All".
func Apply[T any](records []T, q Query, fields Fields[T]) []T {
	text := strings.ToLower(q.Text)

	result := make([]T, 0, len(records))
	for _, record := range records {
		if !matchesStatus(record, q.Status, fields) {
			continue
		}
		if text != "" && !matchesSearch(record, text, fields) {
			continue
		}
		result = append(result, record)
	}
	return result
}

func matchesStatus[T any](record T, status string, fields Fields[T]) bool {
	if status == "" || status == StatusAll || fields.Status == nil {
		return true
	}
	return fields.Status(record) == status
}

// matchesSearch espera o texto já em minúsculas
func matchesSearch[T any](record T, text string, fields Fields[T]) bool {
	if fields.Search == nil {
		return false
	}
	for _, value := range fields.Search(record) {
		if strings.Contains(strings.ToLower(value), text) {
			return true
		}
	}
	return false
}
