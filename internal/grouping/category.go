// Package grouping particiona registros em baldes ordenados com agregados por balde.
package grouping

// CategoryBucket é um balde de uma categoria declarada
type CategoryBucket[T any] struct {
	Key     string
	Records []T
	Count   int
	Value   float64
}

// CategoryGrouping mantém um balde por categoria, inclusive vazios.
// Registros com chave fora das categorias ficam em Unclassified.
type CategoryGrouping[T any] struct {
	Buckets      []CategoryBucket[T]
	Unclassified []T
}

// ByCategory agrupa os registros pelas categorias na ordem recebida.
// A ordem dos registros dentro de cada balde é a ordem de entrada.
func ByCategory[T any](records []T, categories []string, key func(T) string, value func(T) float64) CategoryGrouping[T] {
	index := make(map[string]int, len(categories))
	buckets := make([]CategoryBucket[T], len(categories))
	for i, c := range categories {
		index[c] = i
		buckets[i] = CategoryBucket[T]{Key: c, Records: []T{}}
	}

	grouping := CategoryGrouping[T]{Buckets: buckets}
	for _, record := range records {
		i, ok := index[key(record)]
		if !ok {
			grouping.Unclassified = append(grouping.Unclassified, record)
			continue
		}

		b := &grouping.Buckets[i]
		b.Records = append(b.Records, record)
		b.Count++
		if value != nil {
			b.Value += value(record)
		}
	}

	return grouping
}

// Total soma a contagem de todos os baldes, sem os não classificados
func (g CategoryGrouping[T]) Total() int {
	total := 0
	for _, b := range g.Buckets {
		total += b.Count
	}
	return total
}
