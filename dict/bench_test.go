package dict

import (
	"testing"

	"github.com/brianvoe/gofakeit/v6"
)

func BenchmarkGoMap_Set(b *testing.B) {
	var (
		keys = getKeys(b.N)
		m    = make(map[string]string)
	)

	b.ResetTimer()

	for _, key := range keys {
		m[key] = key
	}
}

func BenchmarkGoMap_Get(b *testing.B) {
	var (
		keys = getKeys(b.N)
		m    = make(map[string]string)
	)

	for _, key := range keys {
		m[key] = key
	}

	b.ResetTimer()

	for _, key := range keys {
		_ = m[key]
	}
}

func BenchmarkDict_Set(b *testing.B) {
	var (
		keys = getKeys(b.N)
		dict = New()
	)

	b.ResetTimer()

	for _, key := range keys {
		dict.Set(key, key)
	}
}

func BenchmarkDict_Get(b *testing.B) {
	var (
		keys = getKeys(b.N)
		dict = New()
	)

	for _, key := range keys {
		dict.Set(key, key)
	}

	b.ResetTimer()

	for _, key := range keys {
		_, _ = dict.Get(key)
	}
}

func BenchmarkDict_ValueAt(b *testing.B) {
	var (
		keys = getKeys(1024)
		dict = New(WithCapacity(len(keys)))
	)

	for _, key := range keys {
		dict.Set(key, key)
	}

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = dict.ValueAt(i % dict.Len())
	}
}

func BenchmarkDict_Equal(b *testing.B) {
	var (
		keys = getKeys(1024)
		x, y = New(), New()
	)

	for i := range keys {
		x.Set(keys[i], keys[i])
		y.Set(keys[len(keys)-1-i], keys[len(keys)-1-i])
	}

	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = x.Equal(y)
	}
}

func getKeys(total int) []string {
	const seed = 1234567890

	var (
		faker = gofakeit.New(seed)
		keys  = make([]string, total)
	)

	for i := range keys {
		keys[i] = faker.Sentence(4)
	}

	return keys
}
