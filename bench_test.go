package frozen

import (
	"strconv"
	"testing"
)

func benchmarkStdMapInsert(factor int, b *testing.B) {
	m := map[string]*string{}
	for n := 0; n < factor*b.N; n++ {
		k := strconv.Itoa(n)
		m[k] = &k
	}
}

func BenchmarkStdMapInsert1(b *testing.B)    { benchmarkStdMapInsert(1, b) }
func BenchmarkStdMapInsert1k(b *testing.B)   { benchmarkStdMapInsert(1_000, b) }
func BenchmarkStdMapInsert100k(b *testing.B) { benchmarkStdMapInsert(100_000, b) }

func benchmarkInsert(factor int, b *testing.B) {
	s := newStringSet()
	for n := 0; n < factor*b.N; n++ {
		s.Insert(NewBox(strconv.Itoa(n)))
	}
}

func BenchmarkInsert1(b *testing.B)    { benchmarkInsert(1, b) }
func BenchmarkInsert1k(b *testing.B)   { benchmarkInsert(1_000, b) }
func BenchmarkInsert100k(b *testing.B) { benchmarkInsert(100_000, b) }

func benchmarkGet(factor int, b *testing.B) {
	s := newStringSet()
	b.StopTimer()
	for n := 0; n < factor*b.N; n++ {
		s.Insert(NewBox(strconv.Itoa(n)))
	}
	b.StartTimer()
	for n := 0; n < factor*b.N; n++ {
		_, _ = s.Get(NewBox(strconv.Itoa(n)))
	}
}

func BenchmarkGet1(b *testing.B)    { benchmarkGet(1, b) }
func BenchmarkGet1k(b *testing.B)   { benchmarkGet(1_000, b) }
func BenchmarkGet100k(b *testing.B) { benchmarkGet(100_000, b) }

func benchmarkGetIndex(factor int, b *testing.B) {
	s := newStringSet()
	b.StopTimer()
	for n := 0; n < factor*b.N; n++ {
		s.Insert(NewBox(strconv.Itoa(n)))
	}
	b.StartTimer()
	for n := 0; n < factor*b.N; n++ {
		_, _ = s.GetIndex(n)
	}
}

func BenchmarkGetIndex1k(b *testing.B)   { benchmarkGetIndex(1_000, b) }
func BenchmarkGetIndex100k(b *testing.B) { benchmarkGetIndex(100_000, b) }
