package chatfmt

import (
	"os"
	"strings"
	"testing"
)

func mustReadSample(b *testing.B, path string) string {
	b.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		b.Fatalf("read %s: %v", path, err)
	}
	return string(data)
}

func BenchmarkEscapeInjection(b *testing.B) {
	src := mustReadSample(b, "testdata/injection.txt")
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = EscapeString(src)
	}
}

func BenchmarkEscapePlain(b *testing.B) {
	src := strings.Repeat("plain chat text without markup ", 64)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = EscapeString(src)
	}
}

func BenchmarkNumberedList(b *testing.B) {
	items := strings.Split(mustReadSample(b, "testdata/injection.txt"), "\n")
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = NumberedList(items...)
	}
}
