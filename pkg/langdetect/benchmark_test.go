package langdetect_test

import (
	"testing"

	"github.com/yaklabco/gomdparse/pkg/langdetect"
)

func BenchmarkDetect(b *testing.B) {
	samples := map[string]string{
		"go":     "package main\n\nimport \"fmt\"\n\nfunc main() {\n\tfmt.Println(\"Hello, World!\")\n}",
		"python": "def hello():\n    print(\"Hello, World!\")\n\nif __name__ == \"__main__\":\n    hello()",
		"json":   "{\n  \"name\": \"test\",\n  \"version\": \"1.0.0\"\n}",
		"text":   "hello",
	}
	for name, code := range samples {
		b.Run(name, func(b *testing.B) {
			for range b.N {
				langdetect.Detect(code)
			}
		})
	}
}
