package eco

import (
	"strings"
	"testing"
)

func BenchmarkLoadFromReader(b *testing.B) {
	for i := 0; i < b.N; i++ {
		ec := NewECOClassifier()
		if err := ec.LoadFromReader(strings.NewReader(testECOData)); err != nil {
			b.Fatal(err)
		}
	}
}
