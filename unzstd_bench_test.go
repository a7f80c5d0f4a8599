package unzstd

import (
	"bytes"
	"fmt"
	"testing"
)

var benchInput = bytes.Repeat([]byte("Lorem ipsum dolor sit amet, consectetur adipiscing elit. "), 512)

func BenchmarkDecompress(b *testing.B) {
	frame := compress(b, benchInput)
	d, err := NewDecompressor(nil)
	if err != nil {
		b.Fatal(err)
	}
	defer d.Close()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = d.Decompress(frame, 0)
	}
}

func BenchmarkDecompressBounded(b *testing.B) {
	frame := compressNoSize(b, benchInput)
	d, err := NewDecompressor(nil)
	if err != nil {
		b.Fatal(err)
	}
	defer d.Close()

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = d.Decompress(frame, len(benchInput))
	}
}

func BenchmarkDecompressMultiFrame(b *testing.B) {
	frames := []int{1, 2, 4, 8}
	for _, count := range frames {
		var input []byte
		for i := 0; i < count; i++ {
			input = append(input, compress(b, benchInput)...)
		}
		d, err := NewDecompressor(MultiFrameOptions())
		if err != nil {
			b.Fatal(err)
		}
		defer d.Close()

		b.Run(fmt.Sprintf("Frames=%d", count), func(b *testing.B) {
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_, _ = d.Decompress(input, 0)
			}
		})
	}
}

func BenchmarkFrameSize(b *testing.B) {
	frame := compress(b, benchInput)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = FrameSize(frame, FormatZstd1)
	}
}
