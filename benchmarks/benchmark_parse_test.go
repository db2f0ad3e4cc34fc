package gonmea_test

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	gonmea "github.com/reoring/gonmea"
	"github.com/reoring/gonmea/catalog"
)

// ---- Helpers ----

func withChecksum(marker byte, body string) []byte {
	var sum byte
	for i := 0; i < len(body); i++ {
		sum ^= body[i]
	}
	return []byte(fmt.Sprintf("%c%s*%02X\r\n", marker, body, sum))
}

var (
	lineGGA = withChecksum('$', "GPGGA,123519,4807.038,N,01131.000,E,1,08,0.9,545.4,M,46.9,M,,")
	lineGSV = withChecksum('$', "GPGSV,3,1,11,03,03,111,00,04,15,270,00,06,01,010,00,13,06,292,00")
	lineVDM = withChecksum('!', "AIVDM,1,1,,B,15M67FC000G?ufbE`FepT@3n00Sa,0")
	lineTag = append(tagBlock("g:1-2-73874,n:157036,s:r003669945,c:1241544035"), lineVDM...)
	lineBad = bytes.Replace(lineGGA, []byte("*47"), []byte("*00"), 1)
)

func tagBlock(body string) []byte {
	line := withChecksum('\\', body)
	line[len(line)-2] = '\\'
	return line[:len(line)-1]
}

// generateStream returns n lines cycling through the sample sentences.
func generateStream(n int) []byte {
	samples := [][]byte{lineGGA, lineGSV, lineVDM, lineBad}
	var buf bytes.Buffer
	buf.Grow(n * 80)
	for i := 0; i < n; i++ {
		buf.Write(samples[i%len(samples)])
	}
	return buf.Bytes()
}

// ---- Benchmarks ----

func BenchmarkValidate_Sentences(b *testing.B) {
	cat := catalog.Default()
	cases := []struct {
		name string
		line []byte
	}{
		{"GGA", lineGGA},
		{"GSV", lineGSV},
		{"VDM", lineVDM},
		{"TagBlock+VDM", lineTag},
		{"ChecksumError", lineBad},
	}
	for _, c := range cases {
		b.Run(c.name, func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(len(c.line)))
			for i := 0; i < b.N; i++ {
				_ = gonmea.Validate(c.line, cat)
			}
		})
	}
}

func BenchmarkNmea_Parse(b *testing.B) {
	n := gonmea.New(catalog.Default())
	b.ReportAllocs()
	b.SetBytes(int64(len(lineGGA)))
	for i := 0; i < b.N; i++ {
		if err := n.Parse(lineGGA); err != nil {
			b.Fatalf("parse: %v", err)
		}
	}
}

func BenchmarkValidate_Parallel(b *testing.B) {
	cat := catalog.Default()
	b.ReportAllocs()
	b.SetBytes(int64(len(lineGGA)))
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			_ = gonmea.Validate(lineGGA, cat)
		}
	})
}

func BenchmarkValidateStream(b *testing.B) {
	cat := catalog.Default()
	for _, n := range []int{1_000, 100_000} {
		data := generateStream(n)
		b.Run(fmt.Sprintf("lines=%d", n), func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(len(data)))
			for i := 0; i < b.N; i++ {
				err := gonmea.ValidateStream(context.Background(), bytes.NewReader(data), cat,
					func(int, []byte, error) error { return nil })
				if err != nil {
					b.Fatalf("stream: %v", err)
				}
			}
		})
	}
}
