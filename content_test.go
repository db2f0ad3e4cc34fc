package gonmea_test

import (
	"strings"
	"testing"

	gonmea "github.com/reoring/gonmea"
)

func TestContent_SentenceHeader(t *testing.T) {
	expectCode(t, sentence("gpGGA,1"), gonmea.E010, 1)
	expectCode(t, sentence("GPgga,1"), gonmea.E012, 3)
	expectCode(t, encapsulated("aiVDM,1"), gonmea.E010, 1)
	expectCode(t, sentence("Pgrme,1"), gonmea.E011, 2)
	expectCode(t, sentence("PGRmE,1"), gonmea.E011, 2)
}

func TestContent_ReservedInData(t *testing.T) {
	line := sentence("GPGGA,12~519,4807.038,N,01131.000,E,1,08,0.9,545.4,M,46.9,M,,")
	expectCode(t, line, gonmea.E008, strings.IndexByte(line, '~'))

	caret := sentence("GPGLL,4916.45,N,12311.12,W,225^444,A")
	expectCode(t, caret, gonmea.E008, strings.IndexByte(caret, '^'))

	// proprietary sentences may carry '^' but no other reserved character
	expectCode(t, sentence("PGRME,15.0,M,4^5,M"), gonmea.E000, 0)
	tilde := sentence("PGRME,15.0,M,4~5,M")
	expectCode(t, tilde, gonmea.E008, strings.IndexByte(tilde, '~'))
}

func TestContent_Query(t *testing.T) {
	expectCode(t, sentence("IIGPQ,GGA"), gonmea.E000, 0)
	expectCode(t, sentence("iiGPQ,GGA"), gonmea.E010, 1)
	expectCode(t, sentence("IIgpQ,GGA"), gonmea.E010, 3)
	expectCode(t, sentence("IIGPQ,gga"), gonmea.E012, 7)

	extra := sentence("IIGPQ,GGA,1")
	expectCode(t, extra, gonmea.E015, strings.IndexByte(extra, '*'))
	none := sentence("IIGPQ")
	expectCode(t, none, gonmea.E015, strings.IndexByte(none, '*'))
}

func TestContent_TagBlock(t *testing.T) {
	cases := []struct {
		tag    string
		code   gonmea.ErrorCode
		offset int
	}{
		{"c:1692004500", gonmea.E000, 0},
		{"n:12,r:1", gonmea.E000, 0},
		{"d:SHIP01,s:r3669961", gonmea.E000, 0},
		{"t:free text", gonmea.E000, 0},
		{"g:1-2-3", gonmea.E000, 0},
		{"c:abc", gonmea.E031, 3},
		{"x:1", gonmea.E027, 1},
		{"c:1,q:2", gonmea.E027, 5},
		{"s", gonmea.E028, 2},
		{"sx1", gonmea.E028, 2},
		{"s:ABCDEFGHIJKLMNOP", gonmea.E029, 3},
		{"s:ab-c", gonmea.E030, 5},
		{"g:1-2", gonmea.E032, 6},
		{"g:1+2-3", gonmea.E032, 4},
		{"g:1-2-x", gonmea.E031, 7},
		{"g:a-2-3", gonmea.E031, 3},
		{"g:1-2-3x", gonmea.E031, 8},
	}
	for _, tc := range cases {
		expectCode(t, tagBlock(tc.tag)+ggaOK, tc.code, tc.offset)
	}
}
