package gonmea_test

import (
	"strings"
	"testing"

	gonmea "github.com/reoring/gonmea"
)

func TestExample1_WellFormedGGA(t *testing.T) {
	expectCode(t, ggaOK, gonmea.E000, 0)
}

func TestExample2_MissingCR(t *testing.T) {
	line := strings.Replace(ggaOK, "\r\n", "\n", 1)
	expectCode(t, line, gonmea.E024, strings.IndexByte(line, '*')+3)
}

func TestExample3_UnknownFormatter(t *testing.T) {
	expectCode(t, sentence("GPXXX,1,2,3"), gonmea.E009, 0)
}

func TestExample4_WrongChecksum(t *testing.T) {
	line := strings.Replace(ggaOK, "*47", "*00", 1)
	expectCode(t, line, gonmea.E004, strings.IndexByte(line, '*'))
}

func TestExample5_MalformedGrouping(t *testing.T) {
	line := tagBlock("g:1-2") + ggaOK
	// "\g:1-2": the value starts at 3, the missing hyphen sits one past "1-2".
	expectCode(t, line, gonmea.E032, 6)

	ok := tagBlock("s:r3669961,c:1692004500,g:1-2-73874") + ggaOK
	expectCode(t, ok, gonmea.E000, 0)
}

func TestExample6_EmptyMandatoryStatus(t *testing.T) {
	line := sentence("GPRMC,123519,,4807.038,N,01131.000,E,022.4,084.4,230394,003.1,W")
	expectCode(t, line, gonmea.E016, len("$GPRMC,123519,"))
}
