package gonmea_test

import (
	"fmt"
	"testing"

	gonmea "github.com/reoring/gonmea"
	"github.com/reoring/gonmea/catalog"
)

const ggaOK = "$GPGGA,123519,4807.038,N,01131.000,E,1,08,0.9,545.4,M,46.9,M,,*47\r\n"

func checksum(body string) string {
	var sum byte
	for i := 0; i < len(body); i++ {
		sum ^= body[i]
	}
	return fmt.Sprintf("%02X", sum)
}

// sentence frames body as "$body*HH\r\n".
func sentence(body string) string { return "$" + body + "*" + checksum(body) + "\r\n" }

// encapsulated frames body as "!body*HH\r\n".
func encapsulated(body string) string { return "!" + body + "*" + checksum(body) + "\r\n" }

// tagBlock frames body as "\body*HH\" without line terminator.
func tagBlock(body string) string { return "\\" + body + "*" + checksum(body) + "\\" }

// expectCode validates line against the reference catalog and checks the
// code and, when offset >= 0, the reported offset. offset -1 requires an
// error without position.
func expectCode(t *testing.T, line string, code gonmea.ErrorCode, offset int, opts ...gonmea.Options) {
	t.Helper()
	err := gonmea.Validate([]byte(line), catalog.Default(), opts...)
	if code == gonmea.E000 {
		if err != nil {
			t.Fatalf("%q: expected ok, got %v", line, err)
		}
		return
	}
	e, ok := gonmea.AsError(err)
	if !ok {
		t.Fatalf("%q: expected %s, got %v", line, code, err)
	}
	if e.Code != code {
		t.Fatalf("%q: expected %s, got %v", line, code, err)
	}
	if offset == -1 && e.HasOffset() {
		t.Fatalf("%q: expected %s without offset, got offset %d", line, code, e.Offset)
	}
	if offset >= 0 && e.Offset != offset {
		t.Fatalf("%q: expected %s at %d, got %d", line, code, offset, e.Offset)
	}
}

// anyOffset skips the offset assertion of expectCode.
const anyOffset = -2
