package gonmea_test

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	gonmea "github.com/reoring/gonmea"
	"github.com/reoring/gonmea/catalog"
)

func TestNmea_ResultSurface(t *testing.T) {
	n := gonmea.New(catalog.Default())

	if err := n.Parse([]byte(ggaOK)); err != nil {
		t.Fatalf("parse: %v", err)
	}
	if n.ErrorCode() != gonmea.E000 {
		t.Fatalf("expected E000, got %s", n.ErrorCode())
	}
	if _, ok := n.Indication(); ok {
		t.Fatalf("no indication expected on success")
	}
	if len(n.Elements()) != 1 {
		t.Fatalf("expected elements on success")
	}

	bad := strings.Replace(ggaOK, "*47", "*00", 1)
	if err := n.Parse([]byte(bad)); err == nil {
		t.Fatalf("expected error")
	}
	if n.ErrorCode() != gonmea.E004 {
		t.Fatalf("expected E004, got %s", n.ErrorCode())
	}
	if pos, ok := n.Indication(); !ok || pos != strings.IndexByte(bad, '*') {
		t.Fatalf("unexpected indication %d,%v", pos, ok)
	}
	if n.Elements() != nil {
		t.Fatalf("elements must be cleared after a failure")
	}

	if err := n.Parse([]byte("garbage\r\n")); err == nil || n.ErrorCode() != gonmea.E033 {
		t.Fatalf("expected E033, got %v", err)
	}
	if _, ok := n.Indication(); ok {
		t.Fatalf("E033 carries no indication")
	}

	if err := n.Parse(nil); !errors.Is(err, gonmea.ErrEmptyLine) || n.ErrorCode() != gonmea.E033 {
		t.Fatalf("empty line: err=%v code=%s", err, n.ErrorCode())
	}
}

func TestNmea_StrictChecksumOption(t *testing.T) {
	oneWrong := []byte(strings.Replace(ggaOK, "*47", "*4A", 1))
	if err := gonmea.New(catalog.Default()).Parse(oneWrong); err != nil {
		t.Fatalf("lenient parse: %v", err)
	}
	strict := gonmea.New(catalog.Default(), gonmea.Options{StrictChecksum: true})
	if err := strict.Parse(oneWrong); err == nil || strict.ErrorCode() != gonmea.E004 {
		t.Fatalf("strict parse must fail with E004, got %v", err)
	}
}

var corpus = []string{
	ggaOK,
	strings.Replace(ggaOK, "\r\n", "\n", 1),
	strings.Replace(ggaOK, "*47", "*00", 1),
	sentence("GPXXX,1,2,3"),
	tagBlock("g:1-2") + ggaOK,
	sentence("GPRMC,123519,,4807.038,N,01131.000,E,022.4,084.4,230394,003.1,W"),
	sentence("IIGPQ,GGA"),
	sentence("PGRME,15.0,M,45.0,M,25.0,M"),
	encapsulated("AIVDM,1,1,,B,15M67FC000G?ufbE`FepT@3n00Sa,0"),
	"no marker\r\n",
}

type outcome struct {
	code   gonmea.ErrorCode
	pos    int
	hasPos bool
}

func parseOutcome(line string) outcome {
	n := gonmea.New(catalog.Default())
	_ = n.Parse([]byte(line))
	pos, ok := n.Indication()
	return outcome{code: n.ErrorCode(), pos: pos, hasPos: ok}
}

func TestNmea_Idempotent(t *testing.T) {
	for _, line := range corpus {
		first := parseOutcome(line)
		for i := 0; i < 3; i++ {
			if got := parseOutcome(line); got != first {
				t.Fatalf("%q: outcome changed from %+v to %+v", line, first, got)
			}
		}
		// the same instance gives the same answer as fresh ones
		n := gonmea.New(catalog.Default())
		_ = n.Parse([]byte(line))
		_ = n.Parse([]byte(line))
		pos, ok := n.Indication()
		if got := (outcome{n.ErrorCode(), pos, ok}); got != first {
			t.Fatalf("%q: reused instance %+v, fresh %+v", line, got, first)
		}
	}
}

func TestValidate_Concurrent(t *testing.T) {
	want := make([]outcome, len(corpus))
	for i, line := range corpus {
		want[i] = parseOutcome(line)
	}
	var wg sync.WaitGroup
	errs := make(chan error, 64)
	for g := 0; g < 16; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for round := 0; round < 50; round++ {
				for i, line := range corpus {
					if got := parseOutcome(line); got != want[i] {
						errs <- fmt.Errorf("%q: got %+v want %+v", line, got, want[i])
						return
					}
				}
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Fatal(err)
	}
}

func TestParse_ReturnsElements(t *testing.T) {
	line := []byte(tagBlock("c:1") + ggaOK)
	elems, err := gonmea.Parse(line, catalog.Default())
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(elems) != 2 || elems[0].Kind != gonmea.TagBlock || elems[1].Kind != gonmea.Sentence {
		t.Fatalf("unexpected elements %+v", elems)
	}
	if _, err := gonmea.Parse([]byte("x\r\n"), catalog.Default()); err == nil {
		t.Fatalf("expected error")
	}
}
