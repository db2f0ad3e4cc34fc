// Package gonmea validates and structurally decodes NMEA 0183 lines.
//
// A line passes three stages and the first violation stops the pipeline:
//
// - Structure: tag blocks and at most one sentence are split into fields,
//   framing (markers, CR LF, length) and the XOR checksum are verified.
// - Contents: character classes of the header (talker id, formatter,
//   proprietary id), of tag block parameters and of data fields.
// - Grammar: talker ids and formatters are matched against reference tables
//   and the data fields run through the sentence's field grammar.
//
// Failures are reported as *Error carrying an ErrorCode (E001..E033) and the
// byte offset of the offending byte when it is known.
//
// Design policy:
// - Keep only public APIs and the three stages in the root package.
// - Field grammars are built with the dsl package; catalog holds the
//   reference sentence definitions (embedded YAML); i18n renders messages.
// - Nothing in this package allocates shared state: a Catalog is built once
//   and read concurrently, every parse call is independent.
//
// Typical usage:
//
//  cat := catalog.Default()
//  if err := gonmea.Validate(line, cat); err != nil {
//      e, _ := gonmea.AsError(err)
//      fmt.Println(e.Code, e.Offset, e.Code.Description())
//  }
//
//  n := gonmea.New(cat)
//  _ = n.Parse(line)
//  code := n.ErrorCode()
//  pos, ok := n.Indication()
//
package gonmea
