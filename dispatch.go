package gonmea

// talkers lists the approved talker identifiers in ascending order.
var talkers = []string{
	"AB", // Independent AIS base station
	"AD", // Dependent AIS base station
	"AG", // Autopilot, general
	"AI", // Mobile AIS station
	"AN", // AIS aids to navigation
	"AP", // Autopilot, magnetic
	"AR", // AIS receiving station
	"AS", // AIS station (authority)
	"AT", // AIS transmitting station
	"AU", // AIS simplex repeater
	"AX", // AIS limited base station
	"BD", // BeiDou
	"BI", // Bilge system
	"BN", // Bridge navigational watch alarm system
	"CA", // Central alarm management
	"CD", // Communications, digital selective calling
	"CR", // Communications, data receiver
	"CS", // Communications, satellite
	"CT", // Communications, radio-telephone (MF/HF)
	"CV", // Communications, radio-telephone (VHF)
	"CX", // Communications, scanning receiver
	"DE", // DECCA navigator
	"DF", // Direction finder
	"DU", // Duplex repeater station
	"EC", // ECDIS
	"EI", // ECDIS, integrated
	"EP", // EPIRB
	"ER", // Engine room monitoring systems
	"FD", // Fire door controller
	"FE", // Fire extinguisher system
	"FR", // Fire detection point
	"FS", // Fire sprinkler system
	"GA", // Galileo positioning system
	"GB", // BeiDou (GNSS)
	"GI", // NavIC
	"GL", // GLONASS
	"GN", // Global navigation satellite system
	"GP", // Global positioning system
	"GQ", // QZSS
	"HC", // Heading, magnetic compass
	"HD", // Hull door controller
	"HE", // Heading, north seeking gyro
	"HF", // Heading, fluxgate
	"HN", // Heading, non north seeking gyro
	"HS", // Hull stress monitoring
	"II", // Integrated instrumentation
	"IN", // Integrated navigation
	"JA", // Alarm and monitoring system
	"JB", // Reefer monitoring system
	"JC", // Power management system
	"JD", // Propulsion control system
	"LC", // Loran C
	"MX", // Multiplexer
	"NL", // Navigation light controller
	"NV", // Night vision
	"NW", // Navigation warning receiver
	"RA", // Radar and/or ARPA
	"RB", // Record book
	"RC", // Propulsion machinery
	"SA", // Physical shore AIS station
	"SD", // Sounder, depth
	"SG", // Steering gear
	"SN", // Electronic positioning system
	"SS", // Sounder, scanning
	"TI", // Turn rate indicator
	"UP", // Microprocessor controller
	"VA", // VHF data exchange, ASM
	"VD", // Velocity sensor, doppler
	"VM", // Velocity sensor, speed log, water, magnetic
	"VR", // Voyage data recorder
	"VS", // VHF data exchange, satellite
	"VW", // Velocity sensor, speed log, water, mechanical
	"WD", // Watertight door controller
	"WI", // Weather instruments
	"WL", // Water level detection
	"YX", // Transducer
	"ZA", // Timekeeper, atomic clock
	"ZC", // Timekeeper, chronometer
	"ZQ", // Timekeeper, quartz
	"ZV", // Radio update, WWV or WWVH
}

// formatters lists the approved sentence formatters in ascending order.
var formatters = []string{
	"AAM", "ACK", "ACN", "ALC", "ALF", "ALM", "ALR", "APA", "APB", "ARC", "ASD",
	"BEC", "BOD", "BWC", "BWR", "BWW",
	"DBK", "DBS", "DBT", "DCN", "DPT", "DSC", "DSE", "DSI", "DSR", "DTM",
	"EVE",
	"FSI",
	"GBS", "GGA", "GLC", "GLL", "GNS", "GRS", "GSA", "GST", "GSV", "GTD", "GXA",
	"HBT", "HDG", "HDM", "HDT", "HSC",
	"LCD",
	"MSK", "MSS", "MTW", "MWD", "MWV",
	"OLN", "OSD",
	"RMA", "RMB", "RMC", "ROO", "ROT", "RPM", "RSA", "RSD", "RTE",
	"SFI", "STN",
	"THS", "TLL", "TRF", "TTM", "TXT",
	"VBW", "VDM", "VDO", "VDR", "VHW", "VLW", "VPW", "VSI", "VTG", "VWR",
	"WCV", "WDC", "WDR", "WNC", "WPL",
	"XDR", "XTE", "XTR",
	"ZDA", "ZDL", "ZFO", "ZTG",
}

// Talkers returns a copy of the approved talker table.
func Talkers() []string { return append([]string(nil), talkers...) }

// Formatters returns a copy of the approved formatter table.
func Formatters() []string { return append([]string(nil), formatters...) }

// inSorted scans a sorted table and stops as soon as an entry exceeds key.
func inSorted(table []string, key string) bool {
	for _, elem := range table {
		if elem == key {
			return true
		}
		if elem > key {
			return false
		}
	}
	return false
}

func matchTalker(line []byte, f FieldSlice, at int) error {
	id := string([]byte{byteAt(line, f, at), byteAt(line, f, at+1)})
	if inSorted(talkers, id) {
		return nil
	}
	return ErrorAt(E005, f.Offset+at)
}

func matchFormatter(line []byte, f FieldSlice, at int) error {
	if inSorted(formatters, formatterAt(line, f, at)) {
		return nil
	}
	return ErrorAt(E009, f.Offset+at)
}

func formatterAt(line []byte, f FieldSlice, at int) string {
	return string([]byte{byteAt(line, f, at), byteAt(line, f, at+1), byteAt(line, f, at+2)})
}

// dispatch resolves identifiers and runs the sentence grammar of every
// sentence element.
func dispatch(line []byte, elems []LineElement, cat Catalog) error {
	for _, el := range elems {
		if el.Kind == TagBlock {
			continue
		}
		header := el.Header()
		switch el.SentenceKind {
		case Parametric, Encapsulated:
			if err := matchTalker(line, header, 1); err != nil {
				return err
			}
			var (
				g  Grammar
				ok bool
			)
			if cat != nil {
				g, ok = cat.Lookup(formatterAt(line, header, 3))
			}
			if !ok {
				return ErrorAt(E009, header.Offset)
			}
			if err := g.Validate(line, el.Fields); err != nil {
				return err
			}
		case Query:
			if err := matchTalker(line, header, 1); err != nil {
				return err
			}
			if err := matchTalker(line, header, 3); err != nil {
				return err
			}
			if err := matchFormatter(line, el.Fields[1], 0); err != nil {
				return err
			}
		case Proprietary:
			// manufacturer codes are not registered here
		}
	}
	return nil
}
