// internal/status/mode.go
package status

var modeNames = map[uint16]string{
	ModeNotConnected: "Not Connected",
	ModeWaiting:      "Waiting",
	ModeNormal:       "Normal",
	ModeError:        "Error",
	ModeUpgrading:    "Upgrading",
}

// Name maps an operating-mode code to its name, "Unknown" for any other code.
func Name(code uint16) string {
	if n, ok := modeNames[code]; ok {
		return n
	}
	return UnknownMode
}

// Lookup resolves a named code table. Only the device status table exists.
func Lookup(id string) (func(uint16) string, bool) {
	if id == LookupDeviceStatus {
		return Name, true
	}
	return nil, false
}
