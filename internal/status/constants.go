// internal/status/constants.go
package status

// Operating-mode codes reported in register 0 of the realtime block.
// These values are device-defined and MUST NOT be configurable.

// ModeNotConnected is reported before the inverter has seen the grid.
const ModeNotConnected uint16 = 0

// ModeWaiting is reported while the inverter waits for PV/grid conditions.
const ModeWaiting uint16 = 1

// ModeNormal is normal generation.
const ModeNormal uint16 = 2

// ModeError is reported while a fault is active.
const ModeError uint16 = 3

// ModeUpgrading is reported during a firmware upgrade.
const ModeUpgrading uint16 = 4

// UnknownMode is the name used for any code outside the table.
const UnknownMode = "Unknown"

// LookupDeviceStatus is the lookup id schemas use to reference the mode table.
const LookupDeviceStatus = "device_status"

// ---- UNIT HEALTH ----

// HealthUnknown represents an unknown or boot state.
const HealthUnknown uint16 = 0

// HealthOK represents a unit whose last poll cycle succeeded.
const HealthOK uint16 = 1

// HealthError represents a unit whose last poll cycle failed.
const HealthError uint16 = 2
