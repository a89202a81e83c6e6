package hal

// Battery curve constants for a single-cell LiPo measured on VSYS.
const (
	cellEmptyMilliV = 3300
	cellFullMilliV  = 4200
	vbusMilliV      = 4500
)

// chargeFromMilliVolts maps a VSYS reading onto 0..100 linearly between the
// empty and full cell voltages. Readings above the USB threshold mean the
// board is powered externally.
func chargeFromMilliVolts(mv int) ChargeState {
	plugged := mv >= vbusMilliV
	pct := (mv - cellEmptyMilliV) * 100 / (cellFullMilliV - cellEmptyMilliV)
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	return ChargeState{Percent: pct, Charging: plugged, Plugged: plugged}
}
