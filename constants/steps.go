package constants

// The DIBIAA pipeline tracks 16 production steps per job. Step numbers are
// stable identifiers; names are display defaults and can be overridden per
// step in fms_step_config.
const StepCount = 16

// Terminal step: its plan date comes straight from the sheet's lead-time
// column, never from workday arithmetic.
const TerminalStep = 16

var stepNames = [StepCount + 1]string{
	"",
	"Paper Procurement",
	"Board Cutting",
	"Design & Plate Approval",
	"Printing",
	"Lamination",
	"Die Cutting",
	"Foam Fitment",
	"Box Assembly",
	"Inner Fitment",
	"Magnet & Accessory Fixing",
	"Quality Check",
	"Packing",
	"Dispatch Planning",
	"Transport Booking",
	"Invoice & Documents",
	"Delivery",
}

// StepName returns the default display name for a step, or "" for an
// out-of-range step number.
func StepName(step int) string {
	if step < 1 || step > StepCount {
		return ""
	}
	return stepNames[step]
}
