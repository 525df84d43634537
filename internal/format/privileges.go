package format

import "fmt"

const (
	// PrivilegesKey is the directory key of the Title Privileges bitfield.
	PrivilegesKey = KeyTitlePrivileges

	// PAL50IncompatibleMask is bit 10 of the Title Privileges value. Titles
	// carrying it refuse to run with 50Hz PAL display timing.
	PAL50IncompatibleMask = 0x00000400
)

// privilegeNames maps bit index to the documented privilege name.
var privilegeNames = map[uint]string{
	0:  "No Force Reboot",
	1:  "Foreground Tasks",
	2:  "No ODD Mapping",
	3:  "Handle MCE Input",
	4:  "Restricted HUD Features",
	5:  "Handle Gamepad Disconnect",
	6:  "Insecure Sockets",
	7:  "Xbox1 Interoperability",
	8:  "Dash Context",
	9:  "Uses Game Voice Channel",
	10: "PAL-50 Incompatible",
	11: "Insecure Utility Drive",
	12: "Xam Hooks",
	13: "Access PII",
	14: "Cross Platform System Link",
	15: "Multidisc Swap",
	16: "Multidisc Insecure Media",
	17: "AP25 Media",
	18: "No Confirm Exit",
	19: "Allow Background Download",
	20: "Create Persistable Ramdrive",
	21: "Inherit Persisted Ramdrive",
	22: "Allow HUD Vibration",
}

// PrivilegeName returns the documented name of a privilege bit index, or a
// placeholder when the bit is undocumented.
func PrivilegeName(bit uint) string {
	if name, ok := privilegeNames[bit]; ok {
		return name
	}
	return fmt.Sprintf("Unknown (bit %d)", bit)
}

// PrivilegeNames expands a Title Privileges value into the names of its set
// bits, low bit first.
func PrivilegeNames(value uint32) []string {
	var names []string
	for bit := uint(0); bit < 32; bit++ {
		if value&(1<<bit) != 0 {
			names = append(names, PrivilegeName(bit))
		}
	}
	return names
}
