package stusbdec

import (
	"fmt"
	"sort"
)

// RegisterEntry is one catalog entry of the STUSB4500 register map.
type RegisterEntry struct {
	Address uint8
	Name    string
}

// registerNames maps the documented STUSB4500 registers to their datasheet
// mnemonics. The map spans 0x06-0x94 and is not contiguous; holes are
// undocumented addresses and are reported as unknown by RegisterLabel.
var registerNames = map[uint8]string{
	0x06: "BCD_TYPEC_REV_LOW",
	0x07: "BCD_TYPEC_REV_HIGH",
	0x08: "BCD_USBPD_REV_LOW",
	0x09: "BCD_USBPD_REV_HIGH",
	0x0A: "DEVICE_CAPAB_HIGH",
	0x0B: "ALERT_STATUS_1",
	0x0C: "ALERT_STATUS_1_MASK",
	0x0D: "PORT_STATUS_0",
	0x0E: "PORT_STATUS_1",
	0x0F: "TYPEC_MONITORING_STATUS_0",
	0x10: "TYPEC_MONITORING_STATUS_1",
	0x11: "CC_STATUS",
	0x12: "CC_HW_FAULT_STATUS_0",
	0x13: "CC_HW_FAULT_STATUS_1",
	0x14: "PD_TYPEC_STATUS",
	0x15: "TYPEC_STATUS",
	0x16: "PRT_STATUS",
	0x1A: "PD_COMMAND_CTRL",
	0x20: "MONITORING_CTRL_0",
	0x22: "MONITORING_CTRL_2",
	0x23: "RESET_CTRL",
	0x24: "VBUS_DISCHARGE_TIME_CTRL",
	0x25: "VBUS_DISCHARGE_CTRL",
	0x26: "VBUS_CTRL",
	0x29: "PE_FSM",
	0x2D: "GPIO3_SW_GPIO",
	0x2F: "DEVICE_ID",
	0x31: "RX_HEADER_LOW",
	0x32: "RX_HEADER_HIGH",
	0x33: "RX_DATA_OBJ1_0",
	0x34: "RX_DATA_OBJ1_1",
	0x35: "RX_DATA_OBJ1_2",
	0x36: "RX_DATA_OBJ1_3",
	0x37: "RX_DATA_OBJ2_0",
	0x38: "RX_DATA_OBJ2_1",
	0x39: "RX_DATA_OBJ2_2",
	0x3A: "RX_DATA_OBJ2_3",
	0x3B: "RX_DATA_OBJ3_0",
	0x3C: "RX_DATA_OBJ3_1",
	0x3D: "RX_DATA_OBJ3_2",
	0x3E: "RX_DATA_OBJ3_3",
	0x3F: "RX_DATA_OBJ4_0",
	0x40: "RX_DATA_OBJ4_1",
	0x41: "RX_DATA_OBJ4_2",
	0x42: "RX_DATA_OBJ4_3",
	0x43: "RX_DATA_OBJ5_0",
	0x44: "RX_DATA_OBJ5_1",
	0x45: "RX_DATA_OBJ5_2",
	0x46: "RX_DATA_OBJ5_3",
	0x47: "RX_DATA_OBJ6_0",
	0x48: "RX_DATA_OBJ6_1",
	0x49: "RX_DATA_OBJ6_2",
	0x4A: "RX_DATA_OBJ6_3",
	0x4B: "RX_DATA_OBJ7_0",
	0x4C: "RX_DATA_OBJ7_1",
	0x4D: "RX_DATA_OBJ7_2",
	0x4E: "RX_DATA_OBJ7_3",
	0x51: "TX_HEADER_LOW",
	0x52: "TX_HEADER_HIGH",
	0x70: "DPM_PDO_NUMB",
	0x85: "DPM_SNK_PDO1_0",
	0x86: "DPM_SNK_PDO1_1",
	0x87: "DPM_SNK_PDO1_2",
	0x88: "DPM_SNK_PDO1_3",
	0x89: "DPM_SNK_PDO2_0",
	0x8A: "DPM_SNK_PDO2_1",
	0x8B: "DPM_SNK_PDO2_2",
	0x8C: "DPM_SNK_PDO2_3",
	0x8D: "DPM_SNK_PDO3_0",
	0x8E: "DPM_SNK_PDO3_1",
	0x8F: "DPM_SNK_PDO3_2",
	0x90: "DPM_SNK_PDO3_3",
	0x91: "RDO_REG_STATUS_0",
	0x92: "RDO_REG_STATUS_1",
	0x93: "RDO_REG_STATUS_2",
	0x94: "RDO_REG_STATUS_3",
}

// RegisterName returns the mnemonic for a register address. Unknown
// addresses are a normal runtime condition, not an error.
func RegisterName(addr uint8) (string, bool) {
	name, ok := registerNames[addr]
	return name, ok
}

// RegisterLabel returns the mnemonic for a register address, or an
// "unknown" marker naming the raw address.
func RegisterLabel(addr uint8) string {
	if name, ok := registerNames[addr]; ok {
		return name
	}
	return fmt.Sprintf("unknown (0x%02X)", addr)
}

// Registers returns the catalog sorted by address.
func Registers() []RegisterEntry {
	entries := make([]RegisterEntry, 0, len(registerNames))
	for addr, name := range registerNames {
		entries = append(entries, RegisterEntry{Address: addr, Name: name})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Address < entries[j].Address
	})
	return entries
}

// AddRegisters merges extra entries into the catalog, overriding existing
// names on collision. Not safe to call while a decode is in progress.
func AddRegisters(entries []RegisterEntry) {
	for _, e := range entries {
		registerNames[e.Address] = e.Name
	}
}
