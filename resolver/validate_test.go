package resolver

import "testing"

func TestVendorValidation(t *testing.T) {
	tests := []struct {
		name   string
		vendor string
		serial string
		want   bool
	}{
		{"Dell valid", "dell", "A1B2C3D", true},
		{"Dell too short", "dell", "ABC12", false},
		{"Dell too long", "dell", "A1B2C3D4", false},
		{"Dell punctuation", "dell", "A1B2C3-", false},

		{"HP 10 chars", "hp", "5CD1234XYZ", true},
		{"HP 12 chars", "hp", "5CD1234XYZAB", true},
		{"HP 9 chars", "hp", "5CD1234XY", false},
		{"HP 13 chars", "hp", "5CD1234XYZABC", false},

		{"ViewSonic 11 chars", "viewsonic", "VS123456789", true},
		{"ViewSonic 9 chars", "viewsonic", "VS1234567", false},

		{"Juniper 12 chars", "juniper", "AA0123456789", true},
		{"Juniper 11 chars", "juniper", "AA012345678", false},
		{"Juniper 13 chars", "juniper", "AA01234567890", false},

		{"CyberPower 12 chars", "cyberpower", "CP1500AVRLCD", true},
		{"CyberPower 16 chars", "cyberpower", "CP1500AVRLCD0001", true},
		{"CyberPower 14 chars", "cyberpower", "CP1500AVRLCD00", false},

		{"Brother 15 chars", "brother", "U63885H1N234567", true},
		{"Brother 14 chars", "brother", "U63885H1N23456", false},

		{"Apple 12 chars", "apple", "C02XL0GTJGH5", true},
		{"Apple 17 chars", "apple", "F9FXK0ABHG7FPQR12", true},
		{"Apple 13 chars", "apple", "C02XL0GTJGH55", false},

		{"Acer 22 chars", "acer", "NXHSEAA0010234ABCD5678", true},
		{"Acer 11 digit SNID", "acer", "12345678901", true},
		{"Acer 12 digit SNID", "acer", "123456789012", true},
		{"Acer 11 alnum", "acer", "1234567890A", false},
		{"Acer 13 digits", "acer", "1234567890123", false},

		{"Lenovo 8 chars", "lenovo", "PF0ABCDE", true},
		{"Lenovo 12 chars", "lenovo", "PF0ABCDE1234", true},
		{"Lenovo 7 chars", "lenovo", "PF0ABCD", false},

		{"Cisco valid", "cisco", "FOX12345678", true},
		{"Cisco digits in location", "cisco", "F0X12345678", false},
		{"Cisco letters in suffix", "cisco", "FOX1234567A", false},
		{"Cisco too short", "cisco", "FOX1234567", false},

		{"APC 12 chars", "apc", "AS1234567890", true},
		{"APC 11 chars", "apc", "AS123456789", false},

		{"Microsoft 12 digits", "microsoft", "012345678901", true},
		{"Microsoft 16 digits", "microsoft", "0123456789012345", true},
		{"Microsoft 12 alnum", "microsoft", "0AB345678901", true},
		{"Microsoft 16 alnum", "microsoft", "0AB3456789012345", false},
		{"Microsoft 13 digits", "microsoft", "0123456789012", false},

		{"Samsung 11 chars", "samsung", "0ABC1234567", true},
		{"Samsung 15 chars", "samsung", "0ABC12345678901", true},
		{"Samsung 12 chars", "samsung", "0ABC12345678", false},

		{"Vizio 14 chars", "vizio", "LTMA1234567890", true},
		{"Vizio 13 chars", "vizio", "LTMA123456789", false},

		{"TCL 12 chars", "tcl", "TCL123456789", true},
		{"TCL 14 chars", "tcl", "TCL12345678901", true},
		{"TCL 15 chars", "tcl", "TCL123456789012", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			module, ok := Lookup(tt.vendor)
			if !ok {
				t.Fatalf("vendor %q not registered", tt.vendor)
			}
			if got := module.Validate(tt.serial); got != tt.want {
				t.Errorf("Validate(%q) = %v, want %v", tt.serial, got, tt.want)
			}
		})
	}
}

func TestAllVendorsRegistered(t *testing.T) {
	want := []string{
		"acer", "apc", "apple", "brother", "cisco", "cyberpower", "dell",
		"hp", "juniper", "lenovo", "microsoft", "samsung", "tcl",
		"viewsonic", "vizio",
	}

	got := Vendors()
	if len(got) != len(want) {
		t.Fatalf("expected %d vendors, got %d: %v", len(want), len(got), got)
	}
	for i, id := range want {
		if got[i] != id {
			t.Errorf("Vendors()[%d] = %q, want %q", i, got[i], id)
		}
	}
}

func TestTagFields(t *testing.T) {
	for _, id := range Vendors() {
		module, _ := Lookup(id)
		want := "serial_number"
		if id == "dell" {
			want = "service_tag"
		}
		if got := module.TagField(); got != want {
			t.Errorf("%s: TagField() = %q, want %q", id, got, want)
		}
	}
}
