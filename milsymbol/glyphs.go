package milsymbol

// Frame-only icon every symbol set can draw.
const frameOnly = "000000"

// glyphs maps symbol set -> main icon code -> glyph name.
var glyphs = map[string]map[string]string{
	"01": { // Air
		"110000": "military",
		"110100": "fixed wing",
		"110200": "rotary wing",
		"110300": "unmanned aircraft",
		"110400": "vertical takeoff UAV",
		"120000": "civilian",
	},
	"10": { // Land Unit
		"110000": "command and control",
		"110100": "broadcast transmitter antenna",
		"110200": "civil affairs",
		"110300": "civil military cooperation",
		"110400": "information operations",
		"110500": "liaison",
		"110600": "military information support operations",
		"111000": "signal",
		"111300": "space",
		"120300": "amphibious",
		"120400": "antitank antiarmour",
		"120500": "armour",
		"120600": "aviation rotary wing",
		"120800": "aviation fixed wing",
		"120900": "combat",
		"121000": "combined arms",
		"121100": "infantry",
		"121300": "reconnaissance",
		"121700": "special forces",
		"121800": "special operations forces",
		"121900": "unmanned systems",
		"130100": "air defence",
		"130300": "field artillery",
		"130800": "mortar",
		"140100": "cbrn",
		"140700": "engineer",
		"141200": "military police",
		"141700": "security",
		"151000": "military intelligence",
		"160000": "sustainment",
		"161100": "maintenance",
		"161300": "medical",
		"162300": "ordnance",
		"163600": "transportation",
	},
	"30": { // Sea Surface
		"110000": "military combatant",
		"120000": "military noncombatant",
		"140000": "civilian",
	},
	"35": { // Subsurface
		"110000": "military submarine",
		"120000": "other submersible",
	},
}

// knownIcon reports whether the set can draw the main icon.
func knownIcon(set, icon string) bool {
	if icon == frameOnly {
		return true
	}
	_, ok := glyphs[set][icon]
	return ok
}

// GlyphName returns the glyph drawn for a main icon, or "" if none.
func GlyphName(set, icon string) string {
	if icon == frameOnly {
		return "frame"
	}
	return glyphs[set][icon]
}
