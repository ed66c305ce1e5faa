package sidc

// Option is one selectable catalog value as presented to forms.
type Option struct {
	Name string `json:"name"`
	Code string `json:"code"`
}

// UnspecifiedOption heads every option list handed to forms.
var UnspecifiedOption = Option{Name: "Unspecified", Code: "00"}

// item is one catalog row; key is the normalized name.
type item struct {
	key  string
	code string
	name string // display name, computed once at init
}

func items(rows ...[2]string) []item {
	out := make([]item, len(rows))
	for i, r := range rows {
		out[i] = item{key: r[0], code: r[1], name: TitleCase(r[0])}
	}
	return out
}

// Catalog holds the main icons and modifiers of one symbol set. Only Land
// Unit is populated; the other sets are present with empty lists so lookups
// against them miss cleanly.
type Catalog struct {
	set       SymbolSet
	mainIcons []item
	modifier1 []item
	modifier2 []item
	aliases   map[string]string // normalized alias -> main icon key
}

// CatalogOptions is the form-facing view of a catalog.
type CatalogOptions struct {
	SymbolSet string   `json:"symbolSet"`
	Code      string   `json:"code"`
	MainIcons []Option `json:"mainIcons"`
	Modifier1 []Option `json:"modifier1"`
	Modifier2 []Option `json:"modifier2"`
}

var landUnitMainIcons = items(
	[2]string{"COMMAND_AND_CONTROL", "110000"},
	[2]string{"BROADCAST_TRANSMITTER_ANTENNA", "110100"},
	[2]string{"CIVIL_AFFAIRS", "110200"},
	[2]string{"CIVIL_MILITARY_COOPERATION", "110300"},
	[2]string{"INFORMATION_OPERATIONS", "110400"},
	[2]string{"LIAISON", "110500"},
	[2]string{"MILITARY_INFORMATION_SUPPORT_OPERATIONS", "110600"},
	[2]string{"SIGNAL", "111000"},
	[2]string{"SPACE", "111300"},
	[2]string{"AMPHIBIOUS", "120300"},
	[2]string{"ANTITANK_ANTIARMOUR", "120400"},
	[2]string{"ARMOUR", "120500"},
	[2]string{"AVIATION_ROTARY_WING", "120600"},
	[2]string{"AVIATION_FIXED_WING", "120800"},
	[2]string{"COMBAT", "120900"},
	[2]string{"COMBINED_ARMS", "121000"},
	[2]string{"INFANTRY", "121100"},
	[2]string{"RECONNAISSANCE", "121300"},
	[2]string{"SPECIAL_FORCES", "121700"},
	[2]string{"SPECIAL_OPERATIONS_FORCES", "121800"},
	[2]string{"UNMANNED_SYSTEMS", "121900"},
	[2]string{"AIR_DEFENCE", "130100"},
	[2]string{"FIELD_ARTILLERY", "130300"},
	[2]string{"MORTAR", "130800"},
	[2]string{"CBRN", "140100"},
	[2]string{"ENGINEER", "140700"},
	[2]string{"MILITARY_POLICE", "141200"},
	[2]string{"SECURITY", "141700"},
	[2]string{"MILITARY_INTELLIGENCE", "151000"},
	[2]string{"SUSTAINMENT", "160000"},
	[2]string{"MAINTENANCE", "161100"},
	[2]string{"MEDICAL", "161300"},
	[2]string{"ORDNANCE", "162300"},
	[2]string{"TRANSPORTATION", "163600"},
)

var landUnitModifier1 = items(
	[2]string{"AIRMOBILE_AIR_ASSAULT", "01"},
	[2]string{"ATTACK", "03"},
	[2]string{"BRIDGING", "06"},
	[2]string{"CHEMICAL", "07"},
	[2]string{"COMBAT", "09"},
	[2]string{"COMMAND_AND_CONTROL", "10"},
	[2]string{"CONSTRUCTION", "12"},
	[2]string{"DECONTAMINATION", "15"},
	[2]string{"DOG", "20"},
	[2]string{"EXPLOSIVE_ORDNANCE_DISPOSAL", "24"},
	[2]string{"MAINTENANCE", "31"},
	[2]string{"MISSILE", "34"},
	[2]string{"MOBILITY_SUPPORT", "37"},
	[2]string{"MULTIPLE_ROCKET_LAUNCHER", "41"},
	[2]string{"NAVAL", "46"},
	[2]string{"NUCLEAR", "48"},
	[2]string{"RADAR", "50"},
	[2]string{"RADIOLOGICAL", "52"},
	[2]string{"SECURITY", "54"},
	[2]string{"SENSOR", "55"},
	[2]string{"SNIPER", "61"},
	[2]string{"SPECIAL_OPERATIONS_FORCES", "63"},
	[2]string{"TARGET_ACQUISITION", "67"},
	[2]string{"UTILITY", "69"},
)

var landUnitModifier2 = items(
	[2]string{"AIRBORNE", "01"},
	[2]string{"ARCTIC", "02"},
	[2]string{"HEAVY", "15"},
	[2]string{"LIGHT", "19"},
	[2]string{"MEDIUM", "24"},
	[2]string{"MOUNTAIN", "27"},
	[2]string{"RAILROAD", "36"},
	[2]string{"SKI", "42"},
	[2]string{"TOWED", "47"},
	[2]string{"WHEELED", "51"},
	[2]string{"AMPHIBIOUS", "60"},
)

// landUnitAliases maps LLM vocabulary and American spellings onto catalog keys.
var landUnitAliases = map[string]string{
	"ARMOR":             "ARMOUR",
	"ARMORED":           "ARMOUR",
	"ARMOURED":          "ARMOUR",
	"TANK":              "ARMOUR",
	"TANKS":             "ARMOUR",
	"ANTITANK":          "ANTITANK_ANTIARMOUR",
	"ANTI_TANK":         "ANTITANK_ANTIARMOUR",
	"ANTIARMOR":         "ANTITANK_ANTIARMOUR",
	"ARTILLERY":         "FIELD_ARTILLERY",
	"RECON":             "RECONNAISSANCE",
	"CAVALRY":           "RECONNAISSANCE",
	"AIRBORNE":          "INFANTRY",
	"AIR_DEFENSE":       "AIR_DEFENCE",
	"HELICOPTER":        "AVIATION_ROTARY_WING",
	"ATTACK_HELICOPTER": "AVIATION_ROTARY_WING",
	"DRONE":             "UNMANNED_SYSTEMS",
	"UAV":               "UNMANNED_SYSTEMS",
	"SOF":               "SPECIAL_OPERATIONS_FORCES",
	"MP":                "MILITARY_POLICE",
	"INTEL":             "MILITARY_INTELLIGENCE",
	"LOGISTICS":         "SUSTAINMENT",
	"SUPPLY":            "SUSTAINMENT",
	"CHEMICAL":          "CBRN",
	"C2":                "COMMAND_AND_CONTROL",
	"HEADQUARTERS":      "COMMAND_AND_CONTROL",
	"MARINES":           "AMPHIBIOUS",
}

// catalogs is keyed by symbol set code and built once at init.
var catalogs = func() map[SymbolSet]*Catalog {
	m := make(map[SymbolSet]*Catalog, len(symbolSets.entries))
	for _, e := range symbolSets.entries {
		m[e.value] = &Catalog{set: e.value}
	}
	m[SymbolSetLandUnit] = &Catalog{
		set:       SymbolSetLandUnit,
		mainIcons: landUnitMainIcons,
		modifier1: landUnitModifier1,
		modifier2: landUnitModifier2,
		aliases:   landUnitAliases,
	}
	return m
}()

// CatalogFor returns the catalog for a symbol set given by display name
// ("Land Unit"), normalized key ("LAND_UNIT") or code ("10").
func CatalogFor(symbolSet string) (*Catalog, bool) {
	set, ok := ParseSymbolSet(symbolSet)
	if !ok {
		set = SymbolSet(symbolSet)
	}
	c, ok := catalogs[set]
	return c, ok
}

// SymbolSet returns the set this catalog belongs to.
func (c *Catalog) SymbolSet() SymbolSet { return c.set }

// HasMainIcons reports whether the catalog has any main icon entries.
func (c *Catalog) HasMainIcons() bool { return len(c.mainIcons) > 0 }

// MainIcons lists main icons in catalog order with display names.
func (c *Catalog) MainIcons() []Option { return toOptions(c.mainIcons, false) }

// Options returns the form-facing lists, each headed by UnspecifiedOption.
func (c *Catalog) Options() CatalogOptions {
	return CatalogOptions{
		SymbolSet: c.set.String(),
		Code:      c.set.Code(),
		MainIcons: toOptions(c.mainIcons, true),
		Modifier1: toOptions(c.modifier1, true),
		Modifier2: toOptions(c.modifier2, true),
	}
}

func (c *Catalog) modifiers(sector int) []item {
	switch sector {
	case 1:
		return c.modifier1
	case 2:
		return c.modifier2
	default:
		return nil
	}
}

func toOptions(list []item, withUnspecified bool) []Option {
	out := make([]Option, 0, len(list)+1)
	if withUnspecified {
		out = append(out, UnspecifiedOption)
	}
	for _, it := range list {
		out = append(out, Option{Name: it.name, Code: it.code})
	}
	return out
}
