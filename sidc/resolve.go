package sidc

import "strings"

// FindFunctionID maps a free-text unit category to a six digit main icon
// code of the given symbol set. Resolution runs in tiers and the first tier
// with a hit wins:
//
//  1. exact key match
//  2. alias table ("Tank" -> ARMOUR, "Recon" -> RECONNAISSANCE)
//  3. a key containing the input; the shortest such key wins
//  4. the input containing a key; the longest such key wins
//
// Ties inside a tier fall back to catalog order. ok is false when the symbol
// set is unknown, the category normalizes to "", or nothing matches.
func FindFunctionID(symbolSet, category string) (string, bool) {
	c, ok := CatalogFor(symbolSet)
	if !ok {
		return "", false
	}
	return c.FindFunctionID(category)
}

// FindFunctionID resolves category against this catalog's main icons.
func (c *Catalog) FindFunctionID(category string) (string, bool) {
	key := Normalize(category)
	if key == "" {
		return "", false
	}
	if it, ok := exact(c.mainIcons, key); ok {
		return it.code, true
	}
	// Aliases run before substring matching and override it: "tank" is
	// ARMOUR (120500), not ANTITANK_ANTIARMOUR (120400), and "MP" is
	// MILITARY_POLICE (141200), not AMPHIBIOUS (120300).
	if target, ok := c.aliases[key]; ok {
		if it, ok := exact(c.mainIcons, target); ok {
			return it.code, true
		}
	}
	if it, ok := fuzzy(c.mainIcons, key); ok {
		return it.code, true
	}
	return "", false
}

// FindModifier1 resolves a sector 1 modifier name to its two digit code.
func FindModifier1(symbolSet, name string) (string, bool) {
	return findModifier(symbolSet, name, 1)
}

// FindModifier2 resolves a sector 2 modifier name to its two digit code.
func FindModifier2(symbolSet, name string) (string, bool) {
	return findModifier(symbolSet, name, 2)
}

func findModifier(symbolSet, name string, sector int) (string, bool) {
	c, ok := CatalogFor(symbolSet)
	if !ok {
		return "", false
	}
	key := Normalize(name)
	if key == "" {
		return "", false
	}
	list := c.modifiers(sector)
	if it, ok := exact(list, key); ok {
		return it.code, true
	}
	if it, ok := fuzzy(list, key); ok {
		return it.code, true
	}
	return "", false
}

// FunctionIDName is the reverse lookup of a main icon code. Misses, including
// "000000", yield "Unknown Function".
func FunctionIDName(symbolSet, code string) string {
	c, ok := CatalogFor(symbolSet)
	if !ok {
		return "Unknown Function"
	}
	for _, it := range c.mainIcons {
		if it.code == code {
			return it.name
		}
	}
	return "Unknown Function"
}

// ModifierName is the reverse lookup of a modifier code in sector 1 or 2.
// "00" is "Unspecified"; other misses are "Unknown Modifier".
func ModifierName(symbolSet string, sector int, code string) string {
	if code == DefaultModifier {
		return UnspecifiedOption.Name
	}
	c, ok := CatalogFor(symbolSet)
	if !ok {
		return "Unknown Modifier"
	}
	for _, it := range c.modifiers(sector) {
		if it.code == code {
			return it.name
		}
	}
	return "Unknown Modifier"
}

func exact(list []item, key string) (item, bool) {
	for _, it := range list {
		if it.key == key {
			return it, true
		}
	}
	return item{}, false
}

// fuzzy runs the two substring tiers.
func fuzzy(list []item, key string) (item, bool) {
	best := -1
	for i, it := range list {
		if strings.Contains(it.key, key) && (best < 0 || len(it.key) < len(list[best].key)) {
			best = i
		}
	}
	if best >= 0 {
		return list[best], true
	}
	for i, it := range list {
		if strings.Contains(key, it.key) && (best < 0 || len(it.key) > len(list[best].key)) {
			best = i
		}
	}
	if best >= 0 {
		return list[best], true
	}
	return item{}, false
}
