package command

import (
	"context"
	"regexp"
	"strings"

	"go.uber.org/zap"

	"github.com/teranos/milassist/geocode"
	"github.com/teranos/milassist/logger"
	"github.com/teranos/milassist/sidc"
)

var (
	echelonPattern  = regexp.MustCompile(`\b(team|squad|section|platoon|company|battalion|regiment|brigade|division|corps|army)\b`)
	unitPattern     = regexp.MustCompile(`\b(infantry|armou?red|armor|tank|artillery|engineer|recon|airborne|cavalry|infantryman)\b`)
	locationPattern = regexp.MustCompile(`(?i)\b(?:at|in)\s+([A-Za-z\s,]+)`)
	labelPattern    = regexp.MustCompile(`['"]([^'"]{1,21})['"]`)
	locationCut     = regexp.MustCompile(`[,.]`)
)

// parsed is what the pattern parser pulls out of a command.
type parsed struct {
	Echelon  string
	Unit     string
	Location string
	Label    string
}

func parseCommand(cmd string) parsed {
	lower := strings.ToLower(cmd)
	var p parsed
	if m := echelonPattern.FindStringSubmatch(lower); m != nil {
		p.Echelon = titleWords(m[1])
	}
	if m := unitPattern.FindStringSubmatch(lower); m != nil {
		p.Unit = m[1]
	}
	if m := locationPattern.FindStringSubmatch(cmd); m != nil {
		p.Location = strings.TrimSpace(locationCut.Split(strings.TrimSpace(m[1]), 2)[0])
	}
	if m := labelPattern.FindStringSubmatch(cmd); m != nil {
		p.Label = strings.TrimSpace(m[1])
	}
	return p
}

// fallbackSymbol builds a friendly Land Unit from "<unit> <echelon> at
// <place>" style commands. ok is false when no place could be geocoded.
func fallbackSymbol(ctx context.Context, cmd string, geo geocode.Geocoder, log *zap.SugaredLogger) (*SymbolData, bool) {
	p := parseCommand(cmd)
	if p.Location == "" || geo == nil {
		return nil, false
	}
	pt, err := geo.Geocode(ctx, p.Location)
	if err != nil {
		log.Debugw("Fallback geocoding failed", logger.FieldLocation, p.Location, logger.FieldError, err)
		return nil, false
	}

	category := p.Unit
	if category == "" {
		category = "Infantry"
	}
	mainIcon, ok := sidc.FindFunctionID(sidc.SymbolSetLandUnit.String(), category)
	if !ok {
		mainIcon = "000000"
	}

	d := &SymbolData{
		StandardIdentity: sidc.IdentityFriend.String(),
		SymbolSet:        sidc.SymbolSetLandUnit.String(),
		SymbolCategory:   titleWords(category),
		Echelon:          p.Echelon,
		MainIconID:       mainIcon,
		Modifier1:        "00",
		Modifier2:        "00",
		AILabel:          p.Label,
		LocationName:     p.Location,
	}
	d.SetCoordinates(pt.Latitude, pt.Longitude)
	return d, true
}

// placeholderSymbol is returned when nothing else produced a feature.
func placeholderSymbol() *SymbolData {
	d := &SymbolData{
		StandardIdentity: sidc.IdentityFriend.String(),
		SymbolSet:        sidc.SymbolSetLandUnit.String(),
		SymbolCategory:   "Unknown",
	}
	d.SetCoordinates(0, 0)
	return d
}

func titleWords(s string) string {
	words := strings.Fields(strings.ToLower(s))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
