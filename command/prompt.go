package command

import (
	"strings"

	"github.com/teranos/milassist/sidc"
)

// systemPrompt is sent with every command. The enumerations are generated
// from the codec tables so the model only sees labels the decoder accepts.
var systemPrompt = buildSystemPrompt()

func buildSystemPrompt() string {
	var b strings.Builder
	b.WriteString(`You are an AI mission planning assistant. Analyze the user's command and extract the information needed to draw one feature on the map.
- If the command describes a single unit at a specific location, return a "symbol".
- If the command describes a path, movement, or route between two locations, return a "route". Routes need both a start and an end location name.

Respond with a single JSON object and nothing else, in one of these shapes:
{"type":"symbol","data":{"symbolStandardIdentity":"...","symbolSet":"...","symbolCategory":"...","latitude":0.0,"longitude":0.0, ...}}
{"type":"route","data":{"startLocationName":"...","endLocationName":"...","pathType":"...","unitInfo":"..."}}

Symbol fields:
`)
	field := func(name, desc string) {
		b.WriteString("- ")
		b.WriteString(name)
		b.WriteString(": ")
		b.WriteString(desc)
		b.WriteByte('\n')
	}
	field("context (optional)", oneOf(labels(sidc.Contexts())))
	field("symbolStandardIdentity", oneOf(labels(sidc.StandardIdentities())))
	field("symbolSet", "the operational domain, "+oneOf(labels(sidc.SymbolSets())))
	field("symbolCategory", "the main function of the unit (e.g. armored, infantry, bomber)")
	field("status (optional)", oneOf(labels(sidc.Statuses())))
	field("hqtfd (optional)", oneOf(labels(sidc.HQTFDs())))
	field("symbolEchelon (optional)", oneOf(labels(sidc.Echelons()[1:])))
	field("modifier1, modifier2 (optional)", "modifiers in Title Case (e.g. 'Attack', 'Heavy')")
	field("latitude, longitude", "decimal degrees of the unit; if unknown, omit them and set locationName to the place name")
	field("aiLabel (optional)", "a unique name or designation from the command (e.g. 'Raptors', \"Thunder Run\", Alpha-1), max 21 characters; omit it when none is given, never insert a default like 'Unknown'")
	b.WriteString(`Optional text amplifiers: additionalInformation, altitudeDepth, combatEffectiveness, commonIdentifier, direction, dtg, equipmentTeardownTime, evaluationRating, headquartersElement, higherFormation, hostile, iffSif, location, platformType, quantity, reinforcedReduced, signatureEquipment, specialHeadquarters, speed, staffComments, type, uniqueDesignation.
`)
	return b.String()
}

type labeled interface{ String() string }

func labels[T labeled](vs []T) []string {
	out := make([]string, len(vs))
	for i, v := range vs {
		out[i] = v.String()
	}
	return out
}

func oneOf(vs []string) string {
	return "one of " + strings.Join(vs, ", ")
}

func userPrompt(cmd string) string {
	return "Command: " + cmd
}
