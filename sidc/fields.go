package sidc

// Context is the reality / exercise / simulation column (offset 2).
type Context string

const (
	ContextReality    Context = "0"
	ContextExercise   Context = "1"
	ContextSimulation Context = "2"
)

var contexts = newTable(ContextReality,
	entry[Context]{ContextReality, "Reality"},
	entry[Context]{ContextExercise, "Exercise"},
	entry[Context]{ContextSimulation, "Simulation"},
)

// StandardIdentity is the affiliation column (offset 3).
type StandardIdentity string

const (
	IdentityPending       StandardIdentity = "0"
	IdentityUnknown       StandardIdentity = "1"
	IdentityAssumedFriend StandardIdentity = "2"
	IdentityFriend        StandardIdentity = "3"
	IdentityNeutral       StandardIdentity = "4"
	IdentitySuspect       StandardIdentity = "5"
	IdentityHostile       StandardIdentity = "6"
)

var identities = newTable(IdentityUnknown,
	entry[StandardIdentity]{IdentityPending, "Pending"},
	entry[StandardIdentity]{IdentityUnknown, "Unknown"},
	entry[StandardIdentity]{IdentityAssumedFriend, "Assumed Friend"},
	entry[StandardIdentity]{IdentityFriend, "Friend"},
	entry[StandardIdentity]{IdentityNeutral, "Neutral"},
	entry[StandardIdentity]{IdentitySuspect, "Suspect"},
	entry[StandardIdentity]{IdentityHostile, "Hostile"},
)

// SymbolSet is the operational domain column (offsets 4-5).
type SymbolSet string

const (
	SymbolSetUnknown              SymbolSet = "00"
	SymbolSetAir                  SymbolSet = "01"
	SymbolSetAirMissile           SymbolSet = "02"
	SymbolSetSpace                SymbolSet = "05"
	SymbolSetSpaceMissile         SymbolSet = "06"
	SymbolSetLandUnit             SymbolSet = "10"
	SymbolSetLandCivilian         SymbolSet = "11"
	SymbolSetLandEquipment        SymbolSet = "15"
	SymbolSetLandInstallation     SymbolSet = "20"
	SymbolSetControlMeasure       SymbolSet = "25"
	SymbolSetDismountedIndividual SymbolSet = "27"
	SymbolSetSeaSurface           SymbolSet = "30"
	SymbolSetSubsurface           SymbolSet = "35"
	SymbolSetSeaMine              SymbolSet = "36"
	SymbolSetActivities           SymbolSet = "40"
	SymbolSetSIGINTAir            SymbolSet = "50"
	SymbolSetSIGINTSpace          SymbolSet = "51"
	SymbolSetSIGINTLand           SymbolSet = "52"
	SymbolSetSIGINTSurface        SymbolSet = "53"
	SymbolSetSIGINTSubsurface     SymbolSet = "54"
	SymbolSetCyberspace           SymbolSet = "60"
)

var symbolSets = newTable(SymbolSetLandUnit,
	entry[SymbolSet]{SymbolSetUnknown, "Unknown"},
	entry[SymbolSet]{SymbolSetAir, "Air"},
	entry[SymbolSet]{SymbolSetAirMissile, "Air Missile"},
	entry[SymbolSet]{SymbolSetSpace, "Space"},
	entry[SymbolSet]{SymbolSetSpaceMissile, "Space Missile"},
	entry[SymbolSet]{SymbolSetLandUnit, "Land Unit"},
	entry[SymbolSet]{SymbolSetLandCivilian, "Land Civilian"},
	entry[SymbolSet]{SymbolSetLandEquipment, "Land Equipment"},
	entry[SymbolSet]{SymbolSetLandInstallation, "Land Installation"},
	entry[SymbolSet]{SymbolSetControlMeasure, "Control Measure"},
	entry[SymbolSet]{SymbolSetDismountedIndividual, "Dismounted Individual"},
	entry[SymbolSet]{SymbolSetSeaSurface, "Sea Surface"},
	entry[SymbolSet]{SymbolSetSubsurface, "Subsurface"},
	entry[SymbolSet]{SymbolSetSeaMine, "Sea Mine"},
	entry[SymbolSet]{SymbolSetActivities, "Activities"},
	entry[SymbolSet]{SymbolSetSIGINTAir, "SIGINT Air"},
	entry[SymbolSet]{SymbolSetSIGINTSpace, "SIGINT Space"},
	entry[SymbolSet]{SymbolSetSIGINTLand, "SIGINT Land"},
	entry[SymbolSet]{SymbolSetSIGINTSurface, "SIGINT Surface"},
	entry[SymbolSet]{SymbolSetSIGINTSubsurface, "SIGINT Subsurface"},
	entry[SymbolSet]{SymbolSetCyberspace, "Cyberspace"},
)

// Status is the operational condition column (offset 6).
type Status string

const (
	StatusPresent        Status = "0"
	StatusPlanned        Status = "1"
	StatusFullyCapable   Status = "2"
	StatusDamaged        Status = "3"
	StatusDestroyed      Status = "4"
	StatusFullToCapacity Status = "5"
)

var statuses = newTable(StatusPresent,
	entry[Status]{StatusPresent, "Present"},
	entry[Status]{StatusPlanned, "Planned"},
	entry[Status]{StatusFullyCapable, "Fully Capable"},
	entry[Status]{StatusDamaged, "Damaged"},
	entry[Status]{StatusDestroyed, "Destroyed"},
	entry[Status]{StatusFullToCapacity, "Full to Capacity"},
)

// HQTFD is the headquarters / task force / feint-dummy column (offset 7).
type HQTFD string

const (
	HQTFDNotApplicable                   HQTFD = "0"
	HQTFDFeintDummy                      HQTFD = "1"
	HQTFDHeadquarters                    HQTFD = "2"
	HQTFDFeintDummyHeadquarters          HQTFD = "3"
	HQTFDTaskForce                       HQTFD = "4"
	HQTFDFeintDummyTaskForce             HQTFD = "5"
	HQTFDTaskForceHeadquarters           HQTFD = "6"
	HQTFDFeintDummyTaskForceHeadquarters HQTFD = "7"
)

var hqtfds = newTable(HQTFDNotApplicable,
	entry[HQTFD]{HQTFDNotApplicable, "Not Applicable"},
	entry[HQTFD]{HQTFDFeintDummy, "Feint Dummy"},
	entry[HQTFD]{HQTFDHeadquarters, "Headquarters"},
	entry[HQTFD]{HQTFDFeintDummyHeadquarters, "Feint Dummy Headquarters"},
	entry[HQTFD]{HQTFDTaskForce, "Task Force"},
	entry[HQTFD]{HQTFDFeintDummyTaskForce, "Feint Dummy Task Force"},
	entry[HQTFD]{HQTFDTaskForceHeadquarters, "Task Force Headquarters"},
	entry[HQTFD]{HQTFDFeintDummyTaskForceHeadquarters, "Feint Dummy Task Force Headquarters"},
)

// Headquarters reports whether the HQ flag is set.
func (h HQTFD) Headquarters() bool {
	return h == HQTFDHeadquarters || h == HQTFDFeintDummyHeadquarters ||
		h == HQTFDTaskForceHeadquarters || h == HQTFDFeintDummyTaskForceHeadquarters
}

// TaskForce reports whether the task force flag is set.
func (h HQTFD) TaskForce() bool {
	return h == HQTFDTaskForce || h == HQTFDFeintDummyTaskForce ||
		h == HQTFDTaskForceHeadquarters || h == HQTFDFeintDummyTaskForceHeadquarters
}

// FeintDummy reports whether the feint/dummy flag is set.
func (h HQTFD) FeintDummy() bool {
	return h == HQTFDFeintDummy || h == HQTFDFeintDummyHeadquarters ||
		h == HQTFDFeintDummyTaskForce || h == HQTFDFeintDummyTaskForceHeadquarters
}

// Echelon is the echelon / mobility / towed array column (offsets 8-9).
// Only the echelon half of the column is tabulated.
type Echelon string

const (
	EchelonUnspecified   Echelon = "00"
	EchelonTeam          Echelon = "11"
	EchelonSquad         Echelon = "12"
	EchelonSection       Echelon = "13"
	EchelonPlatoon       Echelon = "14"
	EchelonCompany       Echelon = "15"
	EchelonBattalion     Echelon = "16"
	EchelonRegiment      Echelon = "17"
	EchelonBrigade       Echelon = "18"
	EchelonDivision      Echelon = "21"
	EchelonCorps         Echelon = "22"
	EchelonArmy          Echelon = "23"
	EchelonArmyGroup     Echelon = "24"
	EchelonRegionTheater Echelon = "25"
	EchelonCommand       Echelon = "26"
)

var echelons = newTable(EchelonUnspecified,
	entry[Echelon]{EchelonUnspecified, "Unspecified"},
	entry[Echelon]{EchelonTeam, "Team"},
	entry[Echelon]{EchelonSquad, "Squad"},
	entry[Echelon]{EchelonSection, "Section"},
	entry[Echelon]{EchelonPlatoon, "Platoon"},
	entry[Echelon]{EchelonCompany, "Company"},
	entry[Echelon]{EchelonBattalion, "Battalion"},
	entry[Echelon]{EchelonRegiment, "Regiment"},
	entry[Echelon]{EchelonBrigade, "Brigade"},
	entry[Echelon]{EchelonDivision, "Division"},
	entry[Echelon]{EchelonCorps, "Corps"},
	entry[Echelon]{EchelonArmy, "Army"},
	entry[Echelon]{EchelonArmyGroup, "Army Group/Front"},
	entry[Echelon]{EchelonRegionTheater, "Region/Theater"},
	entry[Echelon]{EchelonCommand, "Command"},
)

// Code returns the fixed-width column value.
func (c Context) Code() string          { return string(c) }
func (s StandardIdentity) Code() string { return string(s) }
func (s SymbolSet) Code() string        { return string(s) }
func (s Status) Code() string           { return string(s) }
func (h HQTFD) Code() string            { return string(h) }
func (e Echelon) Code() string          { return string(e) }

// String returns the display label, or "Unknown" for values outside the table.
func (c Context) String() string          { return contexts.label(c) }
func (s StandardIdentity) String() string { return identities.label(s) }
func (s SymbolSet) String() string        { return symbolSets.label(s) }
func (s Status) String() string           { return statuses.label(s) }
func (h HQTFD) String() string            { return hqtfds.label(h) }
func (e Echelon) String() string          { return echelons.label(e) }

// Valid reports whether the value is one of the tabulated codes.
func (c Context) Valid() bool          { return contexts.valid(c) }
func (s StandardIdentity) Valid() bool { return identities.valid(s) }
func (s SymbolSet) Valid() bool        { return symbolSets.valid(s) }
func (s Status) Valid() bool           { return statuses.valid(s) }
func (h HQTFD) Valid() bool            { return hqtfds.valid(h) }
func (e Echelon) Valid() bool          { return echelons.valid(e) }

// ParseContext and friends turn free text into an enumerated value.
// They are the only way unvalidated labels reach the typed columns; ok is
// false when the label is not in the table.
func ParseContext(label string) (Context, bool) { return contexts.parse(label) }

func ParseStandardIdentity(label string) (StandardIdentity, bool) { return identities.parse(label) }

func ParseSymbolSet(label string) (SymbolSet, bool) { return symbolSets.parse(label) }

func ParseStatus(label string) (Status, bool) { return statuses.parse(label) }

func ParseHQTFD(label string) (HQTFD, bool) { return hqtfds.parse(label) }

func ParseEchelon(label string) (Echelon, bool) { return echelons.parse(label) }

// Contexts, StandardIdentities, ... list every value in canonical order.
func Contexts() []Context                    { return contexts.values() }
func StandardIdentities() []StandardIdentity { return identities.values() }
func SymbolSets() []SymbolSet                { return symbolSets.values() }
func Statuses() []Status                     { return statuses.values() }
func HQTFDs() []HQTFD                        { return hqtfds.values() }
func Echelons() []Echelon                    { return echelons.values() }

// Key returns the normalized table key of the display label ("LAND_UNIT").
func (c Context) Key() string          { return Normalize(c.String()) }
func (s StandardIdentity) Key() string { return Normalize(s.String()) }
func (s SymbolSet) Key() string        { return Normalize(s.String()) }
func (s Status) Key() string           { return Normalize(s.String()) }
func (h HQTFD) Key() string            { return Normalize(h.String()) }
func (e Echelon) Key() string          { return Normalize(e.String()) }
