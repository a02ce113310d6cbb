// Package gamedata holds the static reference data the analysis engine
// keys its heuristics on: canonical unit names, kill-credit redirects,
// special-case unit sets, commander tables, and the library of known
// opposing-force composition templates. Everything here is immutable for
// the lifetime of the process.
package gamedata

import "strings"

// CanonicalNames maps raw telemetry unit-type identifiers to display names.
// Raw identifiers absent from the map are their own canonical name.
// Multiple raw identifiers mapping to the same display name (morph pairs,
// hero variants) are summed together during report normalization.
var CanonicalNames = map[string]string{
	// Terran morph pairs and variants.
	"SiegeTankSieged":      "Siege Tank",
	"SiegeTank":            "Siege Tank",
	"VikingFighter":        "Viking",
	"VikingAssault":        "Viking",
	"LiberatorAG":          "Liberator",
	"Liberator":            "Liberator",
	"HellionTank":          "Hellbat",
	"Hellion":              "Hellion",
	"WidowMineBurrowed":    "Widow Mine",
	"WidowMine":            "Widow Mine",
	"ThorAP":               "Thor",
	"Thor":                 "Thor",
	"VultureSpiderMine":    "Spider Mine",
	"ScienceVessel":        "Science Vessel",
	"Battlecruiser":        "Battlecruiser",
	"WarHound":             "Warhound",

	// Zerg morph pairs and variants.
	"LurkerMPBurrowed":     "Lurker",
	"LurkerMP":             "Lurker",
	"SwarmHostBurrowedMP":  "Swarm Host",
	"SwarmHostMP":          "Swarm Host",
	"InfestorBurrowed":     "Infestor",
	"Infestor":             "Infestor",
	"RoachBurrowed":        "Roach",
	"Roach":                "Roach",
	"ZerglingBurrowed":     "Zergling",
	"Zergling":             "Zergling",
	"BanelingBurrowed":     "Baneling",
	"Baneling":             "Baneling",
	"HydraliskBurrowed":    "Hydralisk",
	"Hydralisk":            "Hydralisk",
	"UltraliskBurrowed":    "Ultralisk",
	"Ultralisk":            "Ultralisk",
	"QueenClassic":         "Queen (Classic)",
	"BroodLord":            "Brood Lord",
	"OverseerSiegeMode":    "Overseer",
	"Overseer":             "Overseer",
	"HotSRaptor":           "Raptor",
	"HotSSwarmling":        "Swarmling",
	"InfestedAbomination":  "Aberration",

	// Protoss morph pairs and variants.
	"WarpPrismPhasing":     "Warp Prism",
	"WarpPrism":            "Warp Prism",
	"ObserverSiegeMode":    "Observer",
	"Observer":             "Observer",
	"DisruptorPhased":      "Disruptor",
	"Disruptor":            "Disruptor",
	"ArbiterMP":            "Arbiter",
	"CorsairMP":            "Corsair",
	"VoidRay":              "Void Ray",
	"HighTemplar":          "High Templar",
	"DarkTemplar":          "Dark Templar",

	// Commander hero units.
	"K5Kerrigan":           "Kerrigan",
	"KerriganVoidCoopEconMode": "Kerrigan",
	"AlarakCoop":           "Alarak",
	"ZagaraVoidCoop":       "Zagara",
	"DehakaCoop":           "Dehaka",
	"NovaCoop":             "Nova",
	"ZeratulCoop":          "Zeratul",
	"FenixCoop":            "Fenix",
	"FenixDragoon":         "Fenix (Dragoon)",
	"FenixArbiter":         "Fenix (Arbiter)",
	"TychusCoop":           "Tychus Findlay",
	"TychusReaper":         "Crooked Sam",
	"TychusWarhound":       "Rob 'Cannonball' Boswell",
	"TychusMarauder":       "James 'Sirius' Sykes",
	"TychusHERC":           "Lt. Layna Nikara",
	"TychusFirebat":        "Miles 'Blaze' Lewis",
	"TychusGhost":          "Vega",
	"TychusSpectre":        "Nux",
	"TychusMedic":          "Lt. Layna Nikara",
	"TychusSCVAutoTurret":  "Auto-Turret",
	"DehakaCoopReviveCocoonFootPrint": "Dehaka Cocoon",

	// Opposing-force hybrids and specials.
	"HybridDominator":      "Hybrid Dominator",
	"HybridDominatorVoid":  "Hybrid Dominator",
	"HybridDestroyer":      "Hybrid Destroyer",
	"HybridReaver":         "Hybrid Reaver",
	"HybridNemesis":        "Hybrid Nemesis",
	"HybridBehemoth":       "Hybrid Behemoth",
	"MutatorAmonNova":      "Nova (Amon)",
	"MutatorAmonArtanis":   "Artanis (Amon)",
	"HellbatBlackOps":      "Hellbat (Black Ops)",
	"InfestedCivilian":     "Infested Civilian",
	"InfestedCivilianBurrowed": "Infested Civilian",
	"InfestedTerranCampaign": "Infested Terran",
	"InfestedTerranCampaignBurrowed": "Infested Terran",
}

// AddKillsTo redirects kill credit from a spawned child unit to its parent
// unit type. Children listed here never contribute created/lost counts.
var AddKillsTo = map[string]string{
	"LocustMP":         "Swarm Host",
	"LocustMPFlying":   "Swarm Host",
	"LocustMPPrecursor": "Swarm Host",
	"Broodling":        "Brood Lord",
	"BroodlingEscort":  "Brood Lord",
	"Interceptor":      "Carrier",
	"AutoTurret":       "Raven",
	"InfestedTerransEgg": "Infestor",
	"ParasiticBombRelayDummy": "Viper",
	"KD8Charge":        "Reaper",
}

// RevivalTypes maps hero revival beacons/cocoons to the hero unit they
// revive. Spawning one counts as the hero both created and lost, since the
// hero itself never reports a death.
var RevivalTypes = map[string]string{
	"KerriganReviveCocoon":            "K5Kerrigan",
	"AlarakReviveBeacon":              "AlarakCoop",
	"ZagaraReviveCocoon":              "ZagaraVoidCoop",
	"DehakaCoopReviveCocoonFootPrint": "DehakaCoop",
	"NovaReviveBeacon":                "NovaCoop",
	"ZeratulCoopReviveBeacon":         "ZeratulCoop",
}

// SelfKillingUnits are hero units that report a killer-less death on a
// voluntary form switch. Such a death undoes the creation instead of
// counting as a loss.
var SelfKillingUnits = map[string]bool{
	"FenixCoop":    true,
	"FenixDragoon": true,
	"FenixArbiter": true,
}

// DuplicatingUnits are re-logged as a death plus a birth on a single state
// transition (raptor jumps, hero morphs); the spurious death undoes the
// duplicate creation.
var DuplicatingUnits = map[string]bool{
	"HotSRaptor":         true,
	"MutatorAmonArtanis": true,
	"HellbatBlackOps":    true,
}

// AOEUnits can cause kills after their own death through lingering or
// delayed effects; their deaths are remembered for retroactive kill
// attribution.
var AOEUnits = map[string]bool{
	"Raven":            true,
	"ScienceVessel":    true,
	"Viper":            true,
	"HybridDominator":  true,
	"Infestor":         true,
	"HighTemplar":      true,
	"Blightbringer":    true,
	"TitanMechAssault": true,
	"MutatorAmonNova":  true,
}

// IconUnits are surfaced separately in the report for UI highlighting.
var IconUnits = map[string]bool{
	"MULE":       true,
	"Omega Worm": true,
}

// ShadeProjectionTypes are Zeratul's projection units; their created counts
// are summed into a single "ShadeProjection" icon entry.
var ShadeProjectionTypes = []string{
	"ZeratulKhaydarinMonolithProjection",
	"ZeratulPhotonCannonProjection",
}

// HiddenLifecycleUnits are narrative units whose created/lost counts are not
// meaningful; the report shows "?" for them. Keys are canonical names.
var HiddenLifecycleUnits = map[string]bool{
	"Tychus Findlay":           true,
	"James 'Sirius' Sykes":     true,
	"Kev 'Rattlesnake' West":   true,
	"Nux":                      true,
	"Crooked Sam":              true,
	"Lt. Layna Nikara":         true,
	"Miles 'Blaze' Lewis":      true,
	"Rob 'Cannonball' Boswell": true,
	"Vega":                     true,
}

// TychusOutlaws are Tychus' squad members, tracked in first-recruited order.
var TychusOutlaws = map[string]bool{
	"TychusCoop":     true,
	"TychusReaper":   true,
	"TychusWarhound": true,
	"TychusMarauder": true,
	"TychusHERC":     true,
	"TychusFirebat":  true,
	"TychusGhost":    true,
	"TychusSpectre":  true,
	"TychusMedic":    true,
}

// NonCountableType is a pickup unit whose deaths never award kill credit.
const NonCountableType = "FuelCellPickupUnit"

// MergeResultType and MergeSourceTypes describe the Archon merge: each merge
// creation grants two suppressed source deaths.
const MergeResultType = "Archon"

// MergeSourceTypes are the pre-merge unit types whose deaths a merge explains.
var MergeSourceTypes = map[string]bool{
	"HighTemplar": true,
	"DarkTemplar": true,
}

// CommanderUpgrades maps commander-selection upgrade identifiers to the
// commander display name, used as a fallback when the lobby slot's
// commander field is empty.
var CommanderUpgrades = map[string]string{
	"AlarakCommander":   "Alarak",
	"ArtanisCommander":  "Artanis",
	"FenixCommander":    "Fenix",
	"KaraxCommander":    "Karax",
	"VorazunCommander":  "Vorazun",
	"ZeratulCommander":  "Zeratul",
	"HornerCommander":   "Han & Horner",
	"MengskCommander":   "Mengsk",
	"NovaCommander":     "Nova",
	"RaynorCommander":   "Raynor",
	"SwannCommander":    "Swann",
	"TychusCommander":   "Tychus",
	"AbathurCommander":  "Abathur",
	"DehakaCommander":   "Dehaka",
	"KerriganCommander": "Kerrigan",
	"StukovCommander":   "Stukov",
	"ZagaraCommander":   "Zagara",
	"StetmannCommander": "Stetmann",
}

// ProgressionUpgrade marks the start of commander progression; its
// completion second is the computed match-start time on arcade-queue maps.
const ProgressionUpgrade = "CommanderLevel"

// OpponentNameFragments identify opposing-force roster entries by display
// name for slots above the two fixed opponent ids.
var OpponentNameFragments = []string{
	"Amon",
	"Infested",
	"Salamander",
	"Void Shard",
	"Hologram",
	"Moebius",
	"Ji'nara",
	"Warp Conduit ",
}

// NonWaveUnits never signal composition identity: workers, transports,
// burrowed morphs, incidental summons, and boss units. They are excluded
// both from wave buffers and from template matching.
var NonWaveUnits = map[string]bool{
	"LurkerMPBurrowed":               true,
	"HybridDominatorCoopBoss":        true,
	"Nuke":                           true,
	"Bunker":                         true,
	"HybridDestroyer":                true,
	"Larva":                          true,
	"InfestedTerransEgg":             true,
	"MutatorStormCloud":              true,
	"MoebiusSeeker":                  true,
	"PnPHybridVoidRift":              true,
	"InfestedColonistTransportNova":  true,
	"NovaInfestedBansheeBurrowed":    true,
	"InfestedAbominationBurrowed":    true,
	"InfestedExploder":               true,
	"SCV":                            true,
	"Probe":                          true,
	"Drone":                          true,
	"InfestedCivilianBurrowed":       true,
	"InfestedTerranCampaignBurrowed": true,
	"InfestedExploderBurrowed":       true,
	"InfestedTerranCampaign":         true,
	"ZergDropPodCreep":               true,
	"ParasiticBombDummy":             true,
	"InfestedCivilian":               true,
	"HybridDominatorVoid":            true,
	"HybridReaver":                   true,
	"HybridNemesis":                  true,
	"HybridBehemoth":                 true,
	"Observer":                       true,
	"Overlord":                       true,
	"Overseer":                       true,
	"WarpPrism":                      true,
	"LocustMP":                       true,
	"Medivac":                        true,
	"Broodling":                      true,
	"BroodlingEscort":                true,
	"CreepTumor":                     true,
	"TerranDropPod":                  true,
	"ZergDropPod":                    true,
	"MutatorPurifierBeam":            true,
}

// skipStrings mark opposing-force bucket rows that are map furniture rather
// than army: placements, cocoons, drop pods, and similar.
var skipStrings = []string{
	"placement",
	"placeholder",
	"dummy",
	"cocoon",
	"droppod",
	"colonist hut",
	"bio-dome",
	"amon's train",
	"warp conduit",
}

// CanonicalName resolves a raw unit-type identifier to its display name.
func CanonicalName(raw string) string {
	if name, ok := CanonicalNames[raw]; ok {
		return name
	}
	return raw
}

// IsSkippable reports whether a unit name is map furniture that should not
// appear in the opposing-force table.
func IsSkippable(name string) bool {
	lowered := strings.ToLower(name)
	for _, s := range skipStrings {
		if strings.Contains(lowered, s) {
			return true
		}
	}
	return false
}

// IsOpponentName reports whether a roster display name matches any known
// opposing-force name fragment.
func IsOpponentName(name string) bool {
	for _, frag := range OpponentNameFragments {
		if strings.Contains(name, frag) {
			return true
		}
	}
	return false
}
