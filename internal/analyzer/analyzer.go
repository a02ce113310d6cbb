package analyzer

import (
	"errors"
	"fmt"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/nanpuhaha/SC2-Coop-Overlay/internal/gamedata"
	"github.com/nanpuhaha/SC2-Coop-Overlay/internal/model"
)

// deferredStartSentinel parks the effective start second beyond any real
// match clock until the progression upgrade pins it down.
const deferredStartSentinel = 1 << 30

// Analyzer reduces replay event streams into match reports. It holds only
// immutable configuration and the composition library, so a single Analyzer
// is safe for concurrent Run calls.
type Analyzer struct {
	cfg     Config
	library []gamedata.Composition
}

// Options carries the per-run knobs of an analysis.
type Options struct {
	// PrimaryNames are name fragments identifying which human participant
	// is the primary one. Empty means participant 1.
	PrimaryNames []string

	// DeferredStart defers the effective match start until the progression
	// upgrade fires, for replays whose clock does not begin at the loading
	// screen.
	DeferredStart bool
}

// New returns an Analyzer for the given configuration.
func New(cfg Config) (*Analyzer, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	library, err := gamedata.Compositions()
	if err != nil {
		return nil, fmt.Errorf("loading composition library: %w", err)
	}
	return &Analyzer{cfg: cfg, library: library}, nil
}

// Run walks the event stream once and builds the match report. The input is
// not modified; runs over the same input produce identical reports.
func (a *Analyzer) Run(rd *model.ReplayData, opts Options) (*model.Report, error) {
	if rd == nil {
		return nil, errors.New("nil replay data")
	}
	if !rd.Match.IntegrityOK {
		return nil, errors.New("replay archive failed integrity check")
	}

	r := newRun(a.cfg)
	r.designateParticipants(rd, opts)
	if opts.DeferredStart {
		r.startSecond = deferredStartSentinel
	}

	for _, ev := range rd.Events {
		r.observe(ev)
	}

	return r.buildReport(rd, a.library), nil
}

// aoeRecord remembers the last area-effect opposing unit death per
// participant, so a later killer-less kill can be attributed to it.
type aoeRecord struct {
	unitType string
	second   int
}

// run is the mutable state of a single analysis. A fresh run is allocated
// per Run call; nothing here is shared.
type run struct {
	cfg Config

	primary        model.ParticipantID
	partner        model.ParticipantID
	partnerPresent bool
	primaryName    string
	partnerName    string
	opponents      map[model.ParticipantID]bool
	waveEligible   map[model.ParticipantID]bool

	registry unitRegistry

	bucketPrimary  bucket
	bucketPartner  bucket
	bucketOpposing bucket

	killCounts map[model.ParticipantID]int

	startSecond       int
	commanderFallback map[model.ParticipantID]string
	prestige          map[model.ParticipantID]string
	outlawOrder       []string

	waves        *waveDetector
	aoe          map[model.ParticipantID]*aoeRecord
	mergeCredits map[model.ParticipantID]int
}

func newRun(cfg Config) *run {
	return &run{
		cfg:               cfg,
		primary:           1,
		partner:           2,
		opponents:         make(map[model.ParticipantID]bool),
		waveEligible:      make(map[model.ParticipantID]bool),
		registry:          make(unitRegistry),
		bucketPrimary:     make(bucket),
		bucketPartner:     make(bucket),
		bucketOpposing:    make(bucket),
		killCounts:        make(map[model.ParticipantID]int),
		commanderFallback: make(map[model.ParticipantID]string),
		prestige:          make(map[model.ParticipantID]string),
		waves:             newWaveDetector(cfg.WaveThreshold),
		aoe:               make(map[model.ParticipantID]*aoeRecord),
		mergeCredits:      make(map[model.ParticipantID]int),
	}
}

// designateParticipants resolves the primary and partner participants from
// the roster and fills in the opposing-force id set. The opposing force is
// the fixed map slots plus any higher slot whose name matches a known
// opponent fragment (bonus-objective and mutator forces).
func (r *run) designateParticipants(rd *model.ReplayData, opts Options) {
	maxFixed := model.ParticipantID(0)
	for _, pid := range r.cfg.FixedOpponents {
		r.opponents[pid] = true
		if pid > maxFixed {
			maxFixed = pid
		}
	}
	for _, pid := range r.cfg.WaveEligible {
		r.waveEligible[pid] = true
	}
	for _, p := range rd.Roster {
		if p.ID > maxFixed && gamedata.IsOpponentName(p.Name) {
			r.opponents[p.ID] = true
		}
	}

	if len(opts.PrimaryNames) > 0 {
	match:
		for _, p := range rd.Roster {
			if p.ID > 2 {
				continue
			}
			for _, frag := range opts.PrimaryNames {
				if strings.Contains(strings.ToLower(p.Name), strings.ToLower(frag)) {
					r.primary = p.ID
					break match
				}
			}
		}
	}
	if r.primary == 2 {
		r.partner = 1
	}
	r.partnerPresent = rd.HumanCount() > 1

	for _, p := range rd.Roster {
		switch p.ID {
		case r.primary:
			r.primaryName = p.Name
		case r.partner:
			r.partnerName = p.Name
		}
	}

	log.WithFields(log.Fields{
		"primary":   r.primary,
		"partner":   r.partner,
		"opponents": len(r.opponents),
	}).Debug("designated participants")
}

func (r *run) observe(ev model.Event) {
	switch e := ev.(type) {
	case model.UnitBorn:
		r.onSpawn(e.Second, e.Tag, e.UnitType, e.Owner, false)
	case model.UnitInit:
		r.onSpawn(e.Second, e.Tag, e.UnitType, e.Owner, true)
	case model.UnitOwnerChange:
		r.registry.setOwner(e.Tag, e.Owner)
	case model.UnitTypeChange:
		r.onTypeChange(e)
	case model.UnitDied:
		r.onDeath(e)
	case model.UpgradeComplete:
		r.onUpgrade(e)
	default:
		log.WithField("kind", fmt.Sprintf("%T", ev)).Debug("unhandled event kind skipped")
	}
}

func (r *run) isHumanSide(pid model.ParticipantID) bool {
	return pid == r.primary || pid == r.partner
}

// bucketFor returns the stats bucket owned by pid, or nil for participants
// outside all three tracked sides (neutral map slots).
func (r *run) bucketFor(pid model.ParticipantID) bucket {
	switch {
	case pid == r.primary:
		return r.bucketPrimary
	case pid == r.partner:
		return r.bucketPartner
	case r.opponents[pid]:
		return r.bucketOpposing
	}
	return nil
}

func (r *run) onSpawn(second int, tag model.UnitTag, unitType string, owner model.ParticipantID, init bool) {
	r.registry.put(tag, unitType, owner)

	// A revival token past the effective start means the hero it stands for
	// died and came back; the hero's own row absorbs one created and one
	// lost so the token never shows up itself.
	if hero, ok := gamedata.RevivalTypes[unitType]; ok && r.isHumanSide(owner) && second > r.startSecond {
		if b := r.bucketFor(owner); b != nil {
			t := b.get(hero)
			t.created++
			t.lost++
		}
	}

	if b := r.bucketFor(owner); b != nil {
		b.recordCreated(unitType)
	}

	if init && unitType == gamedata.MergeResultType {
		// Two source templar will die for this merge; forgive both deaths.
		r.mergeCredits[owner] += 2
	}

	if r.isHumanSide(owner) && gamedata.TychusOutlaws[unitType] {
		r.noteOutlaw(unitType)
	}

	if r.waveEligible[owner] &&
		second != 0 && second != r.startSecond && second > r.cfg.WaveMinSecond &&
		!gamedata.NonWaveUnits[unitType] {
		r.waves.observe(second, unitType)
	}
}

func (r *run) noteOutlaw(unitType string) {
	for _, o := range r.outlawOrder {
		if o == unitType {
			return
		}
	}
	r.outlawOrder = append(r.outlawOrder, unitType)
}

// onTypeChange counts a morph as a new creation only when both the old and
// new raw types are known and map to different canonical names. Same-name
// morphs (burrowing, sieging, mode toggles) just make sure the row exists.
func (r *run) onTypeChange(e model.UnitTypeChange) {
	old, owner, ok := r.registry.setType(e.Tag, e.UnitType)
	if !ok {
		log.WithFields(log.Fields{"unit": e.Tag, "second": e.Second}).
			Debug("type change for unknown unit skipped")
		return
	}

	oldCanon, oldKnown := gamedata.CanonicalNames[old]
	newCanon, newKnown := gamedata.CanonicalNames[e.UnitType]
	if !oldKnown || !newKnown {
		return
	}
	b := r.bucketFor(owner)
	if b == nil {
		return
	}
	if oldCanon != newCanon {
		b.recordCreated(e.UnitType)
	} else {
		b.ensure(e.UnitType)
	}
}

func (r *run) onUpgrade(e model.UpgradeComplete) {
	if e.Upgrade == gamedata.ProgressionUpgrade {
		r.startSecond = e.Second
	}
	if !r.isHumanSide(e.Player) {
		return
	}
	if cmdr, ok := gamedata.CommanderUpgrades[e.Upgrade]; ok {
		r.commanderFallback[e.Player] = cmdr
	}
	if p := gamedata.PrestigeName(e.Upgrade); p != "" {
		r.prestige[e.Player] = p
	}
}

// onDeath runs the death-correction chain. Order matters: kill bookkeeping
// first, then the suppression branches, each of which consumes the event.
func (r *run) onDeath(e model.UnitDied) {
	victim, ok := r.registry.lookup(e.Tag)
	if !ok {
		log.WithFields(log.Fields{"unit": e.Tag, "second": e.Second}).
			Debug("death of unknown unit skipped")
		return
	}

	// Per-participant kill counter. Team kills and the non-countable pickup
	// never count; neither does a death with no recorded killer.
	if e.KillerPID != 0 && e.KillerPID != victim.Owner &&
		victim.UnitType != gamedata.NonCountableType &&
		!(r.isHumanSide(e.KillerPID) && r.isHumanSide(victim.Owner)) {
		r.killCounts[e.KillerPID]++
	}

	// Remember opposing area-effect deaths caused by the human side; their
	// delayed damage produces killer-less kills shortly after.
	if gamedata.AOEUnits[victim.UnitType] && r.isHumanSide(e.KillerPID) && r.opponents[victim.Owner] {
		r.aoe[victim.Owner] = &aoeRecord{unitType: victim.UnitType, second: e.Second}
	}

	var killer unitRecord
	killerKnown := false
	if e.KillerTag != 0 {
		killer, killerKnown = r.registry.lookup(e.KillerTag)
	}

	// Retroactive attribution: a kill with a participant but no unit, close
	// enough after that participant's last area-effect loss, belongs to the
	// dead area-effect unit.
	if e.KillerTag == 0 && e.KillerPID != 0 && r.opponents[e.KillerPID] && e.KillerPID != victim.Owner {
		if rec := r.aoe[e.KillerPID]; rec != nil && e.Second-rec.second < r.cfg.AOEWindowSeconds {
			r.bucketOpposing.recordKill(rec.unitType)
			log.WithFields(log.Fields{
				"unit":   rec.unitType,
				"second": e.Second,
			}).Debug("killer-less kill attributed to area-effect unit")
		}
	}

	// Direct kill credit for the killing unit's row.
	if killerKnown && e.KillerTag != e.Tag && e.KillerPID != victim.Owner &&
		victim.UnitType != gamedata.NonCountableType {
		if b := r.bucketFor(e.KillerPID); b != nil {
			b.recordKill(killer.UnitType)
		}
	}

	// Scripted self-removal (warp-in constructs timing out) is not a real
	// loss; take back the creation and stop.
	if gamedata.SelfKillingUnits[victim.UnitType] && e.KillerPID == 0 {
		if r.isHumanSide(victim.Owner) {
			if b := r.bucketFor(victim.Owner); b != nil {
				b.undoCreated(victim.UnitType)
			}
		}
		return
	}

	// A duplicating unit killed by its own twin is a morph artifact, not a
	// loss.
	if e.Second > 0 && gamedata.DuplicatingUnits[victim.UnitType] && killerKnown &&
		killer.UnitType == victim.UnitType && victim.Owner == e.KillerPID {
		if b := r.bucketFor(victim.Owner); b != nil {
			b.undoCreated(victim.UnitType)
			return
		}
	}

	// Templar consumed by an armed merge are not losses either.
	if gamedata.MergeSourceTypes[victim.UnitType] && r.mergeCredits[victim.Owner] > 0 {
		r.mergeCredits[victim.Owner]--
		return
	}

	// Ordinary death. Zero-tick deaths are pre-game cleanup and stay out of
	// the tallies.
	if e.Second > 0 {
		if b := r.bucketFor(victim.Owner); b != nil {
			b.recordLost(victim.UnitType)
		}
	}
}
