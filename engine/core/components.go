package core

import "github.com/lanecraft/moba-engine/engine/geom"

// ---- Position & Facing ----

// Position represents a world transform on the arena ground plane
type Position struct {
	Pos    geom.Vec3
	Facing float64 // radians on the ground plane (0 = +X)
}

func (p *Position) Type() ComponentType { return CompPosition }

// DistanceTo returns the XZ-planar distance to another position.
// Height never participates in targeting math.
func (p *Position) DistanceTo(other *Position) float64 {
	return geom.DistXZ(p.Pos, other.Pos)
}

// Face turns the entity toward a world point
func (p *Position) Face(target geom.Vec3) {
	p.Facing = geom.HeadingXZ(p.Pos, target)
}

// ---- Health ----

// Health represents hit points. Destroyed flips exactly once, when
// Current first reaches zero, and only a match reset clears it.
type Health struct {
	Current   int
	Max       int
	Destroyed bool
}

func (h *Health) Type() ComponentType { return CompHealth }

func (h *Health) Ratio() float64 {
	if h.Max <= 0 {
		return 0
	}
	return float64(h.Current) / float64(h.Max)
}

func (h *Health) Alive() bool { return !h.Destroyed }

// Restore returns the pool to full and clears the destroyed flag.
// Match-reset semantics only.
func (h *Health) Restore() {
	h.Current = h.Max
	h.Destroyed = false
}

// BarLevel classifies a health ratio for display
type BarLevel uint8

const (
	BarHealthy  BarLevel = iota // above 60%
	BarWarning                  // 30% to 60%
	BarCritical                 // below 30%
)

// HealthBarLevel maps a health ratio to its display level. The
// thresholds are a contract: HUD recoloring and balance tooling both
// key off them.
func HealthBarLevel(ratio float64) BarLevel {
	switch {
	case ratio > 0.6:
		return BarHealthy
	case ratio >= 0.3:
		return BarWarning
	default:
		return BarCritical
	}
}

// ---- Damageable strategy ----

// DestroyStyle selects what destruction does to the entity's visuals
type DestroyStyle uint8

const (
	DestroyRemove   DestroyStyle = iota // explode and leave the world (minions)
	DestroyCollapse                     // stay as a darkened, collapsed wreck (towers, structures)
	DestroyHide                         // go invisible pending respawn (player)
)

// Damageable carries per-variant damage strategy data instead of
// behavior baked into each entity kind.
type Damageable struct {
	Scale float64 // incoming damage multiplier (monuments take 0.2)
	Style DestroyStyle
}

func (d *Damageable) Type() ComponentType { return CompDamageable }

// ---- Visual ----

// Visual is the render-facing state of an entity. The Base* fields
// snapshot the pristine look so a match reset can restore every
// property destruction mutated.
type Visual struct {
	Color    uint32 // RGBA
	Emissive float64
	Scale    float64
	Visible  bool

	BaseColor    uint32
	BaseEmissive float64
	BaseScale    float64
}

func (v *Visual) Type() ComponentType { return CompVisual }

// NewVisual creates a visible visual with its pristine snapshot taken
func NewVisual(color uint32, emissive float64) *Visual {
	return &Visual{
		Color: color, Emissive: emissive, Scale: 1, Visible: true,
		BaseColor: color, BaseEmissive: emissive, BaseScale: 1,
	}
}

// Restore reverts every mutated display property to the pristine state
func (v *Visual) Restore() {
	v.Color = v.BaseColor
	v.Emissive = v.BaseEmissive
	v.Scale = v.BaseScale
	v.Visible = true
}

// ---- Weapon ----

// Weapon represents attack capability. Cooldowns count in simulation
// ticks and are set at fire time, so attack rate is independent of
// target distance.
type Weapon struct {
	Damage        int
	Range         float64 // hard boundary, no falloff
	CooldownTicks int
	CooldownLeft  int
}

func (w *Weapon) Type() ComponentType { return CompWeapon }

func (w *Weapon) Ready() bool { return w.CooldownLeft <= 0 }
func (w *Weapon) Rearm()      { w.CooldownLeft = w.CooldownTicks }

func (w *Weapon) CoolDown() {
	if w.CooldownLeft > 0 {
		w.CooldownLeft--
	}
}

// ---- Movement ----

// Movable represents movement capability. Target is the movement
// goal; it is independent of any combat target, and nil when idle.
type Movable struct {
	Speed  float64 // units per second
	Target *geom.Vec3
}

func (m *Movable) Type() ComponentType { return CompMovable }

// ---- Ownership ----

// Owner identifies which team an entity fights for
type Owner struct {
	Team Team
}

func (o *Owner) Type() ComponentType { return CompOwner }

// ---- Minion ----

type MinionState uint8

const (
	MinionAdvancing MinionState = iota
	MinionEngaging
	MinionAttacking
	MinionDead
)

// Minion is the lane-pushing unit agent
type Minion struct {
	State    MinionState
	Goal     geom.Vec3 // lane end, or the enemy monument for rushers
	TargetID EntityID  // combat goal, 0 = none
	Lane     string
}

func (m *Minion) Type() ComponentType { return CompMinion }

// ---- Tower ----

// Tower is a stationary defender. Detection runs on its own periodic
// timer, decoupled from the render frame rate.
type Tower struct {
	Detecting   bool
	DetectTicks int // scan interval
	DetectLeft  int
	Alert       bool // targets present on the last scan
}

func (t *Tower) Type() ComponentType { return CompTower }

// StartDetection resumes periodic scanning from a full interval
func (t *Tower) StartDetection() {
	t.Detecting = true
	t.DetectLeft = t.DetectTicks
}

// StopDetection halts scanning; the alert state drops with it
func (t *Tower) StopDetection() {
	t.Detecting = false
	t.Alert = false
}

// ---- Structures ----

type StructureKind uint8

const (
	StructureBase     StructureKind = iota // outer shell, cosmetic pool
	StructureMonument                      // the authoritative win-condition target
)

type Structure struct {
	Kind StructureKind
}

func (s *Structure) Type() ComponentType { return CompStructure }

// ---- Player avatar ----

// Avatar is the player-controlled unit
type Avatar struct {
	Radius       float64 // collision radius against static obstacles
	SprintMult   float64
	Sprinting    bool
	Spawn        geom.Vec3
	RespawnTicks int
	RespawnLeft  int // >0 while dead and counting down
}

func (a *Avatar) Type() ComponentType { return CompAvatar }

func (a *Avatar) Dead() bool { return a.RespawnLeft > 0 }

// ---- Projectile ----

// Projectile flies in a straight line to the position its target held
// at fire time. It is not re-homed: a target that leaves the impact
// point before arrival is missed.
type Projectile struct {
	SourceID EntityID
	TargetID EntityID
	Impact   geom.Vec3 // target position snapshot at fire time
	Speed    float64
	Damage   int
	Blast    float64 // impact radius; the hit check and the player AoE both use it
	Team     Team    // firing team
}

func (p *Projectile) Type() ComponentType { return CompProjectile }

// ---- Timed effects ----

type EffectKind uint8

const (
	FxExplosion EffectKind = iota
	FxDamageNumber
)

// Effect is a short-lived visual advanced once per tick and pruned
// when finished; no self-rescheduling callbacks.
type Effect struct {
	Kind     EffectKind
	Elapsed  float64
	Duration float64
	Value    int // damage amount for floating numbers
}

func (e *Effect) Type() ComponentType { return CompEffect }

func (e *Effect) Finished() bool { return e.Elapsed >= e.Duration }

// ---- Registry tracking ----

// Tracked links an entity to its spatial registry entry. The owner
// that registered the key is responsible for removing it.
type Tracked struct {
	Key string
}

func (t *Tracked) Type() ComponentType { return CompTracked }
