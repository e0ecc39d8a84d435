package combat

// DebugController carries development toggles. It is injected into the
// session at construction and flipped via method calls; there is no
// ambient global debug state.
type DebugController struct {
	invincible bool
	forceCrit  bool
}

// NewDebugController returns a controller with everything off.
func NewDebugController() *DebugController {
	return &DebugController{}
}

// SetInvincible toggles player invincibility.
func (d *DebugController) SetInvincible(v bool) { d.invincible = v }

// Invincible reports whether the player ignores incoming damage.
func (d *DebugController) Invincible() bool {
	return d != nil && d.invincible
}

// SetForceCrit forces every player attack to crit.
func (d *DebugController) SetForceCrit(v bool) { d.forceCrit = v }

// ForceCrit reports whether crits are forced.
func (d *DebugController) ForceCrit() bool {
	return d != nil && d.forceCrit
}
