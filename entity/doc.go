// Package entity holds the simulated actors of the playfield: projectiles, formation
// members, the player ship and the formation that owns the members.
//
// Every actor satisfies core.Transform, core.Updatable and core.Drawable. Update passes
// purge actors marked dead on the previous tick before applying this tick's movement, so
// an actor that dies during a tick is never moved again.
package entity
