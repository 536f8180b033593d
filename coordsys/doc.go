// Package coordsys converts vertices and poses between the axis conventions
// of common 3D libraries.
//
// Every CoordinateSystem has a camera convention and, for systems whose world
// axes differ from their camera axes, a separate world convention. A Registry
// turns those conventions into change-of-basis matrices once and composes
// them through the reference frame ("LEFT_UP_FRONT") on every conversion.
//
// Key types: CoordinateSystem, Registry, Pose.
//
// The Registry is immutable after construction and safe for concurrent use.
// Default returns a process-wide registry built on first use; NewRegistry
// builds an independent one with custom Options.
package coordsys
