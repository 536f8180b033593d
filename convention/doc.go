// Package convention models axis conventions as triples of cube faces.
//
// A convention names the cube face that +x, +y and +z point at, written as
// an underscore separated string such as "LEFT_UP_FRONT". The package parses
// these strings, builds the signed unit vector of every face in a reference
// frame, and assembles the 3×3 change-of-basis matrix from any convention
// into that reference frame.
//
// Key types: CubeFace, Axes, ReferenceAxes.
//
// Dependency rule: convention knows nothing about named coordinate systems;
// see package coordsys for the registry and converters built on top of it.
package convention
