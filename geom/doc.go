// Package geom holds the small 3D value types shared by the projection,
// clustering and ellipsoid packages: Vec3, Point3D, Basis3 and Quat.
//
// All types are plain values; nothing here allocates on the heap except
// slices built by the helper constructors.
package geom
