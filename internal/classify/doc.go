// Package classify splits raw fully-qualified type names into package
// segments and canonical class identities.
//
// A raw name such as "com.example.Outer$Inner$1" is handled in two steps:
//
//   - the package prefix ("com.example") is everything before the last '.',
//     and each of its segments is recorded individually;
//   - the trailing symbol ("Outer$Inner$1") is split on '$' and the leading
//     non-numeric segments are joined with '.' ("Outer.Inner"). The first
//     purely numeric segment marks an anonymous or local type and ends the
//     identity.
//
// Both results are kept in presence-set Registries owned by a Classifier.
package classify
