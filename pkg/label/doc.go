// Package label derives short descriptive labels for SPDX packages and
// resolves collisions between them.
//
// # Labels
//
// [Resolve] builds a label from the most informative metadata a package
// carries, in order of preference:
//
//  1. its dominant package URL: "npm: foo 1.0.0", "oci.amd64: app sha256:abcde..."
//     or, when the purl has a download_url qualifier, that URL
//  2. its file name
//  3. "name version"
//  4. its name
//
// # Detail levels
//
// Labels come in three levels of detail. [Brief] is the default.
// [Qualified] prefixes purl and file name labels with the package name,
// which separates packages whose purls alone collide. [Identifier] is the
// SPDX identifier itself, unique by construction.
//
// # Disambiguation
//
// [Disambiguate] labels a whole document. Packages whose labels collide are
// relabelled at the next detail level until labels are unique or the
// identifier level has been reached. Residual duplicates after that are
// tolerated and reported in [Result.Ambiguous].
package label
