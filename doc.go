/*
 * doc.go, part of goVTF.
 *
 * Copyright 2026 The goVTF authors
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

/*
Package vtf reads, writes and appends particle trajectories in a
line-oriented VTF text format.

A trajectory is a periodic box plus a sequence of timesteps, each timestep
an ordered set of particles with a position and a radius. The package does
not impose a particle type: records are read through Fielder, plain maps or
caller-supplied accessor functions (see Accessor and Options), and particles
read back from a file are built by a Builder.

Format

One statement per line. Blank lines and lines starting with '#' are ignored.

	pbc X Y Z                  box extents, a file holds one
	atom ID radius R           radius of atom ID
	timestep                   starts a new block of positions
	atom ID position X Y Z     position of atom ID in the current block

Atom ids start at 1. A radius applies to the atom for every timestep; atoms
without a radius line get DefaultRadius. The particles of a timestep are
returned in ascending atom id order. The last block does not need a
trailing "timestep" line.

Files written by this package have the shape

	pbc 10 10 10

	atom 1 radius 0.5
	atom 2 radius 0.2

	timestep
	atom 1 position 1 2 3
	atom 2 position 4 5 6

Files whose names end in ".zst" or ".gz" are transparently compressed with
zstd or gzip, respectively.
*/
package vtf
