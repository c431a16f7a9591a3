// Package suffix generates the optional per-case suffix appended to the run
// folder name. Grids that vary a parameter without listing distinct folder
// names would otherwise write every case into the same folder.
package suffix
