// Package services contains domain services that don't belong to a single
// aggregate. Currently this is route estimation: distance and ETA figures
// that feed the order lifecycle's assignment and delivering transitions.
package services
