// Package geo provides geographic primitives for location matching.
//
// It defines the Geocoder abstraction for resolving postal codes into
// coordinates, and the haversine great-circle distance used by the
// compatibility scorer. Distance is expressed in miles throughout.
package geo
