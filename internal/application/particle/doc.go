// Package particle is the application layer over the particle registry. It
// resolves user queries to records, filters listings by taxonomy category,
// builds registries against a chosen constants release and compares two
// registries field by field.
package particle
