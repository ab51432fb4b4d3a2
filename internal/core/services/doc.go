// Package services implements the driving ports. Services hold the
// pipeline logic between the tool surface and the driven adapters:
// input resolution, the remote OCR call, and result assembly.
package services
