// Package convert runs the SMD to FFA pipeline over files: read, parse,
// encode, write the .ffa output and the optional compressed sidecar.
//
// A failing file never stops a batch; Run reports it and moves on.
package convert
