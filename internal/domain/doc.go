// Package domain contains the core entities and errors of the authors gateway:
// the opaque author document, the image lookup and save messages exchanged with
// the image service, and the staged upload. It is independent of any specific
// transport or upstream client.
package domain
