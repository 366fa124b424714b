// Package qrcode renders text as a PNG QR code with
// github.com/skip2/go-qrcode, for moving a generated password to a phone
// camera instead of the clipboard.
package qrcode
