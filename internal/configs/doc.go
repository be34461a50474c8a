// Package configs loads mentahan settings.
//
// Settings are read from an optional TOML file, mentahan.toml, in the
// working directory. Every key has a default, so a missing file or a file
// that sets only a few keys both work:
//
//	verbose = false
//	debug = false
//
//	[log]
//	name = "mentahan_logger"
//	file = "mentahan.log"
//	dir = "log"
//	level = "INFO"
//	max_kb = 500
//	format = "{{.Time}} - {{.Level}} - {{.Message}}"
//
//	[logo]
//	text = ""
//	font = ""
//
// When logo.text is set the logo is generated with go-figure instead of the
// built-in art.
//
// Invalid values and unknown keys fail with errors.ErrInvalidSettings.
package configs
