package content

import _ "embed"

// guideYAML is the page copy compiled into the binary, so the app ships as
// a single file with no external assets.
//
//go:embed guide.yaml
var guideYAML []byte
