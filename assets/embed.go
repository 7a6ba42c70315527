package assets

import "embed"

// FS holds the demo sprite sequences. Frame files follow the
// zero-padded naming the path templates in the style sheets expect,
// e.g. sprites/walk_00.png .. sprites/walk_03.png.
//
//go:embed sprites/*.png
var FS embed.FS
