package assets

import _ "embed"

//go:embed textures/checker.png
var checkerPNG []byte

// DiffusePNG returns the built-in diffuse texture image, PNG encoded.
func DiffusePNG() []byte { return checkerPNG }
