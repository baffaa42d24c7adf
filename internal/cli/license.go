package cli

import _ "embed"

//go:embed LICENSE.txt
var licenseText string
