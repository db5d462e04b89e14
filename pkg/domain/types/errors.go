package types

import "github.com/m-mizutani/goerr/v2"

// ErrUnsupportedOS is returned when the host OS has no known driver build
var ErrUnsupportedOS = goerr.New("unsupported operating system")
