/*
Command domrender renders HTML documents into display lists.

Usage:

    domrender [flags] FILE.html

The display list is written to stdout, as text or as JSON. Optionally the
display list is painted into a PNG image.

Configuration is read from domrender.yaml (in the current directory or given
with --config) and from environment variables prefixed with DOMRENDER_, e.g.
DOMRENDER_VIEWPORT_WIDTH. Flags take precedence.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
