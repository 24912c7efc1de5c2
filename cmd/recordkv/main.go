/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Command recordkv inspects and edits recordkv sources and buckets.
package main

import (
	"os"
)

func main() {
	if err := newApp().execute(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		os.Exit(1)
	}
}
