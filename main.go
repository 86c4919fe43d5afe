// SPDX-License-Identifier: MPL-2.0

package main

import cmd "github.com/idevctl/idevctl/cmd/idevctl"

func main() {
	cmd.Execute()
}
